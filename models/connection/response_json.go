package connection

import (
	mb "github.com/mvrba/battleship-engine/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid string `json:"game_uuid"`
	HostUuid string `json:"host_uuid"`
	GridSize int    `json:"grid_size"`
}

type RespPlaceFleet struct {
	DefenceGrid mb.Grid `json:"defence_grid"`
}

type RespAttack struct {
	Host RespShotOutcome `json:"host"`
	Bot  RespShotOutcome `json:"bot"`

	// bot's remaining view of the host fleet, by ship size
	BotRemainingShips map[int]int `json:"bot_remaining_ships"`
}

type RespShotOutcome struct {
	X              int              `json:"x"`
	Y              int              `json:"y"`
	PositionState  int              `json:"position_state"`
	IsSunk         bool             `json:"is_sunk"`
	SunkShipCoords []mb.Coordinates `json:"sunk_ship_coords,omitempty"`
}

type RespEndGame struct {
	PlayerMatchStatus int `json:"player_match_status"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
