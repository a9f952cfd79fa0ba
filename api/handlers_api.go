package api

import (
	"encoding/json"

	mb "github.com/mvrba/battleship-engine/models/battleship"
	mc "github.com/mvrba/battleship-engine/models/connection"
)

type RequestHandler interface {
	HandleCreateGame(gameManager mb.GameManager) (*mb.Game, mc.Message[mc.RespCreateGame])
	HandlePlaceFleet(game *mb.Game) mc.Message[mc.RespPlaceFleet]
	HandleAttack(game *mb.Game) mc.Message[mc.RespAttack]
}

// Every incoming valid request has this structure. The payload is
// unmarshaled per signal code in line with the RequestHandler interface.
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload []byte) *Request {
	return &Request{payload: payload}
}

func (r *Request) HandleCreateGame(gameManager mb.GameManager) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	var req mc.Message[mc.ReqCreateGame]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid create game payload")
		return nil, resp
	}

	game, err := gameManager.CreateGame(req.Payload.GameDifficulty)
	if err != nil {
		resp.AddError(err.Error(), "failed to create game")
		return nil, resp
	}

	resp.AddPayload(mc.RespCreateGame{
		GameUuid: game.Uuid(),
		HostUuid: game.HostPlayer().Uuid(),
		GridSize: game.GridSize(),
	})
	return game, resp
}

// The host fleet is placed by the engine at game creation; this
// hands the resulting defence grid to the client for rendering.
func (r *Request) HandlePlaceFleet(game *mb.Game) mc.Message[mc.RespPlaceFleet] {
	resp := mc.NewMessage[mc.RespPlaceFleet](mc.CodePlaceFleet)

	if game == nil {
		resp.AddError("no game attached to this session", "create a game first")
		return resp
	}

	resp.AddPayload(mc.RespPlaceFleet{DefenceGrid: game.HostPlayer().Board().Grid().Copy()})
	return resp
}

// Resolves the host's shot, then plays the bot's counter-shot.
func (r *Request) HandleAttack(game *mb.Game) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)

	if game == nil {
		resp.AddError("no game attached to this session", "create a game first")
		return resp
	}
	if game.IsFinished() {
		resp.AddError("game is finished", "no more attacks accepted")
		return resp
	}

	var req mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid attack payload")
		return resp
	}

	hostOutcome, err := game.PlayHostTurn(req.Payload.X, req.Payload.Y)
	if err != nil {
		resp.AddError(err.Error(), "attack operation failed")
		return resp
	}

	payload := mc.RespAttack{Host: toRespShotOutcome(hostOutcome)}

	// The bot only answers while the game is still on. A failed bot
	// turn (e.g. an exhausted targeter) is a pass, never an error:
	// the host's shot is already resolved and its outcome stands.
	if !game.IsFinished() {
		if botOutcome, err := game.PlayBotTurn(); err == nil {
			payload.Bot = toRespShotOutcome(botOutcome)
		}
	}

	payload.BotRemainingShips = game.Targeter().RemainingShips()
	resp.AddPayload(payload)
	return resp
}

func toRespShotOutcome(outcome mb.ShotOutcome) mc.RespShotOutcome {
	positionState := mb.PositionStateAttackGridMiss
	if outcome.IsHit {
		positionState = mb.PositionStateAttackGridHit
	}

	return mc.RespShotOutcome{
		X:              outcome.X,
		Y:              outcome.Y,
		PositionState:  positionState,
		IsSunk:         outcome.IsSunk,
		SunkShipCoords: outcome.SunkShipCoords,
	}
}
