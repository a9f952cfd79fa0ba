package battleship

import (
	"github.com/google/uuid"

	cerr "github.com/mvrba/battleship-engine/internal/error"
)

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

// Outcome of resolving one shot against a defence grid. This is
// the boundary product consumed by Targeter.RegisterAttack.
type ShotOutcome struct {
	X              int           `json:"x"`
	Y              int           `json:"y"`
	IsHit          bool          `json:"is_hit"`
	IsSunk         bool          `json:"is_sunk"`
	ShipCode       int           `json:"ship_code,omitempty"`
	SunkShipCoords []Coordinates `json:"sunk_ship_coords,omitempty"`
}

// Player owns one defence board and the hit bookkeeping on it.
// The board grid itself is never mutated by gameplay; hits are
// tracked separately.
type Player struct {
	uuid          string
	isHost        bool
	matchStatus   int
	sunkenShips   int
	shipCellsLeft int
	board         *Board
	hits          map[Coordinates]struct{}
}

func newPlayer(isHost bool, board *Board) *Player {
	return &Player{
		uuid:        uuid.NewString()[:10],
		isHost:      isHost,
		matchStatus: PlayerMatchStatusUndefined,
		board:       board,
		hits:        make(map[Coordinates]struct{}),
	}
}

func (p *Player) Uuid() string {
	return p.uuid
}

func (p *Player) IsHost() bool {
	return p.isHost
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) SunkenShips() int {
	return p.sunkenShips
}

func (p *Player) MatchStatus() int {
	return p.matchStatus
}

func (p *Player) IsDefeated() bool {
	return p.shipCellsLeft == 0
}

// Called once after placement so defeat can be detected by
// counting down the remaining unhit ship cells.
func (p *Player) syncShipCells() {
	p.shipCellsLeft = p.board.Stats().OccupiedSpaces
}

// Resolves a shot against this player's defence grid: was it a hit,
// and did it sink the ship. Repeat shots on an already-hit cell are
// an error so an attacker cannot whittle a ship down twice.
func (p *Player) ResolveShot(x, y int) (ShotOutcome, error) {
	tile, err := p.board.GetTile(x, y)
	if err != nil {
		return ShotOutcome{}, err
	}

	outcome := ShotOutcome{X: x, Y: y}
	if tile == PositionStateWater {
		return outcome, nil
	}

	coords := NewCoordinates(x, y)
	if _, prs := p.hits[coords]; prs {
		return ShotOutcome{}, cerr.ErrPositionAlreadyAttacked(x, y)
	}

	p.hits[coords] = struct{}{}
	p.shipCellsLeft--

	outcome.IsHit = true
	outcome.ShipCode = tile

	shipCells := p.shipInstanceCells(x, y, tile)
	for _, cell := range shipCells {
		if _, prs := p.hits[cell]; !prs {
			return outcome, nil
		}
	}

	outcome.IsSunk = true
	outcome.SunkShipCoords = shipCells
	p.sunkenShips++
	return outcome, nil
}

// Placement forbids touching ships, so flood filling 4-connected
// cells of the same ship code isolates exactly one ship instance.
func (p *Player) shipInstanceCells(x, y, shipCode int) []Coordinates {
	start := NewCoordinates(x, y)
	visited := map[Coordinates]struct{}{start: {}}
	queue := []Coordinates{start}
	cells := make([]Coordinates, 0, 6)

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		cells = append(cells, cell)

		for _, neighbour := range orthogonalNeighbours(cell.X, cell.Y) {
			if _, prs := visited[neighbour]; prs {
				continue
			}
			tile, err := p.board.GetTile(neighbour.X, neighbour.Y)
			if err != nil || tile != shipCode {
				continue
			}
			visited[neighbour] = struct{}{}
			queue = append(queue, neighbour)
		}
	}
	return cells
}

func (p *Player) setMatchStatus(status int) {
	p.matchStatus = status
}
