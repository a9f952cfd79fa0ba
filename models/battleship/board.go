package battleship

import (
	"math/rand/v2"

	cerr "github.com/mvrba/battleship-engine/internal/error"
)

// Each ship instance gets this many placement attempts before
// PlaceShips gives up. An attempt is one anchor cell; all shape
// orientations are tried per attempt.
const placementAttemptBudget = 2000

type BoardStats struct {
	EmptySpaces    int `json:"empty_spaces"`
	OccupiedSpaces int `json:"occupied_spaces"`
}

// Board owns a defence grid and places a fleet onto it.
// It keeps a private copy of the ship census so callers
// cannot mutate placement input through a shared map.
type Board struct {
	rows  int
	cols  int
	ships map[int]int
	grid  Grid
}

func NewBoard(rows, cols int, ships map[int]int) *Board {
	census := make(map[int]int, len(ships))
	for shipCode, count := range ships {
		census[shipCode] = count
	}

	return &Board{
		rows:  rows,
		cols:  cols,
		ships: census,
		grid:  NewGrid(rows, cols),
	}
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) Grid() Grid {
	return b.grid
}

func (b *Board) ShipCensus() map[int]int {
	census := make(map[int]int, len(b.ships))
	for shipCode, count := range b.ships {
		census[shipCode] = count
	}
	return census
}

func (b *Board) GetTile(x, y int) (int, error) {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return 0, cerr.ErrCoordsOutOfBound(x, y)
	}
	return b.grid[y][x], nil
}

// Stats are derived from the grid on every call, never cached.
func (b *Board) Stats() BoardStats {
	empty := 0
	for _, row := range b.grid {
		for _, tile := range row {
			if tile == PositionStateWater {
				empty++
			}
		}
	}

	return BoardStats{
		EmptySpaces:    empty,
		OccupiedSpaces: b.rows*b.cols - empty,
	}
}

// Water-fills the grid. The ship census is untouched so the
// caller may re-invoke PlaceShips afterwards.
func (b *Board) Reset() {
	b.grid = NewGrid(b.rows, b.cols)
}

// Places every ship of the census onto the grid under the no-overlap
// and no-touch rules. Anchors are tried in uniformly shuffled order,
// all orientations per anchor, bounded by placementAttemptBudget per
// ship instance. Failing the budget is fatal to the whole call; the
// board is left partially stamped and must be Reset before a retry.
func (b *Board) PlaceShips() error {
	for shipCode, count := range b.ships {
		variants := shapeOrientations(shapeForShip(shipCode))

		for i := 0; i < count; i++ {
			if !b.placeOneShip(shipCode, variants) {
				return cerr.ErrShipPlacementImpossible(shipCode)
			}
		}
	}
	return nil
}

func (b *Board) placeOneShip(shipCode int, variants [][]Coordinates) bool {
	if b.rows*b.cols == 0 {
		return false
	}
	attempts := 0

	for attempts < placementAttemptBudget {
		for _, anchor := range b.shuffledAnchors() {
			if attempts == placementAttemptBudget {
				break
			}
			attempts++

			for _, variant := range variants {
				if b.canPlaceShip(anchor.X, anchor.Y, variant) {
					b.stampShip(anchor.X, anchor.Y, variant, shipCode)
					return true
				}
			}
		}
	}
	return false
}

func (b *Board) shuffledAnchors() []Coordinates {
	anchors := make([]Coordinates, 0, b.rows*b.cols)
	for x := 0; x < b.cols; x++ {
		for y := 0; y < b.rows; y++ {
			anchors = append(anchors, NewCoordinates(x, y))
		}
	}

	rand.Shuffle(len(anchors), func(i, j int) {
		anchors[i], anchors[j] = anchors[j], anchors[i]
	})
	return anchors
}

// A placement is valid when every cell of the shape is in bounds,
// on water, and has no ship anywhere in its 8-neighbourhood.
func (b *Board) canPlaceShip(x, y int, shape []Coordinates) bool {
	for _, offset := range shape {
		nx, ny := x+offset.X, y+offset.Y
		if nx < 0 || nx >= b.cols || ny < 0 || ny >= b.rows {
			return false
		}
		if b.grid[ny][nx] != PositionStateWater {
			return false
		}

		for adjX := nx - 1; adjX <= nx+1; adjX++ {
			for adjY := ny - 1; adjY <= ny+1; adjY++ {
				if adjX < 0 || adjX >= b.cols || adjY < 0 || adjY >= b.rows {
					continue
				}
				if b.grid[adjY][adjX] != PositionStateWater {
					return false
				}
			}
		}
	}
	return true
}

func (b *Board) stampShip(x, y int, shape []Coordinates, shipCode int) {
	for _, offset := range shape {
		b.grid[y+offset.Y][x+offset.X] = shipCode
	}
}
