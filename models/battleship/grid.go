package battleship

// Cell states of the attack (fog-of-war) grid.
const (
	PositionStateAttackGridUnknown int = iota
	PositionStateAttackGridMiss
	PositionStateAttackGridHit
)

// Water in a defence grid. Any positive value is a ship code.
const PositionStateWater int = 0

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

type Grid [][]int

// Creates a new grid of rows x cols.
// All indexes are zero/PositionStateWater.
func NewGrid(rows, cols int) Grid {
	grid := make(Grid, rows)

	for i := 0; i < rows; i++ {
		grid[i] = make([]int, cols)
	}
	return grid
}

func (g Grid) Copy() Grid {
	copied := make(Grid, len(g))
	for i, row := range g {
		copied[i] = make([]int, len(row))
		copy(copied[i], row)
	}
	return copied
}
