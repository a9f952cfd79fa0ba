package battleship

import (
	"math/rand/v2"
)

// Targeter plays the automated opponent. It owns a fog-of-war view
// of the enemy board and the shot bookkeeping that drives the
// hunt -> target -> destroy cycle. The census is keyed by ship SIZE
// since sinking is attributed purely by contiguous-hit count.
//
// Not safe for concurrent use; confine one Targeter to one game
// session.
type Targeter struct {
	rows int
	cols int

	// remaining ships by size, owned copy
	ships map[int]int

	enemyGrid Grid

	available map[Coordinates]struct{}
	fired     map[Coordinates]struct{}
	missed    map[Coordinates]struct{}

	// unresolved hits on ships that have not sunk yet. Hits on
	// several partially damaged ships can coexist here after an
	// irregular hull sent the search back to hunt mode.
	currentHits []Coordinates

	// FIFO of follow-up candidates after a non-sinking hit
	targetQueue []Coordinates
}

func NewTargeter(rows, cols int, shipSizes map[int]int) *Targeter {
	census := make(map[int]int, len(shipSizes))
	for size, count := range shipSizes {
		census[size] = count
	}

	available := make(map[Coordinates]struct{}, rows*cols)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			available[NewCoordinates(x, y)] = struct{}{}
		}
	}

	return &Targeter{
		rows:      rows,
		cols:      cols,
		ships:     census,
		enemyGrid: NewGrid(rows, cols),
		available: available,
		fired:     make(map[Coordinates]struct{}, rows*cols),
		missed:    make(map[Coordinates]struct{}, rows*cols),
	}
}

// Next coordinate to fire at. Queued follow-ups of a partially hit
// ship take priority over random search; entries that left the
// available set in the meantime are skipped. The second return is
// false once no shots remain, which is the terminal condition.
func (t *Targeter) NextAttack() (Coordinates, bool) {
	for len(t.targetQueue) > 0 {
		coords := t.targetQueue[0]
		t.targetQueue = t.targetQueue[1:]

		if _, prs := t.available[coords]; prs {
			return coords, true
		}
	}
	return t.randomShot()
}

func (t *Targeter) randomShot() (Coordinates, bool) {
	if len(t.available) == 0 {
		return Coordinates{}, false
	}

	shots := make([]Coordinates, 0, len(t.available))
	for coords := range t.available {
		shots = append(shots, coords)
	}
	return shots[rand.IntN(len(shots))], true
}

// Registers the resolved outcome of a shot. The caller is the
// boundary collaborator that cross-referenced the coordinate
// against the real defence grid.
func (t *Targeter) RegisterAttack(x, y int, isHit, isSunk bool) {
	coords := NewCoordinates(x, y)
	t.fired[coords] = struct{}{}
	delete(t.available, coords)

	if !isHit {
		t.missed[coords] = struct{}{}
		t.enemyGrid[y][x] = PositionStateAttackGridMiss
		return
	}

	t.enemyGrid[y][x] = PositionStateAttackGridHit
	t.currentHits = append(t.currentHits, coords)

	if isSunk {
		sunkRun := t.hitRunContaining(coords)
		t.identifySunkShip(len(sunkRun))
		t.markSunkShipPerimeter(sunkRun)
		t.dropHits(sunkRun)

		// re-derive follow-ups for any ship still partially hit
		t.targetQueue = t.targetQueue[:0]
		if len(t.currentHits) > 0 {
			t.targetQueue = append(t.targetQueue, t.targetCells()...)
		}
		return
	}

	t.targetQueue = append(t.targetQueue, t.targetCells()...)
}

// The cells of the sunk ship are exactly the 4-connected group of
// current hits around the sinking shot: a sink means every cell of
// that ship was hit, and ships never touch, so hit groups never
// merge across ship instances.
func (t *Targeter) hitRunContaining(coords Coordinates) []Coordinates {
	hitSet := make(map[Coordinates]struct{}, len(t.currentHits))
	for _, hit := range t.currentHits {
		hitSet[hit] = struct{}{}
	}

	visited := map[Coordinates]struct{}{coords: {}}
	queue := []Coordinates{coords}
	run := make([]Coordinates, 0, len(t.currentHits))

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		run = append(run, cell)

		for _, neighbour := range orthogonalNeighbours(cell.X, cell.Y) {
			if _, prs := visited[neighbour]; prs {
				continue
			}
			if _, prs := hitSet[neighbour]; !prs {
				continue
			}
			visited[neighbour] = struct{}{}
			queue = append(queue, neighbour)
		}
	}
	return run
}

// Attributes the sink to the census entry matching the sunk run size.
func (t *Targeter) identifySunkShip(size int) {
	if count, prs := t.ships[size]; prs && count > 0 {
		t.ships[size] = count - 1
	}
}

func (t *Targeter) dropHits(run []Coordinates) {
	dropped := make(map[Coordinates]struct{}, len(run))
	for _, cell := range run {
		dropped[cell] = struct{}{}
	}

	kept := t.currentHits[:0]
	for _, hit := range t.currentHits {
		if _, prs := dropped[hit]; !prs {
			kept = append(kept, hit)
		}
	}
	t.currentHits = kept
}

// Ships never touch, so every orthogonal neighbour of a sunk ship
// is provably water. Those cells become forced misses and leave
// the available set without ever being fired at. Only the sunk run
// is walked; hits on other still-afloat ships must keep their
// surroundings shootable.
func (t *Targeter) markSunkShipPerimeter(run []Coordinates) {
	for _, hit := range run {
		for _, neighbour := range orthogonalNeighbours(hit.X, hit.Y) {
			if neighbour.X < 0 || neighbour.X >= t.cols || neighbour.Y < 0 || neighbour.Y >= t.rows {
				continue
			}
			if _, prs := t.fired[neighbour]; prs {
				continue
			}
			delete(t.available, neighbour)
			t.enemyGrid[neighbour.Y][neighbour.X] = PositionStateAttackGridMiss
		}
	}
}

// Follow-up candidates for the current hit run. A single hit fans
// out to its orthogonal neighbours; a collinear run pins the ship
// orientation and only the two run extensions remain. Hit runs can
// lose collinearity on irregular hulls, in which case the latest
// hit falls back to single-hit fanning instead of extrapolating.
func (t *Targeter) targetCells() []Coordinates {
	lastHit := t.currentHits[len(t.currentHits)-1]
	if len(t.currentHits) == 1 {
		return t.adjacentCells(lastHit.X, lastHit.Y)
	}

	minX, maxX := t.currentHits[0].X, t.currentHits[0].X
	minY, maxY := t.currentHits[0].Y, t.currentHits[0].Y
	sameX, sameY := true, true
	for _, hit := range t.currentHits[1:] {
		if hit.X != t.currentHits[0].X {
			sameX = false
		}
		if hit.Y != t.currentHits[0].Y {
			sameY = false
		}
		if hit.X < minX {
			minX = hit.X
		}
		if hit.X > maxX {
			maxX = hit.X
		}
		if hit.Y < minY {
			minY = hit.Y
		}
		if hit.Y > maxY {
			maxY = hit.Y
		}
	}

	var candidates []Coordinates
	switch {
	case sameX:
		candidates = []Coordinates{{X: lastHit.X, Y: minY - 1}, {X: lastHit.X, Y: maxY + 1}}
	case sameY:
		candidates = []Coordinates{{X: minX - 1, Y: lastHit.Y}, {X: maxX + 1, Y: lastHit.Y}}
	default:
		return t.adjacentCells(lastHit.X, lastHit.Y)
	}

	return t.filterAvailable(candidates)
}

func (t *Targeter) adjacentCells(x, y int) []Coordinates {
	return t.filterAvailable(orthogonalNeighbours(x, y))
}

func (t *Targeter) filterAvailable(candidates []Coordinates) []Coordinates {
	valid := make([]Coordinates, 0, len(candidates))
	for _, coords := range candidates {
		if _, prs := t.available[coords]; prs {
			valid = append(valid, coords)
		}
	}
	return valid
}

func orthogonalNeighbours(x, y int) []Coordinates {
	return []Coordinates{
		{X: x - 1, Y: y},
		{X: x + 1, Y: y},
		{X: x, Y: y - 1},
		{X: x, Y: y + 1},
	}
}

// Read-only copy of the fog-of-war grid.
func (t *Targeter) EnemyBoard() Grid {
	return t.enemyGrid.Copy()
}

func (t *Targeter) RemainingShips() map[int]int {
	census := make(map[int]int, len(t.ships))
	for size, count := range t.ships {
		census[size] = count
	}
	return census
}

func (t *Targeter) AllShipsSunk() bool {
	for _, count := range t.ships {
		if count != 0 {
			return false
		}
	}
	return true
}

func (t *Targeter) ShotsFired() int {
	return len(t.fired)
}
