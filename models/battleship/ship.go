package battleship

import (
	"fmt"
	"sort"
	"strings"
)

// Ship codes double as the cell values stamped
// into a defence grid by Board.PlaceShips.
const (
	ShipCodeDestroyer  int = 1 // 2x1 line
	ShipCodeCruiser    int = 2 // 3x1 line
	ShipCodeBattleship int = 3 // 4x1 line
	ShipCodeTShape     int = 4
	ShipCodeLShape     int = 5
	ShipCodeZShape     int = 6
	ShipCodeCarrier    int = 7 // irregular 6-cell hull
)

// Canonical ship footprints as offsets from the anchor cell,
// normalized so min dx and min dy are both 0.
var shipShapes = map[int][]Coordinates{
	ShipCodeDestroyer:  {{X: 0, Y: 0}, {X: 0, Y: 1}},
	ShipCodeCruiser:    {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}},
	ShipCodeBattleship: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
	ShipCodeTShape:     {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}},
	ShipCodeLShape:     {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}},
	ShipCodeZShape:     {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	ShipCodeCarrier:    {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 1, Y: 1}, {X: 1, Y: 2}},
}

// Ship codes absent from the shape table fall back to a single cell.
func shapeForShip(shipCode int) []Coordinates {
	shape, prs := shipShapes[shipCode]
	if !prs {
		return []Coordinates{{X: 0, Y: 0}}
	}
	return shape
}

func ShipSize(shipCode int) int {
	return len(shapeForShip(shipCode))
}

// Converts a census keyed by ship code into one keyed by ship size.
// Targeter sink detection works on contiguous-hit counts, so it
// consumes the size census, not the shape census.
func SizeCensus(ships map[int]int) map[int]int {
	sizes := make(map[int]int, len(ships))
	for shipCode, count := range ships {
		sizes[ShipSize(shipCode)] += count
	}
	return sizes
}

func normalizeShape(shape []Coordinates) []Coordinates {
	minX, minY := shape[0].X, shape[0].Y
	for _, offset := range shape[1:] {
		if offset.X < minX {
			minX = offset.X
		}
		if offset.Y < minY {
			minY = offset.Y
		}
	}

	normalized := make([]Coordinates, len(shape))
	for i, offset := range shape {
		normalized[i] = Coordinates{X: offset.X - minX, Y: offset.Y - minY}
	}
	return normalized
}

// 90 degree clockwise rotation about the local origin,
// re-normalized to non-negative offsets.
func rotateShape(shape []Coordinates) []Coordinates {
	rotated := make([]Coordinates, len(shape))
	for i, offset := range shape {
		rotated[i] = Coordinates{X: offset.Y, Y: -offset.X}
	}
	return normalizeShape(rotated)
}

// Horizontal flip, re-normalized to non-negative offsets.
func mirrorShape(shape []Coordinates) []Coordinates {
	mirrored := make([]Coordinates, len(shape))
	for i, offset := range shape {
		mirrored[i] = Coordinates{X: -offset.X, Y: offset.Y}
	}
	return normalizeShape(mirrored)
}

func shapeKey(shape []Coordinates) string {
	offsets := make([]string, len(shape))
	for i, offset := range shape {
		offsets[i] = fmt.Sprintf("%d,%d", offset.X, offset.Y)
	}
	sort.Strings(offsets)
	return strings.Join(offsets, ";")
}

// All distinct orientations of a shape: 4 rotations of the shape
// and 4 rotations of its mirror. Symmetric shapes collapse to
// fewer than 8 variants.
func shapeOrientations(shape []Coordinates) [][]Coordinates {
	variants := make([][]Coordinates, 0, 8)
	seen := make(map[string]bool, 8)

	current := normalizeShape(shape)
	for flip := 0; flip < 2; flip++ {
		for rot := 0; rot < 4; rot++ {
			if key := shapeKey(current); !seen[key] {
				seen[key] = true
				variants = append(variants, current)
			}
			current = rotateShape(current)
		}
		current = mirrorShape(current)
	}
	return variants
}
