package battleship

import (
	"testing"
)

func TestShapeNormalization(t *testing.T) {
	shape := []Coordinates{{X: 2, Y: -1}, {X: 3, Y: 0}, {X: 2, Y: 1}}
	normalized := normalizeShape(shape)

	minX, minY := normalized[0].X, normalized[0].Y
	for _, offset := range normalized {
		if offset.X < minX {
			minX = offset.X
		}
		if offset.Y < minY {
			minY = offset.Y
		}
	}
	if minX != 0 || minY != 0 {
		t.Fatalf("expected min offsets 0,0\t got: %d,%d", minX, minY)
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for shipCode, shape := range shipShapes {
		rotated := normalizeShape(shape)
		for i := 0; i < 4; i++ {
			rotated = rotateShape(rotated)
		}
		if shapeKey(rotated) != shapeKey(normalizeShape(shape)) {
			t.Fatalf("ship %d: four rotations did not return the original shape", shipCode)
		}
	}
}

func TestMirrorTwiceIsIdentity(t *testing.T) {
	for shipCode, shape := range shipShapes {
		mirrored := mirrorShape(mirrorShape(shape))
		if shapeKey(mirrored) != shapeKey(normalizeShape(shape)) {
			t.Fatalf("ship %d: double mirror did not return the original shape", shipCode)
		}
	}
}

func TestShapeOrientations(t *testing.T) {
	tests := []struct {
		name             string
		shipCode         int
		expectedVariants int
	}{
		{name: "destroyer line has two orientations", shipCode: ShipCodeDestroyer, expectedVariants: 2},
		{name: "cruiser line has two orientations", shipCode: ShipCodeCruiser, expectedVariants: 2},
		{name: "t-shape has four orientations", shipCode: ShipCodeTShape, expectedVariants: 4},
		{name: "l-shape has eight orientations", shipCode: ShipCodeLShape, expectedVariants: 8},
		{name: "z-shape has four orientations", shipCode: ShipCodeZShape, expectedVariants: 4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			variants := shapeOrientations(shapeForShip(test.shipCode))

			if len(variants) != test.expectedVariants {
				t.Fatalf("expected variants: %d\t got: %d", test.expectedVariants, len(variants))
			}

			seen := make(map[string]bool, len(variants))
			for _, variant := range variants {
				if len(variant) != ShipSize(test.shipCode) {
					t.Fatalf("variant changed cell count: %d", len(variant))
				}
				key := shapeKey(variant)
				if seen[key] {
					t.Fatalf("duplicate variant in orientation set: %s", key)
				}
				seen[key] = true
			}
		})
	}
}

func TestShapeForShipFallback(t *testing.T) {
	shape := shapeForShip(42)
	if len(shape) != 1 || shape[0] != (Coordinates{X: 0, Y: 0}) {
		t.Fatalf("expected single-cell fallback shape\t got: %+v", shape)
	}
}

func TestSizeCensus(t *testing.T) {
	census := map[int]int{
		ShipCodeDestroyer:  2,
		ShipCodeCruiser:    1,
		ShipCodeBattleship: 1,
		ShipCodeTShape:     1,
		ShipCodeCarrier:    1,
	}

	sizes := SizeCensus(census)

	expected := map[int]int{2: 2, 3: 1, 4: 2, 6: 1}
	if len(sizes) != len(expected) {
		t.Fatalf("expected size census: %+v\t got: %+v", expected, sizes)
	}
	for size, count := range expected {
		if sizes[size] != count {
			t.Fatalf("size %d: expected count %d\t got: %d", size, count, sizes[size])
		}
	}
}
