package render

import (
	"math"
	"testing"

	"raydelve/internal/config"
	"raydelve/internal/dungeon"
)

const distTolerance = 1e-9

// smallRoom is a 5x5 chamber: walls on the border, floor inside.
const smallRoom = `#####
#...#
#...#
#...#
#####`

func newTestEngine(t *testing.T, mutate func(*config.Config)) *Engine {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	e := NewEngine(cfg)
	t.Cleanup(e.Close)
	return e
}

func TestCast_AxisAlignedDistances(t *testing.T) {
	e := newTestEngine(t, nil)
	grid := dungeon.ParseMap(smallRoom)

	// From the room center each border wall plane is 1.5 cells away.
	testCases := []struct {
		name     string
		bearing  float64
		wantSide int
	}{
		{"east", 0, 0},
		{"south", math.Pi / 2, 1},
		{"west", math.Pi, 0},
		{"north", -math.Pi / 2, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := e.Cast(grid, 2.5, 2.5, tc.bearing)
			if !res.Hit() {
				t.Fatalf("expected a wall hit, got %+v", res)
			}
			if res.Kind != dungeon.CellWall {
				t.Errorf("expected wall kind, got %v", res.Kind)
			}
			if math.Abs(res.Distance-1.5) > distTolerance {
				t.Errorf("expected distance 1.5, got %v", res.Distance)
			}
			if res.Side != tc.wantSide {
				t.Errorf("expected side %d, got %d", tc.wantSide, res.Side)
			}
		})
	}
}

func TestCast_DiagonalDistance(t *testing.T) {
	e := newTestEngine(t, nil)
	grid := dungeon.ParseMap(`#######
#.....#
#.....#
#.....#
#.....#
#.....#
#######`)

	// At 45 degrees from the corner cell, the ray crosses the bottom wall
	// plane (y=6) 4.5 cells down, so ray length is 4.5*sqrt(2).
	res := e.Cast(grid, 1.5, 1.5, math.Pi/4)
	if !res.Hit() {
		t.Fatalf("expected a wall hit, got %+v", res)
	}
	want := 4.5 * math.Sqrt2
	if math.Abs(res.Distance-want) > 1e-6 {
		t.Errorf("expected distance %v, got %v", want, res.Distance)
	}
}

func TestCast_OutOfBoundsOrigin(t *testing.T) {
	e := newTestEngine(t, nil)
	grid := dungeon.ParseMap(smallRoom)

	for _, origin := range [][2]float64{{-1, 2.5}, {2.5, -1}, {10, 2.5}, {2.5, 10}} {
		res := e.Cast(grid, origin[0], origin[1], 0)
		if res.Distance != 0 || res.Kind != dungeon.CellWall {
			t.Errorf("origin (%v, %v): expected wall at distance 0, got %+v",
				origin[0], origin[1], res)
		}
	}
}

func TestCast_MissReportsMaxDepth(t *testing.T) {
	e := newTestEngine(t, func(cfg *config.Config) {
		cfg.Camera.MaxDepth = 5
	})
	// Corridor longer than max depth; the far wall is out of reach.
	grid := dungeon.ParseMap(`##############################
#............................#
##############################`)

	res := e.Cast(grid, 1.5, 1.5, 0)
	if res.Hit() {
		t.Fatalf("expected a miss, got %+v", res)
	}
	if res.Distance != 5 || res.Kind != dungeon.CellFloor {
		t.Errorf("expected floor at max depth 5, got %+v", res)
	}
}

func TestCast_DoorsAreSeeThrough(t *testing.T) {
	e := newTestEngine(t, nil)
	grid := dungeon.ParseMap(`########
#..+...#
########`)

	res := e.Cast(grid, 1.5, 1.5, 0)
	if res.Kind != dungeon.CellWall {
		t.Errorf("expected the ray to pass the door and hit the wall, got %+v", res)
	}
	if math.Abs(res.Distance-5.5) > distTolerance {
		t.Errorf("expected distance 5.5 to the far wall, got %v", res.Distance)
	}
}

func TestCast_StairsBlock(t *testing.T) {
	e := newTestEngine(t, nil)
	grid := dungeon.ParseMap(`########
#..>...#
########`)

	res := e.Cast(grid, 1.5, 1.5, 0)
	if res.Kind != dungeon.CellStairs {
		t.Errorf("expected stairs hit, got %+v", res)
	}
	if math.Abs(res.Distance-1.5) > distTolerance {
		t.Errorf("expected distance 1.5 to the stairs, got %v", res.Distance)
	}
}

// Degenerate direction components must not divide by zero: exact cardinal
// bearings produce one zero-ish direction component.
func TestCast_CardinalBearingsAreFinite(t *testing.T) {
	e := newTestEngine(t, nil)
	grid := dungeon.ParseMap(smallRoom)

	for _, bearing := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi} {
		res := e.Cast(grid, 2.5, 2.5, bearing)
		if math.IsNaN(res.Distance) || math.IsInf(res.Distance, 0) {
			t.Errorf("bearing %v: non-finite distance %v", bearing, res.Distance)
		}
		if !res.Hit() {
			t.Errorf("bearing %v: expected a hit inside a closed room, got %+v", bearing, res)
		}
	}
}

func TestCast_OffCenterOrigin(t *testing.T) {
	e := newTestEngine(t, nil)
	grid := dungeon.ParseMap(smallRoom)

	// From x=1.25 the east wall plane at x=4 is 2.75 away.
	res := e.Cast(grid, 1.25, 2.5, 0)
	if math.Abs(res.Distance-2.75) > distTolerance {
		t.Errorf("expected distance 2.75, got %v", res.Distance)
	}

	// And the west wall plane at x=1 is 0.25 behind it.
	res = e.Cast(grid, 1.25, 2.5, math.Pi)
	if math.Abs(res.Distance-0.25) > distTolerance {
		t.Errorf("expected distance 0.25, got %v", res.Distance)
	}
}
