package render

import (
	"math"
	"reflect"
	"testing"

	"raydelve/internal/config"
	"raydelve/internal/dungeon"
)

// The canonical scene: viewer at the center of a 5x5 room facing east, a
// goblin dead ahead against the far wall.
func canonicalScene() (*dungeon.Grid, dungeon.Snapshot, Pose) {
	grid := dungeon.ParseMap(smallRoom)
	snap := dungeon.Snapshot{Entities: []dungeon.Entity{
		{X: 4, Y: 2, Key: "goblin", Alive: true},
	}}
	return grid, snap, Pose{X: 2.5, Y: 2.5, Angle: 0}
}

func TestComposeFrame_CanonicalScene(t *testing.T) {
	e := newTestEngine(t, nil) // viewport 120x36
	grid, snap, pose := canonicalScene()

	frame := e.ComposeFrame(grid, snap, pose)
	if frame.Width != 120 || frame.Height != 36 {
		t.Fatalf("unexpected frame size %dx%d", frame.Width, frame.Height)
	}
	if len(frame.Columns) != 120 || len(frame.Slices) != 120 {
		t.Fatalf("expected 120 columns, got %d rays and %d slices",
			len(frame.Columns), len(frame.Slices))
	}

	// The center column looks straight down the heading: wall plane at 1.5.
	center := frame.Columns[60]
	if center.Kind != dungeon.CellWall {
		t.Errorf("center column should hit a wall, got %+v", center)
	}
	if math.Abs(center.Distance-1.5) > distTolerance {
		t.Errorf("center column distance = %v, want 1.5", center.Distance)
	}

	// The goblin stands at distance 2.0 behind that wall, so no sprite
	// survives occlusion.
	if len(frame.Sprites) != 0 {
		t.Errorf("expected the goblin occluded, got %d sprites", len(frame.Sprites))
	}

	if len(frame.Minimap.Cells) != e.cfg.Minimap.WindowSize {
		t.Errorf("expected minimap window, got %d rows", len(frame.Minimap.Cells))
	}
}

func TestComposeFrame_Deterministic(t *testing.T) {
	e := newTestEngine(t, nil)
	lvl := dungeon.NewGenerator(config.Default(), 42).Generate(1)
	pose := Pose{X: float64(lvl.SpawnX) + 0.5, Y: float64(lvl.SpawnY) + 0.5, Angle: 0.7}

	a := e.ComposeFrame(lvl.Grid, lvl.Snapshot, pose)
	b := e.ComposeFrame(lvl.Grid, lvl.Snapshot, pose)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("composing the same inputs twice produced different frames")
	}
}

func TestComposeFrame_ParallelMatchesSerial(t *testing.T) {
	serial := newTestEngine(t, func(cfg *config.Config) {
		cfg.Graphics.ParallelThreshold = 1 << 30
	})
	parallel := newTestEngine(t, func(cfg *config.Config) {
		cfg.Graphics.ParallelThreshold = 1
	})
	lvl := dungeon.NewGenerator(config.Default(), 99).Generate(1)
	pose := Pose{X: float64(lvl.SpawnX) + 0.5, Y: float64(lvl.SpawnY) + 0.5, Angle: 1.3}

	a := serial.ComposeFrame(lvl.Grid, lvl.Snapshot, pose)
	b := parallel.ComposeFrame(lvl.Grid, lvl.Snapshot, pose)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("parallel and serial casting disagree")
	}
}

// A flat wall face square to the viewer must project at constant distance
// across every column that reaches it; any bow means raw ray lengths
// leaked through without the view-plane correction.
func TestComposeFrame_FlatWallStaysFlat(t *testing.T) {
	e := newTestEngine(t, nil)
	grid := dungeon.ParseMap(`#########
#.......#
#.......#
#.......#
#.......#
#.......#
#.......#
#.......#
#.......#
#.......#
#########`)
	pose := Pose{X: 1.5, Y: 5.5, Angle: 0} // east wall plane at x=8, 6.5 away

	frame := e.ComposeFrame(grid, dungeon.Snapshot{}, pose)
	for i, col := range frame.Columns {
		if col.Kind != dungeon.CellWall || col.Side != 0 {
			t.Fatalf("column %d: expected the east wall face, got %+v", i, col)
		}
		if math.Abs(col.Distance-6.5) > 1e-6 {
			t.Errorf("column %d: distance %v, want 6.5", i, col.Distance)
		}
	}
}

func TestComposeFrame_DegenerateInputs(t *testing.T) {
	e := newTestEngine(t, nil)

	testCases := []struct {
		name string
		grid *dungeon.Grid
	}{
		{"nil grid", nil},
		{"zero grid", dungeon.NewGrid(0, 0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			frame := e.ComposeFrame(tc.grid, dungeon.Snapshot{}, Pose{Angle: math.Pi})
			if frame.Width != 120 || frame.Height != 36 {
				t.Errorf("unexpected frame size %dx%d", frame.Width, frame.Height)
			}
			if len(frame.Columns) != 0 || len(frame.Sprites) != 0 {
				t.Errorf("expected an empty frame, got %d columns, %d sprites",
					len(frame.Columns), len(frame.Sprites))
			}
			if frame.Minimap.Heading != 4 {
				t.Errorf("heading should still be carried, got %d", frame.Minimap.Heading)
			}
		})
	}
}

func TestComposeFrame_SpriteVisibleInOpenRoom(t *testing.T) {
	e := newTestEngine(t, nil)
	grid := dungeon.ParseMap(`########
#......#
#......#
#......#
########`)
	pose := Pose{X: 1.5, Y: 2.5, Angle: 0}
	snap := dungeon.Snapshot{Entities: []dungeon.Entity{
		{X: 4, Y: 2, Key: "orc", Alive: true}, // distance 3.0, wall at 5.5
	}}

	frame := e.ComposeFrame(grid, snap, pose)
	if len(frame.Sprites) != 1 {
		t.Fatalf("expected 1 visible sprite, got %d", len(frame.Sprites))
	}
	if frame.Sprites[0].Key != "orc" {
		t.Errorf("unexpected sprite %+v", frame.Sprites[0])
	}
}
