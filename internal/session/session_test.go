package session

import (
	"math"
	"testing"

	"raydelve/internal/config"
	"raydelve/internal/dungeon"
)

// corridorSession builds a session on a handcrafted level instead of a
// generated one so collision outcomes are predictable.
func corridorSession(t *testing.T, mapText string, spawnX, spawnY int) *Session {
	t.Helper()
	cfg := config.Default()
	s := &Session{
		cfg:   cfg,
		gen:   dungeon.NewGenerator(cfg, 1),
		depth: 1,
	}
	s.enterLevel(&dungeon.Level{
		Grid:   dungeon.ParseMap(mapText),
		SpawnX: spawnX,
		SpawnY: spawnY,
		Depth:  1,
	})
	return s
}

func TestSession_SpawnAtCellCenter(t *testing.T) {
	s := corridorSession(t, `#####
#...#
#####`, 2, 1)
	p := s.Pose()
	if p.X != 2.5 || p.Y != 1.5 || p.Angle != 0 {
		t.Errorf("unexpected spawn pose %+v", p)
	}
}

func TestSession_TurnAccumulates(t *testing.T) {
	s := corridorSession(t, `###
#.#
###`, 1, 1)
	s.Turn(4)
	s.Turn(-1)
	want := 3 * turnStep
	if math.Abs(s.Pose().Angle-want) > 1e-12 {
		t.Errorf("angle = %v, want %v", s.Pose().Angle, want)
	}
}

func TestSession_ForwardMovesAndWallsStop(t *testing.T) {
	s := corridorSession(t, `#####
#...#
#####`, 1, 1)

	s.Forward(1)
	if got := s.Pose().X; math.Abs(got-1.75) > 1e-12 {
		t.Errorf("expected x 1.75 after one step, got %v", got)
	}

	// Walking into the east wall pins the viewer inside the corridor.
	for i := 0; i < 40; i++ {
		s.Forward(1)
	}
	p := s.Pose()
	if p.X >= 4.0 {
		t.Errorf("viewer walked into the wall, x = %v", p.X)
	}
	if !s.Grid().At(int(math.Floor(p.X)), int(math.Floor(p.Y))).Walkable() {
		t.Errorf("viewer ended on a non-walkable cell at %+v", p)
	}
}

func TestSession_BackwardBlockedByWall(t *testing.T) {
	s := corridorSession(t, `#####
#...#
#####`, 1, 1)

	s.Forward(-4) // one whole cell backward, straight into the west wall
	if got := s.Pose().X; got != 1.5 {
		t.Errorf("expected x pinned at 1.5, got %v", got)
	}
}

func TestSession_SlidesAlongWalls(t *testing.T) {
	s := corridorSession(t, `#####
#...#
#####`, 1, 1)

	// Diagonal up-right: the x component passes, the y component hits the
	// north wall, so the viewer slides east along it.
	s.pose.Angle = -math.Pi / 4
	s.Forward(4)
	p := s.Pose()
	if p.X <= 1.5 {
		t.Errorf("expected x to advance while sliding, got %v", p.X)
	}
	if p.Y != 1.5 {
		t.Errorf("expected y pinned at 1.5 by the wall, got %v", p.Y)
	}
}

func TestSession_StrafeIsPerpendicular(t *testing.T) {
	s := corridorSession(t, `#####
#...#
#...#
#...#
#####`, 2, 2)

	// Facing east, strafing right moves down-screen.
	s.Strafe(1)
	p := s.Pose()
	if p.X != 2.5 {
		t.Errorf("strafe should not change x, got %v", p.X)
	}
	if math.Abs(p.Y-2.75) > 1e-12 {
		t.Errorf("expected y 2.75, got %v", p.Y)
	}
}

func TestSession_StairsDescend(t *testing.T) {
	s := corridorSession(t, `#####
#.>.#
#####`, 1, 1)

	descended := false
	for i := 0; i < 8 && !descended; i++ {
		descended = s.Forward(1)
	}
	if !descended {
		t.Fatalf("expected stepping east onto the stairs to descend")
	}
	if s.Depth() != 2 {
		t.Errorf("depth = %d, want 2", s.Depth())
	}
	// The new floor is generated and the viewer stands at its spawn.
	p := s.Pose()
	if !s.Grid().At(int(math.Floor(p.X)), int(math.Floor(p.Y))).Walkable() {
		t.Errorf("viewer spawned on a non-walkable cell at %+v", p)
	}
}
