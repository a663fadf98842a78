package session

import (
	"math"

	"raydelve/internal/config"
	"raydelve/internal/dungeon"
	"raydelve/internal/render"
)

// Session owns the mutable game state the renderer consumes: the current
// level and the viewer pose. It applies movement between frames; while a
// frame is being composed nothing here mutates, keeping the single-writer
// snapshot-read discipline the renderer expects.
type Session struct {
	cfg   *config.Config
	gen   *dungeon.Generator
	level *dungeon.Level
	pose  render.Pose
	depth int
}

// Movement tuning. Grid units per step and radians per turn.
const (
	moveStep = 0.25
	turnStep = math.Pi / 24
)

// New generates the first floor and places the viewer at its spawn cell.
func New(cfg *config.Config, seed int64) *Session {
	s := &Session{
		cfg:   cfg,
		gen:   dungeon.NewGenerator(cfg, seed),
		depth: 1,
	}
	s.enterLevel(s.gen.Generate(s.depth))
	return s
}

func (s *Session) enterLevel(lvl *dungeon.Level) {
	s.level = lvl
	s.pose = render.Pose{
		X:     float64(lvl.SpawnX) + 0.5,
		Y:     float64(lvl.SpawnY) + 0.5,
		Angle: 0,
	}
}

// Grid returns the current level's grid.
func (s *Session) Grid() *dungeon.Grid {
	return s.level.Grid
}

// Snapshot returns the current entity/item snapshot.
func (s *Session) Snapshot() dungeon.Snapshot {
	return s.level.Snapshot
}

// Pose returns the current viewer pose.
func (s *Session) Pose() render.Pose {
	return s.pose
}

// Depth returns the current floor number, starting at 1.
func (s *Session) Depth() int {
	return s.depth
}

// Turn rotates the viewer; positive is clockwise on screen.
func (s *Session) Turn(steps float64) {
	s.pose.Angle += steps * turnStep
}

// Forward moves along the heading; negative steps walk backward. Movement
// is collision-checked per axis so the viewer slides along walls. It
// returns true if the viewer descended a staircase into a new floor.
func (s *Session) Forward(steps float64) bool {
	dx := math.Cos(s.pose.Angle) * moveStep * steps
	dy := math.Sin(s.pose.Angle) * moveStep * steps
	return s.translate(dx, dy)
}

// Strafe moves perpendicular to the heading; positive is to the right.
func (s *Session) Strafe(steps float64) bool {
	right := s.pose.Angle + math.Pi/2
	dx := math.Cos(right) * moveStep * steps
	dy := math.Sin(right) * moveStep * steps
	return s.translate(dx, dy)
}

func (s *Session) translate(dx, dy float64) bool {
	g := s.level.Grid
	nx, ny := s.pose.X+dx, s.pose.Y+dy

	if g.At(int(math.Floor(nx)), int(math.Floor(s.pose.Y))).Walkable() {
		s.pose.X = nx
	}
	if g.At(int(math.Floor(s.pose.X)), int(math.Floor(ny))).Walkable() {
		s.pose.Y = ny
	}

	if g.At(int(math.Floor(s.pose.X)), int(math.Floor(s.pose.Y))) == dungeon.CellStairs {
		s.depth++
		s.enterLevel(s.gen.Generate(s.depth))
		return true
	}
	return false
}
