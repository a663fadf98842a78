package render

import (
	"raydelve/internal/config"
	"raydelve/internal/dungeon"
)

// Pose is the viewer's position in grid units plus heading in radians.
// It is supplied fresh each frame and never mutated by the renderer.
type Pose struct {
	X     float64
	Y     float64
	Angle float64
}

// RayResult is the outcome of casting one ray. Within a composed frame
// Distance is perpendicular to the view plane (not raw ray length) so
// wall heights show no fisheye bulge at the edges of the field of view.
type RayResult struct {
	Distance float64
	Kind     dungeon.CellKind
	// Side is 0 when the last grid line crossed was vertical (north-south
	// wall face) and 1 when horizontal, used only for shading variation.
	Side int
}

// Hit reports whether the ray actually struck a blocking cell. A miss is
// reported as max depth with a floor kind.
func (r RayResult) Hit() bool {
	return r.Kind.Blocking()
}

// PatternKind selects how an adapter fills a wall slice.
type PatternKind int

const (
	PatternSolid PatternKind = iota
	// PatternStairs alternates two bands per row so stairs read at a
	// glance as something other than a wall.
	PatternStairs
)

// WallSlice is one projected vertical column: the rows [Top, Bottom) are
// wall, everything above is ceiling and everything below is floor. An
// empty slice (Top == Bottom) renders as floor and ceiling only.
type WallSlice struct {
	Top     int
	Bottom  int
	Shade   int
	Side    int
	Pattern PatternKind
}

// Empty reports whether the slice draws no wall rows at all.
func (s WallSlice) Empty() bool {
	return s.Top >= s.Bottom
}

// SpriteDraw is a screen-space draw command for one entity or item:
// a rectangle plus the visual key to fill it with. The emitted list is
// ordered far to near so adapters can paint in order without a depth
// buffer.
type SpriteDraw struct {
	X, Y     int
	W, H     int
	Distance float64
	Key      string
	Visual   config.Visual
}

// Mark classifies one minimap cell.
type Mark int

const (
	MarkVoid Mark = iota
	MarkWall
	MarkFloor
	MarkDoor
	MarkStairs
	MarkHostile
	MarkFriendly
	MarkItem
	MarkViewer
)

// Minimap is an orthographic window around the viewer. Cells is indexed
// [row][col]; Heading is the viewer's facing as an octant 0..7 starting
// east and advancing clockwise (with y growing downward).
type Minimap struct {
	Cells   [][]Mark
	Heading int
}

// Frame is one fully composed rendering: per-column ray results and wall
// slices, depth-ordered sprite draws, and the minimap. It is a pure value;
// composing the same inputs twice yields identical frames.
type Frame struct {
	Width   int
	Height  int
	Columns []RayResult
	Slices  []WallSlice
	Sprites []SpriteDraw
	Minimap Minimap
}
