package dungeon

import "strings"

// CellKind identifies what occupies a grid cell.
type CellKind int

const (
	CellFloor CellKind = iota
	CellWall
	CellDoor
	CellStairs
)

// Letter returns the map-file letter for a cell kind.
func (k CellKind) Letter() byte {
	switch k {
	case CellWall:
		return '#'
	case CellDoor:
		return '+'
	case CellStairs:
		return '>'
	default:
		return '.'
	}
}

// Blocking reports whether a ray stops in this cell. Doors are walkable
// and see-through at grid resolution, so only walls and stairs block.
func (k CellKind) Blocking() bool {
	return k == CellWall || k == CellStairs
}

// Walkable reports whether an entity may occupy this cell.
func (k CellKind) Walkable() bool {
	return k != CellWall
}

// Grid is a width x height field of cells. It is treated as read-only for
// the duration of a frame; only the dungeon system mutates it between
// frames.
type Grid struct {
	Width  int
	Height int
	cells  []CellKind
}

// NewGrid returns a grid of the given size filled with walls.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]CellKind, width*height)
	for i := range cells {
		cells[i] = CellWall
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell kind at (x, y). Out-of-bounds coordinates read as
// walls so callers never need their own bounds checks.
func (g *Grid) At(x, y int) CellKind {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.cells[y*g.Width+x]
}

// Set writes a cell kind, ignoring out-of-bounds coordinates.
func (g *Grid) Set(x, y int, k CellKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = k
}

// Empty reports whether the grid has no cells at all.
func (g *Grid) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// ParseMap builds a grid from a text map. Rows may have uneven length;
// short rows are padded with walls. Recognized letters: '#' wall, '+'
// door, '>' stairs, anything else floor.
func ParseMap(text string) *Grid {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	height := len(lines)
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	g := NewGrid(width, height)
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
				g.Set(x, y, CellWall)
			case '+':
				g.Set(x, y, CellDoor)
			case '>':
				g.Set(x, y, CellStairs)
			default:
				g.Set(x, y, CellFloor)
			}
		}
	}
	return g
}

// String renders the grid as a text map, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteByte(g.At(x, y).Letter())
		}
		if y < g.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
