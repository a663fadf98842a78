// Package terminal draws composed frames into a character-cell screen
// using tcell. It is a thin adapter: all geometry lives in the render
// engine, this package only maps slices, sprites, and minimap marks to
// glyphs and styles.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"raydelve/internal/config"
	"raydelve/internal/render"
)

// Wall glyph tiers by shade level. Within a tier the glyph varies with
// (x+y)%3 so a flat wall face still shows some texture.
var wallGlyphTiers = [][]rune{
	{'█', '█', '█'},
	{'█', '▉', '▊'},
	{'▋', '▌', '▍'},
	{'▎', '▏', '|'},
}

const (
	floorGlyph   = '·'
	ceilingGlyph = ' '
	stairsGlyphA = '▼'
	stairsGlyphB = '═'
)

// headingGlyphs indexes by minimap heading octant, starting east and
// advancing clockwise with y down.
var headingGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

var minimapGlyphs = map[render.Mark]rune{
	render.MarkVoid:     ' ',
	render.MarkWall:     '█',
	render.MarkFloor:    '·',
	render.MarkDoor:     '+',
	render.MarkStairs:   '▼',
	render.MarkHostile:  'E',
	render.MarkFriendly: 'S',
	render.MarkItem:     '$',
}

// Renderer draws frames onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	cfg    *config.Config
}

func NewRenderer(screen tcell.Screen, cfg *config.Config) *Renderer {
	return &Renderer{screen: screen, cfg: cfg}
}

// Draw renders a complete frame plus a caller-supplied status line.
func (r *Renderer) Draw(frame render.Frame, status string) {
	r.screen.Clear()

	for x := 0; x < frame.Width && x < len(frame.Slices); x++ {
		r.drawColumn(x, frame.Slices[x], frame.Height)
	}
	for _, sprite := range frame.Sprites {
		r.drawSprite(sprite, frame.Height)
	}
	r.drawMinimap(frame)
	r.drawStatus(status, frame.Height)

	r.screen.Show()
}

func (r *Renderer) drawColumn(x int, slice render.WallSlice, height int) {
	floorStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for y := 0; y < height; y++ {
		switch {
		case y < slice.Top:
			r.screen.SetContent(x, y, ceilingGlyph, nil, tcell.StyleDefault)
		case y < slice.Bottom:
			if slice.Pattern == render.PatternStairs {
				r.drawStairsCell(x, y, slice)
			} else {
				r.screen.SetContent(x, y, wallGlyph(slice.Shade, x, y), nil, wallStyle(slice))
			}
		default:
			r.screen.SetContent(x, y, floorGlyph, nil, floorStyle)
		}
	}
}

func (r *Renderer) drawStairsCell(x, y int, slice render.WallSlice) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	glyph := stairsGlyphA
	if (y-slice.Top)%2 == 1 {
		glyph = stairsGlyphB
	}
	r.screen.SetContent(x, y, glyph, nil, style)
}

func (r *Renderer) drawSprite(sprite render.SpriteDraw, height int) {
	glyph := '*'
	if sprite.Visual.Glyph != "" {
		glyph = []rune(sprite.Visual.Glyph)[0]
	}
	c := sprite.Visual.Color
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))).
		Bold(true)

	for dy := 0; dy < sprite.H; dy++ {
		y := sprite.Y + dy
		if y < 0 || y >= height {
			continue
		}
		for dx := 0; dx < sprite.W; dx++ {
			x := sprite.X + dx
			if x < 0 {
				continue
			}
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawMinimap(frame render.Frame) {
	cells := frame.Minimap.Cells
	n := len(cells)
	if n == 0 {
		return
	}
	startX := frame.Width - n - 2
	startY := 1
	if startX < 0 {
		return
	}

	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i := 0; i < n+2; i++ {
		r.screen.SetContent(startX-1+i, startY-1, '-', nil, borderStyle)
		r.screen.SetContent(startX-1+i, startY+n, '-', nil, borderStyle)
	}
	for i := 0; i < n; i++ {
		r.screen.SetContent(startX-1, startY+i, '|', nil, borderStyle)
		r.screen.SetContent(startX+n, startY+i, '|', nil, borderStyle)
	}

	for row := 0; row < n; row++ {
		for col := 0; col < len(cells[row]); col++ {
			mark := cells[row][col]
			glyph := minimapGlyphs[mark]
			style := minimapStyle(mark)
			if mark == render.MarkViewer {
				glyph = headingGlyphs[frame.Minimap.Heading%len(headingGlyphs)]
				style = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
			}
			r.screen.SetContent(startX+col, startY+row, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawStatus(status string, height int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	col := 1
	for _, ch := range status {
		r.screen.SetContent(col, height-1, ch, nil, style)
		col++
	}
}

// wallGlyph picks the glyph for a wall cell from the tier for its shade
// level, varying by position within the tier.
func wallGlyph(shade, x, y int) rune {
	if shade < 0 {
		shade = 0
	}
	if shade >= len(wallGlyphTiers) {
		return ' '
	}
	tier := wallGlyphTiers[shade]
	return tier[(x+y)%len(tier)]
}

func wallStyle(slice render.WallSlice) tcell.Style {
	var style tcell.Style
	switch slice.Shade {
	case 0:
		style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case 1:
		style = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	case 2:
		style = tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		style = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	if slice.Side == 1 {
		style = style.Dim(true)
	}
	return style
}

func minimapStyle(mark render.Mark) tcell.Style {
	switch mark {
	case render.MarkWall:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	case render.MarkStairs:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case render.MarkHostile:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case render.MarkFriendly:
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	case render.MarkItem:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

// Statusf formats the standard demo status line.
func Statusf(depth int, pose render.Pose) string {
	return fmt.Sprintf("Floor %d | (%.1f, %.1f) | arrows turn, WASD move, q quit", depth, pose.X, pose.Y)
}
