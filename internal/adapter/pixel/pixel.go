// Package pixel draws composed frames onto an ebiten canvas. Like the
// terminal adapter it contains no geometry: it scales frame cells to
// pixels and maps shade levels and visual keys to colors.
package pixel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"raydelve/internal/config"
	"raydelve/internal/render"
	"raydelve/internal/session"
)

var (
	ceilingColor = color.RGBA{20, 20, 20, 255}
	floorColor   = color.RGBA{30, 30, 30, 255}
	wallColor    = color.RGBA{100, 100, 100, 255}
	stairsColor  = color.RGBA{200, 170, 0, 255}
	viewerColor  = color.RGBA{0, 255, 255, 255}
)

var minimapColors = map[render.Mark]color.RGBA{
	render.MarkVoid:     {0, 0, 0, 255},
	render.MarkWall:     {100, 100, 100, 255},
	render.MarkFloor:    {30, 30, 30, 255},
	render.MarkDoor:     {120, 80, 40, 255},
	render.MarkStairs:   {0, 255, 0, 255},
	render.MarkHostile:  {255, 0, 0, 255},
	render.MarkFriendly: {255, 0, 255, 255},
	render.MarkItem:     {255, 255, 0, 255},
	render.MarkViewer:   {0, 255, 255, 255},
}

// Game is the ebiten shell around the render engine. Each Draw composes
// a fresh frame from the session's current state.
type Game struct {
	cfg      *config.Config
	engine   *render.Engine
	sess     *session.Session
	whiteImg *ebiten.Image
}

func NewGame(cfg *config.Config, sess *session.Session) *Game {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)
	return &Game{
		cfg:      cfg,
		engine:   render.NewEngine(cfg),
		sess:     sess,
		whiteImg: whiteImg,
	}
}

// Close releases the engine's worker pool.
func (g *Game) Close() {
	g.engine.Close()
}

// Update applies held movement keys to the session.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.sess.Turn(-0.5)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.sess.Turn(0.5)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.sess.Forward(0.5)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.sess.Forward(-0.5)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.sess.Strafe(-0.5)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.sess.Strafe(0.5)
	}
	return nil
}

// Draw composes and paints one frame: ceiling and floor halves, wall
// columns, sprites (already far-to-near), minimap, status text.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.engine.ComposeFrame(g.sess.Grid(), g.sess.Snapshot(), g.sess.Pose())
	scale := float64(g.cfg.Display.PixelScale)
	width := float64(frame.Width) * scale
	height := float64(frame.Height) * scale

	g.fillRect(screen, 0, 0, width, height/2, ceilingColor, 1)
	g.fillRect(screen, 0, height/2, width, height/2, floorColor, 1)

	for x := 0; x < frame.Width && x < len(frame.Slices); x++ {
		g.drawColumn(screen, x, frame.Slices[x], frame.Columns[x], scale)
	}
	for _, sprite := range frame.Sprites {
		g.drawSprite(screen, sprite, scale)
	}
	g.drawMinimap(screen, frame, width)

	status := fmt.Sprintf("Floor %d  (%.1f, %.1f)", g.sess.Depth(), g.sess.Pose().X, g.sess.Pose().Y)
	ebitext.Draw(screen, status, basicfont.Face7x13, 8, int(height)-8, color.White)
}

func (g *Game) drawColumn(screen *ebiten.Image, x int, slice render.WallSlice, res render.RayResult, scale float64) {
	if slice.Empty() {
		return
	}
	brightness := g.brightness(res.Distance)
	base := wallColor
	if slice.Pattern == render.PatternStairs {
		base = stairsColor
	}

	px := float64(x) * scale
	top := float64(slice.Top) * scale
	rows := slice.Bottom - slice.Top

	if slice.Pattern == render.PatternStairs {
		// Alternate two bands per frame row so stairs read distinctly.
		for row := 0; row < rows; row++ {
			b := brightness
			if row%2 == 1 {
				b *= 0.6
			}
			g.fillRect(screen, px, top+float64(row)*scale, scale, scale, base, b)
		}
		return
	}

	// East-west faces draw darker, the classic raycasting depth cue.
	if slice.Side == 1 {
		brightness *= 0.7
	}
	g.fillRect(screen, px, top, scale, float64(rows)*scale, base, brightness)
}

func (g *Game) drawSprite(screen *ebiten.Image, sprite render.SpriteDraw, scale float64) {
	c := sprite.Visual.Color
	clr := color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
	g.fillRect(screen,
		float64(sprite.X)*scale, float64(sprite.Y)*scale,
		float64(sprite.W)*scale, float64(sprite.H)*scale,
		clr, g.brightness(sprite.Distance))

	// Label large sprites with their glyph, centered.
	if sprite.H >= 4 && sprite.Visual.Glyph != "" {
		cx := (float64(sprite.X) + float64(sprite.W)/2) * scale
		cy := (float64(sprite.Y) + float64(sprite.H)/2) * scale
		ebitext.Draw(screen, sprite.Visual.Glyph, basicfont.Face7x13, int(cx)-3, int(cy)+4, color.Black)
	}
}

func (g *Game) drawMinimap(screen *ebiten.Image, frame render.Frame, screenW float64) {
	cells := frame.Minimap.Cells
	n := len(cells)
	if n == 0 {
		return
	}
	const cell = 5.0
	startX := screenW - float64(n)*cell - 10
	startY := 10.0

	g.fillRect(screen, startX-1, startY-1, float64(n)*cell+2, float64(n)*cell+2, color.RGBA{100, 100, 100, 255}, 1)
	for row := 0; row < n; row++ {
		for col := 0; col < len(cells[row]); col++ {
			clr := minimapColors[cells[row][col]]
			g.fillRect(screen, startX+float64(col)*cell, startY+float64(row)*cell, cell-1, cell-1, clr, 1)
		}
	}

	// Heading tick: one extra dot offset from the viewer cell along the
	// facing octant.
	dirX, dirY := octantOffset(frame.Minimap.Heading)
	vx := startX + float64(n/2)*cell + float64(dirX)*cell
	vy := startY + float64(n/2)*cell + float64(dirY)*cell
	g.fillRect(screen, vx+1, vy+1, cell-3, cell-3, viewerColor, 1)
}

func octantOffset(octant int) (int, int) {
	offsets := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	return offsets[octant%8][0], offsets[octant%8][1]
}

// brightness fades with distance toward the configured floor, matching
// the wall shading model.
func (g *Game) brightness(dist float64) float64 {
	b := 1.0 - dist/g.cfg.GetMaxDepth()
	if b < g.cfg.Graphics.BrightnessMin {
		b = g.cfg.Graphics.BrightnessMin
	}
	return b
}

// fillRect draws a scaled, tinted unit rectangle, the same 1x1 white
// image technique used for all untextured regions.
func (g *Game) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.RGBA, brightness float64) {
	if w <= 0 || h <= 0 {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(w, h)
	opts.GeoM.Translate(x, y)
	opts.ColorScale.Scale(
		float32(float64(clr.R)/255*brightness),
		float32(float64(clr.G)/255*brightness),
		float32(float64(clr.B)/255*brightness),
		1.0)
	screen.DrawImage(g.whiteImg, opts)
}

// Layout reports the fixed canvas size: viewport cells times pixel scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.GetViewportWidth() * g.cfg.Display.PixelScale,
		g.cfg.GetViewportHeight() * g.cfg.Display.PixelScale
}
