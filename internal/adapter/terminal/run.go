package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"raydelve/internal/config"
	"raydelve/internal/render"
	"raydelve/internal/session"
)

// Run owns the terminal event loop: render a frame, wait for a key,
// apply it to the session, repeat. The engine itself never sees input.
func Run(cfg *config.Config, sess *session.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	engine := render.NewEngine(cfg)
	defer engine.Close()

	renderer := NewRenderer(screen, cfg)
	redraw := func() {
		frame := engine.ComposeFrame(sess.Grid(), sess.Snapshot(), sess.Pose())
		renderer.Draw(frame, Statusf(sess.Depth(), sess.Pose()))
	}
	redraw()

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			if !applyKey(ev, sess) {
				return nil
			}
			redraw()
		}
	}
}

// applyKey maps a key event onto session movement. Returns false on quit.
func applyKey(ev *tcell.EventKey, sess *session.Session) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		sess.Turn(-1)
	case tcell.KeyRight:
		sess.Turn(1)
	case tcell.KeyUp:
		sess.Forward(1)
	case tcell.KeyDown:
		sess.Forward(-1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'w', 'W':
			sess.Forward(1)
		case 's', 'S':
			sess.Forward(-1)
		case 'a', 'A':
			sess.Strafe(-1)
		case 'd', 'D':
			sess.Strafe(1)
		}
	}
	return true
}
