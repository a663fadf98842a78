package pixel

import (
	"github.com/hajimehoshi/ebiten/v2"

	"raydelve/internal/config"
	"raydelve/internal/session"
)

// Run opens the window and drives the ebiten game loop until quit.
func Run(cfg *config.Config, sess *session.Session) error {
	game := NewGame(cfg, sess)
	defer game.Close()

	ebiten.SetWindowSize(
		cfg.GetViewportWidth()*cfg.Display.PixelScale,
		cfg.GetViewportHeight()*cfg.Display.PixelScale)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)

	err := ebiten.RunGame(game)
	if err == ebiten.Termination {
		return nil
	}
	return err
}
