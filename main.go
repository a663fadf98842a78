// raydelve renders a first-person view of a tile dungeon by raycasting.
//
// Usage:
//
//	raydelve terminal   - character-cell renderer in the current terminal
//	raydelve pixel      - pixel-canvas renderer in a window
//
// Flags:
//
//	--config <path>  - config file (default: config.yaml)
//	--seed <value>   - dungeon RNG seed (default: time-based)
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"raydelve/internal/adapter/pixel"
	"raydelve/internal/adapter/terminal"
	"raydelve/internal/config"
	"raydelve/internal/session"
)

var (
	configPath string
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "raydelve",
	Short: "First-person raycast renderer for tile dungeons",
}

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Render in the terminal with character cells",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, sess := setup()
		return terminal.Run(cfg, sess)
	},
}

var pixelCmd = &cobra.Command{
	Use:   "pixel",
	Short: "Render in a window with a pixel canvas",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, sess := setup()
		return pixel.Run(cfg, sess)
	},
}

func setup() (*config.Config, *session.Session) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Warn("using default config", "path", configPath, "err", err)
		cfg = config.Default()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", "seed", seed,
		"viewport_w", cfg.GetViewportWidth(), "viewport_h", cfg.GetViewportHeight())
	return cfg, session.New(cfg, seed)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "dungeon RNG seed (0 = time-based)")
	rootCmd.AddCommand(terminalCmd, pixelCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error("exited with error", "err", err)
		os.Exit(1)
	}
}
