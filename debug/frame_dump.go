// Standalone tool: composes one frame headlessly and prints it as ASCII,
// followed by the level map. Handy for eyeballing projection changes
// without attaching a terminal or a window.
//
//	go run ./debug -seed 42 -angle 0.5
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"raydelve/internal/config"
	"raydelve/internal/dungeon"
	"raydelve/internal/render"
)

var shadeChars = []byte{'@', '#', '%', '+', ' '}

func main() {
	configPath := flag.String("config", "config.yaml", "config file path")
	seed := flag.Int64("seed", 1, "dungeon RNG seed")
	depth := flag.Int("depth", 1, "floor to generate")
	angle := flag.Float64("angle", 0, "viewer heading in radians")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Warn("using default config", "err", err)
		cfg = config.Default()
	}

	lvl := dungeon.NewGenerator(cfg, *seed).Generate(*depth)
	pose := render.Pose{
		X:     float64(lvl.SpawnX) + 0.5,
		Y:     float64(lvl.SpawnY) + 0.5,
		Angle: *angle,
	}

	engine := render.NewEngine(cfg)
	defer engine.Close()
	frame := engine.ComposeFrame(lvl.Grid, lvl.Snapshot, pose)

	fmt.Println(renderASCII(frame))
	fmt.Println()
	fmt.Println(lvl.Grid.String())
	log.Info("dumped frame", "seed", *seed, "depth", *depth,
		"spawn_x", lvl.SpawnX, "spawn_y", lvl.SpawnY,
		"entities", len(lvl.Snapshot.Entities), "items", len(lvl.Snapshot.Items))
}

// renderASCII flattens a frame into characters the way the terminal
// adapter does, minus color: walls by shade, floor dots, sprites as their
// glyphs on top.
func renderASCII(frame render.Frame) string {
	rows := make([][]byte, frame.Height)
	for y := range rows {
		rows[y] = make([]byte, frame.Width)
	}

	for x := 0; x < frame.Width && x < len(frame.Slices); x++ {
		slice := frame.Slices[x]
		for y := 0; y < frame.Height; y++ {
			switch {
			case y < slice.Top:
				rows[y][x] = ' '
			case y < slice.Bottom:
				if slice.Pattern == render.PatternStairs {
					rows[y][x] = '='
				} else {
					rows[y][x] = shadeChar(slice.Shade)
				}
			default:
				rows[y][x] = '.'
			}
		}
	}

	for _, sprite := range frame.Sprites {
		glyph := byte('*')
		if sprite.Visual.Glyph != "" {
			glyph = sprite.Visual.Glyph[0]
		}
		for dy := 0; dy < sprite.H; dy++ {
			y := sprite.Y + dy
			if y < 0 || y >= frame.Height {
				continue
			}
			for dx := 0; dx < sprite.W; dx++ {
				x := sprite.X + dx
				if x >= 0 && x < frame.Width {
					rows[y][x] = glyph
				}
			}
		}
	}

	lines := make([]string, len(rows))
	for y, row := range rows {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

func shadeChar(shade int) byte {
	if shade < 0 {
		shade = 0
	}
	if shade >= len(shadeChars) {
		shade = len(shadeChars) - 1
	}
	return shadeChars[shade]
}
