package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all renderer and demo-shell configuration values.
// It is loaded once at startup and treated as read-only afterwards.
type Config struct {
	Display  Display           `yaml:"display"`
	Camera   Camera            `yaml:"camera"`
	Graphics Graphics          `yaml:"graphics"`
	Minimap  Minimap           `yaml:"minimap"`
	Dungeon  Dungeon           `yaml:"dungeon"`
	Visuals  map[string]Visual `yaml:"visuals"`
}

type Display struct {
	ViewportWidth  int    `yaml:"viewport_width"`
	ViewportHeight int    `yaml:"viewport_height"`
	PixelScale     int    `yaml:"pixel_scale"`
	WindowTitle    string `yaml:"window_title"`
}

type Camera struct {
	FieldOfView      float64 `yaml:"field_of_view"`
	MaxDepth         float64 `yaml:"max_depth"`
	VisibilityCutoff float64 `yaml:"visibility_cutoff"`
}

type Graphics struct {
	// WallHeightScale multiplies viewportHeight/distance when projecting
	// wall slices. 1.0 means a wall one tile away fills the viewport.
	WallHeightScale   float64   `yaml:"wall_height_scale"`
	StairsHeightScale float64   `yaml:"stairs_height_scale"`
	FloorMargin       int       `yaml:"floor_margin"`
	BrightnessMin     float64   `yaml:"brightness_min"`
	// ShadeBuckets are upper distance bounds, ascending. A wall at distance
	// d gets the index of the first bucket with d < bound; nearer walls get
	// lower (denser/brighter) shade levels.
	ShadeBuckets      []float64 `yaml:"shade_buckets"`
	SpriteMinHeight   int       `yaml:"sprite_min_height"`
	ParallelThreshold int       `yaml:"parallel_threshold"`
}

type Minimap struct {
	WindowSize int `yaml:"window_size"`
}

type Dungeon struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	RoomsMin     int `yaml:"rooms_min"`
	RoomsMax     int `yaml:"rooms_max"`
	RoomSizeMin  int `yaml:"room_size_min"`
	RoomSizeMax  int `yaml:"room_size_max"`
	MonstersMin  int `yaml:"monsters_min"`
	MonstersMax  int `yaml:"monsters_max"`
	ItemsMin     int `yaml:"items_min"`
	ItemsMax     int `yaml:"items_max"`
}

// Visual maps an entity/item type key to how it is drawn. Replacing the
// original per-type conditional chains with this table means new categories
// only touch configuration, never rendering code.
type Visual struct {
	Glyph       string  `yaml:"glyph"`
	Color       [3]int  `yaml:"color"`
	Category    string  `yaml:"category"` // "entity" or "item"
	Hostile     bool    `yaml:"hostile"`
	HeightScale float64 `yaml:"height_scale"`
}

// LoadConfig loads configuration from a YAML file and applies defaults
// for any values left unset.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// MustLoadConfig loads the configuration and panics on error.
func MustLoadConfig(filename string) *Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	return cfg
}

// Default returns a fully populated configuration without reading a file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Display.ViewportWidth <= 0 {
		c.Display.ViewportWidth = 120
	}
	if c.Display.ViewportHeight <= 0 {
		c.Display.ViewportHeight = 36
	}
	if c.Display.PixelScale <= 0 {
		c.Display.PixelScale = 6
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "Raydelve"
	}
	if c.Camera.FieldOfView <= 0 {
		c.Camera.FieldOfView = math.Pi / 3
	}
	if c.Camera.MaxDepth <= 0 {
		c.Camera.MaxDepth = 20
	}
	if c.Camera.VisibilityCutoff <= 0 {
		c.Camera.VisibilityCutoff = 6
	}
	if c.Graphics.WallHeightScale <= 0 {
		c.Graphics.WallHeightScale = 1.0
	}
	if c.Graphics.StairsHeightScale <= 0 {
		c.Graphics.StairsHeightScale = 0.3
	}
	if c.Graphics.FloorMargin <= 0 {
		c.Graphics.FloorMargin = 2
	}
	if c.Graphics.BrightnessMin <= 0 {
		c.Graphics.BrightnessMin = 0.15
	}
	if len(c.Graphics.ShadeBuckets) == 0 {
		c.Graphics.ShadeBuckets = []float64{1.5, 3.0, 4.5, 6.0}
	}
	if c.Graphics.SpriteMinHeight <= 0 {
		c.Graphics.SpriteMinHeight = 2
	}
	if c.Graphics.ParallelThreshold <= 0 {
		c.Graphics.ParallelThreshold = 64
	}
	if c.Minimap.WindowSize <= 0 {
		c.Minimap.WindowSize = 12
	}
	if c.Dungeon.Width <= 0 {
		c.Dungeon.Width = 48
	}
	if c.Dungeon.Height <= 0 {
		c.Dungeon.Height = 32
	}
	if c.Dungeon.RoomsMin <= 0 {
		c.Dungeon.RoomsMin = 5
	}
	if c.Dungeon.RoomsMax < c.Dungeon.RoomsMin {
		c.Dungeon.RoomsMax = c.Dungeon.RoomsMin + 4
	}
	if c.Dungeon.RoomSizeMin <= 0 {
		c.Dungeon.RoomSizeMin = 4
	}
	if c.Dungeon.RoomSizeMax < c.Dungeon.RoomSizeMin {
		c.Dungeon.RoomSizeMax = c.Dungeon.RoomSizeMin + 4
	}
	if c.Dungeon.MonstersMin <= 0 {
		c.Dungeon.MonstersMin = 4
	}
	if c.Dungeon.MonstersMax < c.Dungeon.MonstersMin {
		c.Dungeon.MonstersMax = c.Dungeon.MonstersMin + 4
	}
	if c.Dungeon.ItemsMin <= 0 {
		c.Dungeon.ItemsMin = 3
	}
	if c.Dungeon.ItemsMax < c.Dungeon.ItemsMin {
		c.Dungeon.ItemsMax = c.Dungeon.ItemsMin + 3
	}
	if c.Visuals == nil {
		c.Visuals = DefaultVisuals()
	}
	for key, v := range c.Visuals {
		if v.HeightScale <= 0 {
			v.HeightScale = 1.0
			c.Visuals[key] = v
		}
	}
}

// DefaultVisuals returns the built-in type key to visual mapping.
func DefaultVisuals() map[string]Visual {
	return map[string]Visual{
		"goblin":     {Glyph: "g", Color: [3]int{255, 0, 0}, Category: "entity", Hostile: true, HeightScale: 1.0},
		"orc":        {Glyph: "o", Color: [3]int{150, 0, 0}, Category: "entity", Hostile: true, HeightScale: 1.0},
		"boss":       {Glyph: "B", Color: [3]int{255, 0, 0}, Category: "entity", Hostile: true, HeightScale: 1.5},
		"shopkeeper": {Glyph: "S", Color: [3]int{255, 0, 255}, Category: "entity", HeightScale: 1.0},
		"potion":     {Glyph: "!", Color: [3]int{0, 255, 0}, Category: "item", HeightScale: 0.5},
		"weapon":     {Glyph: ")", Color: [3]int{0, 255, 255}, Category: "item", HeightScale: 0.5},
		"shield":     {Glyph: "]", Color: [3]int{0, 200, 255}, Category: "item", HeightScale: 0.5},
		"gold":       {Glyph: "$", Color: [3]int{255, 255, 0}, Category: "item", HeightScale: 0.5},
		"spellbook":  {Glyph: "?", Color: [3]int{128, 0, 255}, Category: "item", HeightScale: 0.5},
	}
}

// GetVisual returns the visual for a type key, falling back to a plain
// white marker for unknown keys so rendering never fails on new types.
func (c *Config) GetVisual(key string) Visual {
	if v, ok := c.Visuals[key]; ok {
		return v
	}
	return Visual{Glyph: "*", Color: [3]int{255, 255, 255}, Category: "entity", HeightScale: 1.0}
}

// Helper accessors for commonly used values.

func (c *Config) GetViewportWidth() int {
	return c.Display.ViewportWidth
}

func (c *Config) GetViewportHeight() int {
	return c.Display.ViewportHeight
}

func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView
}

func (c *Config) GetMaxDepth() float64 {
	return c.Camera.MaxDepth
}

func (c *Config) GetVisibilityCutoff() float64 {
	return c.Camera.VisibilityCutoff
}
