// Package config provides YAML-based configuration for pondhop: jump
// rules and the board theme.
package config

// Config is the top-level configuration.
type Config struct {
	Rules Rules `yaml:"rules"`
	Theme Theme `yaml:"theme"`
}

// Rules tunes the game engine.
type Rules struct {
	// LeapDistance is the farthest axis distance the frog can jump.
	// The classic game uses 2: adjacent hops plus one-cell leaps.
	LeapDistance int `yaml:"leap_distance"`
}

// Theme controls how the board is drawn. Colors are ANSI 256 color codes
// as strings ("2", "114", ...).
type Theme struct {
	WaterGlyph string `yaml:"water_glyph"`
	LeafGlyph  string `yaml:"leaf_glyph"`
	MarkGlyph  string `yaml:"mark_glyph"`

	// FrogGlyphs indexes by facing: up, right, down, left.
	FrogGlyphs [4]string `yaml:"frog_glyphs"`

	WaterColor     string `yaml:"water_color"`
	LeafColor      string `yaml:"leaf_color"`
	ReachableColor string `yaml:"reachable_color"`
	FrogColor      string `yaml:"frog_color"`
	MarkColor      string `yaml:"mark_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rules: Rules{
			LeapDistance: 2,
		},
		Theme: Theme{
			WaterGlyph:     "~",
			LeafGlyph:      "o",
			MarkGlyph:      "*",
			FrogGlyphs:     [4]string{"^", ">", "v", "<"},
			WaterColor:     "24",
			LeafColor:      "28",
			ReachableColor: "118",
			FrogColor:      "220",
			MarkColor:      "245",
		},
	}
}

// normalize fills zero values from the defaults so partial config files
// stay usable.
func (c Config) normalize() Config {
	def := Default()

	if c.Rules.LeapDistance <= 0 {
		c.Rules.LeapDistance = def.Rules.LeapDistance
	}
	if c.Theme.WaterGlyph == "" {
		c.Theme.WaterGlyph = def.Theme.WaterGlyph
	}
	if c.Theme.LeafGlyph == "" {
		c.Theme.LeafGlyph = def.Theme.LeafGlyph
	}
	if c.Theme.MarkGlyph == "" {
		c.Theme.MarkGlyph = def.Theme.MarkGlyph
	}
	for i := range c.Theme.FrogGlyphs {
		if c.Theme.FrogGlyphs[i] == "" {
			c.Theme.FrogGlyphs[i] = def.Theme.FrogGlyphs[i]
		}
	}
	if c.Theme.WaterColor == "" {
		c.Theme.WaterColor = def.Theme.WaterColor
	}
	if c.Theme.LeafColor == "" {
		c.Theme.LeafColor = def.Theme.LeafColor
	}
	if c.Theme.ReachableColor == "" {
		c.Theme.ReachableColor = def.Theme.ReachableColor
	}
	if c.Theme.FrogColor == "" {
		c.Theme.FrogColor = def.Theme.FrogColor
	}
	if c.Theme.MarkColor == "" {
		c.Theme.MarkColor = def.Theme.MarkColor
	}

	return c
}
