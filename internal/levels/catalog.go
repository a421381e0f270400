// Package levels provides the built-in level catalog and loading of
// user-authored YAML level packs. This package depends on game but game
// does not depend on levels.
package levels

import (
	"fmt"

	"github.com/pondhop/pondhop/internal/game"
)

// Layout glyphs. Rows are ASCII art: each rune is one board cell.
const (
	glyphWater = '.'
	glyphLeaf  = 'o'
	glyphFrog  = 'F' // frog start, also a leaf
	glyphMark  = '*' // decorative marker, water underneath
)

// Catalog is an ordered, read-only collection of levels. It satisfies
// game.Catalog.
type Catalog struct {
	levels []game.Level
}

// NewCatalog wraps a level list. At least one level is required; the
// engine's index clamping assumes a non-empty catalog.
func NewCatalog(levels []game.Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("levels: catalog must contain at least one level")
	}
	return &Catalog{levels: levels}, nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// At returns the level at index i.
func (c *Catalog) At(i int) game.Level {
	return c.levels[i]
}

// Names returns all level names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.levels))
	for i, lvl := range c.levels {
		names[i] = lvl.Name
	}
	return names
}

// ParseLayout converts ASCII rows into a level definition. Short rows are
// padded with water to the widest row. The layout must contain exactly one
// frog start and at least two leaves in total, otherwise the level could
// never be played or completed.
func ParseLayout(name string, rows []string) (game.Level, error) {
	if len(rows) == 0 {
		return game.Level{}, fmt.Errorf("levels: %s: empty layout", name)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	level := game.Level{Name: name, FrogPos: game.Position{X: -1, Y: -1}}
	level.Rows = make([][]bool, len(rows))
	leafCount := 0
	frogSeen := false

	for y, row := range rows {
		level.Rows[y] = make([]bool, width)
		for x, ch := range row {
			switch ch {
			case glyphLeaf:
				level.Rows[y][x] = true
				leafCount++
			case glyphFrog:
				if frogSeen {
					return game.Level{}, fmt.Errorf("levels: %s: multiple frog starts", name)
				}
				frogSeen = true
				level.Rows[y][x] = true
				level.FrogPos = game.Position{X: x, Y: y}
				leafCount++
			case glyphMark:
				level.MarkPos = game.Position{X: x, Y: y}
			case glyphWater, ' ':
			default:
				return game.Level{}, fmt.Errorf("levels: %s: unknown glyph %q at (%d,%d)", name, ch, x, y)
			}
		}
	}

	if !frogSeen {
		return game.Level{}, fmt.Errorf("levels: %s: no frog start", name)
	}
	if leafCount < 2 {
		return game.Level{}, fmt.Errorf("levels: %s: needs at least 2 leaves, got %d", name, leafCount)
	}

	return level, nil
}
