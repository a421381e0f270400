package levels

import (
	"fmt"

	"github.com/pondhop/pondhop/internal/game"
)

// builtinLayouts is the hand-authored campaign. Each level is solvable:
// follow the leaf path, leaping (distance 2) where a gap or a sunken leaf
// must be crossed. Later levels leave more room to strand yourself.
var builtinLayouts = []struct {
	name string
	rows []string
}{
	{
		name: "First Hops",
		rows: []string{
			"........",
			"........",
			".Foo....",
			"........",
			"......*.",
			"........",
		},
	},
	{
		name: "Around the Bend",
		rows: []string{
			"........",
			".Fooo...",
			"....o...",
			".oooo...",
			"......*.",
			"........",
		},
	},
	{
		name: "Leapfrog",
		rows: []string{
			"........",
			"........",
			"........",
			"......o.",
			".Fo.o.o.",
			"........",
			"*.......",
		},
	},
	{
		name: "Zigzag",
		rows: []string{
			"..Fo....",
			"...oo...",
			"....oo..",
			".....oo.",
			".......*",
		},
	},
	{
		name: "Ring Pond",
		rows: []string{
			"........",
			"........",
			"..Foo...",
			"..o.o...",
			"..ooo..*",
			"........",
		},
	},
	{
		name: "Stepping Stones",
		rows: []string{
			"........",
			".F.o.o..",
			"........",
			".o.o.o..",
			".......*",
		},
	},
}

// Builtin returns the built-in campaign catalog. The layouts are
// compile-time data, so a parse failure is a programmer error.
func Builtin() *Catalog {
	levels := make([]game.Level, 0, len(builtinLayouts))
	for _, entry := range builtinLayouts {
		level, err := ParseLayout(entry.name, entry.rows)
		if err != nil {
			panic(fmt.Sprintf("levels: invalid built-in level: %v", err))
		}
		levels = append(levels, level)
	}

	cat, err := NewCatalog(levels)
	if err != nil {
		panic(fmt.Sprintf("levels: %v", err))
	}
	return cat
}
