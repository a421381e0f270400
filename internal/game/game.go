package game

import "sort"

// Leaf is a lily pad occupying exactly one board cell. A leaf sinks (is
// removed from play) the moment the frog jumps off it.
type Leaf struct {
	Pos Position
}

// Frog is the player token. It owns the leaf it currently sits on; that
// leaf is never a member of Game.Leaves.
type Frog struct {
	Leaf Leaf
	Dir  Direction
}

// Level is one catalog entry: the initial leaf layout, where the frog
// starts, and a decorative marker cell used only by rendering.
type Level struct {
	Name    string
	Rows    [][]bool // Rows[y][x] is true where a leaf starts
	FrogPos Position
	MarkPos Position
}

// Width returns the widest row of the level layout.
func (l Level) Width() int {
	w := 0
	for _, row := range l.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the number of rows in the level layout.
func (l Level) Height() int {
	return len(l.Rows)
}

// Game is an immutable snapshot of a running level. Commands never mutate
// a Game in place; applying one yields a fresh value.
//
// Leaves holds every still-floating leaf the frog is not sitting on, kept
// sorted row-major (Y, then X) with unique positions. Leaves and the
// frog's own leaf together partition all leaves left in the level.
type Game struct {
	Frog        Frog
	Leaves      []Leaf
	LevelNumber int
	Level       Level
	Moves       int
}

// FindLeaf returns the leaf at the exact position, if one floats there.
// Positions are unique among leaves, so at most one can match.
func (g Game) FindLeaf(pos Position) (Leaf, bool) {
	for _, leaf := range g.Leaves {
		if leaf.Pos.Equals(pos) {
			return leaf, true
		}
	}
	return Leaf{}, false
}

// sortLeaves orders leaves row-major: by Y, then X. Keeping the slice
// sorted makes "first leaf" deterministic wherever it matters.
func sortLeaves(leaves []Leaf) {
	sort.Slice(leaves, func(i, j int) bool {
		if leaves[i].Pos.Y != leaves[j].Pos.Y {
			return leaves[i].Pos.Y < leaves[j].Pos.Y
		}
		return leaves[i].Pos.X < leaves[j].Pos.X
	})
}

// withoutLeaf returns a copy of leaves with the given leaf removed.
// The input slice is left untouched.
func withoutLeaf(leaves []Leaf, leaf Leaf) []Leaf {
	out := make([]Leaf, 0, len(leaves))
	for _, l := range leaves {
		if l.Pos.Equals(leaf.Pos) {
			continue
		}
		out = append(out, l)
	}
	return out
}
