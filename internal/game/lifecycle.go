package game

// LoadLevel builds a fresh game for the level at index. Out-of-range
// indices (negative, or past the last level) fall back to level 0, which
// also makes finishing the final level wrap back to the start of the
// catalog.
//
// The frog starts on the leaf matching the level's declared start
// position, facing right. If the level data is malformed and no leaf
// floats there, the frog is placed on the first leaf in row-major order
// instead of failing.
func (e *Engine) LoadLevel(index int) Game {
	if index < 0 || index >= e.catalog.Len() {
		index = 0
	}
	level := e.catalog.At(index)

	leaves := make([]Leaf, 0, len(level.Rows)*4)
	for y, row := range level.Rows {
		for x, hasLeaf := range row {
			if hasLeaf {
				leaves = append(leaves, Leaf{Pos: Position{X: x, Y: y}})
			}
		}
	}
	sortLeaves(leaves)

	// A level with no leaves at all is unplayable; yield an immediately
	// stuck game rather than crashing on it.
	if len(leaves) == 0 {
		return Game{LevelNumber: index, Level: level}
	}

	start := leaves[0]
	for _, leaf := range leaves {
		if leaf.Pos.Equals(level.FrogPos) {
			start = leaf
			break
		}
	}

	return Game{
		Frog:        Frog{Leaf: start, Dir: DirRight},
		Leaves:      withoutLeaf(leaves, start),
		LevelNumber: index,
		Level:       level,
	}
}

// LevelCompleted reports whether the level is finished: exactly one leaf
// remains unvisited. The last leaf is the finish, not a destination, so
// completion depends only on the remaining count.
func (e *Engine) LevelCompleted(g Game) bool {
	return len(g.Leaves) == 1
}

// Stuck reports whether no remaining leaf is reachable from the frog's
// position. Check LevelCompleted first; a one-leaf board is usually also
// stuck, and Continue resolves that overlap by priority.
func (e *Engine) Stuck(g Game) bool {
	for _, leaf := range g.Leaves {
		if _, ok := e.DirectionTo(leaf, g.Frog); ok {
			return false
		}
	}
	return true
}

// Continue applies the level-transition policy: a completed level advances
// to the next one, a stuck level restarts from its starting layout, and
// mid-level the command has no effect.
func (e *Engine) Continue(g Game) Game {
	switch {
	case e.LevelCompleted(g):
		return e.LoadLevel(g.LevelNumber + 1)
	case e.Stuck(g):
		return e.LoadLevel(g.LevelNumber)
	default:
		return g
	}
}
