package game

// Catalog is read-only access to the ordered level definitions. The engine
// never inspects where levels come from; built-in tables and YAML packs
// both satisfy this.
type Catalog interface {
	// Len returns the number of levels, always at least 1.
	Len() int
	// At returns the level at index i, which must be in [0, Len()).
	At(i int) Level
}

// Engine applies commands to game values. Apply is total: commands that
// cannot be honored return the input unchanged rather than signaling an
// error. The engine holds no mutable state of its own, so a single value
// can serve any number of games.
type Engine struct {
	catalog Catalog
	leap    int
}

// NewEngine creates an engine over the given catalog. A non-positive
// leapDistance falls back to DefaultLeapDistance.
func NewEngine(catalog Catalog, leapDistance int) *Engine {
	if leapDistance <= 0 {
		leapDistance = DefaultLeapDistance
	}
	return &Engine{catalog: catalog, leap: leapDistance}
}

// LeapDistance returns the configured maximum jump distance.
func (e *Engine) LeapDistance() int {
	return e.leap
}

// Apply folds one command into the game state and returns the next state.
func (e *Engine) Apply(cmd Command, g Game) Game {
	switch c := cmd.(type) {
	case MoveBy:
		return e.moveBy(c.Delta, g)
	case MoveTo:
		return e.moveTo(c.Leaf, g)
	case Continue:
		return e.Continue(g)
	default:
		// Nop, nil, or anything unknown.
		return g
	}
}

// moveBy resolves a relative jump to a concrete leaf. A zero delta or a
// delta landing on open water is absorbed as a no-op.
func (e *Engine) moveBy(d Delta, g Game) Game {
	if d.Zero() {
		return g
	}
	target := g.Frog.Leaf.Pos.Translate(d)
	leaf, ok := g.FindLeaf(target)
	if !ok {
		return g
	}
	return e.moveTo(leaf, g)
}

// moveTo jumps the frog onto the given leaf. If no direction can be
// inferred (diagonal, out of leap range, or the frog's own cell) the
// command is absorbed as a no-op. The frog's old leaf sinks; the
// destination leaves the walkable set because the frog now owns it.
func (e *Engine) moveTo(leaf Leaf, g Game) Game {
	dir, ok := e.DirectionTo(leaf, g.Frog)
	if !ok {
		return g
	}
	return Game{
		Frog:        Frog{Leaf: leaf, Dir: dir},
		Leaves:      withoutLeaf(g.Leaves, leaf),
		LevelNumber: g.LevelNumber,
		Level:       g.Level,
		Moves:       g.Moves + 1,
	}
}

// DirectionTo infers the cardinal direction from the frog to the leaf.
// Exactly one of four mutually exclusive cases can hold: the cells share
// an axis and the distance along the other axis is within leap range.
// Diagonal targets, out-of-range targets, and the frog's own position all
// yield false.
func (e *Engine) DirectionTo(leaf Leaf, frog Frog) (Direction, bool) {
	lp, fp := leaf.Pos, frog.Leaf.Pos
	switch {
	case lp.X == fp.X && fp.Y > lp.Y && Near(lp.Y, fp.Y, e.leap):
		return DirUp, true
	case lp.Y == fp.Y && fp.X < lp.X && Near(lp.X, fp.X, e.leap):
		return DirRight, true
	case lp.X == fp.X && fp.Y < lp.Y && Near(lp.Y, fp.Y, e.leap):
		return DirDown, true
	case lp.Y == fp.Y && fp.X > lp.X && Near(lp.X, fp.X, e.leap):
		return DirLeft, true
	default:
		return DirUp, false
	}
}

// Reachable returns the leaves the frog could jump to right now, in
// row-major order. Used by the pointer adapter to decide which leaves are
// valid MoveTo targets and by the renderer to highlight them.
func (e *Engine) Reachable(g Game) []Leaf {
	var out []Leaf
	for _, leaf := range g.Leaves {
		if _, ok := e.DirectionTo(leaf, g.Frog); ok {
			out = append(out, leaf)
		}
	}
	return out
}
