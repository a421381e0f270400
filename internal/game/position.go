// Package game implements the pond-hopping puzzle state machine: board
// positions, the frog and its leaves, the command set, and the level
// lifecycle. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package game

// DefaultLeapDistance is the farthest axis distance the frog can jump.
// Distance 1 hops onto an adjacent leaf; distance 2 leaps over one cell
// without consuming whatever sits between.
const DefaultLeapDistance = 2

// Position is a 0-based board coordinate. X grows to the right, Y grows
// downward (screen coordinates).
type Position struct {
	X, Y int
}

// Delta is a positional offset applied by a move command.
type Delta struct {
	DX, DY int
}

// Zero reports whether the delta moves nowhere.
func (d Delta) Zero() bool {
	return d.DX == 0 && d.DY == 0
}

// Translate returns the position offset by d.
func (p Position) Translate(d Delta) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Equals reports exact coordinate equality.
func (p Position) Equals(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Near reports whether two scalar coordinates are within leapDistance of
// each other. Both axes of a jump are checked with this predicate, so a
// single rule covers adjacent hops and distance-2 leaps.
func Near(a, b, leapDistance int) bool {
	return abs(a-b) <= leapDistance
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction is the frog's facing.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// UnitDelta returns the one-cell offset for the direction.
func (d Direction) UnitDelta() Delta {
	switch d {
	case DirUp:
		return Delta{DY: -1}
	case DirRight:
		return Delta{DX: 1}
	case DirDown:
		return Delta{DY: 1}
	case DirLeft:
		return Delta{DX: -1}
	default:
		return Delta{}
	}
}
