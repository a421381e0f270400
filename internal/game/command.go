package game

// Command is a discrete player intent produced by an input adapter and
// applied by the engine. The set is closed: Nop, MoveBy, MoveTo, Continue.
type Command interface {
	isCommand()
}

// Nop is the identity command. Input adapters emit it for events that map
// to nothing (key releases, unbound keys).
type Nop struct{}

// MoveBy asks the frog to jump by a relative offset. Directional keys
// produce unit deltas; the leap modifier doubles the magnitude.
type MoveBy struct {
	Delta Delta
}

// MoveTo asks the frog to jump onto a specific leaf. Adapters only emit
// this for leaves currently in the leaf set (pointer selection of a
// highlighted leaf).
type MoveTo struct {
	Leaf Leaf
}

// Continue advances past a completed level or restarts a stuck one.
// Mid-level it has no effect.
type Continue struct{}

func (Nop) isCommand()      {}
func (MoveBy) isCommand()   {}
func (MoveTo) isCommand()   {}
func (Continue) isCommand() {}
