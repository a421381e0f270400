package game

// Phase describes where a game stands within its level.
type Phase string

const (
	PhasePlaying   Phase = "playing"
	PhaseCompleted Phase = "completed"
	PhaseStuck     Phase = "stuck"
)

// Snapshot captures the observable game state for determinism testing and
// replay verification. Two games fed the same command sequence must yield
// identical snapshots.
type Snapshot struct {
	LevelNumber int
	LevelName   string
	LeafCount   int
	FrogX       int
	FrogY       int
	Dir         Direction
	Moves       int
	Phase       Phase
}

// Snapshot summarizes the given game.
func (e *Engine) Snapshot(g Game) Snapshot {
	phase := PhasePlaying
	switch {
	case e.LevelCompleted(g):
		phase = PhaseCompleted
	case e.Stuck(g):
		phase = PhaseStuck
	}

	return Snapshot{
		LevelNumber: g.LevelNumber,
		LevelName:   g.Level.Name,
		LeafCount:   len(g.Leaves),
		FrogX:       g.Frog.Leaf.Pos.X,
		FrogY:       g.Frog.Leaf.Pos.Y,
		Dir:         g.Frog.Dir,
		Moves:       g.Moves,
		Phase:       phase,
	}
}
