package game

import (
	"reflect"
	"testing"
)

func TestLoadLevelClamping(t *testing.T) {
	e := newTestEngine(
		columnLevel(),
		testLevel("second", []string{"ooo"}, Position{0, 0}),
	)

	zero := e.Snapshot(e.LoadLevel(0))

	tests := []struct {
		name  string
		index int
	}{
		{"negative index", -1},
		{"index past last level", 2},
		{"far out of range", 99},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Snapshot(e.LoadLevel(tc.index)); got != zero {
				t.Errorf("LoadLevel(%d) = %+v, expected level 0 state %+v", tc.index, got, zero)
			}
		})
	}
}

func TestLoadLevelPartitionsLeaves(t *testing.T) {
	e := newTestEngine(columnLevel())
	g := e.LoadLevel(0)

	if !g.Frog.Leaf.Pos.Equals(Position{0, 0}) {
		t.Errorf("frog at %v, expected declared start (0,0)", g.Frog.Leaf.Pos)
	}
	if g.Frog.Dir != DirRight {
		t.Errorf("frog facing %v, expected right at level start", g.Frog.Dir)
	}
	if _, ok := g.FindLeaf(g.Frog.Leaf.Pos); ok {
		t.Error("frog's leaf must not remain in the walkable set")
	}
	if len(g.Leaves) != 2 {
		t.Errorf("len(leaves) = %d, expected 2", len(g.Leaves))
	}
}

func TestLoadLevelFrogStartFallback(t *testing.T) {
	// Declared start (5,5) is open water: malformed data degrades to the
	// first leaf in row-major order instead of failing.
	e := newTestEngine(testLevel("broken", []string{
		"....",
		".o.o",
		"o...",
	}, Position{5, 5}))

	g := e.LoadLevel(0)

	if !g.Frog.Leaf.Pos.Equals(Position{1, 1}) {
		t.Errorf("frog at %v, expected row-major first leaf (1,1)", g.Frog.Leaf.Pos)
	}
}

func TestLevelCompletedDefinition(t *testing.T) {
	e := newTestEngine(columnLevel())
	g := e.LoadLevel(0)

	for {
		if got := e.LevelCompleted(g); got != (len(g.Leaves) == 1) {
			t.Fatalf("LevelCompleted() = %v with %d leaves", got, len(g.Leaves))
		}
		if len(g.Leaves) == 1 {
			break
		}
		g = e.Apply(MoveBy{Delta: Delta{0, 1}}, g)
	}
}

func TestStuckAndRestart(t *testing.T) {
	// The only remaining leaves are diagonal or out of range from the
	// frog, so no direction can be inferred for any of them.
	e := newTestEngine(testLevel("island", []string{
		"o....",
		".....",
		".....",
		"....o",
		"o....",
	}, Position{0, 0}))

	g := e.LoadLevel(0)
	if e.LevelCompleted(g) {
		t.Fatal("fixture should not start completed")
	}
	if !e.Stuck(g) {
		t.Fatal("frog with no aligned in-range leaf should be stuck")
	}

	restarted := e.Continue(g)
	if e.Snapshot(restarted) != e.Snapshot(e.LoadLevel(0)) {
		t.Error("Continue on a stuck game should reload the same level")
	}
}

func TestContinueAdvancesOnCompletion(t *testing.T) {
	e := newTestEngine(
		columnLevel(),
		testLevel("second", []string{"ooo"}, Position{0, 0}),
	)

	g := e.LoadLevel(0)
	g = e.Apply(MoveBy{Delta: Delta{0, 1}}, g)
	if !e.LevelCompleted(g) {
		t.Fatal("expected completed level")
	}

	next := e.Apply(Continue{}, g)
	if next.LevelNumber != 1 {
		t.Errorf("LevelNumber = %d, expected 1", next.LevelNumber)
	}
	if next.Level.Name != "second" {
		t.Errorf("Level.Name = %q, expected %q", next.Level.Name, "second")
	}
}

func TestContinueWrapsPastLastLevel(t *testing.T) {
	e := newTestEngine(columnLevel())

	g := e.LoadLevel(0)
	g = e.Apply(MoveBy{Delta: Delta{0, 1}}, g)

	wrapped := e.Continue(g)
	if wrapped.LevelNumber != 0 {
		t.Errorf("LevelNumber = %d, expected wrap to 0", wrapped.LevelNumber)
	}
	if e.Snapshot(wrapped) != e.Snapshot(e.LoadLevel(0)) {
		t.Error("wrapping past the catalog should reload level 0 exactly")
	}
}

func TestContinueIdempotentMidLevel(t *testing.T) {
	e := newTestEngine(testLevel("open", []string{
		"oooo",
	}, Position{0, 0}))

	g := e.LoadLevel(0)
	if e.LevelCompleted(g) || e.Stuck(g) {
		t.Fatal("fixture must be mid-level")
	}

	once := e.Continue(g)
	twice := e.Continue(once)

	if !reflect.DeepEqual(once, g) {
		t.Error("Continue mid-level should be identity")
	}
	if !reflect.DeepEqual(twice, once) {
		t.Error("Continue should be idempotent mid-level")
	}
}
