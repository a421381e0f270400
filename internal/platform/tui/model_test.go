package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pondhop/pondhop/internal/config"
	"github.com/pondhop/pondhop/internal/game"
	"github.com/pondhop/pondhop/internal/levels"
)

func newTestModel(t *testing.T, rows []string) Model {
	t.Helper()
	level, err := levels.ParseLayout("fixture", rows)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}
	cat, err := levels.NewCatalog([]game.Level{level})
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	engine := game.NewEngine(cat, game.DefaultLeapDistance)
	return NewModel(engine, 0, nil, config.Default().Theme, 40, 20)
}

func TestModelFoldsKeyCommands(t *testing.T) {
	m := newTestModel(t, []string{"Fooo"})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)

	if !m.g.Frog.Leaf.Pos.Equals(game.Position{X: 1, Y: 0}) {
		t.Errorf("frog at %v, expected (1,0) after right arrow", m.g.Frog.Leaf.Pos)
	}
	if m.g.Moves != 1 {
		t.Errorf("Moves = %d, expected 1", m.g.Moves)
	}
}

func TestModelRestartKey(t *testing.T) {
	m := newTestModel(t, []string{"Fooo"})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)

	if !m.g.Frog.Leaf.Pos.Equals(game.Position{X: 0, Y: 0}) {
		t.Errorf("frog at %v, expected restart to (0,0)", m.g.Frog.Leaf.Pos)
	}
	if m.g.Moves != 0 {
		t.Errorf("Moves = %d, expected 0 after restart", m.g.Moves)
	}
}

func TestModelMouseSelectsReachableLeaf(t *testing.T) {
	m := newTestModel(t, []string{"Fooo"})

	// Board is 4 wide on a 40-column screen: origin x = 18, y = hudHeight.
	originX, originY := m.boardOrigin()
	click := tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      originX + 2, // leaf at (2,0), a leap away
		Y:      originY,
	}

	next, _ := m.Update(click)
	m = next.(Model)

	if !m.g.Frog.Leaf.Pos.Equals(game.Position{X: 2, Y: 0}) {
		t.Errorf("frog at %v, expected click to leap to (2,0)", m.g.Frog.Leaf.Pos)
	}
}

func TestModelMouseIgnoresWater(t *testing.T) {
	m := newTestModel(t, []string{"Fo.o"})

	originX, originY := m.boardOrigin()
	click := tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      originX + 2, // water cell
		Y:      originY,
	}

	next, _ := m.Update(click)
	m = next.(Model)

	if m.g.Moves != 0 {
		t.Errorf("Moves = %d, expected click on water to be ignored", m.g.Moves)
	}
}

func TestModelViewRenders(t *testing.T) {
	m := newTestModel(t, []string{
		"Fo.o",
		"...o",
	})

	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty output")
	}
}
