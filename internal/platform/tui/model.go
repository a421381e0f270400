// Package tui provides the Bubble Tea integration for pondhop: the play
// loop, input mapping, menus, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pondhop/pondhop/internal/config"
	"github.com/pondhop/pondhop/internal/game"
	"github.com/pondhop/pondhop/internal/storage"
)

// TickMsg drives the water shimmer animation. Game state only changes in
// response to input; the tick is purely cosmetic.
type TickMsg time.Time

const shimmerInterval = 400 * time.Millisecond

func shimmerCmd() tea.Cmd {
	return tea.Tick(shimmerInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model for a running game. It owns the single
// mutable cell holding the current Game value; every input event folds one
// command into it through the engine.
type Model struct {
	engine *game.Engine
	g      game.Game
	store  *storage.Store
	keys   *KeyMapper
	theme  config.Theme

	width   int
	height  int
	shimmer int

	quitting bool
	saved    bool // completion recorded for the current level
}

// NewModel creates a model starting at the given level index.
func NewModel(engine *game.Engine, startLevel int, store *storage.Store, theme config.Theme, width, height int) Model {
	return Model{
		engine: engine,
		g:      engine.LoadLevel(startLevel),
		store:  store,
		keys:   NewKeyMapper(),
		theme:  theme,
		width:  width,
		height: height,
	}
}

// Init starts the shimmer ticker.
func (m Model) Init() tea.Cmd {
	return shimmerCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.shimmer++
		return m, shimmerCmd()
	}

	return m, nil
}

// handleKey maps a key press to a command and folds it into the state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ctl := m.keys.MapKey(msg)

	switch ctl {
	case ControlQuit:
		m.quitting = true
		return m, tea.Quit
	case ControlRestart:
		m.g = m.engine.LoadLevel(m.g.LevelNumber)
		m.saved = false
		return m, nil
	}

	m.apply(cmd)
	return m, nil
}

// handleMouse maps a left click on a reachable leaf to MoveTo. Clicks
// anywhere else are ignored; the adapter only ever emits MoveTo for
// leaves the engine already considers valid targets.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	pos, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	leaf, ok := m.g.FindLeaf(pos)
	if !ok {
		return m, nil
	}
	if _, ok := m.engine.DirectionTo(leaf, m.g.Frog); !ok {
		return m, nil
	}

	m.apply(game.MoveTo{Leaf: leaf})
	return m, nil
}

// apply folds one command into the game state and records a completion
// the first time the level finishes.
func (m *Model) apply(cmd game.Command) {
	next := m.engine.Apply(cmd, m.g)

	// A Continue that loaded a level (advance or restart) resets the
	// per-level bookkeeping.
	if next.Moves == 0 && (next.LevelNumber != m.g.LevelNumber || m.g.Moves != 0) {
		m.saved = false
	}
	m.g = next

	if m.engine.LevelCompleted(m.g) && !m.saved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveCompletion(m.g.LevelNumber, m.g.Level.Name, m.g.Moves)
		}
		m.saved = true
	}
}

// boardOrigin returns the screen coordinates of the board's top-left cell.
func (m Model) boardOrigin() (int, int) {
	x := (m.width - m.g.Level.Width()) / 2
	if x < 0 {
		x = 0
	}
	return x, hudHeight
}

// cellAt converts screen coordinates to a board position.
func (m Model) cellAt(screenX, screenY int) (game.Position, bool) {
	originX, originY := m.boardOrigin()
	x := screenX - originX
	y := screenY - originY
	if x < 0 || x >= m.g.Level.Width() || y < 0 || y >= m.g.Level.Height() {
		return game.Position{}, false
	}
	return game.Position{X: x, Y: y}, true
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderGame(m.engine, m.g, m.theme, m.width, m.height, m.shimmer)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(engine *game.Engine, startLevel int, store *storage.Store, theme config.Theme, width, height int) error {
	model := NewModel(engine, startLevel, store, theme, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // leaf selection by pointer
	)

	_, err := p.Run()
	return err
}
