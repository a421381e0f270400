package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pondhop/pondhop/internal/storage"
)

const maxProgressRows = 100

// ProgressKeyMap defines the key bindings for the progress board.
type ProgressKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("S-tab", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel is the Bubble Tea model for the completion history board.
// It shows per-level completion records, fewest moves first.
type ProgressModel struct {
	levelNames  []string
	levelCursor int
	store       *storage.Store
	table       table.Model
	help        help.Model
	keys        ProgressKeyMap
	width       int
	height      int
	quitting    bool
}

// NewProgressModel creates a progress board over the given catalog names.
func NewProgressModel(levelNames []string, store *storage.Store, width, height int) ProgressModel {
	h := help.New()
	h.ShowAll = false

	m := ProgressModel{
		levelNames: levelNames,
		store:      store,
		keys:       DefaultProgressKeyMap(),
		help:       h,
		width:      width,
		height:     height,
	}

	m.table = m.createTable()
	m.loadRows()
	return m
}

func (m *ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Moves", Width: 8},
		{Title: "Date", Width: 18},
	}

	tableHeight := m.height - 8
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("114"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("220"))
	t.SetStyles(styles)

	return t
}

// loadRows refreshes the table with the records of the selected level.
func (m *ProgressModel) loadRows() {
	var rows []table.Row
	if m.store != nil {
		entries, err := m.store.LevelCompletions(m.levelCursor, maxProgressRows)
		if err == nil {
			for i, e := range entries {
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i+1),
					fmt.Sprintf("%d", e.Moves),
					e.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextLevel):
			m.levelCursor = (m.levelCursor + 1) % len(m.levelNames)
			m.loadRows()
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel):
			m.levelCursor = (m.levelCursor - 1 + len(m.levelNames)) % len(m.levelNames)
			m.loadRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(msg.Height-8, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m ProgressModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	title := fmt.Sprintf("  Progress — Level %d: %s", m.levelCursor+1, m.levelNames[m.levelCursor])
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	sb.WriteString("\n\n")

	if len(m.table.Rows()) == 0 {
		sb.WriteString("  No completions recorded yet.\n")
	} else {
		sb.WriteString(m.table.View())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// RunProgressBoard shows the interactive completion history.
func RunProgressBoard(levelNames []string, store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewProgressModel(levelNames, store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
