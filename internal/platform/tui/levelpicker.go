package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pondhop/pondhop/internal/storage"
)

// LevelPickerModel lets the player choose a starting level before play.
type LevelPickerModel struct {
	names     []string
	completed map[int]bool
	cursor    int
	width     int
	height    int
	keys      *KeyMapper
	selected  int // -1 until a level is chosen
	quitting  bool
	back      bool
}

// NewLevelPickerModel creates a picker over the given level names. The
// store is optional and only used to mark completed levels.
func NewLevelPickerModel(names []string, store *storage.Store, width, height int) LevelPickerModel {
	completed := make(map[int]bool)
	if store != nil {
		if levels, err := store.CompletedLevels(); err == nil {
			for _, lvl := range levels {
				completed[lvl] = true
			}
		}
	}

	return LevelPickerModel{
		names:     names,
		completed: completed,
		width:     width,
		height:    height,
		keys:      NewKeyMapper(),
		selected:  -1,
	}
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.selected = m.cursor
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	pickerCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	pickerDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pickerHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the picker.
func (m LevelPickerModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(pickerTitleStyle.Render("  pondhop — choose a pond"))
	sb.WriteString("\n\n")

	for i, name := range m.names {
		line := fmt.Sprintf("  Level %d: %s", i+1, name)
		if m.completed[i] {
			line += pickerDoneStyle.Render("  (cleared)")
		}
		if i == m.cursor {
			line = pickerCursorStyle.Render("> " + strings.TrimPrefix(line, "  "))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(pickerHelpStyle.Render("  up/down select · enter play · esc back · q quit"))
	return sb.String()
}

// RunLevelPicker shows the picker and returns the chosen 0-based level
// index, or -1 if the user backed out or quit.
func RunLevelPicker(names []string, store *storage.Store, width, height int) (int, error) {
	p := tea.NewProgram(NewLevelPickerModel(names, store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return -1, err
	}

	model, ok := final.(LevelPickerModel)
	if !ok || model.selected < 0 {
		return -1, nil
	}
	return model.selected, nil
}
