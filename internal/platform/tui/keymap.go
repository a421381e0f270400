package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pondhop/pondhop/internal/game"
)

// Control is a platform-level request that is not part of the game's
// command set: quitting the program or forcing a level restart.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlRestart
)

// KeyMapper translates Bubble Tea key messages into game commands.
// This centralizes key bindings and makes the input adapter testable
// without a terminal.
//
// Arrows and wasd hop one cell; holding shift (or using capital WASD)
// doubles the delta into a leap. Enter and space emit Continue. Unbound
// keys map to Nop, the absence of intent.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message into a game command and a platform
// control request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (game.Command, Control) {
	switch msg.String() {
	case "ctrl+c", "q":
		return game.Nop{}, ControlQuit
	case "r":
		return game.Nop{}, ControlRestart
	}

	if cmd, ok := km.moveCommand(msg.String()); ok {
		return cmd, ControlNone
	}

	switch msg.String() {
	case "enter", " ":
		return game.Continue{}, ControlNone
	}

	return game.Nop{}, ControlNone
}

// moveCommand resolves directional keys. The leap variants double the
// unit delta; the same direction-inference rule in the engine covers both.
func (km *KeyMapper) moveCommand(key string) (game.Command, bool) {
	dirs := map[string]game.Direction{
		"up": game.DirUp, "w": game.DirUp,
		"right": game.DirRight, "d": game.DirRight,
		"down": game.DirDown, "s": game.DirDown,
		"left": game.DirLeft, "a": game.DirLeft,
	}
	leaps := map[string]game.Direction{
		"shift+up": game.DirUp, "W": game.DirUp,
		"shift+right": game.DirRight, "D": game.DirRight,
		"shift+down": game.DirDown, "S": game.DirDown,
		"shift+left": game.DirLeft, "A": game.DirLeft,
	}

	if dir, ok := dirs[key]; ok {
		return game.MoveBy{Delta: dir.UnitDelta()}, true
	}
	if dir, ok := leaps[key]; ok {
		unit := dir.UnitDelta()
		return game.MoveBy{Delta: game.Delta{DX: unit.DX * 2, DY: unit.DY * 2}}, true
	}
	return nil, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
