package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KhushveerS/shift2048/internal/core"
	"github.com/KhushveerS/shift2048/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "up", "w", "k": // vim-style k for up
		return core.ActionUp
	case "down", "s", "j": // vim-style j for down
		return core.ActionDown
	case "left", "a", "h":
		return core.ActionLeft
	case "right", "d", "l":
		return core.ActionRight
	case "enter", " ":
		return core.ActionConfirm
	case "r":
		return core.ActionRestart
	}
	return core.ActionNone
}

// Direction maps a directional action to an engine direction.
// ok is false for non-directional actions.
func Direction(a core.Action) (engine.Direction, bool) {
	switch a {
	case core.ActionUp:
		return engine.DirUp, true
	case core.ActionDown:
		return engine.DirDown, true
	case core.ActionLeft:
		return engine.DirLeft, true
	case core.ActionRight:
		return engine.DirRight, true
	}
	return 0, false
}
