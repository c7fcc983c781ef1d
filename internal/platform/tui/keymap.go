package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kong-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Terminals report key presses and auto-repeats but never releases, so
// movement keys are held for a short window that each repeat extends.
type KeyMapper struct {
	hold int // ticks a movement key stays down after a press
}

// NewKeyMapper creates a key mapper whose movement hold window lasts about
// a quarter of a second at the given tick rate.
func NewKeyMapper(tickRate int) *KeyMapper {
	hold := tickRate / 4
	if hold < 1 {
		hold = 1
	}
	return &KeyMapper{hold: hold}
}

// HoldTicks returns the movement hold window in ticks.
func (km *KeyMapper) HoldTicks() int {
	return km.hold
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// isMovement reports whether an action is a held direction.
func isMovement(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		return true
	}
	return false
}

// opposite returns the direction that cancels a movement.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}

// Apply records a key message in the held-key state.
// Returns true if the key was a quit request.
func (km *KeyMapper) Apply(msg tea.KeyMsg, keys *core.HeldKeys) bool {
	action, isQuit := km.MapKey(msg)
	switch {
	case isQuit, action == core.ActionNone:
	case isMovement(action):
		keys.Release(opposite(action))
		keys.PressFor(action, km.hold)
	default:
		keys.Tap(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
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
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
