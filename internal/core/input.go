package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left
	ActionRight          // D, Right arrow - walk right
	ActionUp             // W, Up arrow - climb up (jumps when not on a ladder)
	ActionDown           // S, Down arrow - climb down
	ActionJump           // Space - jump, or start a run from the title screen
	ActionConfirm        // Enter - start a run
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains every action that is held or was triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// holdUntilRelease marks a key that stays down until Release is called.
const holdUntilRelease = -1

// HeldKeys records which keys are currently down and turns that record
// into one InputFrame per tick.
//
// Drivers with real key-up events call Press and Release. Terminals only
// report key presses (with auto-repeat), so the terminal driver uses
// PressFor to keep a key down for a short window that every repeat extends.
type HeldKeys struct {
	held   map[Action]int // remaining ticks, or holdUntilRelease
	pulses map[Action]bool
}

// NewHeldKeys creates an empty key record.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		held:   make(map[Action]int),
		pulses: make(map[Action]bool),
	}
}

// Press marks an action as held until Release.
func (h *HeldKeys) Press(a Action) {
	h.held[a] = holdUntilRelease
}

// PressFor marks an action as held for the given number of ticks.
// Pressing again while held restarts the window.
func (h *HeldKeys) PressFor(a Action, ticks int) {
	if cur, ok := h.held[a]; ok && cur == holdUntilRelease {
		return
	}
	if ticks < 1 {
		ticks = 1
	}
	h.held[a] = ticks
}

// Release marks an action as no longer held.
func (h *HeldKeys) Release(a Action) {
	delete(h.held, a)
}

// Tap records a one-tick action such as pause or restart.
func (h *HeldKeys) Tap(a Action) {
	h.pulses[a] = true
}

// IsHeld reports whether the action is currently held.
func (h *HeldKeys) IsHeld(a Action) bool {
	_, ok := h.held[a]
	return ok
}

// Frame returns the input for the current tick.
func (h *HeldKeys) Frame() InputFrame {
	f := NewInputFrame()
	for a := range h.held {
		f.Set(a)
	}
	for a := range h.pulses {
		f.Set(a)
	}
	return f
}

// Tick advances hold windows by one tick and drops taps.
func (h *HeldKeys) Tick() {
	for a := range h.pulses {
		delete(h.pulses, a)
	}
	for a, left := range h.held {
		if left == holdUntilRelease {
			continue
		}
		if left <= 1 {
			delete(h.held, a)
			continue
		}
		h.held[a] = left - 1
	}
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	clear(h.held)
	clear(h.pulses)
}
