// Package gui runs a game in a desktop window with Ebitengine.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/kong-arcade/internal/core"
)

// Binding maps physical keys to an action.
// Held bindings stay down while any key is pressed; the others fire once
// per key press.
type Binding struct {
	Action core.Action
	Keys   []ebiten.Key
	Held   bool
}

// DefaultBindings returns the standard keyboard layout.
func DefaultBindings() []Binding {
	return []Binding{
		{Action: core.ActionLeft, Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, Held: true},
		{Action: core.ActionRight, Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, Held: true},
		{Action: core.ActionUp, Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, Held: true},
		{Action: core.ActionDown, Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, Held: true},
		{Action: core.ActionJump, Keys: []ebiten.Key{ebiten.KeySpace}},
		{Action: core.ActionConfirm, Keys: []ebiten.Key{ebiten.KeyEnter}},
		{Action: core.ActionPause, Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
		{Action: core.ActionRestart, Keys: []ebiten.Key{ebiten.KeyR}},
		{Action: core.ActionQuit, Keys: []ebiten.Key{ebiten.KeyQ}},
	}
}

// KeySource reports keyboard state.
type KeySource interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the live keyboard.
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Poll copies the keyboard into the held-key record.
// Returns true if a quit key was pressed.
func Poll(src KeySource, bindings []Binding, keys *core.HeldKeys) (quit bool) {
	for _, b := range bindings {
		if b.Held {
			down := false
			for _, k := range b.Keys {
				if src.IsKeyPressed(k) {
					down = true
					break
				}
			}
			if down {
				keys.Press(b.Action)
			} else {
				keys.Release(b.Action)
			}
			continue
		}

		for _, k := range b.Keys {
			if !src.IsKeyJustPressed(k) {
				continue
			}
			if b.Action == core.ActionQuit {
				quit = true
			} else {
				keys.Tap(b.Action)
			}
			break
		}
	}
	return quit
}
