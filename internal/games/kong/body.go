// Package kong implements a barrel-dodging platformer: climb the girders,
// jump the barrels thrown by the ape at the top, and reach the captive.
//
// The package is a pure simulation. Game.Step advances one tick from an
// InputFrame and Game.Draw issues draw calls onto a core.Canvas; drivers
// own timing, input devices and pixels.
package kong

import (
	"github.com/vovakirdan/kong-arcade/internal/core"
)

// Body is a moving axis-aligned rectangle.
type Body struct {
	core.Box
	VX, VY float64
}

// Integrate advances the position by one tick of velocity.
func (b *Body) Integrate() {
	b.X += b.VX
	b.Y += b.VY
}

// landsOn reports whether a body moving down by vy this tick crosses the top
// of p while overlapping it horizontally. The test uses the position before
// integration, so no fall speed can carry the body through a platform.
func landsOn(b core.Box, vy float64, p core.Box) bool {
	bottom := b.Bottom()
	return b.OverlapsX(p) && bottom <= p.Y && bottom+vy >= p.Y
}

// LandOn snaps the body onto the first platform it would cross this tick.
// It returns the platform index, or -1 when the body is not moving down or
// no platform is in the way.
func (b *Body) LandOn(platforms []core.Box) int {
	if b.VY <= 0 {
		return -1
	}
	return b.catch(platforms)
}

// catch snaps the body onto the first supporting platform regardless of
// direction; a body resting on a platform with vy == 0 is supported.
func (b *Body) catch(platforms []core.Box) int {
	for i, p := range platforms {
		if landsOn(b.Box, b.VY, p) {
			b.Y = p.Y - b.H
			b.VY = 0
			return i
		}
	}
	return -1
}
