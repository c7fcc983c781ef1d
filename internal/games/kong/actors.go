package kong

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/vovakirdan/kong-arcade/internal/core"
)

// Kong arm swing timing, in ticks. A full swing cycle matches a sine whose
// phase advances 0.02 rad per tick.
const (
	kongHalfSwing    = math.Pi / 0.02
	kongQuarterSwing = kongHalfSwing / 2

	// holdThreshold is the swing position past which Kong shows a barrel in hand.
	holdThreshold = -0.8
)

// Fire is a static hazard that burns barrels rolling into it.
type Fire struct {
	core.Box
	Phase float64 // Flicker phase in [0, 4)
}

func (f *Fire) tick() {
	f.Phase = math.Mod(f.Phase+0.1, 4)
}

// Frame returns the current flicker frame in 0..3.
func (f *Fire) Frame() int {
	return int(f.Phase) % 4
}

// Kong is the antagonist at the top of the level. It never moves; its arm
// swings back and forth and it holds a barrel at one end of the swing.
type Kong struct {
	core.Box
	Swing float64 // Arm position in [-1, 1]

	tween  *gween.Tween
	toward float32
}

func newKong(box core.Box) *Kong {
	k := &Kong{Box: box}
	k.reset()
	return k
}

func (k *Kong) reset() {
	k.Swing = 0
	k.toward = 1
	k.tween = gween.New(0, 1, kongQuarterSwing, ease.OutSine)
}

func (k *Kong) tick() {
	v, done := k.tween.Update(1)
	k.Swing = float64(v)
	if done {
		from := k.toward
		k.toward = -k.toward
		k.tween = gween.New(from, k.toward, kongHalfSwing, ease.InOutSine)
	}
}

// ArmAngle returns the arm rotation in radians.
func (k *Kong) ArmAngle() float64 {
	return k.Swing * 0.5
}

// HoldingBarrel reports whether the held-barrel visual is shown.
func (k *Kong) HoldingBarrel() bool {
	return k.Swing < holdThreshold
}

// SpawnPoint returns where thrown barrels appear.
func (k *Kong) SpawnPoint(barrelW float64) (x, y float64) {
	return k.X + k.W/2 - barrelW/2, k.Y + k.H/2
}

// Goal is the captive the player must reach.
type Goal struct {
	core.Box
	Distress float64 // Call-for-help phase
}

func (g *Goal) tick() {
	g.Distress += 0.05
}

// CallingForHelp reports whether the help bubble is shown.
func (g *Goal) CallingForHelp() bool {
	return math.Sin(g.Distress) > 0.8
}
