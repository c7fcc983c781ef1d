package kong

import (
	"errors"
	"fmt"
	"math"
)

// Snapshot contains the dynamic game state for determinism checks and
// contract validation. Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick  uint64
	State string
	Score int
	Lives int
	Level int

	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	PlayerW, PlayerH   float64
	Airborne           bool
	OnLadder           bool
	Climbing           bool

	Barrels     []BarrelState
	BarrelSpeed float64

	Clock         float64 // Simulated milliseconds
	PendingTimers int

	RNGState uint64
}

// BarrelState is the snapshot of one barrel.
type BarrelState struct {
	X, Y, VX, VY float64
	W, H         float64
	RollingRight bool
	Falling      bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	barrels := make([]BarrelState, len(g.barrels))
	for i, b := range g.barrels {
		barrels[i] = BarrelState{
			X: b.X, Y: b.Y, VX: b.VX, VY: b.VY,
			W: b.W, H: b.H,
			RollingRight: b.RollingRight,
			Falling:      b.Falling,
		}
	}

	snap := Snapshot{
		Tick:  g.tickCount,
		State: g.state,
		Score: g.score,
		Lives: g.lives,
		Level: g.levelNum,

		PlayerX: p.X, PlayerY: p.Y,
		PlayerVX: p.VX, PlayerVY: p.VY,
		PlayerW: p.W, PlayerH: p.H,
		Airborne: p.Airborne,
		OnLadder: p.OnLadder,
		Climbing: p.Climbing,

		Barrels:     barrels,
		BarrelSpeed: g.cfg.Barrel.Speed,

		Clock:         g.sched.Now(),
		PendingTimers: g.sched.Pending(),
	}
	if r, ok := g.rng.(*SimpleRNG); ok {
		snap.RNGState = r.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	for _, s := range snap.State {
		h = h*31 + uint64(s) //#nosec G115 -- hash computation
	}
	h = mix(h, snap.PlayerX, snap.PlayerY, snap.PlayerVX, snap.PlayerVY, snap.Clock)
	h = h*31 + flag(snap.Airborne)
	h = h*31 + flag(snap.OnLadder)
	h = h*31 + flag(snap.Climbing)

	h = h*31 + uint64(len(snap.Barrels))
	for _, b := range snap.Barrels {
		h = mix(h, b.X, b.Y, b.VX, b.VY)
		h = h*31 + flag(b.RollingRight)
		h = h*31 + flag(b.Falling)
	}

	h = h*31 + uint64(snap.PendingTimers) //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState
	return h
}

func mix(h uint64, vs ...float64) uint64 {
	for _, v := range vs {
		h = h*31 + math.Float64bits(v)
	}
	return h
}

func flag(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Validate checks the state contracts: non-negative counters and sizes,
// finite coordinates, and rolling barrels moving at exactly the rolling speed.
func (snap *Snapshot) Validate() error {
	var errs []error

	if snap.Lives < 0 {
		errs = append(errs, fmt.Errorf("negative lives %d", snap.Lives))
	}
	if snap.Score < 0 {
		errs = append(errs, fmt.Errorf("negative score %d", snap.Score))
	}
	if snap.Level < 1 {
		errs = append(errs, fmt.Errorf("level %d below 1", snap.Level))
	}
	if snap.PlayerW < 0 || snap.PlayerH < 0 {
		errs = append(errs, fmt.Errorf("negative player size %gx%g", snap.PlayerW, snap.PlayerH))
	}
	if !finite(snap.PlayerX, snap.PlayerY, snap.PlayerVX, snap.PlayerVY) {
		errs = append(errs, errors.New("player position or velocity is not finite"))
	}

	for i, b := range snap.Barrels {
		if b.W < 0 || b.H < 0 {
			errs = append(errs, fmt.Errorf("barrel %d: negative size %gx%g", i, b.W, b.H))
		}
		if !finite(b.X, b.Y, b.VX, b.VY) {
			errs = append(errs, fmt.Errorf("barrel %d: position or velocity is not finite", i))
		}
		if !b.Falling && math.Abs(b.VX) != snap.BarrelSpeed {
			errs = append(errs, fmt.Errorf("barrel %d: rolling at %g, expected %g", i, math.Abs(b.VX), snap.BarrelSpeed))
		}
		if !b.Falling && (b.VX > 0) != b.RollingRight {
			errs = append(errs, fmt.Errorf("barrel %d: direction does not match velocity %g", i, b.VX))
		}
	}

	return errors.Join(errs...)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
