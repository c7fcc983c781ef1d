package kong

import (
	"github.com/vovakirdan/kong-arcade/internal/config"
	"github.com/vovakirdan/kong-arcade/internal/core"
)

// Player is the climber controlled by the user.
type Player struct {
	Body
	Airborne    bool // In a jump or a fall; jumping is not allowed
	OnLadder    bool // Overlapped a ladder at the end of the last tick
	Climbing    bool // Moving along a ladder under input control
	FacingRight bool
	Frame       float64 // Walk animation phase
}

func newPlayer(cfg config.KongPlayer) *Player {
	p := &Player{}
	p.reset(cfg)
	return p
}

// reset puts the player back at the start position at rest.
func (p *Player) reset(cfg config.KongPlayer) {
	*p = Player{
		Body: Body{
			Box: core.NewBox(cfg.StartX, cfg.StartY, cfg.Width, cfg.Height),
		},
		FacingRight: true,
	}
}

// Jump launches the player upward. It does nothing while airborne or climbing.
func (p *Player) Jump(force float64) bool {
	if p.Airborne || p.Climbing {
		return false
	}
	p.VY = -force
	p.Airborne = true
	return true
}

// update advances the player by one tick.
func (p *Player) update(in core.InputFrame, lvl *Level, phys config.KongPhysics) {
	// Up doubles as jump away from ladders
	if in.Has(core.ActionJump) || (in.Has(core.ActionUp) && !p.OnLadder) {
		p.Jump(phys.JumpForce)
	}

	switch {
	case in.Has(core.ActionLeft):
		p.VX = -phys.PlayerSpeed
		p.FacingRight = false
	case in.Has(core.ActionRight):
		p.VX = phys.PlayerSpeed
		p.FacingRight = true
	default:
		p.VX = 0
	}

	switch {
	case p.OnLadder && in.Has(core.ActionUp):
		p.Climbing = true
		p.VY = -phys.LadderSpeed
	case p.OnLadder && in.Has(core.ActionDown):
		p.Climbing = true
		p.VY = phys.LadderSpeed
	case p.Climbing:
		p.VY = 0
		p.Climbing = false
	}

	if !p.OnLadder && !p.Climbing {
		p.VY += phys.Gravity
	}

	if p.LandOn(lvl.Platforms) >= 0 {
		p.Airborne = false
	} else if !p.OnLadder && !p.Climbing && p.VY > 0 {
		// Walked off an edge
		p.Airborne = true
	}

	p.OnLadder = lvl.OnLadder(p.Box)
	p.Integrate()

	if p.VX != 0 && !p.Airborne {
		p.Frame += 0.2
	}
}
