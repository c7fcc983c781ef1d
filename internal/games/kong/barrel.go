package kong

import (
	"github.com/vovakirdan/kong-arcade/internal/config"
	"github.com/vovakirdan/kong-arcade/internal/core"
)

// Barrel rolls along platforms, turns at their ends and now and then
// drops to the platform below. A barrel is always either rolling or falling.
type Barrel struct {
	Body
	RollingRight bool
	Falling      bool
	Rotation     float64 // Visual spin, radians
}

func newBarrel(x, y float64, cfg config.KongBarrel) *Barrel {
	return &Barrel{
		Body: Body{
			Box: core.NewBox(x, y, cfg.Width, cfg.Height),
			VX:  cfg.Speed,
		},
		RollingRight: true,
	}
}

// update advances the barrel by one tick.
func (b *Barrel) update(platforms []core.Box, cfg config.KongBarrel, gravity float64, rng Random) {
	b.Integrate()

	if b.Falling {
		if b.catch(platforms) >= 0 {
			b.Falling = false
		} else {
			b.VY += gravity * cfg.GravityScale
		}
	} else {
		i := b.catch(platforms)
		if i < 0 {
			b.drop(cfg)
		} else {
			b.turnAtEdge(platforms[i], cfg.Speed)
			if rng.Float64() < cfg.FallChance {
				b.drop(cfg)
			}
		}
	}

	b.Rotation += b.VX * 0.1
}

func (b *Barrel) drop(cfg config.KongBarrel) {
	b.Falling = true
	b.VY = cfg.DropSpeed
}

// turnAtEdge reverses a rolling barrel that reached the end of p.
func (b *Barrel) turnAtEdge(p core.Box, speed float64) {
	switch {
	case b.RollingRight && b.Right() >= p.Right():
		b.X = p.Right() - b.W
		b.VX = -speed
		b.RollingRight = false
	case !b.RollingRight && b.X <= p.X:
		b.X = p.X
		b.VX = speed
		b.RollingRight = true
	}
}
