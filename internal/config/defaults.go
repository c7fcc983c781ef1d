package config

import (
	_ "embed"
)

//go:embed defaults/kong.yaml
var defaultKongYAML []byte

// DefaultKongYAML returns the embedded default configuration document.
func DefaultKongYAML() []byte {
	out := make([]byte, len(defaultKongYAML))
	copy(out, defaultKongYAML)
	return out
}

// DefaultKongConfig returns the default configuration.
// It mirrors defaults/kong.yaml and is used when the embedded copy cannot be parsed.
func DefaultKongConfig() KongConfig {
	return KongConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: KongPhysics{
			Gravity:     0.5,
			PlayerSpeed: 5,
			JumpForce:   12,
			LadderSpeed: 3,
		},
		Player: KongPlayer{
			StartX: 50,
			StartY: 510,
			Width:  30,
			Height: 40,
		},
		Barrel: KongBarrel{
			Width:        24,
			Height:       24,
			Speed:        3,
			DropSpeed:    2,
			FallChance:   0.02,
			GravityScale: 0.5,
		},
		Scoring: KongScoring{
			FireBonus:  100,
			LevelBonus: 1000,
		},
		Gameplay: KongGameplay{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Spawn: SpawnConfig{
				BaseMs: 2000,
				StepMs: 150,
				MinMs:  400,
			},
			Escalation: EscalationConfig{
				EveryMs:  15000,
				MaxLevel: 5,
			},
		},
		Layout: LayoutConfig{
			Platforms: []RectConfig{
				{X: 0, Y: 550, W: 800, H: 20},
				{X: 100, Y: 450, W: 600, H: 20},
				{X: 0, Y: 350, W: 500, H: 20},
				{X: 300, Y: 250, W: 500, H: 20},
				{X: 0, Y: 150, W: 400, H: 20},
				{X: 500, Y: 150, W: 300, H: 20},
			},
			Ladders: []RectConfig{
				{X: 700, Y: 450, W: 40, H: 100},
				{X: 400, Y: 350, W: 40, H: 100},
				{X: 200, Y: 250, W: 40, H: 100},
				{X: 450, Y: 150, W: 40, H: 100},
			},
			Fires: []RectConfig{
				{X: 150, Y: 525, W: 30, H: 30},
				{X: 300, Y: 425, W: 30, H: 30},
				{X: 450, Y: 325, W: 30, H: 30},
				{X: 200, Y: 225, W: 30, H: 30},
			},
			Kong: RectConfig{X: 600, Y: 80, W: 80, H: 80},
			Goal: RectConfig{X: 650, Y: 100, W: 30, H: 50},
		},
	}
}
