package config

import "fmt"

// ValidationError describes a config value outside its allowed range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks that the config describes a playable game.
func (c KongConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return invalid("world", "size must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Physics.Gravity <= 0 {
		return invalid("physics.gravity", "must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.PlayerSpeed <= 0 || c.Physics.LadderSpeed <= 0 || c.Physics.JumpForce <= 0 {
		return invalid("physics", "speeds and jump force must be positive")
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player", "size must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	}
	if c.Barrel.Width <= 0 || c.Barrel.Height <= 0 {
		return invalid("barrel", "size must be positive, got %gx%g", c.Barrel.Width, c.Barrel.Height)
	}
	if c.Barrel.FallChance < 0 || c.Barrel.FallChance > 1 {
		return invalid("barrel.fall_chance", "must be within [0, 1], got %g", c.Barrel.FallChance)
	}
	if c.Gameplay.Lives < 1 {
		return invalid("gameplay.lives", "must be at least 1, got %d", c.Gameplay.Lives)
	}
	if c.Difficulty.Spawn.MinMs <= 0 {
		return invalid("difficulty.spawn.min_ms", "must be positive, got %d", c.Difficulty.Spawn.MinMs)
	}
	if c.Difficulty.Spawn.BaseMs < c.Difficulty.Spawn.MinMs {
		return invalid("difficulty.spawn.base_ms", "must not be below min_ms (%d), got %d",
			c.Difficulty.Spawn.MinMs, c.Difficulty.Spawn.BaseMs)
	}
	if c.Difficulty.Escalation.EveryMs <= 0 {
		return invalid("difficulty.escalation.every_ms", "must be positive, got %d", c.Difficulty.Escalation.EveryMs)
	}
	if c.Difficulty.Escalation.MaxLevel < 1 {
		return invalid("difficulty.escalation.max_level", "must be at least 1, got %d", c.Difficulty.Escalation.MaxLevel)
	}
	if len(c.Layout.Platforms) == 0 {
		return invalid("layout.platforms", "at least one platform is required")
	}

	groups := []struct {
		field string
		rects []RectConfig
	}{
		{"layout.platforms", c.Layout.Platforms},
		{"layout.ladders", c.Layout.Ladders},
		{"layout.fires", c.Layout.Fires},
		{"layout.kong", []RectConfig{c.Layout.Kong}},
		{"layout.goal", []RectConfig{c.Layout.Goal}},
	}
	for _, g := range groups {
		for i, r := range g.rects {
			if r.W <= 0 || r.H <= 0 {
				return invalid(fmt.Sprintf("%s[%d]", g.field, i), "size must be positive, got %gx%g", r.W, r.H)
			}
		}
	}
	return nil
}
