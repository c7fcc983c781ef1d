// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// KongConfig contains all configuration for the barrel-dodging platformer.
type KongConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    KongPhysics      `yaml:"physics"`
	Player     KongPlayer       `yaml:"player"`
	Barrel     KongBarrel       `yaml:"barrel"`
	Scoring    KongScoring      `yaml:"scoring"`
	Gameplay   KongGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Layout     LayoutConfig     `yaml:"layout"`
}

// WorldConfig defines the play field size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// KongPhysics defines the per-tick motion constants.
type KongPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	PlayerSpeed float64 `yaml:"player_speed"`
	JumpForce   float64 `yaml:"jump_force"`
	LadderSpeed float64 `yaml:"ladder_speed"`
}

// KongPlayer defines the player body and spawn point.
type KongPlayer struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// KongBarrel defines barrel size and motion.
type KongBarrel struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Horizontal rolling speed
	DropSpeed    float64 `yaml:"drop_speed"`    // Vertical speed when a barrel starts falling
	FallChance   float64 `yaml:"fall_chance"`   // Per-tick probability of dropping off a platform
	GravityScale float64 `yaml:"gravity_scale"` // Fraction of gravity applied while falling
}

// KongScoring defines score awards.
type KongScoring struct {
	FireBonus  int `yaml:"fire_bonus"`  // Awarded when a barrel burns in a fire
	LevelBonus int `yaml:"level_bonus"` // Multiplied by the level on reaching the goal
}

// KongGameplay defines run lifecycle parameters.
type KongGameplay struct {
	Lives int `yaml:"lives"`
}

// DifficultyConfig defines barrel spawn pacing and timed escalation.
type DifficultyConfig struct {
	Enabled    bool             `yaml:"enabled"` // false disables timed escalation
	Spawn      SpawnConfig      `yaml:"spawn"`
	Escalation EscalationConfig `yaml:"escalation"`
}

// SpawnConfig defines the barrel spawn interval: max(base - level*step, min).
type SpawnConfig struct {
	BaseMs int `yaml:"base_ms"`
	StepMs int `yaml:"step_ms"`
	MinMs  int `yaml:"min_ms"`
}

// EscalationConfig defines the periodic level increase.
type EscalationConfig struct {
	EveryMs  int `yaml:"every_ms"`
	MaxLevel int `yaml:"max_level"` // Escalation stops once this level is reached
}

// RectConfig is a rectangle in world units.
type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// LayoutConfig defines the static level geometry.
type LayoutConfig struct {
	Platforms []RectConfig `yaml:"platforms"`
	Ladders   []RectConfig `yaml:"ladders"`
	Fires     []RectConfig `yaml:"fires"`
	Kong      RectConfig   `yaml:"kong"`
	Goal      RectConfig   `yaml:"goal"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
// Unknown values yield an empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
