package config

// DifficultyManager derives barrel pacing from the current level.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether timed escalation is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// SpawnInterval returns the barrel spawn period in milliseconds for a level.
// The interval shrinks by StepMs per level and never drops below MinMs.
func (d *DifficultyManager) SpawnInterval(level int) int {
	interval := d.cfg.Spawn.BaseMs - level*d.cfg.Spawn.StepMs
	minMs := d.cfg.Spawn.MinMs
	if minMs < 1 {
		minMs = 1
	}
	if interval < minMs {
		return minMs
	}
	return interval
}

// EscalationInterval returns the period of timed level increases in milliseconds.
func (d *DifficultyManager) EscalationInterval() int {
	return d.cfg.Escalation.EveryMs
}

// CanEscalate reports whether a timed escalation may raise the given level.
// Once the level reaches MaxLevel, escalation becomes a no-op.
func (d *DifficultyManager) CanEscalate(level int) bool {
	return d.cfg.Enabled && level < d.cfg.Escalation.MaxLevel
}
