package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// KongFileName is the config file name looked up in the config directories.
const KongFileName = "kong.yaml"

// LoadKong loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/kong.yaml -> ./configs/kong.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadKong(customPath string) (KongConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readKong(customPath)
		if err != nil {
			return DefaultKongConfig(), err
		}
		if err := cfg.Validate(); err != nil {
			return DefaultKongConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(KongFileName), filepath.Join("configs", KongFileName)} {
		if path == "" {
			continue
		}
		if cfg, err := readKong(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultKongConfig()
	if err := yaml.Unmarshal(defaultKongYAML, &cfg); err != nil {
		return DefaultKongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseKong decodes a YAML document over the default configuration.
func ParseKong(data []byte) (KongConfig, error) {
	cfg := DefaultKongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// readKong reads and decodes a config file.
func readKong(path string) (KongConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KongConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseKong(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyKongPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values; fixed keeps them but stops timed escalation.
func ApplyKongPreset(cfg *KongConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	if preset != "" {
		cfg.Difficulty.Enabled = true
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Difficulty.Spawn.BaseMs = 2600
		cfg.Difficulty.Spawn.MinMs = 800
		cfg.Difficulty.Escalation.EveryMs = 20000
		cfg.Barrel.FallChance = 0.015
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Difficulty.Spawn.BaseMs = 1600
		cfg.Difficulty.Spawn.MinMs = 300
		cfg.Difficulty.Escalation.EveryMs = 10000
		cfg.Barrel.FallChance = 0.03
		cfg.Barrel.Speed = 4
	}
}
