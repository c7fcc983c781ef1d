package config

import (
	"fmt"

	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

// prefsKey is the gdata item holding the preferences document.
const prefsKey = "prefs"

// Prefs are user choices remembered between sessions.
type Prefs struct {
	Difficulty  string  `yaml:"difficulty"`   // Last difficulty preset picked
	WindowScale float64 `yaml:"window_scale"` // Window size relative to the world
}

// DefaultPrefs returns preferences used before anything is saved.
func DefaultPrefs() Prefs {
	return Prefs{
		Difficulty:  string(DifficultyNormal),
		WindowScale: 1,
	}
}

// ItemStore is the key/value persistence PrefsStore writes through.
// *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// PrefsStore loads and saves Prefs.
type PrefsStore struct {
	items ItemStore
}

// OpenPrefs opens the per-user preferences store in the OS data directory.
func OpenPrefs(appName string) (*PrefsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("config: cannot open preferences: %w", err)
	}
	return NewPrefsStore(m), nil
}

// NewPrefsStore creates a store backed by the given items.
func NewPrefsStore(items ItemStore) *PrefsStore {
	return &PrefsStore{items: items}
}

// Load returns the saved preferences, or defaults when none were saved.
func (p *PrefsStore) Load() (Prefs, error) {
	prefs := DefaultPrefs()

	data, err := p.items.LoadItem(prefsKey)
	if err != nil {
		return prefs, fmt.Errorf("config: cannot load preferences: %w", err)
	}
	if data == nil {
		return prefs, nil
	}

	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return DefaultPrefs(), fmt.Errorf("config: cannot parse preferences: %w", err)
	}
	if ParsePreset(prefs.Difficulty) == "" {
		prefs.Difficulty = string(DifficultyNormal)
	}
	if prefs.WindowScale <= 0 {
		prefs.WindowScale = 1
	}
	return prefs, nil
}

// Save writes the preferences.
func (p *PrefsStore) Save(prefs Prefs) error {
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("config: cannot encode preferences: %w", err)
	}
	if err := p.items.SaveItem(prefsKey, data); err != nil {
		return fmt.Errorf("config: cannot save preferences: %w", err)
	}
	return nil
}
