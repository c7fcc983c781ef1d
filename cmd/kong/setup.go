package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/kong-arcade/internal/config"
	"github.com/vovakirdan/kong-arcade/internal/core"
	"github.com/vovakirdan/kong-arcade/internal/games/kong"
	"github.com/vovakirdan/kong-arcade/internal/platform/tui"
	"github.com/vovakirdan/kong-arcade/internal/storage"
)

// prefsApp is the data directory name for saved preferences.
const prefsApp = "kong_arcade"

// newLogger builds the command logger.
// Logs go to the --log file when set, otherwise to fallback.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeLog := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeLog, nil
}

// checkConfigFlag rejects a --config file that cannot be loaded.
func checkConfigFlag(path string) error {
	if path == "" {
		return nil
	}
	if _, err := config.LoadKong(path); err != nil {
		return fmt.Errorf("invalid --config: %w", err)
	}
	return nil
}

// openStore opens the scores database, or returns nil with a warning.
// Games still work without storage.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// terminalConfig builds a runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newGame creates a game at the given difficulty.
func newGame(preset config.DifficultyPreset) tui.Game {
	g := kong.New()
	g.SetPreset(preset)
	return g
}

// loadPrefs opens the preferences store.
// A nil store means preferences are unavailable and defaults apply.
func loadPrefs() (*config.PrefsStore, config.Prefs) {
	store, err := config.OpenPrefs(prefsApp)
	if err != nil {
		return nil, config.DefaultPrefs()
	}
	prefs, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return store, prefs
}

// pickPreset returns the --difficulty flag, falling back to the saved choice.
func pickPreset(prefs config.Prefs) config.DifficultyPreset {
	if p := config.ParsePreset(flagDifficulty); p != "" {
		return p
	}
	return config.ParsePreset(prefs.Difficulty)
}

// playerName is the name local runs are recorded under.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
