package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kong-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, play and browse scores",
	Long: `Start with the difficulty picker.

Use arrow keys or j/k to navigate, Enter to play, Tab for high scores.
From a paused or finished game, Esc/B returns to the menu.
The difficulty you pick is remembered for next time.

Examples:
  kong menu
  kong menu --fps 30
  kong menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "kong")
	if err != nil {
		return err
	}
	defer closeLog()

	prefsStore, prefs := loadPrefs()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	picked, err := tui.RunSession(store, terminalConfig(), playerName(), pickPreset(prefs), newGame, logger)
	if err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}

	if prefsStore != nil && string(picked) != prefs.Difficulty {
		prefs.Difficulty = string(picked)
		if err := prefsStore.Save(prefs); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return nil
}
