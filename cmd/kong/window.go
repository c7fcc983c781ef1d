package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kong-arcade/internal/games/kong"
	"github.com/vovakirdan/kong-arcade/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls match the terminal, with real key releases:
  Arrows/WASD  - Walk and climb
  Space        - Jump
  Enter        - Start
  P/Esc        - Pause
  R            - Restart
  Q            - Quit

The window scale is remembered for next time.

Examples:
  kong window
  kong window --scale 1.5
  kong window --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window size relative to the 800x600 world (0 = last used)")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr, "kong")
	if err != nil {
		return err
	}
	defer closeLog()

	prefsStore, prefs := loadPrefs()
	if flagScale > 0 && flagScale != prefs.WindowScale {
		prefs.WindowScale = flagScale
		if prefsStore != nil {
			if err := prefsStore.Save(prefs); err != nil {
				logger.Warn("could not save preferences", "error", err)
			}
		}
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	game := kong.New()
	game.SetPreset(pickPreset(prefs))

	err = gui.Run(game, gui.Options{
		Scale:    prefs.WindowScale,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   playerName(),
		Store:    store,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("error running window: %w", err)
	}
	return nil
}
