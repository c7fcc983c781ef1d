package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kong-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D  - Walk
  Up/Down, W/S     - Climb ladders (Up jumps when not on a ladder)
  Space            - Jump, or start from the title screen
  Enter            - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, slower spawns, barrels rarely drop
  normal - the configured values
  hard   - 2 lives, fast barrels, quick spawns
  fixed  - no timed escalation

Without --difficulty the last preset picked in the menu is used.

Examples:
  kong play
  kong play --difficulty hard
  kong play --config ./my-kong.yaml
  kong play --seed 42 --log kong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "kong")
	if err != nil {
		return err
	}
	defer closeLog()

	_, prefs := loadPrefs()
	game := newGame(pickPreset(prefs))

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig(), tui.WithLogger(logger), tui.WithPlayer(playerName())); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
