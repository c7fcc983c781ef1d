// kong is a barrel-dodging platformer for the terminal, a desktop window
// and SSH.
//
// Usage:
//
//	kong play                - Play in the terminal
//	kong menu                - Pick a difficulty, play and browse scores
//	kong window              - Play in a desktop window
//	kong serve               - Start SSH server for remote play
//	kong scores              - Print the best runs
//	kong board               - Browse run history interactively
//	kong config              - Print or check game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Load game config from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kong-arcade/internal/config"
	"github.com/vovakirdan/kong-arcade/internal/games/kong"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kong",
	Short: "Barrel Kong - dodge barrels, climb ladders, reach the top",
	Long: `Barrel Kong is a platformer: climb the girders to the top while
Kong rolls barrels down at you. Jump barrels, avoid the fires and reach
the goal to advance a level.

Available commands:
  play     - Play in the terminal
  menu     - Difficulty picker with high scores
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - Print the best runs
  board    - Browse run history
  config   - Print or check the game configuration

Examples:
  kong play
  kong play --difficulty hard
  kong window --scale 1.5
  kong serve --ssh :2222
  kong scores --recent`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		if err := checkConfigFlag(flagConfig); err != nil {
			return err
		}
		kong.SetConfigPath(flagConfig)
		kong.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}
