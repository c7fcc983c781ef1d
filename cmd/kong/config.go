package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/kong-arcade/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config [check <file>]",
	Short: "Print or check the game configuration",
	Long: `Print the default configuration, which can be copied to
~/.arcade/configs/kong.yaml and edited. Files only need the keys they
change.

With --effective, print the configuration the game would load, after
the search path, --config and --difficulty are applied.

Examples:
  kong config > ~/.arcade/configs/kong.yaml
  kong config --effective --difficulty hard
  kong config check ./my-kong.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigCheck,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the configuration after overrides are applied")
	configCmd.AddCommand(configCheckCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.DefaultKongYAML())
		return err
	}

	cfg, err := config.LoadKong(flagConfig)
	if err != nil {
		return err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyKongPreset(&cfg, preset)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func runConfigCheck(_ *cobra.Command, args []string) error {
	if _, err := config.LoadKong(args[0]); err != nil {
		return err
	}
	fmt.Printf("%s: ok\n", args[0])
	return nil
}
