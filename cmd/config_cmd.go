// Package cmd implements the ccb CLI commands.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/ccb/internal/cli"
	"github.com/theirongolddev/ccb/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var flagForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	dataFile := config.DataFile(cfg)
	if abs, err := filepath.Abs(dataFile); err == nil {
		dataFile = abs
	}
	fmt.Println("  [General]")
	fmt.Printf("    Data file: %s (%s)\n", dataFile, config.DataFileSource(cfg))
	fmt.Printf("    Log level: %s\n", config.ParseLogLevel(cfg.General.LogLevel))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)

	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() && !flagForce {
		fmt.Println(cli.Warn(fmt.Sprintf("Config file already exists at %s (use --force to overwrite)", config.Path())))
		return nil
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Println(cli.Success("Wrote " + config.Path()))
	return nil
}
