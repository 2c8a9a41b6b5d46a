package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bibliophage305/wordle-solver/internal/config"
)

var (
	flagInit  bool
	flagForce bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or write the settings file",
	Long: `Prints the effective settings (file values with flag overrides applied).
With --init, writes them to the settings file so they can be edited.

Examples:
  wordle settings
  wordle settings --init
  wordle settings --init --mode hard --force`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagInit, "init", false, "Write the settings file")
	settingsCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing settings file")
}

func runSettings(_ *cobra.Command, _ []string) error {
	path := flagSettings
	if path == "" {
		path = config.DefaultSettingsPath()
	}

	if flagInit {
		if path == "" {
			return errors.New("cannot determine settings path; pass --settings")
		}
		if _, err := os.Stat(path); err == nil && !flagForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := settings.Save(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", path)
	fmt.Printf("  default_variant:   %s\n", settings.DefaultVariant)
	fmt.Printf("  mode:              %s\n", settings.Mode)
	fmt.Printf("  use_opening_cache: %t\n", settings.UseOpeningCache)
	fmt.Printf("  db_path:           %s\n", settings.DBPath)
	fmt.Printf("  workers:           %d\n", settings.Workers)
	fmt.Println()
	fmt.Printf("Variant directories: %s, %s\n", config.UserGamesDir(), config.LocalGamesDir)
	return nil
}
