// wordle is a minimax solver for Wordle and its relatives.
//
// Usage:
//
//	wordle list                          - List available puzzles
//	wordle play [variant]                - Solve a puzzle interactively
//	wordle menu                          - Pick a puzzle from a menu
//	wordle suggest [variant] [g=p ...]   - Best guess after some observations
//	wordle feedback <answer> <guess>     - Print the 0/1/2 pattern
//	wordle opening [variant]             - Show or compute the opening guess
//	wordle simulate [variant]            - Play every answer and report
//	wordle stats [variant]               - Show the session log
//	wordle serve                         - Start SSH server for remote play
//	wordle settings                      - Show or write the settings file
//
// Global flags:
//
//	--db <path>        - Database path (default: ~/.wordle/wordle.db)
//	--mode <mode>      - normal, hard or variant
//	--workers <n>      - Parallel workers (0 = all CPUs)
//	--settings <path>  - Settings file (default: ~/.wordle/settings.yaml)
//	--verbose          - Debug logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Bibliophage305/wordle-solver/internal/config"
	"github.com/Bibliophage305/wordle-solver/internal/registry"
	"github.com/Bibliophage305/wordle-solver/internal/storage"

	// Import games to register them
	_ "github.com/Bibliophage305/wordle-solver/internal/games/nerdle"
	_ "github.com/Bibliophage305/wordle-solver/internal/games/primel"
	_ "github.com/Bibliophage305/wordle-solver/internal/games/wordle"
)

var (
	// Global flags
	flagDBPath   string
	flagMode     string
	flagWorkers  int
	flagSettings string
	flagVerbose  bool
	flagNoDB     bool

	// Resolved in PersistentPreRunE
	settings config.Settings
	mode     config.Mode
	logger   *log.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle solver - minimax guesses for Wordle-like puzzles",
	Long: `A solver for Wordle and similar puzzles. Tell it what you guessed and
the colors you got back; it suggests the guess that leaves the fewest
possible answers in the worst case.

Feedback is typed as digits: 0 = grey, 1 = yellow, 2 = green.

Examples:
  wordle play
  wordle play primel --mode hard
  wordle suggest wordle orate=00102 slice=20020
  wordle feedback crate orate
  wordle simulate wordle`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the solver database (default from settings)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Rules: normal, hard or variant (default from settings)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Parallel workers for guess selection (0 = all CPUs)")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to settings file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every suggestion, tie and remaining word")
	rootCmd.PersistentFlags().BoolVar(&flagNoDB, "no-db", false, "Do not open the database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(openingCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(settingsCmd)
}

// setup loads settings, applies flag overrides and registers user variants.
func setup(cmd *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordle",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	var err error
	settings, err = config.LoadSettings(flagSettings)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		settings.DBPath = flagDBPath
	}
	if cmd.Flags().Changed("workers") {
		settings.Workers = flagWorkers
	}
	if cmd.Flags().Changed("mode") {
		settings.Mode = config.Mode(flagMode)
	}
	if mode, err = config.ParseMode(string(settings.Mode)); err != nil {
		return err
	}

	for _, dir := range []string{config.UserGamesDir(), config.LocalGamesDir} {
		if dir == "" {
			continue
		}
		n, err := registry.LoadDir(dir)
		if err != nil {
			logger.Warn("could not load variants", "dir", dir, "error", err)
			continue
		}
		if n > 0 {
			logger.Debug("loaded variants", "dir", dir, "count", n)
		}
	}
	return nil
}

// resolveVariant returns the variant named on the command line, the one in
// a --config file, or the settings default.
func resolveVariant(name, configPath string) (config.Variant, error) {
	if configPath != "" {
		v, err := config.LoadFile(configPath)
		if err != nil {
			return config.Variant{}, err
		}
		if err := registry.Add(v); err != nil {
			return config.Variant{}, err
		}
		return v, nil
	}
	if name == "" {
		name = settings.DefaultVariant
	}
	id, err := registry.Resolve(name)
	if err != nil {
		return config.Variant{}, fmt.Errorf("%w (run 'wordle list' to see available puzzles)", err)
	}
	return registry.Create(id)
}

// openStore opens the database, or returns nil when it is disabled or cannot
// be opened. The solver works without it.
func openStore() *storage.Store {
	if flagNoDB {
		return nil
	}
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		logger.Warn("could not open database", "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
