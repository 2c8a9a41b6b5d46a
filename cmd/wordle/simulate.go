package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bibliophage305/wordle-solver/internal/session"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
)

var (
	flagOpening   string
	flagMaxRounds int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Play the solver against every possible answer",
	Long: `Plays one game per candidate answer, feeding the solver the true
feedback each round, and prints how many guesses each took. Games run in
parallel.

Examples:
  wordle simulate
  wordle simulate --opening crate
  wordle simulate primel --mode hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a variant YAML file")
	simulateCmd.Flags().StringVar(&flagOpening, "opening", "", "First guess to use (default: the variant's opening)")
	simulateCmd.Flags().IntVar(&flagMaxRounds, "max-rounds", session.DefaultMaxRounds, "Give up on a game after this many guesses")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	v, err := resolveVariant(name, flagConfig)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	opening := flagOpening
	if opening == "" {
		store := openStore()
		sug, _, err := session.Opening(ctx, session.OpeningOptions{
			Variant:  v,
			Selector: solver.Parallel{Workers: settings.Workers},
			Store:    store,
			UseCache: settings.UseOpeningCache,
			Logger:   logger,
		})
		closeStore(store)
		if err != nil {
			return err
		}
		opening = sug.Guess
	}

	sel, err := solver.NewCachedSelector(solver.Sequential{}, 8*solver.DefaultCacheSize)
	if err != nil {
		return err
	}

	hard := mode.HardFor(v)
	start := time.Now()
	report, err := session.Simulate(ctx, session.SimulateOptions{
		Variant:   v,
		Hard:      hard,
		Opening:   strings.ToLower(opening),
		Selector:  sel,
		Workers:   settings.Workers,
		MaxRounds: flagMaxRounds,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	logger.Debug("simulation finished", "elapsed", time.Since(start), "cached_positions", sel.Len())

	rules := "normal"
	if hard {
		rules = "hard"
	}
	fmt.Printf("%s: %d games, opening %s, %s mode\n\n", v.Name, report.Games, report.Opening, rules)

	counts := make([]int, 0, len(report.Distribution))
	for n := range report.Distribution {
		counts = append(counts, n)
	}
	slices.Sort(counts)
	for _, n := range counts {
		c := report.Distribution[n]
		fmt.Printf("  %2d guesses: %5d  %s\n", n, c, strings.Repeat("#", max(1, c*50/report.Games)))
	}

	fmt.Println()
	fmt.Printf("Solved:  %d/%d\n", report.Solved, report.Games)
	fmt.Printf("Average: %.3f guesses\n", report.Average())
	if report.Worst > 0 {
		fmt.Printf("Worst:   %d guesses (%s)\n", report.Worst, strings.Join(report.Hardest, ", "))
	}
	if len(report.Failed) > 0 {
		fmt.Printf("Failed:  %s\n", strings.Join(report.Failed, ", "))
	}
	return nil
}
