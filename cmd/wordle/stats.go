package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Bibliophage305/wordle-solver/internal/storage"
)

var (
	flagLimit      int
	flagClearStats bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [variant]",
	Short: "Show the session log",
	Long: `Display statistics for finished solving sessions. With a variant, also
lists the most recent sessions.

Examples:
  wordle stats
  wordle stats wordle
  wordle stats primel --limit 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent sessions to list")
	statsCmd.Flags().BoolVar(&flagClearStats, "clear", false, "Delete the session log for the variant")
}

func runStats(_ *cobra.Command, args []string) error {
	if flagNoDB {
		return errors.New("stats needs the database")
	}
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearStats {
			return errors.New("--clear needs a variant")
		}
		return printAllStats(store)
	}

	v, err := resolveVariant(args[0], "")
	if err != nil {
		return err
	}
	if flagClearStats {
		if err := store.ClearSolves(v.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared session log for %s\n", v.ID)
		return nil
	}

	stats, err := store.GetVariantStats(v.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Statistics - %s\n", v.Name)
	fmt.Println()

	if stats.Games == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'wordle play %s' to start the log!\n", v.ID)
		return nil
	}
	printStatsSummary(stats)

	solves, err := store.RecentSolves(v.ID, flagLimit)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("  %-10s  %-7s  %-6s  %s\n", "Answer", "Guesses", "Mode", "Date")
	fmt.Printf("  %-10s  %-7s  %-6s  %s\n", "------", "-------", "----", "----")
	for _, sv := range solves {
		answer := sv.Answer
		if sv.Outcome == storage.OutcomeFailed {
			answer = "(failed)"
		}
		rules := "normal"
		if sv.Hard {
			rules = "hard"
		}
		fmt.Printf("  %-10s  %-7d  %-6s  %s\n", answer, sv.Rounds(), rules, sv.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	ids, err := store.PlayedVariants()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}
	for i, id := range ids {
		stats, err := store.GetVariantStats(id)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(id)
		printStatsSummary(stats)
	}
	return nil
}

func printStatsSummary(s *storage.VariantStats) {
	fmt.Printf("  Played: %d  Solved: %d  Average: %.2f  Best: %d\n", s.Games, s.Solved, s.AvgRounds, s.BestRounds)
	if !s.LastPlayed.IsZero() {
		fmt.Printf("  Last played: %s\n", s.LastPlayed.Format("2006-01-02 15:04"))
	}
	rounds := make([]int, 0, len(s.Distribution))
	for n := range s.Distribution {
		rounds = append(rounds, n)
	}
	slices.Sort(rounds)
	for _, n := range rounds {
		fmt.Printf("  %2d: %d\n", n, s.Distribution[n])
	}
}
