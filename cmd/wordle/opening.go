package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bibliophage305/wordle-solver/internal/session"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
)

var flagClearOpenings bool

var openingCmd = &cobra.Command{
	Use:   "opening [variant]",
	Short: "Show or compute the opening guess",
	Long: `Prints the first guess for a puzzle and where it came from: the variant
file, the database cache, or a fresh computation. Computed openings are
stored so the next session starts instantly.

Examples:
  wordle opening
  wordle opening primel --recompute
  wordle opening --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpening,
}

func init() {
	openingCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a variant YAML file")
	openingCmd.Flags().BoolVar(&flagRecompute, "recompute", false, "Ignore first_guess and the cache")
	openingCmd.Flags().BoolVar(&flagClearOpenings, "clear", false, "Delete cached openings for the variant")
}

func runOpening(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	v, err := resolveVariant(name, flagConfig)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	if flagClearOpenings {
		if store == nil {
			return fmt.Errorf("no database to clear")
		}
		if err := store.ClearOpenings(v.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared cached openings for %s\n", v.ID)
		return nil
	}

	sug, src, err := session.Opening(cmd.Context(), session.OpeningOptions{
		Variant:   v,
		Selector:  solver.Parallel{Workers: settings.Workers},
		Store:     store,
		UseCache:  settings.UseOpeningCache,
		Recompute: flagRecompute,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Opening guess for %s: %s\n", v.Name, sug.Guess)
	fmt.Printf("  worst case: %d of %d words\n", sug.WorstCase, len(v.Words))
	fmt.Printf("  source:     %s\n", src)
	if len(sug.Ties) > 1 {
		fmt.Printf("  ties:       %d equally good guesses\n", len(sug.Ties))
	}
	return nil
}
