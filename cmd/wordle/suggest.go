package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Bibliophage305/wordle-solver/internal/session"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
)

// maxTiesShown caps the tie list printed by suggest.
const maxTiesShown = 20

var suggestCmd = &cobra.Command{
	Use:   "suggest [variant] [guess=result ...]",
	Short: "Print the best guess after some observations",
	Long: `Replays the given observations and prints the guess the solver would
play next, its worst case and every equally good guess.

Examples:
  wordle suggest
  wordle suggest orate=00102
  wordle suggest primel 12953=01020 40387=10100`,
	RunE: runSuggest,
}

var feedbackCmd = &cobra.Command{
	Use:   "feedback <answer> <guess>",
	Short: "Print the result the game would show for a guess",
	Long: `Scores guess against answer the way the game does and prints the
result as digits (0 = grey, 1 = yellow, 2 = green).

Examples:
  wordle feedback brass carbs   # 01112`,
	Args: cobra.ExactArgs(2),
	RunE: runFeedback,
}

func init() {
	suggestCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a variant YAML file")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 && !strings.Contains(args[0], "=") {
		name, args = args[0], args[1:]
	}
	v, err := resolveVariant(name, flagConfig)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sess, err := session.New(ctx, session.Options{
		Variant:  v,
		Hard:     mode.HardFor(v),
		Selector: solver.Parallel{Workers: settings.Workers},
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	for _, obs := range args {
		guess, result, ok := strings.Cut(obs, "=")
		if !ok {
			return fmt.Errorf("observation %q must look like guess=result", obs)
		}
		if err := sess.Submit(ctx, guess, result); err != nil {
			return fmt.Errorf("%s: %w", obs, err)
		}
	}

	st := sess.State()
	if answer, ok := st.Answer(); ok && st.Status() == solver.Solved {
		fmt.Printf("Solved: %s in %d guesses\n", answer, st.Rounds())
		return nil
	}

	if words := sess.Remaining(); words != nil {
		fmt.Printf("%d words remaining: %s\n", len(words), strings.Join(words, ", "))
	} else {
		fmt.Printf("%d words remaining\n", st.CandidateCount())
	}

	sug := sess.Suggestion()
	fmt.Printf("Suggested guess: %s (worst case %d)\n", sug.Guess, sug.WorstCase)
	if len(sug.Ties) > 1 {
		ties := sug.Ties
		more := ""
		if len(ties) > maxTiesShown {
			more = fmt.Sprintf(" and %d more", len(ties)-maxTiesShown)
			ties = ties[:maxTiesShown]
		}
		fmt.Printf("Equally good: %s%s\n", strings.Join(ties, ", "), more)
	}
	return nil
}

func runFeedback(_ *cobra.Command, args []string) error {
	answer, guess := strings.ToLower(args[0]), strings.ToLower(args[1])
	if utf8.RuneCountInString(answer) != utf8.RuneCountInString(guess) {
		return fmt.Errorf("%q and %q have different lengths", answer, guess)
	}
	fmt.Println(solver.ComputeFeedback(answer, guess))
	return nil
}
