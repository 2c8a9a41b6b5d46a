package session

import (
	"context"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/Bibliophage305/wordle-solver/internal/config"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
	"github.com/Bibliophage305/wordle-solver/internal/storage"
)

// Source says where an opening suggestion came from.
type Source string

const (
	SourceVariant  Source = "variant"  // first_guess in the variant file
	SourceCache    Source = "cache"    // openings table
	SourceComputed Source = "computed" // full selection run
)

// OpeningOptions configures Opening.
type OpeningOptions struct {
	Variant  config.Variant
	Selector solver.Selector
	Store    *storage.Store // optional
	UseCache bool
	// Recompute skips the variant's first_guess and the cache. A computed
	// opening is still written to the store.
	Recompute bool
	Logger    *log.Logger
}

// Opening returns the first suggestion for a variant. Hard mode does not
// affect it since nothing has been revealed yet.
func Opening(ctx context.Context, opts OpeningOptions) (solver.Suggestion, Source, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	v := opts.Variant
	st, err := v.NewState(false)
	if err != nil {
		return solver.Suggestion{}, "", err
	}
	words, allowed := st.Candidates(), st.Allowed()

	if !opts.Recompute && v.FirstGuess != "" && st.IsAllowed(v.FirstGuess) {
		return fixedSuggestion(words, v.FirstGuess), SourceVariant, nil
	}

	fp := Fingerprint(v)
	if !opts.Recompute && opts.UseCache && opts.Store != nil {
		o, err := opts.Store.Opening(v.ID, fp)
		if err != nil {
			logger.Warn("could not read opening cache", "error", err)
		} else if o != nil && st.IsAllowed(o.Guess) {
			logger.Debug("opening from cache", "variant", v.ID, "guess", o.Guess)
			sug := fixedSuggestion(words, o.Guess)
			sug.WorstCase = o.WorstCase
			return sug, SourceCache, nil
		}
	}

	sel := opts.Selector
	if sel == nil {
		sel = solver.Parallel{}
	}
	logger.Info("recalculating first guess", "variant", v.ID, "words", len(words), "guesses", len(allowed))
	sug, err := sel.Select(ctx, words, allowed)
	if err != nil {
		return solver.Suggestion{}, "", err
	}
	logger.Info("first guess recalculated", "guess", sug.Guess, "worst_case", sug.WorstCase)

	if opts.Store != nil {
		err := opts.Store.SaveOpening(storage.Opening{
			VariantID:   v.ID,
			Fingerprint: fp,
			Guess:       sug.Guess,
			WorstCase:   sug.WorstCase,
		})
		if err != nil {
			logger.Warn("could not cache opening", "error", err)
		}
	}
	return sug, SourceComputed, nil
}

// Fingerprint identifies a variant's word lists for the opening cache.
func Fingerprint(v config.Variant) string {
	return solver.Fingerprint(v.Words) + solver.Fingerprint(v.AllGuesses())
}

func fixedSuggestion(words []string, guess string) solver.Suggestion {
	return solver.Suggestion{
		Guess:     guess,
		WorstCase: solver.ScoreGuess(words, guess, math.MaxInt),
		Ties:      []string{guess},
	}
}
