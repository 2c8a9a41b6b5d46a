package session

import (
	"context"
	"errors"
	"io"
	"runtime"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/Bibliophage305/wordle-solver/internal/config"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
)

// DefaultMaxRounds caps simulated games that would otherwise never end.
const DefaultMaxRounds = 20

// SimulateOptions configures Simulate.
type SimulateOptions struct {
	Variant config.Variant
	Hard    bool
	// Opening is the first guess; empty means the variant's first_guess or,
	// failing that, a computed one.
	Opening string
	// Selector must be safe for concurrent use. nil means a cached
	// sequential selector shared by all games.
	Selector solver.Selector
	// Workers is the number of games played at once; <= 0 means GOMAXPROCS.
	Workers   int
	MaxRounds int
	// Answers restricts the games played; nil plays every candidate.
	Answers []string
	Logger  *log.Logger
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Answer  string
	Guesses []string
	Solved  bool
}

// Report summarizes a simulation.
type Report struct {
	Opening string
	Games   int
	Solved  int
	// Distribution maps guess count to the number of games solved in it.
	Distribution map[int]int
	Worst        int      // most guesses any solved game needed
	Hardest      []string // answers that needed Worst guesses
	Failed       []string
	Results      []GameResult // in answer order
}

// Average returns the mean number of guesses over solved games.
func (r Report) Average() float64 {
	if r.Solved == 0 {
		return 0
	}
	total := 0
	for n, c := range r.Distribution {
		total += n * c
	}
	return float64(total) / float64(r.Solved)
}

// Simulate plays the solver against every possible answer and reports how
// many guesses each took. Games run concurrently.
func Simulate(ctx context.Context, opts SimulateOptions) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	start, err := opts.Variant.NewState(opts.Hard)
	if err != nil {
		return Report{}, err
	}

	sel := opts.Selector
	if sel == nil {
		cached, err := solver.NewCachedSelector(solver.Sequential{}, 4096)
		if err != nil {
			return Report{}, err
		}
		sel = cached
	}

	opening := opts.Opening
	if opening == "" {
		sug, _, err := Opening(ctx, OpeningOptions{Variant: opts.Variant, Selector: solver.Parallel{Workers: opts.Workers}, Logger: logger})
		if err != nil {
			return Report{}, err
		}
		opening = sug.Guess
	}
	if !start.IsAllowed(opening) {
		return Report{}, &solver.Error{Kind: solver.KindInvalidGuess, Msg: "opening " + opening + " is not an allowed guess"}
	}

	answers := opts.Answers
	if answers == nil {
		answers = start.Candidates()
	}
	maxRounds := opts.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]GameResult, len(answers))
	var done int
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, answer := range answers {
		i, answer := i, answer // per-iteration copy; go directive is 1.21
		g.Go(func() error {
			res, err := PlayAgainst(gctx, start, answer, opening, sel, maxRounds)
			if err != nil {
				return err
			}
			results[i] = res

			mu.Lock()
			done++
			n := done
			mu.Unlock()
			if n%100 == 0 || n == len(answers) {
				logger.Debug("simulated", "games", n, "of", len(answers))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	return summarize(opening, results), nil
}

// PlayAgainst plays one game from start with a known answer, feeding the
// solver the true feedback each round.
func PlayAgainst(ctx context.Context, start solver.GameState, answer, opening string, sel solver.Selector, maxRounds int) (GameResult, error) {
	res := GameResult{Answer: answer}
	st := start
	guess := opening

	for len(res.Guesses) < maxRounds {
		res.Guesses = append(res.Guesses, guess)
		next, err := st.UpdatePattern(guess, solver.ComputeFeedback(answer, guess))
		if errors.Is(err, solver.ErrExhaustedCandidates) {
			// The answer is not in the candidate list.
			return res, nil
		}
		if err != nil {
			return res, err
		}
		if next.Status() == solver.Solved {
			res.Solved = true
			return res, nil
		}
		sug, err := next.Suggest(ctx, sel)
		if err != nil {
			return res, err
		}
		st, guess = next, sug.Guess
	}
	return res, nil
}

func summarize(opening string, results []GameResult) Report {
	r := Report{
		Opening:      opening,
		Games:        len(results),
		Distribution: make(map[int]int),
		Results:      results,
	}
	for _, res := range results {
		if !res.Solved {
			r.Failed = append(r.Failed, res.Answer)
			continue
		}
		n := len(res.Guesses)
		r.Solved++
		r.Distribution[n]++
		switch {
		case n > r.Worst:
			r.Worst = n
			r.Hardest = []string{res.Answer}
		case n == r.Worst:
			r.Hardest = append(r.Hardest, res.Answer)
		}
	}
	slices.Sort(r.Hardest)
	return r
}
