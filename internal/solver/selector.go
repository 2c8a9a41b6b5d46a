package solver

import (
	"context"
	"math"
	"runtime"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Suggestion is the outcome of guess selection.
type Suggestion struct {
	// Guess is the canonical winner of the tie set.
	Guess string
	// WorstCase is the largest number of candidates that can remain after
	// playing Guess.
	WorstCase int
	// Ties holds every guess sharing the best worst case, after the
	// candidate preference is applied, in lexicographic order.
	Ties []string
}

// Selector picks the next guess for a candidate set.
type Selector interface {
	Select(ctx context.Context, candidates, allowed []string) (Suggestion, error)
}

// maxDenseLength is the longest word for which buckets are a flat array
// (3^12 counters); longer words fall back to a map.
const maxDenseLength = 12

// scorer tallies feedback buckets for one guess at a time. It is not safe for
// concurrent use; parallel selection gives each worker its own scorer.
type scorer struct {
	words   [][]rune
	dense   []int32
	touched []uint64
	sparse  map[uint64]int
}

func newScorer(words [][]rune, wordLength int) *scorer {
	s := &scorer{words: words}
	if wordLength <= maxDenseLength {
		s.dense = make([]int32, int(math.Pow(3, float64(wordLength))))
		s.touched = make([]uint64, 0, len(words))
	} else {
		s.sparse = make(map[uint64]int)
	}
	return s
}

// score returns the size of the largest bucket guess splits the words into.
// Once any bucket grows past bound the guess cannot beat it and the running
// count is returned immediately, so the result is only exact when it is
// <= bound.
func (s *scorer) score(guess []rune, bound int) int {
	worst := 0
	if s.dense != nil {
		defer s.resetDense()
		for _, w := range s.words {
			c := feedbackCode(w, guess)
			if s.dense[c] == 0 {
				s.touched = append(s.touched, c)
			}
			s.dense[c]++
			n := int(s.dense[c])
			if n > worst {
				worst = n
				if worst > bound {
					return worst
				}
			}
		}
		return worst
	}

	clear(s.sparse)
	for _, w := range s.words {
		c := feedbackCode(w, guess)
		s.sparse[c]++
		if n := s.sparse[c]; n > worst {
			worst = n
			if worst > bound {
				return worst
			}
		}
	}
	return worst
}

func (s *scorer) resetDense() {
	for _, c := range s.touched {
		s.dense[c] = 0
	}
	s.touched = s.touched[:0]
}

// ScoreGuess returns the worst-case number of candidates left after playing
// guess. With bound < len(candidates) scoring stops early once the result is
// known to exceed bound; pass math.MaxInt for an exact score.
func ScoreGuess(candidates []string, guess string, bound int) int {
	words := toRunes(candidates)
	g := []rune(guess)
	return newScorer(words, len(g)).score(g, bound)
}

// SelectBestGuess scores every allowed guess against the candidates and
// returns the minimax choice. Among guesses with the same worst case, ones
// that are themselves candidates win, then the lexicographically smallest.
func SelectBestGuess(candidates, allowed []string) (Suggestion, error) {
	return Sequential{}.Select(context.Background(), candidates, allowed)
}

// SelectBestGuessParallel is SelectBestGuess spread over workers goroutines.
func SelectBestGuessParallel(ctx context.Context, candidates, allowed []string, workers int) (Suggestion, error) {
	return Parallel{Workers: workers}.Select(ctx, candidates, allowed)
}

// Sequential scores guesses one after another on the calling goroutine.
type Sequential struct{}

// Select implements Selector.
func (Sequential) Select(ctx context.Context, candidates, allowed []string) (Suggestion, error) {
	if err := checkSelectInput(candidates, allowed); err != nil {
		return Suggestion{}, err
	}
	words := toRunes(candidates)
	guesses := toRunes(allowed)
	sc := newScorer(words, len(guesses[0]))

	scores := make([]int, len(allowed))
	best := len(candidates) + 1
	for i, g := range guesses {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return Suggestion{}, err
			}
		}
		scores[i] = sc.score(g, best)
		if scores[i] < best {
			best = scores[i]
		}
	}
	return pickWinner(candidates, allowed, scores, best), nil
}

// Parallel splits the allowed guesses across worker goroutines. Workers share
// the best score seen so far for pruning; because a pruned guess always
// scores above the final minimum, the tie set matches Sequential exactly.
type Parallel struct {
	// Workers is the number of goroutines; <= 0 means GOMAXPROCS.
	Workers int
}

// Select implements Selector.
func (p Parallel) Select(ctx context.Context, candidates, allowed []string) (Suggestion, error) {
	if err := checkSelectInput(candidates, allowed); err != nil {
		return Suggestion{}, err
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(allowed) {
		workers = len(allowed)
	}

	words := toRunes(candidates)
	guesses := toRunes(allowed)
	scores := make([]int, len(allowed))

	var best atomic.Int64
	best.Store(int64(len(candidates) + 1))

	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(guesses) + workers - 1) / workers
	for start := 0; start < len(guesses); start += chunk {
		start := start // per-iteration copy; go directive is 1.21
		end := min(start+chunk, len(guesses))
		g.Go(func() error {
			sc := newScorer(words, len(guesses[start]))
			for i := start; i < end; i++ {
				if (i-start)%256 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				s := sc.score(guesses[i], int(best.Load()))
				scores[i] = s
				for {
					cur := best.Load()
					if int64(s) >= cur || best.CompareAndSwap(cur, int64(s)) {
						break
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Suggestion{}, err
	}
	return pickWinner(candidates, allowed, scores, int(best.Load())), nil
}

// pickWinner applies the tie-break rules to the guesses scoring best.
func pickWinner(candidates, allowed []string, scores []int, best int) Suggestion {
	isCandidate := make(map[string]struct{}, len(candidates))
	for _, w := range candidates {
		isCandidate[w] = struct{}{}
	}

	var ties, preferred []string
	for i, s := range scores {
		if s != best {
			continue
		}
		ties = append(ties, allowed[i])
		if _, ok := isCandidate[allowed[i]]; ok {
			preferred = append(preferred, allowed[i])
		}
	}
	if len(preferred) > 0 {
		ties = preferred
	}
	slices.Sort(ties)
	ties = slices.Compact(ties)

	return Suggestion{Guess: ties[0], WorstCase: best, Ties: ties}
}

func checkSelectInput(candidates, allowed []string) error {
	if len(candidates) == 0 {
		return newError(KindExhaustedCandidates, "no candidate words to choose from")
	}
	if len(allowed) == 0 {
		return newError(KindExhaustedCandidates, "no allowed guesses to choose from")
	}
	return nil
}

func toRunes(words []string) [][]rune {
	out := make([][]rune, len(words))
	for i, w := range words {
		out[i] = []rune(w)
	}
	return out
}
