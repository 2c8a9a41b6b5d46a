// Package session drives one interactive solve: it owns the current game
// state and suggestion, applies the player's feedback, and records the
// outcome. Both the terminal UI and line mode sit on top of it.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/Bibliophage305/wordle-solver/internal/config"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
	"github.com/Bibliophage305/wordle-solver/internal/storage"
)

// ListThreshold is the candidate count at or below which the remaining words
// are shown to the player.
const ListThreshold = 10

// Options configures a Session.
type Options struct {
	Variant config.Variant
	Hard    bool

	// Selector picks guesses; nil means solver.Parallel with GOMAXPROCS workers.
	Selector solver.Selector

	// Store is optional. When set, openings are read from and written to it
	// (subject to UseOpeningCache) and finished sessions are logged.
	Store           *storage.Store
	UseOpeningCache bool
	// RecomputeOpening ignores the variant's first_guess and any cached
	// opening.
	RecomputeOpening bool

	Logger *log.Logger
}

// Round is one played guess.
type Round struct {
	Guess     string
	Pattern   solver.Pattern
	Remaining int // candidates left after the feedback
}

// Session is safe for concurrent readers while Submit runs; callers must not
// run two Submits at once.
type Session struct {
	opts   Options
	logger *log.Logger
	sel    solver.Selector

	mu         sync.RWMutex
	state      solver.GameState
	suggestion solver.Suggestion
	opening    Source
	history    []Round
	logged     bool
}

// New builds a session and computes the opening suggestion.
func New(ctx context.Context, opts Options) (*Session, error) {
	st, err := opts.Variant.NewState(opts.Hard)
	if err != nil {
		return nil, err
	}

	s := &Session{
		opts:   opts,
		logger: opts.Logger,
		sel:    opts.Selector,
		state:  st,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.sel == nil {
		s.sel = solver.Parallel{}
	}

	sug, src, err := Opening(ctx, OpeningOptions{
		Variant:   opts.Variant,
		Selector:  s.sel,
		Store:     opts.Store,
		UseCache:  opts.UseOpeningCache,
		Recompute: opts.RecomputeOpening,
		Logger:    s.logger,
	})
	if err != nil {
		return nil, err
	}
	s.suggestion = sug
	s.opening = src
	s.logState()
	return s, nil
}

// Variant returns the variant being solved.
func (s *Session) Variant() config.Variant { return s.opts.Variant }

// Hard reports whether hard mode is on.
func (s *Session) Hard() bool { return s.opts.Hard }

// State returns the current game state.
func (s *Session) State() solver.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Suggestion returns the guess the solver recommends next.
func (s *Session) Suggestion() solver.Suggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.suggestion
}

// OpeningSource reports where the first suggestion came from.
func (s *Session) OpeningSource() Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opening
}

// History returns the rounds played so far.
func (s *Session) History() []Round {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Round, len(s.history))
	copy(out, s.history)
	return out
}

// GuessNumber is the 1-based number of the next guess.
func (s *Session) GuessNumber() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history) + 1
}

// Done reports whether the game is solved or failed.
func (s *Session) Done() bool {
	return s.State().Status() != solver.InProgress
}

// Remaining returns the candidates when there are few enough to list, or nil.
func (s *Session) Remaining() []string {
	st := s.State()
	if st.CandidateCount() > ListThreshold {
		return nil
	}
	return st.Candidates()
}

// CheckGuess reports whether guess may be played now.
func (s *Session) CheckGuess(guess string) error {
	st := s.State()
	if st.Status() != solver.InProgress {
		return solver.ErrFinished
	}
	if !st.IsAllowed(guess) {
		return &solver.Error{Kind: solver.KindInvalidGuess, Msg: fmt.Sprintf("%q is not an allowed guess", guess)}
	}
	return nil
}

// Submit applies the feedback raw (0/1/2 digits) for guess and computes the
// next suggestion. InvalidGuess and InvalidPattern errors leave the session
// unchanged so the caller can re-prompt. ExhaustedCandidates ends the game.
func (s *Session) Submit(ctx context.Context, guess, raw string) error {
	guess = strings.ToLower(strings.TrimSpace(guess))
	raw = strings.TrimSpace(raw)

	s.mu.RLock()
	cur := s.state
	s.mu.RUnlock()

	next, err := cur.Update(guess, raw)
	if err != nil && !errors.Is(err, solver.ErrExhaustedCandidates) {
		return err
	}
	// Update has validated raw by now.
	p, _ := solver.ParsePattern(raw, cur.WordLength())

	if err != nil {
		s.commit(next, guess, p, nil)
		s.logger.Warn("all words have been eliminated", "guess", guess, "result", raw)
		s.record()
		return err
	}

	if next.Status() == solver.Solved {
		s.commit(next, guess, p, nil)
		s.logger.Info("solved", "answer", guess, "guesses", next.Rounds())
		s.record()
		return nil
	}

	sug, err := next.Suggest(ctx, s.sel)
	if err != nil {
		return err
	}
	s.commit(next, guess, p, &sug)
	s.logState()
	return nil
}

func (s *Session) commit(next solver.GameState, guess string, p solver.Pattern, sug *solver.Suggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = next
	s.history = append(s.history, Round{Guess: guess, Pattern: p, Remaining: next.CandidateCount()})
	if sug != nil {
		s.suggestion = *sug
	}
}

func (s *Session) logState() {
	st := s.State()
	sug := s.Suggestion()
	s.logger.Info("suggestion",
		"guess", sug.Guess,
		"worst_case", sug.WorstCase,
		"remaining_words", st.CandidateCount(),
		"remaining_guesses", st.AllowedCount(),
	)
	if len(sug.Ties) > 1 {
		s.logger.Debug("best guesses", "ties", sug.Ties)
	}
	if words := s.Remaining(); words != nil {
		s.logger.Debug("remaining", "words", words)
	}
}

// record logs the finished session to the store once.
func (s *Session) record() {
	s.mu.Lock()
	if s.logged || s.opts.Store == nil {
		s.mu.Unlock()
		return
	}
	s.logged = true
	sv := storage.Solve{
		VariantID: s.opts.Variant.ID,
		Hard:      s.opts.Hard,
		Outcome:   storage.OutcomeFailed,
	}
	for _, r := range s.history {
		sv.Guesses = append(sv.Guesses, r.Guess)
	}
	if s.state.Status() == solver.Solved {
		sv.Outcome = storage.OutcomeSolved
		sv.Answer, _ = s.state.Answer()
	}
	s.mu.Unlock()

	if _, err := s.opts.Store.SaveSolve(sv); err != nil {
		s.logger.Warn("could not save session", "error", err)
	}
}
