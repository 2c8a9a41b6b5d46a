package solver

import (
	"context"
	"slices"
	"unicode/utf8"
)

// Status is the lifecycle stage of a game.
type Status int

const (
	InProgress Status = iota
	Solved
	Failed
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// GameState is one immutable snapshot of a game. Update never modifies the
// receiver; it returns a new state.
type GameState struct {
	wordLength int
	candidates []string
	allowed    []string
	hardMode   bool
	status     Status
	answer     string
	rounds     int
}

// Initialize builds the starting state. The allowed-guess set is guesses
// plus words, since every possible answer is a legal guess. Both sets are
// sorted and deduplicated.
func Initialize(wordLength int, words, guesses []string, hardMode bool) (GameState, error) {
	if wordLength <= 0 {
		return GameState{}, newError(KindConfiguration, "word length must be positive, got %d", wordLength)
	}
	if len(words) == 0 {
		return GameState{}, newError(KindConfiguration, "word list is empty")
	}
	if len(guesses) == 0 {
		return GameState{}, newError(KindConfiguration, "guess list is empty")
	}
	if err := checkLengths("word", words, wordLength); err != nil {
		return GameState{}, err
	}
	if err := checkLengths("guess", guesses, wordLength); err != nil {
		return GameState{}, err
	}

	candidates := normalize(words)
	allowed := normalize(append(slices.Clone(guesses), words...))

	st := GameState{
		wordLength: wordLength,
		candidates: candidates,
		allowed:    allowed,
		hardMode:   hardMode,
		status:     InProgress,
	}
	if len(candidates) == 1 {
		st.answer = candidates[0]
	}
	return st, nil
}

func checkLengths(what string, list []string, wordLength int) error {
	for _, w := range list {
		if n := utf8.RuneCountInString(w); n != wordLength {
			return newError(KindConfiguration, "%s %q has length %d, want %d", what, w, n, wordLength)
		}
	}
	return nil
}

func normalize(list []string) []string {
	out := slices.Clone(list)
	slices.Sort(out)
	return slices.Compact(out)
}

// Update applies one round of feedback given as a 0/1/2 string.
func (s GameState) Update(guess, raw string) (GameState, error) {
	if err := s.checkGuess(guess); err != nil {
		return s, err
	}
	p, err := ParsePattern(raw, s.wordLength)
	if err != nil {
		return s, err
	}
	return s.apply(guess, p)
}

// UpdatePattern is Update for an already parsed pattern.
func (s GameState) UpdatePattern(guess string, p Pattern) (GameState, error) {
	if err := s.checkGuess(guess); err != nil {
		return s, err
	}
	if len(p) != s.wordLength {
		return s, newError(KindInvalidPattern, "pattern has length %d, want %d", len(p), s.wordLength)
	}
	for i, sym := range p {
		if !sym.Valid() {
			return s, newError(KindInvalidPattern, "invalid symbol %d at position %d", sym, i)
		}
	}
	return s.apply(guess, p)
}

func (s GameState) checkGuess(guess string) error {
	if s.status != InProgress {
		return newError(KindFinished, "game is already %s", s.status)
	}
	if _, ok := slices.BinarySearch(s.allowed, guess); !ok {
		return newError(KindInvalidGuess, "%q is not an allowed guess", guess)
	}
	return nil
}

// apply runs the transition on validated input.
func (s GameState) apply(guess string, p Pattern) (GameState, error) {
	next := s
	next.rounds++

	if p.Solved() {
		next.status = Solved
		next.answer = guess
		next.candidates = []string{guess}
		return next, nil
	}

	next.candidates = FilterWords(s.candidates, guess, p)
	if len(next.candidates) == 0 {
		next.status = Failed
		return next, newError(KindExhaustedCandidates, "no word is consistent with %s for %q", p, guess)
	}
	if s.hardMode {
		next.allowed = FilterWords(s.allowed, guess, p)
		if len(next.allowed) == 0 {
			next.status = Failed
			return next, newError(KindExhaustedCandidates, "no guess is consistent with %s for %q in hard mode", p, guess)
		}
	}

	next.answer = ""
	if len(next.candidates) == 1 {
		next.answer = next.candidates[0]
	}
	return next, nil
}

// WordLength returns the number of symbols per word.
func (s GameState) WordLength() int { return s.wordLength }

// HardMode reports whether guesses must stay consistent with past feedback.
func (s GameState) HardMode() bool { return s.hardMode }

// Status returns the lifecycle stage.
func (s GameState) Status() Status { return s.status }

// Rounds returns how many updates produced this state.
func (s GameState) Rounds() int { return s.rounds }

// Candidates returns a sorted copy of the words that could still be the answer.
func (s GameState) Candidates() []string { return slices.Clone(s.candidates) }

// Allowed returns a sorted copy of the words that may still be guessed.
func (s GameState) Allowed() []string { return slices.Clone(s.allowed) }

// CandidateCount returns len(Candidates()) without copying.
func (s GameState) CandidateCount() int { return len(s.candidates) }

// AllowedCount returns len(Allowed()) without copying.
func (s GameState) AllowedCount() int { return len(s.allowed) }

// IsCandidate reports whether word could still be the answer.
func (s GameState) IsCandidate(word string) bool {
	_, ok := slices.BinarySearch(s.candidates, word)
	return ok
}

// IsAllowed reports whether word may be guessed next.
func (s GameState) IsAllowed(word string) bool {
	_, ok := slices.BinarySearch(s.allowed, word)
	return ok
}

// Answer returns the answer once it is known: after a Solved update, or when
// only one candidate remains.
func (s GameState) Answer() (string, bool) {
	return s.answer, s.answer != ""
}

// BestGuess runs the sequential selector on the state.
func (s GameState) BestGuess() (Suggestion, error) {
	return s.Suggest(context.Background(), Sequential{})
}

// Suggest asks sel for the next guess. A Solved state suggests its answer.
// Failed states have nothing to suggest.
func (s GameState) Suggest(ctx context.Context, sel Selector) (Suggestion, error) {
	switch s.status {
	case Solved:
		return Suggestion{Guess: s.answer, WorstCase: 1, Ties: []string{s.answer}}, nil
	case Failed:
		return Suggestion{}, newError(KindExhaustedCandidates, "game has failed")
	}
	return sel.Select(ctx, s.candidates, s.allowed)
}
