package session

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/Bibliophage305/wordle-solver/internal/config"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
	"github.com/Bibliophage305/wordle-solver/internal/storage"
)

func testVariant() config.Variant {
	return config.Variant{
		ID:         "test_5",
		Name:       "Test",
		WordLength: 5,
		Words:      []string{"crane", "crate", "slate", "trace", "brine"},
		Guesses:    []string{"adieu"},
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewOpeningSources(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	v := testVariant()
	v.FirstGuess = "adieu"
	s, err := New(ctx, Options{Variant: v, Store: store, UseOpeningCache: true})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if s.OpeningSource() != SourceVariant || s.Suggestion().Guess != "adieu" {
		t.Errorf("opening = %s from %s, want adieu from variant", s.Suggestion().Guess, s.OpeningSource())
	}

	v.FirstGuess = ""
	s, err = New(ctx, Options{Variant: v, Store: store, UseOpeningCache: true})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if s.OpeningSource() != SourceComputed {
		t.Fatalf("first opening source = %s, want %s", s.OpeningSource(), SourceComputed)
	}
	want, err := solver.SelectBestGuess(v.Words, v.AllGuesses())
	if err != nil {
		t.Fatalf("SelectBestGuess() failed: %v", err)
	}
	if got := s.Suggestion(); got.Guess != want.Guess || got.WorstCase != want.WorstCase {
		t.Errorf("computed opening = %+v, want %+v", got, want)
	}

	s, err = New(ctx, Options{Variant: v, Store: store, UseOpeningCache: true})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if s.OpeningSource() != SourceCache || s.Suggestion().Guess != want.Guess {
		t.Errorf("second opening = %s from %s, want %s from cache", s.Suggestion().Guess, s.OpeningSource(), want.Guess)
	}

	s, err = New(ctx, Options{Variant: v, Store: store, UseOpeningCache: false})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if s.OpeningSource() != SourceComputed {
		t.Errorf("opening with cache off from %s, want %s", s.OpeningSource(), SourceComputed)
	}

	// Changing the word list changes the fingerprint and misses the cache.
	v.Words = append(v.Words, "grate")
	s, err = New(ctx, Options{Variant: v, Store: store, UseOpeningCache: true})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if s.OpeningSource() != SourceComputed {
		t.Errorf("opening after list change from %s, want %s", s.OpeningSource(), SourceComputed)
	}
}

func TestNewRejectsBadVariant(t *testing.T) {
	v := testVariant()
	v.Words = nil
	_, err := New(context.Background(), Options{Variant: v})
	if !errors.Is(err, solver.ErrConfiguration) {
		t.Errorf("New(no words) error = %v, want configuration error", err)
	}
}

func TestSubmitRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, Options{Variant: testVariant()})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		guess, raw string
		want       solver.ErrorKind
	}{
		{"zzzzz", "00000", solver.KindInvalidGuess},
		{"crane", "0000", solver.KindInvalidPattern},
		{"crane", "00300", solver.KindInvalidPattern},
		{"crane", "", solver.KindInvalidPattern},
	}
	for _, tt := range tests {
		err := s.Submit(ctx, tt.guess, tt.raw)
		if got := solver.KindOf(err); got != tt.want {
			t.Errorf("Submit(%q, %q) kind = %v, want %v", tt.guess, tt.raw, got, tt.want)
		}
	}
	if n := len(s.History()); n != 0 {
		t.Errorf("History() after rejected input = %d rounds, want 0", n)
	}
	if s.GuessNumber() != 1 {
		t.Errorf("GuessNumber() = %d, want 1", s.GuessNumber())
	}
	if err := s.CheckGuess("adieu"); err != nil {
		t.Errorf("CheckGuess(adieu) = %v, want nil", err)
	}
}

func TestSubmitSolves(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	s, err := New(ctx, Options{Variant: testVariant(), Store: store})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if got := s.Remaining(); len(got) != 5 {
		t.Errorf("Remaining() = %v, want all 5 words", got)
	}

	const answer = "crate"
	for i := 0; i < 6 && !s.Done(); i++ {
		guess := s.Suggestion().Guess
		// Input is normalized.
		if err := s.Submit(ctx, " "+guess+" ", solver.ComputeFeedback(answer, guess).String()); err != nil {
			t.Fatalf("Submit(%q) failed: %v", guess, err)
		}
	}
	st := s.State()
	if st.Status() != solver.Solved {
		t.Fatalf("Status() = %v after %d rounds, want solved", st.Status(), st.Rounds())
	}
	if got, _ := st.Answer(); got != answer {
		t.Errorf("Answer() = %q, want %q", got, answer)
	}
	hist := s.History()
	if hist[len(hist)-1].Guess != answer || !hist[len(hist)-1].Pattern.Solved() {
		t.Errorf("last round = %+v, want solved %s", hist[len(hist)-1], answer)
	}

	if err := s.Submit(ctx, answer, "22222"); !errors.Is(err, solver.ErrFinished) {
		t.Errorf("Submit() after solve error = %v, want finished", err)
	}

	solves, err := store.RecentSolves("test_5", 10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(solves) != 1 {
		t.Fatalf("RecentSolves() = %d entries, want 1", len(solves))
	}
	if sv := solves[0]; sv.Outcome != storage.OutcomeSolved || sv.Answer != answer || sv.Rounds() != len(hist) {
		t.Errorf("logged solve = %+v", sv)
	}
}

func TestSubmitExhausted(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	s, err := New(ctx, Options{Variant: testVariant(), Store: store, Hard: true})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	err = s.Submit(ctx, "crane", "11111")
	if !errors.Is(err, solver.ErrExhaustedCandidates) {
		t.Fatalf("Submit(crane, 11111) error = %v, want exhausted", err)
	}
	if s.State().Status() != solver.Failed || !s.Done() {
		t.Errorf("Status() = %v, want failed", s.State().Status())
	}
	if len(s.History()) != 1 {
		t.Errorf("History() = %d rounds, want 1", len(s.History()))
	}
	if err := s.CheckGuess("crate"); !errors.Is(err, solver.ErrFinished) {
		t.Errorf("CheckGuess() after failure = %v, want finished", err)
	}

	solves, err := store.RecentSolves("test_5", 10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(solves) != 1 || solves[0].Outcome != storage.OutcomeFailed || !solves[0].Hard {
		t.Errorf("logged solves = %+v, want one failed hard-mode entry", solves)
	}
}

func TestSimulate(t *testing.T) {
	ctx := context.Background()
	v := testVariant()

	report, err := Simulate(ctx, SimulateOptions{Variant: v, Opening: "crane", Workers: 3})
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if report.Games != 5 || report.Solved != 5 || len(report.Failed) != 0 {
		t.Errorf("Simulate() = %d games, %d solved, failed %v; want 5, 5, none", report.Games, report.Solved, report.Failed)
	}

	answers := make([]string, len(report.Results))
	for i, r := range report.Results {
		answers[i] = r.Answer
		if r.Guesses[0] != "crane" {
			t.Errorf("game %s opened with %s, want crane", r.Answer, r.Guesses[0])
		}
		if r.Guesses[len(r.Guesses)-1] != r.Answer {
			t.Errorf("game %s ended with %s", r.Answer, r.Guesses[len(r.Guesses)-1])
		}
	}
	if want := []string{"brine", "crane", "crate", "slate", "trace"}; !slices.Equal(answers, want) {
		t.Errorf("results order = %v, want %v", answers, want)
	}
	if report.Distribution[1] != 1 {
		t.Errorf("Distribution[1] = %d, want 1 (crane itself)", report.Distribution[1])
	}
	total := 0
	for _, c := range report.Distribution {
		total += c
	}
	if total != report.Solved {
		t.Errorf("Distribution sums to %d, want %d", total, report.Solved)
	}
	if report.Average() < 1 || report.Average() > float64(report.Worst) {
		t.Errorf("Average() = %v, outside [1, %d]", report.Average(), report.Worst)
	}

	// Worker count must not change the outcome.
	again, err := Simulate(ctx, SimulateOptions{Variant: v, Opening: "crane", Workers: 1})
	if err != nil {
		t.Fatalf("Simulate(workers 1) failed: %v", err)
	}
	for i := range report.Results {
		if !slices.Equal(report.Results[i].Guesses, again.Results[i].Guesses) {
			t.Errorf("game %s: %v with 3 workers, %v with 1", report.Results[i].Answer, report.Results[i].Guesses, again.Results[i].Guesses)
		}
	}
}

func TestSimulateUnknownAnswer(t *testing.T) {
	report, err := Simulate(context.Background(), SimulateOptions{
		Variant: testVariant(),
		Opening: "crane",
		Answers: []string{"crate", "zzzzz"},
	})
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if report.Solved != 1 || !slices.Equal(report.Failed, []string{"zzzzz"}) {
		t.Errorf("Simulate() solved %d, failed %v; want 1, [zzzzz]", report.Solved, report.Failed)
	}
}

func TestSimulateBadOpening(t *testing.T) {
	_, err := Simulate(context.Background(), SimulateOptions{Variant: testVariant(), Opening: "zzzzz"})
	if !errors.Is(err, solver.ErrInvalidGuess) {
		t.Errorf("Simulate(bad opening) error = %v, want invalid guess", err)
	}
}
