package solver

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"
)

func TestScoreGuess(t *testing.T) {
	candidates := []string{"ab", "ac", "ad"}
	tests := []struct {
		guess string
		want  int
	}{
		{guess: "ab", want: 2},
		{guess: "cd", want: 1},
		{guess: "xy", want: 3},
	}
	for _, tt := range tests {
		if got := ScoreGuess(candidates, tt.guess, math.MaxInt); got != tt.want {
			t.Errorf("ScoreGuess(%v, %q) = %d, want %d", candidates, tt.guess, got, tt.want)
		}
	}
}

func TestScoreGuessPrunes(t *testing.T) {
	candidates := []string{"ab", "ac", "ad"}
	got := ScoreGuess(candidates, "xy", 1)
	if got <= 1 {
		t.Errorf("ScoreGuess with bound 1 = %d, want > 1", got)
	}
	if got >= 3 {
		t.Errorf("ScoreGuess with bound 1 = %d, want it to stop before 3", got)
	}
}

func TestSelectBestGuess(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		allowed    []string
		want       string
		worst      int
		ties       []string
	}{
		{
			name:       "single candidate",
			candidates: []string{"crane"},
			allowed:    []string{"aaaaa", "crane", "zzzzz"},
			want:       "crane",
			worst:      1,
			ties:       []string{"crane"},
		},
		{
			name:       "lexicographic among candidates",
			candidates: []string{"ad", "ab", "ac"},
			allowed:    []string{"ad", "ac", "ab", "xy"},
			want:       "ab",
			worst:      2,
			ties:       []string{"ab", "ac", "ad"},
		},
		{
			name:       "strictly better non-candidate wins",
			candidates: []string{"ab", "ac", "ad"},
			allowed:    []string{"ab", "ac", "ad", "cd"},
			want:       "cd",
			worst:      1,
			ties:       []string{"cd"},
		},
		{
			name:       "candidate preferred over smaller tie",
			candidates: []string{"ab", "ba"},
			allowed:    []string{"aa", "ab", "ba"},
			want:       "ab",
			worst:      1,
			ties:       []string{"ab", "ba"},
		},
		{
			name:       "two disjoint words",
			candidates: []string{"abcde", "fghij"},
			allowed:    []string{"abcde", "fghij"},
			want:       "abcde",
			worst:      1,
			ties:       []string{"abcde", "fghij"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectBestGuess(tt.candidates, tt.allowed)
			if err != nil {
				t.Fatalf("SelectBestGuess() failed: %v", err)
			}
			if got.Guess != tt.want {
				t.Errorf("Guess = %q, want %q", got.Guess, tt.want)
			}
			if got.WorstCase != tt.worst {
				t.Errorf("WorstCase = %d, want %d", got.WorstCase, tt.worst)
			}
			if !slices.Equal(got.Ties, tt.ties) {
				t.Errorf("Ties = %v, want %v", got.Ties, tt.ties)
			}
		})
	}
}

func TestSelectBestGuessDeterministic(t *testing.T) {
	first, err := SelectBestGuess(sampleWords, sampleWords)
	if err != nil {
		t.Fatalf("SelectBestGuess() failed: %v", err)
	}
	reversed := slices.Clone(sampleWords)
	slices.Reverse(reversed)
	for i := 0; i < 5; i++ {
		got, err := SelectBestGuess(sampleWords, reversed)
		if err != nil {
			t.Fatalf("SelectBestGuess() failed: %v", err)
		}
		if got.Guess != first.Guess || !slices.Equal(got.Ties, first.Ties) {
			t.Errorf("run %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestSelectBestGuessEmpty(t *testing.T) {
	if _, err := SelectBestGuess(nil, []string{"crane"}); !errors.Is(err, ErrExhaustedCandidates) {
		t.Errorf("empty candidates error = %v, want exhausted candidates", err)
	}
	if _, err := SelectBestGuess([]string{"crane"}, nil); !errors.Is(err, ErrExhaustedCandidates) {
		t.Errorf("empty allowed error = %v, want exhausted candidates", err)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	allowed := append(slices.Clone(sampleWords), "adieu", "roate", "soare", "pious", "lymph", "nymph")
	subsets := [][]string{
		sampleWords,
		sampleWords[:5],
		sampleWords[4:9],
		{"crane"},
	}
	for _, candidates := range subsets {
		want, err := SelectBestGuess(candidates, allowed)
		if err != nil {
			t.Fatalf("SelectBestGuess() failed: %v", err)
		}
		for _, workers := range []int{0, 1, 2, 3, 7, 100} {
			got, err := SelectBestGuessParallel(context.Background(), candidates, allowed, workers)
			if err != nil {
				t.Fatalf("Parallel{%d}.Select() failed: %v", workers, err)
			}
			if got.Guess != want.Guess || got.WorstCase != want.WorstCase || !slices.Equal(got.Ties, want.Ties) {
				t.Errorf("Parallel{%d} = %+v, want %+v", workers, got, want)
			}
		}
	}
}

func TestSelectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	selectors := map[string]Selector{
		"sequential": Sequential{},
		"parallel":   Parallel{Workers: 2},
	}
	for name, sel := range selectors {
		t.Run(name, func(t *testing.T) {
			_, err := sel.Select(ctx, sampleWords, sampleWords)
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Select() on cancelled context = %v, want context.Canceled", err)
			}
		})
	}
}
