package solver

import (
	"slices"
	"testing"
)

var sampleWords = []string{
	"aesir", "barbs", "brass", "brine", "carbs", "crane", "crate", "fuels",
	"geese", "slate", "sleep", "spelt", "those", "trace", "abbey", "kebab",
}

func TestFilterWordsKeepsTruth(t *testing.T) {
	for _, guess := range sampleWords {
		for _, answer := range sampleWords {
			p := ComputeFeedback(answer, guess)
			got := FilterWords(sampleWords, guess, p)
			if !slices.Contains(got, answer) {
				t.Errorf("FilterWords(guess=%q, %s) = %v, lost answer %q", guess, p, got, answer)
			}
		}
	}
}

func TestFilterWordsExact(t *testing.T) {
	for _, guess := range sampleWords {
		for _, answer := range sampleWords {
			p := ComputeFeedback(answer, guess)
			for _, w := range FilterWords(sampleWords, guess, p) {
				if !ComputeFeedback(w, guess).Equal(p) {
					t.Errorf("FilterWords(guess=%q, %s) kept %q which gives %s", guess, p, w, ComputeFeedback(w, guess))
				}
			}
		}
	}
}

func TestFilterWordsIdempotentAndShrinking(t *testing.T) {
	for _, guess := range sampleWords {
		for _, answer := range sampleWords {
			p := ComputeFeedback(answer, guess)
			once := FilterWords(sampleWords, guess, p)
			twice := FilterWords(once, guess, p)
			if !slices.Equal(once, twice) {
				t.Errorf("FilterWords twice = %v, once = %v", twice, once)
			}
			if len(once) > len(sampleWords) {
				t.Errorf("FilterWords grew the set: %d > %d", len(once), len(sampleWords))
			}
		}
	}
}

func TestFilterWordsDoesNotMutateInput(t *testing.T) {
	in := slices.Clone(sampleWords)
	_ = FilterWords(in, "crane", ComputeFeedback("crate", "crane"))
	if !slices.Equal(in, sampleWords) {
		t.Errorf("FilterWords modified its input: %v", in)
	}
}

func TestFilterWordsBadPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
	}{
		{name: "short", pattern: Pattern{Correct, Correct}},
		{name: "invalid symbol", pattern: Pattern{Correct, Correct, Symbol(7), Absent, Absent}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterWords(sampleWords, "crane", tt.pattern); len(got) != 0 {
				t.Errorf("FilterWords(%v) = %v, want empty", tt.pattern, got)
			}
		})
	}
}
