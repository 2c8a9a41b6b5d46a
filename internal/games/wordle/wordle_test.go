package wordle

import (
	"testing"

	"github.com/Bibliophage305/wordle-solver/internal/registry"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
)

func TestRegistered(t *testing.T) {
	info, ok := registry.Lookup(ID)
	if !ok {
		t.Fatalf("%s is not registered", ID)
	}
	if info.Name != "Wordle" || info.WordLength != 5 {
		t.Errorf("Lookup(%s) = %+v", ID, info)
	}
}

func TestLoadPlaysAGame(t *testing.T) {
	v, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	st, err := v.NewState(false)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}

	const answer = "crate"
	if !st.IsCandidate(answer) {
		t.Fatalf("%q is not in the word list", answer)
	}
	for round := 0; round < 8; round++ {
		sug, err := st.BestGuess()
		if err != nil {
			t.Fatalf("BestGuess() failed: %v", err)
		}
		if sug.Guess == answer {
			return
		}
		st, err = st.UpdatePattern(sug.Guess, solver.ComputeFeedback(answer, sug.Guess))
		if err != nil {
			t.Fatalf("UpdatePattern(%q) failed: %v", sug.Guess, err)
		}
	}
	t.Errorf("solver did not find %q within 8 guesses", answer)
}
