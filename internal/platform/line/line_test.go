package line

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Bibliophage305/wordle-solver/internal/config"
	"github.com/Bibliophage305/wordle-solver/internal/session"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New(context.Background(), session.Options{
		Variant: config.Variant{
			ID:         "test_5",
			WordLength: 5,
			Words:      []string{"abcde", "fghij"},
			FirstGuess: "abcde",
		},
	})
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}
	return s
}

func run(t *testing.T, input string) (string, error) {
	t.Helper()
	var out strings.Builder
	err := New(strings.NewReader(input), &out).Run(context.Background(), newSession(t))
	return out.String(), err
}

func TestRunWin(t *testing.T) {
	out, err := run(t, "\n00000\ny\n22222\n")
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	for _, want := range []string{
		"Guess 1\n",
		"2 words remaining: abcde, fghij\n",
		"Suggested guess: abcde\n",
		"Guess 2\n",
		"Suggested guess: fghij\n",
		"You win! The word was fghij, and you guessed it in 2 guesses\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunReprompts(t *testing.T) {
	out, err := run(t, "maybe\nn\nzzzzz\nFGHIJ\n012\n22222\n")
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	for _, want := range []string{
		"Invalid input, must be y or n\n",
		"Invalid guess: zzzzz",
		"Invalid result\n",
		"You win! The word was fghij, and you guessed it in 1 guesses\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunExhausted(t *testing.T) {
	out, err := run(t, "y\n11111\n")
	if !errors.Is(err, solver.ErrExhaustedCandidates) {
		t.Errorf("Run() error = %v, want exhausted candidates", err)
	}
	if !strings.Contains(out, "Something went wrong, all words have been eliminated") {
		t.Errorf("output missing failure message:\n%s", out)
	}
}

func TestRunInputClosed(t *testing.T) {
	_, err := run(t, "y\n")
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("Run() error = %v, want ErrInputClosed", err)
	}
}
