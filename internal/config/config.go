// Package config provides YAML-based game variant configuration and the
// user settings file for the solver CLI.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/Bibliophage305/wordle-solver/internal/solver"
)

// Variant describes one puzzle: its word length, the words that can be the
// answer and the extra words that may only be guessed.
type Variant struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	WordLength  int      `yaml:"word_length"`
	Words       []string `yaml:"words,omitempty"`
	Guesses     []string `yaml:"guesses,omitempty"`
	WordsFile   string   `yaml:"words_file,omitempty"`   // relative to the YAML file
	GuessesFile string   `yaml:"guesses_file,omitempty"` // relative to the YAML file
	FirstGuess  string   `yaml:"first_guess,omitempty"`
	HardMode    bool     `yaml:"hard_mode"`

	// Source is where the variant was loaded from; empty for built-ins.
	Source string `yaml:"-"`
}

// AllGuesses returns the guess list merged with the word list, which is the
// set the solver accepts. Order is guesses first, duplicates kept.
func (v Variant) AllGuesses() []string {
	out := make([]string, 0, len(v.Guesses)+len(v.Words))
	out = append(out, v.Guesses...)
	return append(out, v.Words...)
}

// NewState builds the solver state for the variant.
func (v Variant) NewState(hard bool) (solver.GameState, error) {
	return solver.Initialize(v.WordLength, v.Words, v.AllGuesses(), hard)
}

// ValidationError describes why a variant was rejected. It matches
// solver.ErrConfiguration under errors.Is.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: [%s] %s", e.Code, e.Message)
}

func (e ValidationError) Unwrap() error {
	return solver.ErrConfiguration
}

// Validate checks a variant after its word files have been read.
func Validate(v Variant) error {
	if v.ID == "" {
		return ValidationError{Code: "MISSING_ID", Message: "variant has no id"}
	}
	if v.WordLength <= 0 {
		return ValidationError{
			Code:    "BAD_LENGTH",
			Message: fmt.Sprintf("%s: word_length must be positive, got %d", v.ID, v.WordLength),
		}
	}
	if len(v.Words) == 0 {
		return ValidationError{Code: "NO_WORDS", Message: fmt.Sprintf("%s: word list is empty", v.ID)}
	}
	for _, list := range [][]string{v.Words, v.Guesses} {
		for _, w := range list {
			if n := utf8.RuneCountInString(w); n != v.WordLength {
				return ValidationError{
					Code:    "LENGTH_MISMATCH",
					Message: fmt.Sprintf("%s: %q has length %d, want %d", v.ID, w, n, v.WordLength),
				}
			}
		}
	}
	if v.FirstGuess != "" && !contains(v.Words, v.FirstGuess) && !contains(v.Guesses, v.FirstGuess) {
		return ValidationError{
			Code:    "BAD_FIRST_GUESS",
			Message: fmt.Sprintf("%s: first guess %q is not in the word lists", v.ID, v.FirstGuess),
		}
	}
	return nil
}

func contains(list []string, w string) bool {
	for _, x := range list {
		if x == w {
			return true
		}
	}
	return false
}
