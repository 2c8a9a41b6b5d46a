// Package line is the plain prompt-and-answer front end, used when stdin is
// not a terminal or when the user asks for it.
package line

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Bibliophage305/wordle-solver/internal/session"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
)

const rule = "--------------------------------------------------------------------------------"

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("line: input closed")

// Prompter runs a session over a reader and a writer.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Run plays s to the end. A game in which every candidate was eliminated
// ends with solver.ErrExhaustedCandidates.
func (p *Prompter) Run(ctx context.Context, s *session.Session) error {
	if s.OpeningSource() == session.SourceComputed {
		p.printf("First guess recalculated: %s\n", s.Suggestion().Guess)
	}

	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.printf("%s\nGuess %d\n", rule, s.GuessNumber())
		p.printRemaining(s.State())

		guess, err := p.askGuess(s)
		if err != nil {
			return err
		}
		if err := p.askResult(ctx, s, guess); err != nil {
			return err
		}
	}

	st := s.State()
	if answer, ok := st.Answer(); ok && st.Status() == solver.Solved {
		p.printf("%s\nYou win! The word was %s, and you guessed it in %d guesses\n", rule, answer, st.Rounds())
		return nil
	}
	p.printf("Something went wrong, all words have been eliminated\n")
	return solver.ErrExhaustedCandidates
}

func (p *Prompter) printRemaining(st solver.GameState) {
	n := st.CandidateCount()
	if n <= session.ListThreshold {
		p.printf("%d words remaining: %s\n", n, strings.Join(st.Candidates(), ", "))
		return
	}
	p.printf("%d words remaining\n", n)
}

func (p *Prompter) askGuess(s *session.Session) (string, error) {
	suggested := s.Suggestion().Guess
	p.printf("Suggested guess: %s\n", suggested)

	for {
		answer, err := p.ask("Use suggested guess? (Y/n) ")
		if err != nil {
			return "", err
		}
		switch strings.ToLower(answer) {
		case "", "y", "yes":
			return suggested, nil
		case "n", "no":
		default:
			p.printf("Invalid input, must be y or n\n")
			continue
		}
		break
	}

	for {
		guess, err := p.ask("Enter your guess: ")
		if err != nil {
			return "", err
		}
		guess = strings.ToLower(guess)
		if err := s.CheckGuess(guess); err != nil {
			p.printf("Invalid guess: %s is not in the list of valid guesses\n", guess)
			continue
		}
		return guess, nil
	}
}

func (p *Prompter) askResult(ctx context.Context, s *session.Session, guess string) error {
	for {
		raw, err := p.ask("Result: ")
		if err != nil {
			return err
		}
		err = s.Submit(ctx, guess, raw)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, solver.ErrInvalidPattern):
			p.printf("Invalid result\n")
			p.printf("Result must be a string of 0, 1, and 2, where 0 is grey, 1 is yellow, and 2 is green\n")
		case errors.Is(err, solver.ErrExhaustedCandidates):
			return nil
		default:
			return err
		}
	}
}

func (p *Prompter) ask(prompt string) (string, error) {
	p.printf("%s", prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("line: read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
