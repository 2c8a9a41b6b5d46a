// Package nerdle registers Mini Nerdle: six-symbol equations of the form
// a op b = c over non-negative integers.
package nerdle

import (
	"slices"
	"strconv"

	"github.com/Bibliophage305/wordle-solver/internal/config"
	"github.com/Bibliophage305/wordle-solver/internal/registry"
)

// ID is the registry ID of the built-in variant.
const ID = "mininerdle_6"

// Length is the number of symbols in a Mini Nerdle equation.
const Length = 6

var operators = []byte{'+', '-', '*', '/'}

func init() {
	registry.Register(ID, "Mini Nerdle", func() (config.Variant, error) {
		answers, guesses := Equations(Length)
		return config.Variant{
			ID:         ID,
			Name:       "Mini Nerdle",
			WordLength: Length,
			Words:      answers,
			Guesses:    guesses,
		}, nil
	})
}

// Equations returns every valid equation with exactly length symbols. Any
// of them may be guessed; answers leave out those with a lone 0 operand or
// result. Division must be exact and results must not be negative. Both
// lists are sorted.
func Equations(length int) (answers, guesses []string) {
	// a, op, b, '=', c: the three numbers share length-2 digits.
	digits := length - 2
	if digits < 3 {
		return nil, nil
	}
	limit := 1
	for i := 0; i < digits-2; i++ {
		limit *= 10
	}

	for a := 0; a < limit; a++ {
		for b := 0; b < limit; b++ {
			for _, op := range operators {
				c, ok := apply(a, op, b)
				if !ok {
					continue
				}
				eq := strconv.Itoa(a) + string(op) + strconv.Itoa(b) + "=" + strconv.Itoa(c)
				if len(eq) != length {
					continue
				}
				guesses = append(guesses, eq)
				if a != 0 && b != 0 && c != 0 {
					answers = append(answers, eq)
				}
			}
		}
	}
	slices.Sort(answers)
	slices.Sort(guesses)
	return answers, guesses
}

func apply(a int, op byte, b int) (int, bool) {
	switch op {
	case '+':
		return a + b, true
	case '-':
		return a - b, a >= b
	case '*':
		return a * b, true
	case '/':
		if b == 0 || a%b != 0 {
			return 0, false
		}
		return a / b, true
	}
	return 0, false
}
