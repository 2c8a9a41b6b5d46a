// Package primel registers Primel, where the answers are five-digit primes.
package primel

import (
	"strconv"

	"github.com/Bibliophage305/wordle-solver/internal/config"
	"github.com/Bibliophage305/wordle-solver/internal/registry"
)

// ID is the registry ID of the built-in variant.
const ID = "primel_5"

func init() {
	registry.Register(ID, "Primel", func() (config.Variant, error) {
		return Variant(5), nil
	})
}

// Variant builds a Primel game over all primes with exactly digits digits.
// Every prime is both a possible answer and a legal guess.
func Variant(digits int) config.Variant {
	words := Primes(digits)
	return config.Variant{
		ID:         "primel_" + strconv.Itoa(digits),
		Name:       "Primel",
		WordLength: digits,
		Words:      words,
		Guesses:    words,
	}
}

// Primes returns the primes with exactly digits decimal digits as strings,
// ascending.
func Primes(digits int) []string {
	if digits <= 0 || digits > 9 {
		return nil
	}
	lo, hi := 1, 10
	for i := 1; i < digits; i++ {
		lo *= 10
		hi *= 10
	}
	if digits == 1 {
		lo = 0
	}

	var out []string
	for _, p := range sieve(hi) {
		if p >= lo {
			out = append(out, strconv.Itoa(p))
		}
	}
	return out
}

// sieve returns every prime below max.
func sieve(max int) []int {
	if max < 3 {
		return nil
	}
	composite := make([]bool, max)
	var primes []int
	for i := 2; i < max; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j < max; j += i {
			composite[j] = true
		}
	}
	return primes
}
