package nerdle

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/Bibliophage305/wordle-solver/internal/registry"
)

func TestEquations(t *testing.T) {
	answers, guesses := Equations(Length)
	if len(answers) != 206 || len(guesses) != 476 {
		t.Errorf("Equations(%d) = %d answers, %d guesses, want 206 and 476", Length, len(answers), len(guesses))
	}
	for _, eq := range []string{"1+9=10", "9*9=81", "12/4=3", "10-1=9"} {
		if !slices.Contains(answers, eq) {
			t.Errorf("answers missing %q", eq)
		}
	}
	for _, eq := range []string{"0*10=0", "10*0=0"} {
		if slices.Contains(answers, eq) {
			t.Errorf("answers contain %q", eq)
		}
		if !slices.Contains(guesses, eq) {
			t.Errorf("guesses missing %q", eq)
		}
	}
	if !slices.IsSorted(answers) || !slices.IsSorted(guesses) {
		t.Error("Equations() lists are not sorted")
	}
}

func TestEquationsHold(t *testing.T) {
	_, guesses := Equations(Length)
	for _, eq := range guesses {
		if len(eq) != Length {
			t.Errorf("%q has %d symbols", eq, len(eq))
		}
		lhs, rhs, ok := strings.Cut(eq, "=")
		if !ok {
			t.Fatalf("%q has no '='", eq)
		}
		i := strings.IndexAny(lhs, "+-*/")
		a, _ := strconv.Atoi(lhs[:i])
		b, _ := strconv.Atoi(lhs[i+1:])
		c, _ := strconv.Atoi(rhs)
		got, ok := apply(a, lhs[i], b)
		if !ok || got != c {
			t.Errorf("%q does not hold", eq)
		}
	}
}

func TestEquationsTooShort(t *testing.T) {
	if a, g := Equations(4); a != nil || g != nil {
		t.Errorf("Equations(4) = %v, %v, want nil", a, g)
	}
}

func TestRegistered(t *testing.T) {
	v, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create(%s) failed: %v", ID, err)
	}
	if v.WordLength != Length || len(v.Words) == 0 {
		t.Errorf("Create(%s) = %d symbols, %d words", ID, v.WordLength, len(v.Words))
	}
}
