package solver

// FilterWords returns the words that would have produced pattern had they been
// the answer to guess. The input slice is not modified and the result is a new
// slice in the same order. An empty result is returned as-is; deciding what an
// empty set means is up to the caller.
func FilterWords(words []string, guess string, pattern Pattern) []string {
	g := []rune(guess)
	if len(pattern) != len(g) {
		return []string{}
	}
	for _, s := range pattern {
		if !s.Valid() {
			return []string{}
		}
	}
	want := pattern.code()
	out := make([]string, 0, len(words)/4+1)
	for _, w := range words {
		if feedbackCode([]rune(w), g) == want {
			out = append(out, w)
		}
	}
	return out
}
