// Package registry provides a global registry of game variants.
// Built-in games register themselves in init() functions; user variants are
// added from YAML files with LoadDir. IDs have the form <name>_<length>.
package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Bibliophage305/wordle-solver/internal/config"
)

// Factory builds a variant's word lists. It is called on every Create, so
// generated games rebuild their lists each time.
type Factory func() (config.Variant, error)

// Info contains metadata about a registered variant.
type Info struct {
	ID         string
	Name       string
	Game       string
	WordLength int
	// Builtin is false for variants loaded from disk.
	Builtin bool
}

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// SplitID splits "primel_5" into ("primel", 5).
func SplitID(id string) (game string, length int, ok bool) {
	i := strings.LastIndexByte(id, '_')
	if i <= 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n <= 0 {
		return "", 0, false
	}
	return id[:i], n, true
}

// Register adds a built-in variant. Typically called from an init() function.
// Panics if the ID is malformed or already registered.
func Register(id, name string, f Factory) {
	game, length, ok := SplitID(id)
	if !ok {
		panic(fmt.Sprintf("registry: malformed variant id %q", id))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	entries[id] = entry{
		info:    Info{ID: id, Name: name, Game: game, WordLength: length, Builtin: true},
		factory: f,
	}
}

// Add registers a variant loaded from disk, replacing any variant with the
// same ID so users can override the built-in word lists.
func Add(v config.Variant) error {
	game, length, ok := SplitID(v.ID)
	if !ok {
		return fmt.Errorf("registry: malformed variant id %q", v.ID)
	}
	if length != v.WordLength {
		return fmt.Errorf("registry: variant %q has word length %d", v.ID, v.WordLength)
	}
	name := v.Name
	if name == "" {
		name = game
	}

	mu.Lock()
	defer mu.Unlock()
	entries[v.ID] = entry{
		info:    Info{ID: v.ID, Name: name, Game: game, WordLength: length},
		factory: func() (config.Variant, error) { return v, nil },
	}
	return nil
}

// LoadDir registers every valid variant file under dir and returns how many
// were added. A missing directory is not an error.
func LoadDir(dir string) (int, error) {
	variants, err := config.NewLoader(dir).LoadAll()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	n := 0
	for _, v := range variants {
		if err := Add(v); err != nil {
			continue
		}
		n++
	}
	return n, nil
}

// List returns all registered variants: wordle first, then by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		wi, wj := result[i].Game == "wordle", result[j].Game == "wordle"
		if wi != wj {
			return wi
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Lengths returns the word lengths registered for a game name, ascending.
func Lengths(game string) []int {
	mu.RLock()
	defer mu.RUnlock()

	var out []int
	for _, e := range entries {
		if e.info.Game == game {
			out = append(out, e.info.WordLength)
		}
	}
	sort.Ints(out)
	return out
}

// Create builds a variant by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string) (config.Variant, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return config.Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}

	v, err := e.factory()
	if err != nil {
		return config.Variant{}, fmt.Errorf("registry: %s: %w", id, err)
	}
	return v, nil
}

// Lookup returns the metadata for id.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Resolve accepts either a full ID or a bare game name. A bare name resolves
// to the shortest registered length for that game.
func Resolve(name string) (string, error) {
	if Exists(name) {
		return name, nil
	}
	if lengths := Lengths(name); len(lengths) > 0 {
		return fmt.Sprintf("%s_%d", name, lengths[0]), nil
	}
	return "", fmt.Errorf("registry: unknown variant %q", name)
}
