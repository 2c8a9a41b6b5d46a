package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no source provides the requested variant.
var ErrNotFound = errors.New("variant not found")

// LocalGamesDir is searched after the user directory.
const LocalGamesDir = "games"

// LoadVariant loads a game variant by ID.
// Search order: customPath -> ~/.wordle/games/<id>.yaml -> ./games/<id>.yaml -> embedded default
func LoadVariant(id, customPath string) (Variant, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user games directory
	if dir := UserGamesDir(); dir != "" {
		if v, err := LoadFile(filepath.Join(dir, id+".yaml")); err == nil {
			return v, nil
		}
	}

	// Try local games directory
	if v, err := LoadFile(filepath.Join(LocalGamesDir, id+".yaml")); err == nil {
		return v, nil
	}

	return DefaultVariant(id)
}

// LoadFile reads a variant YAML file. Word files named in it are resolved
// relative to the file's directory.
func LoadFile(path string) (Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Variant{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	v, err := ParseVariant(data, os.DirFS(filepath.Dir(path)))
	if err != nil {
		return Variant{}, fmt.Errorf("config: %s: %w", path, err)
	}
	v.Source = path
	return v, nil
}

// ParseVariant decodes variant YAML and reads any word files from fsys.
// The result has been validated.
func ParseVariant(data []byte, fsys fs.FS) (Variant, error) {
	var v Variant
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Variant{}, fmt.Errorf("failed to parse variant: %w", err)
	}

	v.Words = normalizeWords(v.Words)
	v.Guesses = normalizeWords(v.Guesses)
	v.FirstGuess = strings.ToLower(strings.TrimSpace(v.FirstGuess))

	if v.WordsFile != "" {
		words, err := readWordFile(fsys, v.WordsFile)
		if err != nil {
			return Variant{}, err
		}
		v.Words = append(v.Words, words...)
	}
	if v.GuessesFile != "" {
		guesses, err := readWordFile(fsys, v.GuessesFile)
		if err != nil {
			return Variant{}, err
		}
		v.Guesses = append(v.Guesses, guesses...)
	}

	if err := Validate(v); err != nil {
		return Variant{}, err
	}
	return v, nil
}

func readWordFile(fsys fs.FS, name string) ([]string, error) {
	var (
		f   io.ReadCloser
		err error
	)
	if filepath.IsAbs(name) {
		f, err = os.Open(name)
	} else {
		f, err = fsys.Open(filepath.ToSlash(name))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", name, err)
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", name, err)
	}
	return words, nil
}

// ReadWords reads one word per line, lowercased and trimmed. Blank lines and
// lines starting with # are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

func normalizeWords(list []string) []string {
	out := list[:0:0]
	for _, w := range list {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// UserGamesDir returns ~/.wordle/games, or empty if home is unavailable.
func UserGamesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordle", "games")
}

// Loader reads every variant file under a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new variant loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all variant files.
// Returns variants sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Variant, error) {
	var variants []Variant

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		v, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		variants = append(variants, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("config: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(variants, func(i, j int) bool {
		return variants[i].ID < variants[j].ID
	})
	return variants, nil
}

// LoadByID loads a specific variant by ID.
func (l *Loader) LoadByID(id string) (Variant, error) {
	variants, err := l.LoadAll()
	if err != nil {
		return Variant{}, err
	}
	for _, v := range variants {
		if v.ID == id {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("config: %s in %s: %w", id, l.Root, ErrNotFound)
}
