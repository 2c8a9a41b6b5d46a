package config

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed defaults
var defaultFS embed.FS

// DefaultVariant returns a built-in variant by ID, reading its word lists
// from the embedded defaults directory.
func DefaultVariant(id string) (Variant, error) {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		return Variant{}, fmt.Errorf("config: embedded defaults: %w", err)
	}
	data, err := fs.ReadFile(sub, id+".yaml")
	if err != nil {
		return Variant{}, fmt.Errorf("config: no built-in variant %q: %w", id, ErrNotFound)
	}
	return ParseVariant(data, sub)
}
