// Package wordle registers the classic five-letter game. Its word lists are
// embedded in the config package and can be replaced by a wordle_5.yaml in
// the user or local games directory.
package wordle

import (
	"github.com/Bibliophage305/wordle-solver/internal/config"
	"github.com/Bibliophage305/wordle-solver/internal/registry"
)

// ID is the registry ID of the built-in variant.
const ID = "wordle_5"

func init() {
	registry.Register(ID, "Wordle", Load)
}

// Load returns the wordle_5 variant.
func Load() (config.Variant, error) {
	return config.LoadVariant(ID, "")
}
