package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bibliophage305/wordle-solver/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long: `Shows every registered puzzle variant: the built-in ones and any
loaded from ~/.wordle/games or ./games.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
		maxNameLen = max(maxNameLen, len(v.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Length", "Source")
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "--", maxNameLen, "----", "------", "------")

	for _, v := range variants {
		source := "built-in"
		if !v.Builtin {
			source = "file"
		}
		fmt.Printf("  %-*s  %-*s  %-6d  %s\n", maxIDLen, v.ID, maxNameLen, v.Name, v.WordLength, source)
	}

	fmt.Println()
	fmt.Println("Run 'wordle play <id>' to solve a puzzle.")
}
