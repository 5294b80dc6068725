package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-puzzles/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long:  `Shows a list of all puzzles registered in the collection.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	puzzles := registry.List()

	if len(puzzles) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range puzzles {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Title", "Default size")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "-----", "------------")

	for _, p := range puzzles {
		fmt.Printf("  %-*s  %-14s  %dx%d\n", maxIDLen, p.ID, p.Title, p.DefaultSize, p.DefaultSize)
	}

	fmt.Println()
	fmt.Println("Run 'puzzles play <id>' to play a puzzle.")
}
