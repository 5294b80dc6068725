package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tile-puzzles/internal/registry"
	"github.com/vovakirdan/tile-puzzles/internal/storage"
)

var (
	flagStatsSize   int
	flagStatsLimit  int
	flagInteractive bool
	flagClear       bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [puzzle]",
	Short: "Show solve history",
	Long: `Without arguments, summarize every puzzle that has been solved.
With a puzzle ID, list its best solves: fewest moves first, then fastest.

Examples:
  puzzles stats
  puzzles stats sliding
  puzzles stats sliding --size 3
  puzzles stats --interactive
  puzzles stats flipping --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsSize, "size", 0, "Only show solves with this many pieces per side")
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of solves to show")
	statsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse solves in a table")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the solve history of the given puzzle")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		rc := runtimeConfig()
		if _, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if len(args) == 0 {
		printAllStats(store)
		return
	}

	puzzleID := args[0]
	info, ok := registry.Lookup(puzzleID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", puzzleID)
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available puzzles.")
		return
	}

	if flagClear {
		if err := store.ClearSolves(puzzleID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared solve history for %s.\n", info.Title)
		return
	}

	solves, err := store.TopSolves(puzzleID, flagStatsSize, flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		return
	}

	fmt.Printf("Best Solves - %s\n", info.Title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'puzzles play %s' to set the first record!\n", puzzleID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-12s  %s\n", "Rank", "Size", "Moves", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-12s  %s\n", "----", "----", "-----", "----", "------", "----")

	for i, e := range solves {
		size := fmt.Sprintf("%dx%d", e.PiecesPerSide, e.PiecesPerSide)
		fmt.Printf("  %-4d  %-5s  %-6d  %-6s  %-12s  %s\n",
			i+1, size, e.Moves, tui.FormatDuration(e.Duration), e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.Stats(puzzleID); err == nil {
		fmt.Println()
		fmt.Printf("Solves: %d   Average moves: %.1f   Fastest: %s\n",
			st.Solves, st.AvgMoves, tui.FormatDuration(st.Fastest))
	}
}

func printAllStats(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Println("Solve history")
	fmt.Println()

	if len(all) == 0 {
		fmt.Println("No solves recorded yet.")
		return
	}

	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %-7s  %s\n", "Puzzle", "Solves", "Fewest", "Average", "Fastest", "Last")
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %-7s  %s\n", "------", "------", "------", "-------", "-------", "----")

	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-6d  %-8.1f  %-7s  %s\n",
			info.ID, st.Solves, st.FewestMoves, st.AvgMoves, tui.FormatDuration(st.Fastest),
			st.LastSolved.Format("2006-01-02"))
	}
}
