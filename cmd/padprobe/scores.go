package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/padprobe/padprobe/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best recorded runs",
	Long: `Display the top 10 recorded runs.

Examples:
  padprobe scores
  padprobe scores --db ./runs.db`,
	Run: runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'padprobe play' to record the first run!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "Rank", "Score", "Ticks", "Peak NRG", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "----", "-----", "-----", "--------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-8.0f  %s\n", i+1, entry.Score, entry.Ticks, entry.PeakEnergy, dateStr)
	}

	fmt.Println()
	if best, bestErr := store.HighScore(); bestErr == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
