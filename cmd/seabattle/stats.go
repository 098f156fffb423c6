package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show win/loss statistics",
	Long: `Display totals over all recorded matches.

Examples:
  seabattle stats
  seabattle stats --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	dbPath, err := historyPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Println("Sea Battle statistics")
	fmt.Println()

	if stats.Matches == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-22s  %d\n", "Matches played", stats.Matches)
	fmt.Printf("  %-22s  %d (%.0f%%)\n", "Won", stats.HumanWins, winRate(stats))
	fmt.Printf("  %-22s  %d\n", "Lost", stats.ComputerWins)
	fmt.Printf("  %-22s  %.1f\n", "Average shots", stats.AvgHumanShots)
	if stats.BestWinShots > 0 {
		fmt.Printf("  %-22s  %d shots\n", "Fastest win", stats.BestWinShots)
	}
	fmt.Printf("  %-22s  %s\n", "Last played", stats.LastPlayed.Format("2006-01-02 15:04"))
}

func winRate(s *storage.Stats) float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.HumanWins) * 100 / float64(s.Matches)
}
