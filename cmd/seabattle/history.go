package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently finished matches",
	Long: `Display the most recent finished matches, newest first.

Examples:
  seabattle history
  seabattle history --limit 25
  seabattle history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded matches")
}

func runHistory(cmd *cobra.Command, args []string) {
	dbPath, err := historyPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open history storage
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	records, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Println("Recent matches")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'seabattle' to play the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-8s  %-11s  %-5s  %-8s  %s\n", "Date", "Winner", "Shots (h/c)", "Turns", "Duration", "Seed")
	fmt.Printf("  %-16s  %-8s  %-11s  %-5s  %-8s  %s\n", "----", "------", "-----------", "-----", "--------", "----")

	for _, rec := range records {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		shots := fmt.Sprintf("%d/%d", rec.HumanShots, rec.ComputerShots)
		fmt.Printf("  %-16s  %-8s  %-11s  %-5d  %-8s  %d\n",
			dateStr, rec.Winner, shots, rec.Turns, rec.Duration.Round(time.Second), rec.Seed)
	}
}
