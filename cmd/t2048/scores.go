package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the top 10 recorded games.

Examples:
  t2048 scores
  t2048 scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, warnings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if flagDBPath != "" {
		cfg.Scores.DB = flagDBPath
	}

	store, err := storage.Open(cfg.Scores.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Max Tile", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "--------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %s\n", i+1, entry.Score, entry.MaxTile, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
