package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-plus/internal/storage"
)

var (
	flagScoresLevel int
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard of a difficulty level",
	Long: `Display the best length of each player on one difficulty level.

Examples:
  snake scores
  snake scores --difficulty 3 --limit 10
  snake scores --store sqlite`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLevel, "difficulty", 1, "Difficulty level 1-3")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of entries to show")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	profile, err := cfg.Profile(flagScoresLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score storage: %v\n", err)
		os.Exit(1)
	}

	records, err := store.Top(profile.Level, flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Leaderboard - Level %d (%s)\n", profile.Level, profile.Name)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play --difficulty %d' to set the first one!\n", profile.Level)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Name", "Length")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "----", "------")
	for i, r := range records {
		fmt.Printf("  %-4d  %-10s  %d\n", i+1, r.Name, r.Score)
	}
}
