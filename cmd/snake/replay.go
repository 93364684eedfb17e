package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-plus/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Summarize a recorded session",
	Long: `Read a parquet recording made with "snake play --record" and print
what happened in it.

Examples:
  snake replay run.parquet`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	frames, err := replay.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(frames) == 0 {
		fmt.Println("Recording is empty.")
		return
	}

	s := replay.Summarize(frames)
	fmt.Printf("Recording %s\n", args[0])
	fmt.Println()
	fmt.Printf("  %-14s %d\n", "Ticks", s.Ticks)
	fmt.Printf("  %-14s %v\n", "Levels", s.Levels)
	fmt.Printf("  %-14s %d\n", "Final length", s.FinalLength)
	fmt.Printf("  %-14s %d\n", "Max length", s.MaxLength)
	fmt.Printf("  %-14s %d fps\n", "Max speed", s.MaxRate)
	fmt.Printf("  %-14s %d\n", "Foods eaten", s.FoodsEaten)
	fmt.Printf("  %-14s %d\n", "Boosts taken", s.BoostsTaken)
	fmt.Printf("  %-14s %d\n", "Teleports", s.Teleports)
	fmt.Printf("  %-14s %d\n", "Self bites", s.Truncations)
	fmt.Printf("  %-14s %d\n", "Game overs", s.GameOvers)
}
