// snake is the Snake Plus arcade game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play, optionally skipping setup screens
//	snake scores             - Show the leaderboard of a level
//	snake replay <file>      - Summarize a recorded session
//	snake config             - Print the configuration in effect
//
// Global flags:
//
//	--config <path>      - Custom snake.yaml
//	--scores-dir <dir>   - Where scores are kept (default: ~/.snakeplus)
//	--store <kind>       - Score backend: file or sqlite (default: file)
//	--seed <value>       - RNG seed for reproducible rounds
//	--log-file <path>    - Log destination (default: ~/.snakeplus/snake.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-plus/internal/config"
	"github.com/vovakirdan/snake-plus/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagScoresDir string
	flagStore     string
	flagSeed      int64
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake Plus - snake with teleporting walls, boosts and self-biting",
	Long: `Snake Plus is a terminal snake game. The walls teleport you to a random
edge, eating food reverses the snake, and biting yourself cuts the body
instead of ending the round. Only obstacles are fatal.

Available commands:
  play     - Play the game (default)
  scores   - View the leaderboard of a difficulty level
  replay   - Summarize a recorded session
  config   - Print the configuration in effect

Examples:
  snake
  snake play --difficulty 2 --name alice
  snake scores --difficulty 3
  snake play --record run.parquet && snake replay run.parquet`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagScoresDir, "scores-dir", "~/.snakeplus", "Directory for score files")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storage.KindFile,
		"Score backend: "+strings.Join(storage.Kinds(), ", "))
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.snakeplus/snake.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the configuration named by --config.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// openStore opens the score backend named by --store.
func openStore() (storage.Store, error) {
	return storage.Open(flagStore, flagScoresDir)
}

// openLogger opens the log file. The terminal belongs to the UI, so logs never
// go to stderr while playing. The returned close function is never nil.
func openLogger() (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path, err := storage.ExpandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, f.Close, nil
}
