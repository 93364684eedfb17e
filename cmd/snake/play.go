package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-plus/internal/core"
	"github.com/vovakirdan/snake-plus/internal/platform/tui"
	"github.com/vovakirdan/snake-plus/internal/replay"
	"github.com/vovakirdan/snake-plus/internal/session"
)

var (
	flagDifficulty int
	flagName       string
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on the cover screen.

Controls:
  Arrows/WASD - Steer
  Y/R         - Play again (after game over)
  N           - Show the leaderboard and exit (after game over)
  Esc/Q       - Quit

Setting both --difficulty and --name skips the setup screens.

Examples:
  snake play
  snake play --difficulty 3
  snake play --difficulty 1 --name bob
  snake play --record run.parquet`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags binds the play flags to cmd. The root command shares them so
// that "snake" alone behaves like "snake play".
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagDifficulty, "difficulty", 0, "Difficulty level 1-3 (0 = ask)")
	cmd.Flags().StringVar(&flagName, "name", "", "Player name (empty = ask)")
	cmd.Flags().StringVar(&flagRecord, "record", "", "Record every tick to a parquet file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != 0 {
		if _, err := cfg.Profile(flagDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	player := ""
	if flagName != "" {
		if player, err = session.NormalizeName(flagName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error opening score storage: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the first frame
	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	opts := tui.Options{
		Config:  cfg,
		Store:   store,
		Logger:  logger,
		Runtime: rt,
		Level:   flagDifficulty,
		Player:  player,
	}

	var rec *replay.Recorder
	if flagRecord != "" {
		rec, err = replay.NewRecorder(flagRecord)
		if err != nil {
			store.Close()
			closeLog()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Recorder = rec
	}

	runErr := tui.Run(opts)

	if rec != nil {
		if err := rec.Close(); err != nil {
			logger.Error("could not finish recording", "path", flagRecord, "error", err)
			fmt.Fprintf(os.Stderr, "Warning: recording not saved: %v\n", err)
		} else {
			logger.Info("recording saved", "path", flagRecord, "frames", rec.Rows())
		}
	}
	store.Close()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
