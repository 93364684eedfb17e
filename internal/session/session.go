// Package session runs one player's game at one difficulty: it feeds queued
// events to the engine, steps it once per frame and persists the scores the
// engine reports.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-plus/internal/config"
	"github.com/vovakirdan/snake-plus/internal/replay"
	"github.com/vovakirdan/snake-plus/internal/snake"
	"github.com/vovakirdan/snake-plus/internal/storage"
)

// Recorder receives one frame per processed tick.
type Recorder interface {
	Record(f replay.Frame) error
}

// Options configures a session.
type Options struct {
	Config   config.Config
	Level    int
	Player   string
	Store    storage.Store // Required
	Logger   *log.Logger   // Nil discards logs
	Recorder Recorder      // Optional
	Seed     int64
}

// Session owns the game and its side effects.
type Session struct {
	cfg      config.Config
	profile  config.DifficultyProfile
	player   string
	store    storage.Store
	logger   *log.Logger
	recorder Recorder
	game     *snake.Game
}

// FrameResult is what the platform needs after a frame.
type FrameResult struct {
	Snapshot snake.Snapshot
	Step     snake.StepResult
	Quit     bool
	// Warning is a non-fatal failure: a score or replay write error.
	Warning error
	// Err is fatal: the round could not be reset.
	Err error
}

// New validates the options and starts the first round.
func New(opts Options) (*Session, error) {
	player, err := NormalizeName(opts.Player)
	if err != nil {
		return nil, err
	}
	if opts.Store == nil {
		return nil, errors.New("session: a score store is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	profile, err := opts.Config.Profile(opts.Level)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:      opts.Config,
		profile:  profile,
		player:   player,
		store:    opts.Store,
		logger:   logger.With("level", profile.Level, "player", player),
		recorder: opts.Recorder,
		game:     snake.New(opts.Config, profile),
	}
	if err := s.game.Reset(opts.Seed); err != nil {
		return nil, fmt.Errorf("session: reset: %w", err)
	}

	s.logger.Info("session started",
		"difficulty", profile.Name,
		"grid", fmt.Sprintf("%dx%d", opts.Config.Grid.Width, opts.Config.Grid.Height),
		"seed", opts.Seed,
	)
	return s, nil
}

// Player returns the normalized player name.
func (s *Session) Player() string { return s.player }

// Profile returns the difficulty profile in use.
func (s *Session) Profile() config.DifficultyProfile { return s.profile }

// Rate returns the frames per second to run the next frame at.
func (s *Session) Rate() int { return s.game.Rate() }

// State returns the engine state.
func (s *Session) State() snake.State { return s.game.State() }

// Snapshot returns the current game view.
func (s *Session) Snapshot() snake.Snapshot { return s.game.Snapshot() }

// Timers returns the periodic events the platform must deliver.
func (s *Session) Timers() []snake.Timer {
	return snake.Schedule(s.cfg, s.profile)
}

// Frame applies events in arrival order, then runs one tick. A quit event
// stops processing; the remaining events and the tick are skipped.
func (s *Session) Frame(events []snake.Event) FrameResult {
	var res FrameResult

	for _, ev := range events {
		if ev.Kind == snake.EventQuit {
			res.Quit = true
			res.Snapshot = s.game.Snapshot()
			return res
		}

		wasOver := s.game.State() == snake.StateGameOver
		if err := s.game.Apply(ev); err != nil {
			s.logger.Error("reset failed", "error", err)
			res.Err = err
			res.Snapshot = s.game.Snapshot()
			return res
		}
		if wasOver && s.game.State() == snake.StateIdle {
			s.logger.Info("round restarted")
		}
	}

	res.Step = s.game.Step()
	res.Snapshot = s.game.Snapshot()

	if sc := res.Step.Score; sc != nil {
		res.Warning = s.saveScore(*sc)
	}
	if res.Step.Moved {
		if err := s.record(replay.FrameOf(res.Snapshot, res.Step)); err != nil && res.Warning == nil {
			res.Warning = err
		}
	}
	return res
}

func (s *Session) saveScore(sc snake.ScoreEvent) error {
	switch sc.Reason {
	case snake.ScoreGameOver:
		s.logger.Info("game over", "length", sc.Score)
	case snake.ScoreTruncated:
		s.logger.Info("snake bit itself", "length", sc.Score)
	}

	rec := storage.Record{Name: s.player, Score: sc.Score}
	if err := s.store.Save(s.profile.Level, rec); err != nil {
		s.logger.Warn("could not save score", "score", sc.Score, "error", err)
		return fmt.Errorf("session: save score: %w", err)
	}
	s.logger.Debug("score saved", "score", sc.Score, "reason", sc.Reason)
	return nil
}

// record writes a frame and detaches the recorder after its first failure.
func (s *Session) record(f replay.Frame) error {
	if s.recorder == nil {
		return nil
	}
	if err := s.recorder.Record(f); err != nil {
		s.logger.Warn("recording stopped", "error", err)
		s.recorder = nil
		return fmt.Errorf("session: record frame: %w", err)
	}
	return nil
}

// Leaderboard returns the top scores for the session's level.
func (s *Session) Leaderboard(limit int) ([]storage.Record, error) {
	return s.store.Top(s.profile.Level, limit)
}
