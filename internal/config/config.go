// Package config provides YAML-based game configuration loading and the
// per-level difficulty profiles.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all tuning values for one game session.
// It is loaded once and passed by value; nothing mutates it afterwards.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Speed      SpeedConfig      `yaml:"speed"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Start      StartConfig      `yaml:"start"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the frame rate ramp and the boost override.
type SpeedConfig struct {
	BaseRate           int  `yaml:"base_rate"`            // Frames per second at reset
	RampEnabled        bool `yaml:"ramp_enabled"`         // Whether the base rate climbs over time
	RampEveryTicks     int  `yaml:"ramp_every_ticks"`     // Ticks between +1 base rate steps
	BoostDurationTicks int  `yaml:"boost_duration_ticks"` // Ticks a boost stays active
	BoostRateIncrease  int  `yaml:"boost_rate_increase"`  // Added to the base rate while boosted
}

// SpawnConfig defines the timer-driven entity spawns.
type SpawnConfig struct {
	FoodIntervalMS        int `yaml:"food_interval_ms"`
	BoostIntervalMS       int `yaml:"boost_interval_ms"`
	MaxBoosts             int `yaml:"max_boosts"`
	PlacementAttempts     int `yaml:"placement_attempts"`
	ObstacleRelocateCount int `yaml:"obstacle_relocate_count"` // 0 = use the level's obstacle_count
}

// StartConfig defines where the snake appears after a reset.
type StartConfig struct {
	Randomized bool `yaml:"randomized"`
	Margin     int  `yaml:"margin"` // Minimum distance of a randomized head from any edge
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width < 3 || c.Grid.Height < 3:
		return fmt.Errorf("%w: grid must be at least 3x3, got %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Speed.BaseRate <= 0:
		return fmt.Errorf("%w: speed.base_rate must be positive", ErrInvalidConfig)
	case c.Speed.RampEnabled && c.Speed.RampEveryTicks <= 0:
		return fmt.Errorf("%w: speed.ramp_every_ticks must be positive when the ramp is enabled", ErrInvalidConfig)
	case c.Speed.BoostDurationTicks <= 0:
		return fmt.Errorf("%w: speed.boost_duration_ticks must be positive", ErrInvalidConfig)
	case c.Speed.BoostRateIncrease < 0:
		return fmt.Errorf("%w: speed.boost_rate_increase must not be negative", ErrInvalidConfig)
	case c.Spawn.FoodIntervalMS < 0 || c.Spawn.BoostIntervalMS < 0:
		return fmt.Errorf("%w: spawn intervals must not be negative", ErrInvalidConfig)
	case c.Spawn.PlacementAttempts <= 0:
		return fmt.Errorf("%w: spawn.placement_attempts must be positive", ErrInvalidConfig)
	case c.Spawn.MaxBoosts < 0 || c.Spawn.ObstacleRelocateCount < 0:
		return fmt.Errorf("%w: spawn counts must not be negative", ErrInvalidConfig)
	case c.Start.Margin < 1:
		return fmt.Errorf("%w: start.margin must be at least 1", ErrInvalidConfig)
	}

	if c.Start.Randomized && (c.Grid.Width <= 2*c.Start.Margin || c.Grid.Height <= 2*c.Start.Margin) {
		return fmt.Errorf("%w: grid %dx%d is too small for start margin %d",
			ErrInvalidConfig, c.Grid.Width, c.Grid.Height, c.Start.Margin)
	}

	return c.Difficulty.validate()
}
