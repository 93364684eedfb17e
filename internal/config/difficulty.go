package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownLevel is returned when a difficulty level has no profile.
var ErrUnknownLevel = errors.New("config: unknown difficulty level")

// Difficulty levels selectable at session start.
const (
	MinLevel = 1
	MaxLevel = 3
)

// DifficultyConfig holds one profile per selectable level.
type DifficultyConfig struct {
	Levels map[int]LevelConfig `yaml:"levels"`
}

// LevelConfig is the YAML form of a difficulty profile.
type LevelConfig struct {
	Name               string `yaml:"name"`
	ObstacleRelocateMS int    `yaml:"obstacle_relocate_ms"` // 0 = obstacles never move
	FoodRelocateMS     int    `yaml:"food_relocate_ms"`     // 0 = food never moves
	ObstacleCount      int    `yaml:"obstacle_count"`
	FoodCount          int    `yaml:"food_count"`
}

// DifficultyProfile is the immutable per-level record selected once per session.
type DifficultyProfile struct {
	Level         int
	Name          string
	ObstacleCount int
	FoodCount     int

	obstacleRelocate time.Duration
	foodRelocate     time.Duration
}

// ObstacleRelocateEvery returns the obstacle relocation period, 0 if disabled.
func (p DifficultyProfile) ObstacleRelocateEvery() time.Duration {
	return p.obstacleRelocate
}

// FoodRelocateEvery returns the food relocation period, 0 if disabled.
func (p DifficultyProfile) FoodRelocateEvery() time.Duration {
	return p.foodRelocate
}

// Profile returns the difficulty profile for a level.
func (c Config) Profile(level int) (DifficultyProfile, error) {
	lc, ok := c.Difficulty.Levels[level]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("%w: %d", ErrUnknownLevel, level)
	}

	name := lc.Name
	if name == "" {
		name = fmt.Sprintf("Level %d", level)
	}

	return DifficultyProfile{
		Level:            level,
		Name:             name,
		ObstacleCount:    lc.ObstacleCount,
		FoodCount:        lc.FoodCount,
		obstacleRelocate: time.Duration(lc.ObstacleRelocateMS) * time.Millisecond,
		foodRelocate:     time.Duration(lc.FoodRelocateMS) * time.Millisecond,
	}, nil
}

// Levels returns the selectable levels in ascending order.
func (c Config) Levels() []int {
	levels := make([]int, 0, MaxLevel)
	for l := MinLevel; l <= MaxLevel; l++ {
		if _, ok := c.Difficulty.Levels[l]; ok {
			levels = append(levels, l)
		}
	}
	return levels
}

// FoodSpawnEvery returns the period of the always-on food spawn timer.
func (c Config) FoodSpawnEvery() time.Duration {
	return time.Duration(c.Spawn.FoodIntervalMS) * time.Millisecond
}

// BoostSpawnEvery returns the period of the always-on boost spawn timer.
func (c Config) BoostSpawnEvery() time.Duration {
	return time.Duration(c.Spawn.BoostIntervalMS) * time.Millisecond
}

// RelocateObstacleCount returns how many obstacles a relocation samples.
func (c Config) RelocateObstacleCount(p DifficultyProfile) int {
	if c.Spawn.ObstacleRelocateCount > 0 {
		return c.Spawn.ObstacleRelocateCount
	}
	return p.ObstacleCount
}

func (d DifficultyConfig) validate() error {
	for l := MinLevel; l <= MaxLevel; l++ {
		lc, ok := d.Levels[l]
		if !ok {
			return fmt.Errorf("%w: difficulty level %d is missing", ErrInvalidConfig, l)
		}
		if lc.ObstacleCount < 0 || lc.FoodCount < 0 {
			return fmt.Errorf("%w: level %d counts must not be negative", ErrInvalidConfig, l)
		}
		if lc.ObstacleRelocateMS < 0 || lc.FoodRelocateMS < 0 {
			return fmt.Errorf("%w: level %d relocation periods must not be negative", ErrInvalidConfig, l)
		}
	}
	return nil
}
