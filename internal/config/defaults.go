package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 20,
		},
		Speed: SpeedConfig{
			BaseRate:           8,
			RampEnabled:        true,
			RampEveryTicks:     150,
			BoostDurationTicks: 450,
			BoostRateIncrease:  4,
		},
		Spawn: SpawnConfig{
			FoodIntervalMS:    2500,
			BoostIntervalMS:   10000,
			MaxBoosts:         1,
			PlacementAttempts: 1000,
		},
		Start: StartConfig{
			Randomized: true,
			Margin:     5,
		},
		Difficulty: DifficultyConfig{
			Levels: map[int]LevelConfig{
				1: {Name: "Normal", ObstacleCount: 10, FoodCount: 5},
				2: {Name: "Moving obstacles", ObstacleRelocateMS: 4000, ObstacleCount: 20, FoodCount: 4},
				3: {Name: "Moving obstacles and food", ObstacleRelocateMS: 3000, FoodRelocateMS: 3000, ObstacleCount: 35, FoodCount: 3},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, as printed by `snake config --defaults`.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
