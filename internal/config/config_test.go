package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults do not validate: %v", err)
	}

	builtin := DefaultConfig()
	if cfg.Grid != builtin.Grid || cfg.Speed != builtin.Speed || cfg.Spawn != builtin.Spawn || cfg.Start != builtin.Start {
		t.Errorf("embedded YAML and DefaultConfig disagree:\nyaml:    %+v\nbuiltin: %+v", cfg, builtin)
	}
	for _, l := range []int{1, 2, 3} {
		if cfg.Difficulty.Levels[l] != builtin.Difficulty.Levels[l] {
			t.Errorf("level %d: yaml %+v, builtin %+v", l, cfg.Difficulty.Levels[l], builtin.Difficulty.Levels[l])
		}
	}
}

func TestProfiles(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		level          int
		obstacles      int
		foods          int
		obstacleMoveIn time.Duration
		foodMoveIn     time.Duration
	}{
		{1, 10, 5, 0, 0},
		{2, 20, 4, 4 * time.Second, 0},
		{3, 35, 3, 3 * time.Second, 3 * time.Second},
	}

	for _, tc := range tests {
		p, err := cfg.Profile(tc.level)
		if err != nil {
			t.Fatalf("Profile(%d) failed: %v", tc.level, err)
		}
		if p.ObstacleCount != tc.obstacles || p.FoodCount != tc.foods {
			t.Errorf("level %d counts = %d/%d, expected %d/%d", tc.level, p.ObstacleCount, p.FoodCount, tc.obstacles, tc.foods)
		}
		if p.ObstacleRelocateEvery() != tc.obstacleMoveIn || p.FoodRelocateEvery() != tc.foodMoveIn {
			t.Errorf("level %d periods = %v/%v, expected %v/%v", tc.level,
				p.ObstacleRelocateEvery(), p.FoodRelocateEvery(), tc.obstacleMoveIn, tc.foodMoveIn)
		}
	}

	if _, err := cfg.Profile(4); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Profile(4) error = %v, expected ErrUnknownLevel", err)
	}
}

func TestRelocateObstacleCount(t *testing.T) {
	cfg := DefaultConfig()
	p, _ := cfg.Profile(2)

	if got := cfg.RelocateObstacleCount(p); got != 20 {
		t.Errorf("unified relocation count = %d, expected 20", got)
	}

	cfg.Spawn.ObstacleRelocateCount = 25
	if got := cfg.RelocateObstacleCount(p); got != 25 {
		t.Errorf("fixed relocation count = %d, expected 25", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.Grid.Width = 2 }},
		{"zero rate", func(c *Config) { c.Speed.BaseRate = 0 }},
		{"ramp without period", func(c *Config) { c.Speed.RampEveryTicks = 0 }},
		{"no placement attempts", func(c *Config) { c.Spawn.PlacementAttempts = 0 }},
		{"margin too wide", func(c *Config) { c.Grid.Width = 10 }},
		{"missing level", func(c *Config) { delete(c.Difficulty.Levels, 3) }},
		{"negative food", func(c *Config) { c.Difficulty.Levels[1] = LevelConfig{FoodCount: -1} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	// A narrow grid is fine when the start is fixed
	cfg := DefaultConfig()
	cfg.Grid.Width = 10
	cfg.Start.Randomized = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("fixed start on a narrow grid should validate, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("grid:\n  width: 50\n  height: 50\nspawn:\n  obstacle_relocate_count: 25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Width != 50 || cfg.Grid.Height != 50 {
		t.Errorf("grid = %dx%d, expected 50x50", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Spawn.ObstacleRelocateCount != 25 {
		t.Errorf("obstacle_relocate_count = %d, expected 25", cfg.Spawn.ObstacleRelocateCount)
	}
	// Untouched keys keep their defaults
	if cfg.Speed.BaseRate != 8 || cfg.Spawn.FoodIntervalMS != 2500 {
		t.Errorf("defaults were lost: %+v", cfg.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("grid: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with broken YAML should fail")
	}
}
