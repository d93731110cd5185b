// Package config provides YAML-based game configuration loading,
// difficulty presets and environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/sloth-rescue/internal/game"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// GameConfig contains all configuration for a Sloth Rescue session.
type GameConfig struct {
	Grid      GridConfig     `yaml:"grid"`
	Tick      TickConfig     `yaml:"tick"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Rules     RulesConfig    `yaml:"rules"`
}

// GridConfig defines the maze dimensions.
type GridConfig struct {
	Size int `yaml:"size"` // Side length N of the square grid
}

// TickConfig defines the simulation clock.
type TickConfig struct {
	Interval time.Duration `yaml:"interval"` // e.g. "500ms"
}

// ObstacleConfig defines monkey spawning.
type ObstacleConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick probability in [0, 1]
}

// RulesConfig defines rule variants.
type RulesConfig struct {
	Collision string `yaml:"collision"` // start_of_tick or end_of_tick
}

// Validate checks every field and reports the first bad one.
func (c GameConfig) Validate() error {
	switch {
	case c.Grid.Size < 1:
		return fmt.Errorf("%w: grid.size %d must be at least 1", ErrInvalid, c.Grid.Size)
	case c.Tick.Interval <= 0:
		return fmt.Errorf("%w: tick.interval %s must be positive", ErrInvalid, c.Tick.Interval)
	case c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1:
		return fmt.Errorf("%w: obstacles.spawn_chance %g must be within [0, 1]", ErrInvalid, c.Obstacles.SpawnChance)
	case !game.CollisionMode(c.Rules.Collision).Valid():
		return fmt.Errorf("%w: rules.collision %q is not start_of_tick or end_of_tick", ErrInvalid, c.Rules.Collision)
	}
	return nil
}

// GameRules converts the configuration into session rules.
func (c GameConfig) GameRules() game.Rules {
	return game.Rules{
		Size:        c.Grid.Size,
		SpawnChance: c.Obstacles.SpawnChance,
		Collision:   game.CollisionMode(c.Rules.Collision),
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
