package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/sloth-rescue/internal/game"
)

//go:embed defaults/sloth.yaml
var defaultSlothYAML []byte

// DefaultGameConfig returns the built-in configuration: a 15x15 grid,
// a 500ms tick and a 10% spawn chance.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid:      GridConfig{Size: 15},
		Tick:      TickConfig{Interval: 500 * time.Millisecond},
		Obstacles: ObstacleConfig{SpawnChance: 0.1},
		Rules:     RulesConfig{Collision: string(game.CollisionStartOfTick)},
	}
}
