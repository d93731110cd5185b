package config

import (
	"fmt"
	"strings"
	"time"
)

// preset holds the values a difficulty level overrides.
type preset struct {
	spawnChance float64
	interval    time.Duration
}

var presets = map[DifficultyPreset]preset{
	DifficultyEasy:   {spawnChance: 0.05, interval: 600 * time.Millisecond},
	DifficultyNormal: {spawnChance: 0.1, interval: 500 * time.Millisecond},
	DifficultyHard:   {spawnChance: 0.2, interval: 350 * time.Millisecond},
}

// ParseDifficulty parses a preset name, case-insensitively.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("%w: unknown difficulty %q (use easy, normal or hard)", ErrInvalid, s)
	}
	return p, nil
}

// ApplyPreset overrides the spawn chance and tick interval with the
// preset's values. An empty preset leaves cfg untouched.
func ApplyPreset(cfg *GameConfig, p DifficultyPreset) error {
	if p == "" {
		return nil
	}
	v, ok := presets[p]
	if !ok {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, p)
	}
	cfg.Obstacles.SpawnChance = v.spawnChance
	cfg.Tick.Interval = v.interval
	return nil
}
