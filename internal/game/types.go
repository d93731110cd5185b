// Package game holds the authoritative model of one Sloth Rescue
// play-through: the grid, the sloth, the falling monkeys, the score and the
// win/lose status. A Session is a plain value with explicit transitions and
// no locking; callers that share one across goroutines must serialize
// access (see package engine).
package game

import (
	"github.com/vovakirdan/sloth-rescue/internal/maze"
)

// Position is a grid coordinate, X is the column and Y the row.
type Position = maze.Position

// Source is the entropy a session draws from for generation and spawning.
type Source = maze.Source

// Direction is one of the five moves a player can request.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirJump // diagonal, up and to the right
)

// Delta returns the (dx, dy) step for the direction. Unknown values do not move.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirJump:
		return 1, -1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Status is the lifecycle state of a session.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended. Only a reset leaves a
// terminal status.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Obstacle is a falling monkey. ID is its spawn order within the session
// and only serves as a stable key for renderers.
type Obstacle struct {
	ID  uint64
	Pos Position
}

// CollisionMode selects which obstacle positions a tick tests the player
// against.
type CollisionMode string

const (
	// CollisionStartOfTick tests against obstacles as they stood before
	// this tick moved or spawned any of them. An obstacle that falls onto
	// the player is caught on the following tick if the player stays put.
	CollisionStartOfTick CollisionMode = "start_of_tick"

	// CollisionEndOfTick tests against obstacles after this tick's advance
	// and spawn.
	CollisionEndOfTick CollisionMode = "end_of_tick"
)

// Valid reports whether m is a known mode.
func (m CollisionMode) Valid() bool {
	return m == CollisionStartOfTick || m == CollisionEndOfTick
}

// Rules are the tunables of a session.
type Rules struct {
	Size        int           // grid is Size*Size
	SpawnChance float64       // per-tick probability of a spawn attempt
	Collision   CollisionMode // which obstacle set a tick checks
}

// DefaultRules returns the classic 15x15 board with a 10% spawn chance.
func DefaultRules() Rules {
	return Rules{
		Size:        15,
		SpawnChance: 0.1,
		Collision:   CollisionStartOfTick,
	}
}
