package game

import (
	"slices"

	"github.com/google/uuid"

	"github.com/vovakirdan/sloth-rescue/internal/core"
	"github.com/vovakirdan/sloth-rescue/internal/maze"
)

// Session is one complete play-through. It is replaced wholesale on reset.
type Session struct {
	id    string
	rules Rules
	rng   Source

	grid      *maze.Grid
	player    Position
	goal      Position
	obstacles []Obstacle
	nextID    uint64

	score  int
	status Status
	ticks  uint64
}

// NewSession generates a fresh grid from rng and places the player on the
// start cell.
func NewSession(rules Rules, rng Source) *Session {
	return NewSessionOnGrid(maze.Generate(rules.Size, rng), rules, rng)
}

// NewSessionOnGrid starts a session on an existing grid. rules.Size is
// ignored in favor of the grid's own size. The caller must not hand in a
// grid whose start cell is a wall.
func NewSessionOnGrid(grid *maze.Grid, rules Rules, rng Source) *Session {
	if !rules.Collision.Valid() {
		rules.Collision = CollisionStartOfTick
	}
	n := grid.Size()
	rules.Size = n

	return &Session{
		id:     uuid.NewString(),
		rules:  rules,
		rng:    rng,
		grid:   grid,
		player: Position{X: 0, Y: 0},
		goal:   Position{X: n - 1, Y: n - 1},
		status: StatusRunning,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Status returns the current status.
func (s *Session) Status() Status {
	return s.status
}

// Player returns the player position.
func (s *Session) Player() Position {
	return s.player
}

// Score returns the number of ticks scored so far.
func (s *Session) Score() int {
	return s.score
}

// Grid returns the session's immutable grid.
func (s *Session) Grid() *maze.Grid {
	return s.grid
}

// AttemptMove moves the player one step in dir if the clamped target cell
// is open and returns the resulting position. Steps past the edge clamp to
// the edge. A blocked move, or any move after the session ended, leaves the
// player where it was.
func (s *Session) AttemptMove(dir Direction) Position {
	if s.status != StatusRunning {
		return s.player
	}

	dx, dy := dir.Delta()
	last := s.grid.Size() - 1
	target := Position{
		X: core.Clamp(s.player.X+dx, 0, last),
		Y: core.Clamp(s.player.Y+dy, 0, last),
	}
	if s.grid.IsOpen(target) {
		s.player = target
	}
	return s.player
}

// Tick advances the session by one period: obstacles fall and despawn,
// one spawn is rolled, collision then win are evaluated, and the score
// goes up by one. It does nothing once the session has ended.
func (s *Session) Tick() {
	if s.status != StatusRunning {
		return
	}
	s.ticks++

	before := s.obstacles
	s.advanceObstacles()
	s.rollSpawn()

	hazards := s.obstacles
	if s.rules.Collision == CollisionStartOfTick {
		hazards = before
	}
	if occupies(hazards, s.player) {
		s.status = StatusLost
	}
	if s.player == s.goal {
		s.status = StatusWon
	}

	s.score++
}

// advanceObstacles moves every obstacle one row down, dropping those that
// leave the grid or land on a wall. It builds a new slice so callers may
// keep the previous one.
func (s *Session) advanceObstacles() {
	kept := make([]Obstacle, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		o.Pos = o.Pos.Add(0, 1)
		if s.grid.IsOpen(o.Pos) {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// rollSpawn makes at most one spawn attempt on the top row. A chosen wall
// cell wastes the attempt.
func (s *Session) rollSpawn() {
	if s.rng.Float64() >= s.rules.SpawnChance {
		return
	}
	s.placeObstacle(Position{X: s.rng.Intn(s.grid.Size()), Y: 0})
}

// placeObstacle appends an obstacle at p if p is open.
func (s *Session) placeObstacle(p Position) bool {
	if !s.grid.IsOpen(p) {
		return false
	}
	s.nextID++
	s.obstacles = append(s.obstacles, Obstacle{ID: s.nextID, Pos: p})
	return true
}

func occupies(obstacles []Obstacle, p Position) bool {
	return slices.ContainsFunc(obstacles, func(o Obstacle) bool { return o.Pos == p })
}

// Snapshot is a read-only copy of a session, safe to hand to a renderer on
// another goroutine.
type Snapshot struct {
	SessionID string
	Grid      *maze.Grid // shared, never mutated
	Player    Position
	Goal      Position
	Obstacles []Obstacle
	Score     int
	Status    Status
	Ticks     uint64
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID: s.id,
		Grid:      s.grid,
		Player:    s.player,
		Goal:      s.goal,
		Obstacles: slices.Clone(s.obstacles),
		Score:     s.score,
		Status:    s.status,
		Ticks:     s.ticks,
	}
}

// ObstacleAt reports whether any obstacle in the snapshot occupies p.
func (s Snapshot) ObstacleAt(p Position) bool {
	return occupies(s.Obstacles, p)
}
