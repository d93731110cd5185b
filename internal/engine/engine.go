// Package engine runs one live game session. A single goroutine (Run)
// owns the session and applies both timer ticks and player commands to it
// in arrival order, so a tick and a move never interleave. Everything
// else talks to that goroutine through a command queue and reads
// published snapshots.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sloth-rescue/internal/game"
)

// ErrStopped is returned by synchronous calls once Run has returned.
var ErrStopped = errors.New("engine: stopped")

// ErrAlreadyRunning is returned by a second call to Run.
var ErrAlreadyRunning = errors.New("engine: already running")

const commandBuffer = 64

// Config holds the engine settings.
type Config struct {
	Rules        game.Rules
	TickInterval time.Duration
	Seed         int64 // 0 seeds from the clock
}

// DefaultConfig returns the classic rules ticking every 500ms.
func DefaultConfig() Config {
	return Config{
		Rules:        game.DefaultRules(),
		TickInterval: 500 * time.Millisecond,
	}
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithScheduler replaces the default time.Ticker based scheduler.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.sched = s
		}
	}
}

// Engine owns the current session and the tick schedule.
type Engine struct {
	cfg    Config
	logger *log.Logger
	sched  Scheduler
	seeds  *rand.Rand // derives seeds for sessions after the first
	played bool

	session *game.Session // Run goroutine only, after New returns

	cmds    chan command
	updates chan game.Snapshot
	done    chan struct{}
	running atomic.Bool

	mu     sync.RWMutex
	latest game.Snapshot
}

// New creates an engine with a first session ready to play. Ticks start
// when Run is called.
func New(cfg Config, opts ...Option) *Engine {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultConfig().TickInterval
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:     cfg,
		logger:  log.New(io.Discard),
		seeds:   rand.New(rand.NewSource(cfg.Seed)),
		cmds:    make(chan command, commandBuffer),
		updates: make(chan game.Snapshot, 1),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sched == nil {
		e.sched = NewTickerScheduler(cfg.TickInterval)
	}

	e.startSession()
	return e
}

// Run processes ticks and commands until ctx is cancelled. It may be
// called once.
func (e *Engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(e.done)
	defer e.sched.Stop()

	e.sched.Restart()
	e.logger.Debug("engine started", "tick", e.cfg.TickInterval)

	for {
		select {
		case <-ctx.Done():
			e.logger.Debug("engine stopped", "session", e.session.ID())
			return nil
		case <-e.sched.C():
			e.tick()
		case cmd := <-e.cmds:
			e.handleCommand(cmd)
		}
	}
}

// Done is closed when Run returns.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// SubmitMove queues a move for the current session. It never blocks; the
// move is dropped when the queue is full or the engine has stopped.
func (e *Engine) SubmitMove(dir game.Direction) bool {
	select {
	case <-e.done:
		return false
	default:
	}

	select {
	case e.cmds <- moveCommand{dir: dir}:
		return true
	default:
		e.logger.Warn("move dropped, queue full", "dir", dir)
		return false
	}
}

// Reset replaces the session with a freshly generated one, restarts the
// tick schedule and returns the new session's snapshot. Commands queued
// before the reset still apply to the old session.
func (e *Engine) Reset(ctx context.Context) (game.Snapshot, error) {
	snap, err := e.call(ctx, func(reply chan game.Snapshot) command {
		return resetCommand{reply: reply}
	})
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("engine: reset: %w", err)
	}
	return snap, nil
}

// State returns a snapshot taken after every previously queued command
// has been applied.
func (e *Engine) State(ctx context.Context) (game.Snapshot, error) {
	snap, err := e.call(ctx, func(reply chan game.Snapshot) command {
		return stateCommand{reply: reply}
	})
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("engine: state: %w", err)
	}
	return snap, nil
}

// Snapshot returns the most recently published snapshot without waiting.
func (e *Engine) Snapshot() game.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.latest
}

// Updates delivers the latest snapshot after each change. Only the newest
// snapshot is kept; a slow reader skips intermediate states.
func (e *Engine) Updates() <-chan game.Snapshot {
	return e.updates
}

func (e *Engine) call(ctx context.Context, build func(chan game.Snapshot) command) (game.Snapshot, error) {
	reply := make(chan game.Snapshot, 1)

	select {
	case e.cmds <- build(reply):
	case <-e.done:
		return game.Snapshot{}, ErrStopped
	case <-ctx.Done():
		return game.Snapshot{}, ctx.Err()
	}

	select {
	case snap := <-reply:
		return snap, nil
	case <-e.done:
		return game.Snapshot{}, ErrStopped
	case <-ctx.Done():
		return game.Snapshot{}, ctx.Err()
	}
}

// nextSeed returns the configured seed for the first session, so a given
// seed always opens on the same maze, and a derived one afterwards.
func (e *Engine) nextSeed() int64 {
	if !e.played {
		e.played = true
		return e.cfg.Seed
	}
	return e.seeds.Int63()
}

// startSession builds a new session and publishes it.
func (e *Engine) startSession() {
	seed := e.nextSeed()
	e.session = game.NewSession(e.cfg.Rules, rand.New(rand.NewSource(seed)))

	grid := e.session.Grid()
	e.logger.Info("session started",
		"session", e.session.ID(),
		"seed", seed,
		"size", grid.Size(),
		"walls", grid.Walls(),
		"reachable", grid.Reachable(game.Position{}, game.Position{X: grid.Size() - 1, Y: grid.Size() - 1}),
	)
	e.publish()
}

func (e *Engine) tick() {
	wasRunning := e.session.Status() == game.StatusRunning
	e.session.Tick()
	snap := e.publish()

	if wasRunning && snap.Status.Terminal() {
		e.logger.Info("session ended",
			"session", snap.SessionID,
			"status", snap.Status,
			"score", snap.Score,
			"ticks", snap.Ticks,
		)
	}
}

func (e *Engine) publish() game.Snapshot {
	snap := e.session.Snapshot()

	e.mu.Lock()
	e.latest = snap
	e.mu.Unlock()

	select {
	case e.updates <- snap:
		return snap
	default:
	}
	// Drop the stale snapshot and retry once.
	select {
	case <-e.updates:
	default:
	}
	select {
	case e.updates <- snap:
	default:
	}
	return snap
}
