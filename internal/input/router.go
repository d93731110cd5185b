// Package input forwards player actions to the running session.
package input

import (
	"github.com/vovakirdan/sloth-rescue/internal/core"
	"github.com/vovakirdan/sloth-rescue/internal/game"
)

// Mover accepts moves for the current session. *engine.Engine implements it.
type Mover interface {
	SubmitMove(dir game.Direction) bool
	Snapshot() game.Snapshot
}

// Router translates movement actions into session moves.
type Router struct {
	mover Mover
}

// NewRouter creates a router that forwards to m.
func NewRouter(m Mover) *Router {
	return &Router{mover: m}
}

// Route forwards a movement action and reports whether it was accepted.
// Actions arriving while the session is not running are dropped, never
// queued for a later session. Non-movement actions are ignored.
func (r *Router) Route(a core.Action) bool {
	dir, ok := Direction(a)
	if !ok {
		return false
	}
	if r.mover.Snapshot().Status != game.StatusRunning {
		return false
	}
	return r.mover.SubmitMove(dir)
}

// Direction maps a movement action to its direction.
func Direction(a core.Action) (game.Direction, bool) {
	switch a {
	case core.ActionUp:
		return game.DirUp, true
	case core.ActionDown:
		return game.DirDown, true
	case core.ActionLeft:
		return game.DirLeft, true
	case core.ActionRight:
		return game.DirRight, true
	case core.ActionJump:
		return game.DirJump, true
	default:
		return 0, false
	}
}
