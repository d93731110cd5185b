package engine

import "github.com/vovakirdan/sloth-rescue/internal/game"

// command is a request applied by the Run goroutine.
type command interface {
	isCommand()
}

type moveCommand struct {
	dir game.Direction
}

type resetCommand struct {
	reply chan game.Snapshot
}

type stateCommand struct {
	reply chan game.Snapshot
}

func (moveCommand) isCommand()  {}
func (resetCommand) isCommand() {}
func (stateCommand) isCommand() {}

func (e *Engine) handleCommand(cmd command) {
	switch c := cmd.(type) {
	case moveCommand:
		before := e.session.Player()
		after := e.session.AttemptMove(c.dir)
		if after != before {
			e.logger.Debug("move", "session", e.session.ID(), "dir", c.dir, "x", after.X, "y", after.Y)
			e.publish()
		}

	case resetCommand:
		prev := e.session.Snapshot()
		e.logger.Info("session reset",
			"session", prev.SessionID,
			"status", prev.Status,
			"score", prev.Score,
		)
		e.startSession()
		e.sched.Restart()
		c.reply <- e.Snapshot()

	case stateCommand:
		c.reply <- e.session.Snapshot()
	}
}
