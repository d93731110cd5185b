// Package tui provides the Bubble Tea front end for the game. The engine
// runs the clock; this package only reads the snapshots it publishes and
// forwards key presses.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sloth-rescue/internal/game"
)

const resetTimeout = 2 * time.Second

// SnapshotMsg delivers a snapshot published by the engine.
type SnapshotMsg struct {
	Snapshot game.Snapshot
}

// EngineStoppedMsg is sent once the engine has shut down.
type EngineStoppedMsg struct{}

// ResetDoneMsg reports the outcome of a reset. The new session itself
// arrives through the update stream.
type ResetDoneMsg struct {
	Err error
}

// waitForUpdate returns a command that blocks until the engine publishes
// the next snapshot or stops.
func waitForUpdate(eng Engine) tea.Cmd {
	return func() tea.Msg {
		select {
		case snap := <-eng.Updates():
			return SnapshotMsg{Snapshot: snap}
		case <-eng.Done():
			return EngineStoppedMsg{}
		}
	}
}

// resetCmd asks the engine for a fresh session.
func resetCmd(eng Engine) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
		defer cancel()
		_, err := eng.Reset(ctx)
		return ResetDoneMsg{Err: err}
	}
}
