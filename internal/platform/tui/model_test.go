package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sloth-rescue/internal/core"
	"github.com/vovakirdan/sloth-rescue/internal/game"
	"github.com/vovakirdan/sloth-rescue/internal/maze"
)

type fakeEngine struct {
	snap    game.Snapshot
	moves   []game.Direction
	resets  int
	updates chan game.Snapshot
	done    chan struct{}
}

func newFakeEngine(status game.Status) *fakeEngine {
	grid, _ := maze.Parse(strings.Repeat(strings.Repeat(".", 15)+"\n", 15))
	return &fakeEngine{
		snap: game.Snapshot{
			SessionID: "first",
			Grid:      grid,
			Goal:      game.Position{X: 14, Y: 14},
			Status:    status,
		},
		updates: make(chan game.Snapshot, 1),
		done:    make(chan struct{}),
	}
}

func (f *fakeEngine) SubmitMove(dir game.Direction) bool {
	f.moves = append(f.moves, dir)
	return true
}

func (f *fakeEngine) Snapshot() game.Snapshot { return f.snap }

func (f *fakeEngine) Reset(context.Context) (game.Snapshot, error) {
	f.resets++
	f.snap.SessionID = "second"
	f.snap.Status = game.StatusRunning
	return f.snap, nil
}

func (f *fakeEngine) Updates() <-chan game.Snapshot { return f.updates }
func (f *fakeEngine) Done() <-chan struct{}         { return f.done }

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModelRoutesMovement(t *testing.T) {
	eng := newFakeEngine(game.StatusRunning)
	m := NewModel(eng, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	_, _ = press(t, m, runeKey('s'))

	assert.Equal(t, []game.Direction{game.DirRight, game.DirJump, game.DirDown}, eng.moves)
}

func TestModelDropsMovesAfterGameEnds(t *testing.T) {
	eng := newFakeEngine(game.StatusLost)
	m := NewModel(eng, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Nil(t, cmd)
	assert.Empty(t, eng.moves)
}

func TestModelRestart(t *testing.T) {
	eng := newFakeEngine(game.StatusWon)
	m := NewModel(eng, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	m, cmd := press(t, m, runeKey('r'))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, ResetDoneMsg{}, msg)
	assert.Equal(t, 1, eng.resets)

	next, _ := m.Update(msg)
	assert.Nil(t, next.(Model).resetErr)
}

func TestModelAppliesSnapshots(t *testing.T) {
	eng := newFakeEngine(game.StatusRunning)
	m := NewModel(eng, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	update := eng.snap
	update.Score = 7
	update.Player = game.Position{X: 3, Y: 0}
	eng.updates <- update

	msg := m.Init()()
	require.IsType(t, SnapshotMsg{}, msg)

	next, cmd := m.Update(msg)
	assert.NotNil(t, cmd, "keeps listening for updates")
	assert.Equal(t, 7, next.(Model).Snapshot().Score)
	assert.Contains(t, next.(Model).View(), "Score: 7")
}

func TestModelQuitsWhenEngineStops(t *testing.T) {
	eng := newFakeEngine(game.StatusRunning)
	m := NewModel(eng, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	close(eng.done)

	msg := m.Init()()
	require.IsType(t, EngineStoppedMsg{}, msg)

	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View())
}

func TestModelQuitKey(t *testing.T) {
	eng := newFakeEngine(game.StatusRunning)
	m := NewModel(eng, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	_, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelResizeKeepsSession(t *testing.T) {
	eng := newFakeEngine(game.StatusRunning)
	m := NewModel(eng, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	view := m.View()

	assert.Zero(t, eng.resets)
	assert.Equal(t, "first", m.Snapshot().SessionID)
	assert.Equal(t, 100, m.screen.Width())
	assert.Contains(t, view, "Sloth Rescue")
}

func TestModelHelpToggle(t *testing.T) {
	eng := newFakeEngine(game.StatusRunning)
	m := NewModel(eng, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	short := m.View()
	assert.NotContains(t, short, "right")

	m, _ = press(t, m, runeKey('?'))
	full := m.View()
	assert.Contains(t, full, "right")
}
