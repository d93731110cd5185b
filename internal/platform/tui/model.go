package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sloth-rescue/internal/core"
	"github.com/vovakirdan/sloth-rescue/internal/game"
	"github.com/vovakirdan/sloth-rescue/internal/input"
)

// Engine is the part of *engine.Engine the front end talks to.
type Engine interface {
	input.Mover
	Reset(ctx context.Context) (game.Snapshot, error)
	Updates() <-chan game.Snapshot
	Done() <-chan struct{}
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	engine Engine
	router *input.Router
	keys   KeyMap
	help   help.Model
	screen *core.Screen
	config core.RuntimeConfig
	snap   game.Snapshot

	quitting bool
	resetErr error
}

// NewModel creates a model showing eng's current session.
func NewModel(eng Engine, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine: eng,
		router: input.NewRouter(eng),
		keys:   DefaultKeyMap(),
		help:   h,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		snap:   eng.Snapshot(),
	}
}

// Init starts listening for engine updates.
func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.engine)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case SnapshotMsg:
		m.snap = msg.Snapshot
		return m, waitForUpdate(m.engine)

	case ResetDoneMsg:
		m.resetErr = msg.Err
		return m, nil

	case EngineStoppedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionRestart:
		return m, resetCmd(m.engine)
	default:
		if action.IsMovement() {
			m.router.Route(action)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The game is never reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// Snapshot returns the snapshot the model is currently showing.
func (m Model) Snapshot() game.Snapshot {
	return m.snap
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	if m.resetErr != nil {
		footer = colorStyles[core.ColorBrightRed].Render("reset failed: "+m.resetErr.Error()) + "\n" + footer
	}

	boardH := max(0, m.config.ScreenH-lipgloss.Height(footer))
	m.screen.Resize(m.config.ScreenW, boardH)
	game.Render(m.snap, m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program on the local terminal and blocks until
// the player quits or ctx is cancelled.
func Run(ctx context.Context, eng Engine, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(eng, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
