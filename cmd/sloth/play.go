package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sloth-rescue/internal/core"
	"github.com/vovakirdan/sloth-rescue/internal/engine"
	"github.com/vovakirdan/sloth-rescue/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Move one cell
  Space        - Jump diagonally up and to the right
  R            - New game (any time)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer monkeys, slower clock
  normal - 10% spawn chance, 500ms ticks
  hard   - More monkeys, faster clock

Examples:
  sloth play
  sloth play --difficulty easy
  sloth play --seed 42
  sloth play --config ./my-sloth.yaml --log-file sloth.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	_, engCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, cleanup, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eng := engine.New(engCfg, engine.WithLogger(logger))
	go func() {
		if err := eng.Run(ctx); err != nil {
			logger.Error("engine stopped", "error", err)
		}
	}()

	if err := tui.Run(ctx, eng, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
