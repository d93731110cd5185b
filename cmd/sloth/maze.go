package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sloth-rescue/internal/maze"
)

var flagMazeSize int

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print a generated maze",
	Long: `Generate a maze the way a new game does and print it as text.

'#' is a tree, '.' is open ground. The sloth starts top-left and the baby
waits bottom-right. Mazes are not guaranteed to be solvable; the output
says whether this one is (the diagonal jump counts as a move).

With the same --seed and size, "sloth play" opens on this exact maze.

Examples:
  sloth maze
  sloth maze --seed 42
  sloth maze --size 21`,
	Args: cobra.NoArgs,
	RunE: runMaze,
}

func init() {
	mazeCmd.Flags().IntVar(&flagMazeSize, "size", 0, "Grid size (0 = from config)")
}

func runMaze(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}

	size := cfg.Grid.Size
	if flagMazeSize != 0 {
		size = flagMazeSize
	}
	if size < 1 {
		return fmt.Errorf("invalid size %d", size)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := maze.Generate(size, rand.New(rand.NewSource(seed)))
	goal := maze.Position{X: size - 1, Y: size - 1}

	verdict := "no"
	if grid.Reachable(maze.Position{}, goal) {
		verdict = "yes"
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, grid.String())
	fmt.Fprintf(out, "\nseed: %d  size: %d  walls: %d  solvable: %s\n", seed, size, grid.Walls(), verdict)
	return nil
}
