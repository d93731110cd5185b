package game

import (
	"fmt"

	"github.com/vovakirdan/sloth-rescue/internal/core"
)

const (
	hudHeight = 2 // title line + separator
	cellWidth = 2 // each grid cell is drawn two columns wide
)

// Glyphs used on the board.
const (
	glyphWall     = '♣'
	glyphOpen     = '·'
	glyphPlayer   = 'S'
	glyphGoal     = 'B'
	glyphObstacle = 'M'
	glyphCaught   = 'X'
)

// Render draws a snapshot into dst: a status line, the boxed board centered
// below it and, once the session has ended, a result overlay.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()
	renderHUD(snap, dst)

	if snap.Grid == nil {
		return
	}

	n := snap.Grid.Size()
	boardW := n*cellWidth + 1 + 2 // cells, trailing pad, border
	boardH := n + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		renderOverlay(dst, core.ColorYellow, "Window too small",
			fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	box := core.CenteredRect(dst.Width(), dst.Height()-hudHeight, boardW, boardH)
	box.Y += hudHeight
	dst.DrawBox(box, core.ColorGreen)

	originX, originY := box.X+2, box.Y+1
	put := func(p Position, r rune, c core.Color) {
		dst.SetColored(originX+p.X*cellWidth, originY+p.Y, r, c)
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			p := Position{X: x, Y: y}
			if snap.Grid.IsOpen(p) {
				put(p, glyphOpen, core.ColorGray)
			} else {
				put(p, glyphWall, core.ColorBrightGreen)
			}
		}
	}

	put(snap.Goal, glyphGoal, core.ColorBrightWhite)
	for _, o := range snap.Obstacles {
		put(o.Pos, glyphObstacle, core.ColorBrown)
	}
	if snap.Status == StatusLost && snap.ObstacleAt(snap.Player) {
		put(snap.Player, glyphCaught, core.ColorBrightRed)
	} else {
		put(snap.Player, glyphPlayer, core.ColorBrightYellow)
	}

	switch snap.Status {
	case StatusWon:
		renderOverlay(dst, core.ColorBrightGreen,
			"Congratulations!",
			"You saved the baby sloth!",
			fmt.Sprintf("Your score: %d", snap.Score),
			"Press R to play again")
	case StatusLost:
		renderOverlay(dst, core.ColorBrightRed,
			"Game Over",
			"You were caught by a monkey.",
			fmt.Sprintf("Your score: %d", snap.Score),
			"Press R to play again")
	}
}

func renderHUD(snap Snapshot, dst *core.Screen) {
	hud := fmt.Sprintf(" Sloth Rescue | Score: %d | Monkeys: %d | %s",
		snap.Score, len(snap.Obstacles), snap.Status)
	dst.DrawText(0, 0, hud)
	for x, w := 0, dst.Width(); x < w; x++ {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a framed message box centered on the screen. The
// first line is the title and takes the accent color.
func renderOverlay(dst *core.Screen, accent core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	box := core.CenteredRect(dst.Width(), dst.Height(), width+4, len(lines)+4)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, accent)

	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = accent
		}
		y := box.Y + 1 + i
		if i > 0 {
			y++ // blank line under the title
		}
		dst.DrawTextCentered(y, l, c)
	}
}
