package core

// Color is a foreground color for a screen cell.
type Color uint8

// Palette used by the board renderer. Values map to ANSI colors in the
// platform layer.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorBrown
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
