package core

// Color is a palette index used by draw primitives and screen cells.
// Hosts translate it to ANSI codes or RGBA.
type Color uint8

// Palette entries.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)
