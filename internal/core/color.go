package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Predefined colors. The platform maps them to ANSI 256-color codes.
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
	ColorBrightYellow
	ColorBrightMagenta
	ColorOrange
	ColorGray
)
