package core

// Color is a terminal color understood by the platform renderer: a hex value
// such as "#edc22e" or an ANSI code such as "245". Empty means the terminal default.
type Color string

// ColorDefault leaves the terminal color untouched.
const ColorDefault Color = ""

// Style is the visual attribute set of a single screen cell.
type Style struct {
	FG   Color
	BG   Color
	Bold bool
}

// StyleDefault is the zero style.
var StyleDefault = Style{}

// Cell is one character position on a Screen.
type Cell struct {
	Rune  rune
	Style Style
}
