package engine

import "strings"

// Direction is the way tiles slide during a move.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every move direction.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection accepts a direction name or its first letter, in any case.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return DirLeft, true
	case "r", "right":
		return DirRight, true
	case "u", "up":
		return DirUp, true
	case "d", "down":
		return DirDown, true
	}
	return 0, false
}

// moveFrame is the rotation that turns a direction into a left move and back.
type moveFrame struct {
	in, out Angle
}

var moveFrames = map[Direction]moveFrame{
	DirLeft:  {Angle0, Angle0},
	DirRight: {Angle180, Angle180},
	DirUp:    {Angle270, Angle90},
	DirDown:  {Angle90, Angle270},
}
