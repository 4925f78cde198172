// Package engine implements the 2048 board: a row reducer that compacts and
// merges a single line of tiles, and a board engine that reuses that rule for
// all four directions by rotating the grid.
//
// The package is pure. It performs no I/O and owns no goroutines; randomness
// comes from an injected Random so callers can replay games exactly.
package engine

import "strconv"

// Tile is a single cell value. Zero is empty, anything else is a power of two.
type Tile int

const (
	// Size is the board dimension.
	Size = 4
	// Cells is the number of cells on the board.
	Cells = Size * Size
	// WinValue is the merge result that wins the game.
	WinValue Tile = 2048
)

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t == 0
}

// String returns the decimal value, or "." for an empty cell.
func (t Tile) String() string {
	if t.IsEmpty() {
		return "."
	}
	return strconv.Itoa(int(t))
}

// IsPowerOfTwo reports whether v is a valid non-empty tile value.
func IsPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
