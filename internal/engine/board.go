package engine

// Board is the 4x4 grid of tiles addressed by (x, y), x being the column and
// y the row. The linear index of a cell is x + y*Size.
type Board [Cells]Tile

// index converts a coordinate pair to a linear index.
func index(x, y int) int {
	return x + y*Size
}

// At returns the tile at column x, row y.
func (b Board) At(x, y int) Tile {
	return b[index(x, y)]
}

// Row returns row y, left to right.
func (b Board) Row(y int) Row {
	var r Row
	copy(r[:], b[y*Size:(y+1)*Size])
	return r
}

// setRow overwrites row y.
func (b *Board) setRow(y int, r Row) {
	copy(b[y*Size:(y+1)*Size], r[:])
}

// Rows returns the board as a slice-free grid, row by row.
func (b Board) Rows() [Size]Row {
	var rows [Size]Row
	for y := range Size {
		rows[y] = b.Row(y)
	}
	return rows
}

// BoardFromRows builds a board from rows listed top to bottom.
func BoardFromRows(rows [Size]Row) Board {
	var b Board
	for y, r := range rows {
		b.setRow(y, r)
	}
	return b
}

// EmptyCells returns the linear indexes of all empty cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, Cells)
	for i, t := range b {
		if t.IsEmpty() {
			cells = append(cells, i)
		}
	}
	return cells
}

// Count returns the number of non-empty cells.
func (b Board) Count() int {
	n := 0
	for _, t := range b {
		if !t.IsEmpty() {
			n++
		}
	}
	return n
}

// Full reports whether every cell holds a tile.
func (b Board) Full() bool {
	return b.Count() == Cells
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() Tile {
	var m Tile
	for _, t := range b {
		if t > m {
			m = t
		}
	}
	return m
}

// CanMove returns true if an empty cell exists or two horizontally or
// vertically adjacent cells hold the same value.
func (b Board) CanMove() bool {
	if !b.Full() {
		return true
	}

	for y := range Size {
		for x := range Size {
			t := b.At(x, y)
			if x < Size-1 && t == b.At(x+1, y) {
				return true
			}
			if y < Size-1 && t == b.At(x, y+1) {
				return true
			}
		}
	}
	return false
}

// String renders the board as four space separated lines, for logs and tests.
func (b Board) String() string {
	buf := make([]byte, 0, Cells*5)
	for y := range Size {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := range Size {
			if x > 0 {
				buf = append(buf, ' ')
			}
			buf = append(buf, b.At(x, y).String()...)
		}
	}
	return string(buf)
}
