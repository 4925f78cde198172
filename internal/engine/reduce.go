package engine

// Row is one line of the board taken along the move axis.
// Index 0 is the edge tiles move towards.
type Row [Size]Tile

// compactRow drops empty cells, keeping the order of the remaining tiles,
// and pads the tail with empties.
func compactRow(row Row) Row {
	var out Row
	n := 0
	for _, t := range row {
		if t.IsEmpty() {
			continue
		}
		out[n] = t
		n++
	}
	return out
}

// reduceRow merges equal neighbours of an already compacted row, scanning
// left to right. A merged pair is skipped as a whole, so no tile takes part
// in two merges during one move. The result is compacted again and the
// second return value reports whether a merge produced WinValue.
//
// The scan stops at the first empty cell; callers must pass a compacted row.
func reduceRow(row Row) (Row, bool) {
	var out Row
	won := false
	n := 0

	for i := 0; i < Size && !row[i].IsEmpty(); i++ {
		v := row[i]
		if i < Size-1 && row[i+1] == v {
			v *= 2
			if v == WinValue {
				won = true
			}
			i++ // consumed
		}
		out[n] = v
		n++
	}

	return out, won
}

// slideRow applies the full left-move rule to one row.
func slideRow(row Row) (Row, bool) {
	return reduceRow(compactRow(row))
}

// Count returns the number of non-empty tiles in the row.
func (r Row) Count() int {
	n := 0
	for _, t := range r {
		if !t.IsEmpty() {
			n++
		}
	}
	return n
}
