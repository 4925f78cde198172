package engine

import "testing"

func TestCompactRow(t *testing.T) {
	tests := []struct {
		name     string
		input    Row
		expected Row
	}{
		{"empty row", Row{0, 0, 0, 0}, Row{0, 0, 0, 0}},
		{"already compact", Row{2, 4, 0, 0}, Row{2, 4, 0, 0}},
		{"gap in the middle", Row{2, 0, 4, 0}, Row{2, 4, 0, 0}},
		{"single trailing tile", Row{0, 0, 0, 2}, Row{2, 0, 0, 0}},
		{"equal tiles are not merged", Row{2, 0, 0, 2}, Row{2, 2, 0, 0}},
		{"full row", Row{8, 4, 2, 16}, Row{8, 4, 2, 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compactRow(tt.input); got != tt.expected {
				t.Errorf("compactRow(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// allRows enumerates every row built from the given values.
func allRows(values []Tile) []Row {
	var rows []Row
	var rec func(i int, r Row)
	rec = func(i int, r Row) {
		if i == Size {
			rows = append(rows, r)
			return
		}
		for _, v := range values {
			r[i] = v
			rec(i+1, r)
		}
	}
	rec(0, Row{})
	return rows
}

func nonEmpty(r Row) []Tile {
	var out []Tile
	for _, t := range r {
		if !t.IsEmpty() {
			out = append(out, t)
		}
	}
	return out
}

func TestCompactRowKeepsOrderAndPacksLeft(t *testing.T) {
	for _, row := range allRows([]Tile{0, 2, 4, 8}) {
		got := compactRow(row)

		want := nonEmpty(row)
		have := nonEmpty(got)
		if len(want) != len(have) {
			t.Fatalf("compactRow(%v) = %v: tile count changed", row, got)
		}
		for i := range want {
			if want[i] != have[i] {
				t.Fatalf("compactRow(%v) = %v: order changed", row, got)
			}
		}

		seenEmpty := false
		for _, v := range got {
			if v.IsEmpty() {
				seenEmpty = true
			} else if seenEmpty {
				t.Fatalf("compactRow(%v) = %v: empty cell before a tile", row, got)
			}
		}
	}
}

func TestReduceRow(t *testing.T) {
	tests := []struct {
		name     string
		input    Row
		expected Row
		won      bool
	}{
		{"simple merge", Row{2, 2, 0, 0}, Row{4, 0, 0, 0}, false},
		{"merge with trailing tile", Row{2, 2, 2, 0}, Row{4, 2, 0, 0}, false},
		{"double merge", Row{2, 2, 2, 2}, Row{4, 4, 0, 0}, false},
		{"two different pairs", Row{4, 4, 8, 8}, Row{8, 16, 0, 0}, false},
		{"merge after a distinct tile", Row{2, 4, 4, 0}, Row{2, 8, 0, 0}, false},
		{"no merge possible", Row{2, 4, 2, 4}, Row{2, 4, 2, 4}, false},
		{"empty row", Row{0, 0, 0, 0}, Row{0, 0, 0, 0}, false},
		{"reaching the win value", Row{1024, 1024, 0, 0}, Row{2048, 0, 0, 0}, true},
		{"win merge among others", Row{2, 1024, 1024, 4}, Row{2, 2048, 4, 0}, true},
		{"beyond the win value", Row{2048, 2048, 0, 0}, Row{4096, 0, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, won := reduceRow(tt.input)
			if got != tt.expected {
				t.Errorf("reduceRow(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if won != tt.won {
				t.Errorf("reduceRow(%v) won = %v, want %v", tt.input, won, tt.won)
			}
		})
	}
}

func TestSlideRow(t *testing.T) {
	tests := []struct {
		input    Row
		expected Row
		changed  bool
	}{
		{Row{2, 2, 0, 0}, Row{4, 0, 0, 0}, true},
		{Row{2, 0, 2, 0}, Row{4, 0, 0, 0}, true},
		{Row{2, 4, 2, 4}, Row{2, 4, 2, 4}, false},
		{Row{0, 0, 0, 2}, Row{2, 0, 0, 0}, true},
		{Row{0, 0, 2, 2}, Row{4, 0, 0, 0}, true},
		{Row{2, 0, 0, 2}, Row{4, 0, 0, 0}, true},
		{Row{4, 2, 0, 0}, Row{4, 2, 0, 0}, false},
		{Row{0, 4, 0, 0}, Row{4, 0, 0, 0}, true},
	}

	for _, tt := range tests {
		got, _ := slideRow(tt.input)
		if got != tt.expected {
			t.Errorf("slideRow(%v) = %v, want %v", tt.input, got, tt.expected)
		}
		if changed := got != tt.input; changed != tt.changed {
			t.Errorf("slideRow(%v) changed = %v, want %v", tt.input, changed, tt.changed)
		}
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] must become [8, 8, 0, 0], not [16, 0, 0, 0]
	row := Row{4, 4, 4, 4}
	got, _ := slideRow(row)

	expected := Row{8, 8, 0, 0}
	if got != expected {
		t.Errorf("slideRow(%v) = %v, want %v", row, got, expected)
	}
}

func TestReduceRowResultIsStable(t *testing.T) {
	for _, row := range allRows([]Tile{0, 2, 4, 8, 16}) {
		got, _ := slideRow(row)

		if compactRow(got) != got {
			t.Fatalf("slideRow(%v) = %v is not compact", row, got)
		}

		// Without equal neighbours left, another pass is a no-op.
		mergeable := false
		for i := 0; i < Size-1; i++ {
			if !got[i].IsEmpty() && got[i] == got[i+1] {
				mergeable = true
			}
		}
		if !mergeable {
			again, _ := reduceRow(got)
			if again != got {
				t.Fatalf("reduceRow(%v) = %v, want unchanged", got, again)
			}
		}

		// Merging never adds value or tiles.
		if got.Count() > row.Count() || sum(got) != sum(row) {
			t.Fatalf("slideRow(%v) = %v: tiles or total changed", row, got)
		}
	}
}

func sum(r Row) int {
	total := 0
	for _, t := range r {
		total += int(t)
	}
	return total
}
