package engine

import "testing"

// numberedBoard holds a distinct value in every cell.
func numberedBoard() Board {
	var b Board
	for i := range b {
		b[i] = Tile(i + 1)
	}
	return b
}

func TestRotationsArePermutations(t *testing.T) {
	for q, table := range rotations {
		seen := make(map[int]bool, Cells)
		for _, dst := range table {
			if dst < 0 || dst >= Cells {
				t.Fatalf("rotation %d maps to out of range index %d", q*90, dst)
			}
			if seen[dst] {
				t.Fatalf("rotation %d maps two cells to index %d", q*90, dst)
			}
			seen[dst] = true
		}
	}
}

func TestRotateRoundTrips(t *testing.T) {
	b := numberedBoard()

	if got := rotate(b, Angle0); got != b {
		t.Errorf("rotate 0 should be the identity:\n%v", got)
	}
	if got := rotate(rotate(b, Angle180), Angle180); got != b {
		t.Errorf("rotate 180 twice should be the identity:\n%v", got)
	}
	if got := rotate(rotate(b, Angle90), Angle270); got != b {
		t.Errorf("rotate 90 then 270 should be the identity:\n%v", got)
	}
	if got := rotate(rotate(b, Angle270), Angle90); got != b {
		t.Errorf("rotate 270 then 90 should be the identity:\n%v", got)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	b := numberedBoard()
	r := rotate(b, Angle90)

	// (x, y) moves to (3-y, x)
	for y := range Size {
		for x := range Size {
			if r.At(Size-1-y, x) != b.At(x, y) {
				t.Fatalf("rotate 90: cell (%d,%d) = %v, want %v", Size-1-y, x, r.At(Size-1-y, x), b.At(x, y))
			}
		}
	}
}

func TestRotateHalfTurn(t *testing.T) {
	b := numberedBoard()
	r := rotate(b, Angle180)

	for y := range Size {
		for x := range Size {
			if r.At(Size-1-x, Size-1-y) != b.At(x, y) {
				t.Fatalf("rotate 180 misplaced cell (%d,%d)", x, y)
			}
		}
	}
}

func TestMoveFramesAreInverse(t *testing.T) {
	b := numberedBoard()
	for _, dir := range Directions {
		frame := moveFrames[dir]
		if frame.out != frame.in.Inverse() {
			t.Errorf("%s: rotate back by %d, want %d", dir, frame.out, frame.in.Inverse())
		}
		if got := rotate(rotate(b, frame.in), frame.out); got != b {
			t.Errorf("%s: rotation round trip changed the board", dir)
		}
	}
}
