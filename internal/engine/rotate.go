package engine

// Angle is a board rotation in degrees. Only multiples of 90 are valid.
type Angle int

const (
	Angle0   Angle = 0
	Angle90  Angle = 90
	Angle180 Angle = 180
	Angle270 Angle = 270
)

// Inverse returns the rotation that undoes a.
func (a Angle) Inverse() Angle {
	return (360 - a) % 360
}

// rotations holds, per quarter turn, the destination index of every source cell.
var rotations = [4][Cells]int{
	buildRotation(Angle0),
	buildRotation(Angle90),
	buildRotation(Angle180),
	buildRotation(Angle270),
}

// unitCircle returns the exact integer cosine and sine of a.
func unitCircle(a Angle) (cos, sin int) {
	switch a {
	case Angle90:
		return 0, 1
	case Angle180:
		return -1, 0
	case Angle270:
		return 0, -1
	default:
		return 1, 0
	}
}

// buildRotation computes the index permutation for a.
// The offsets shift the rotated coordinates back into [0, Size-1].
func buildRotation(a Angle) [Cells]int {
	cos, sin := unitCircle(a)

	offsetX, offsetY := Size-1, Size-1
	switch a {
	case Angle0:
		offsetX, offsetY = 0, 0
	case Angle90:
		offsetY = 0
	case Angle270:
		offsetX = 0
	}

	var table [Cells]int
	for y := range Size {
		for x := range Size {
			nx := x*cos - y*sin + offsetX
			ny := x*sin + y*cos + offsetY
			table[index(x, y)] = index(nx, ny)
		}
	}
	return table
}

// rotate returns a copy of b with its cells permuted by a.
// Tile values are never changed.
func rotate(b Board, a Angle) Board {
	table := &rotations[(a%360)/90]

	var out Board
	for src, dst := range table {
		out[dst] = b[src]
	}
	return out
}
