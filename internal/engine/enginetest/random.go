// Package enginetest provides deterministic helpers for engine tests.
package enginetest

import "github.com/vovakirdan/term2048/internal/engine"

// ScriptedRandom replays queued values. Once a queue runs dry it returns
// zero, which picks the first empty cell and spawns a 2.
type ScriptedRandom struct {
	// Ints is the queue consumed by Intn.
	Ints     []int
	intIndex int

	// Floats is the queue consumed by Float64.
	Floats     []float64
	floatIndex int
}

// Ensure ScriptedRandom implements engine.Random
var _ engine.Random = (*ScriptedRandom)(nil)

// NewScriptedRandom creates an empty ScriptedRandom.
func NewScriptedRandom() *ScriptedRandom {
	return &ScriptedRandom{}
}

// Intn returns the next queued int reduced modulo n.
func (r *ScriptedRandom) Intn(n int) int {
	if n <= 0 || r.intIndex >= len(r.Ints) {
		return 0
	}
	v := r.Ints[r.intIndex]
	r.intIndex++
	return v % n
}

// Float64 returns the next queued float.
func (r *ScriptedRandom) Float64() float64 {
	if r.floatIndex >= len(r.Floats) {
		return 0
	}
	v := r.Floats[r.floatIndex]
	r.floatIndex++
	return v
}

// QueueIntn appends values to the Intn queue.
func (r *ScriptedRandom) QueueIntn(values ...int) {
	r.Ints = append(r.Ints, values...)
}

// QueueFloat appends values to the Float64 queue.
func (r *ScriptedRandom) QueueFloat(values ...float64) {
	r.Floats = append(r.Floats, values...)
}

// QueueSpawn queues one spawn: the position among empty cells and the tile value.
func (r *ScriptedRandom) QueueSpawn(pos int, value engine.Tile) {
	r.QueueIntn(pos)
	if value == 4 {
		r.QueueFloat(0.9)
	} else {
		r.QueueFloat(0.1)
	}
}

// Reset clears both queues.
func (r *ScriptedRandom) Reset() {
	r.Ints = nil
	r.intIndex = 0
	r.Floats = nil
	r.floatIndex = 0
}
