package engine

// spawnTwoProbability is the chance a spawned tile is a 2 rather than a 4.
const spawnTwoProbability = 0.8

// MoveResult describes the outcome of the most recent move attempt.
type MoveResult struct {
	Direction  Direction
	Valid      bool // Board changed
	Merges     int  // Number of merged pairs
	WinMerge   bool // A merge produced WinValue
	Spawned    bool // A new tile was placed
	SpawnIndex int  // Linear index of the spawned tile
	SpawnValue Tile
}

// Engine owns the board and the game flags.
// It is not safe for concurrent use; the caller processes input sequentially.
type Engine struct {
	rng       Random
	board     Board
	moveCount int
	won       bool
	lost      bool
	last      MoveResult
}

// New creates an engine drawing tiles from rng. A nil rng falls back to a
// time-seeded source. The board is empty until Reset is called.
func New(rng Random) *Engine {
	if rng == nil {
		rng = NewRandom(0)
	}
	return &Engine{rng: rng}
}

// Reset clears the board, the counter and both flags, then places two seed tiles.
func (e *Engine) Reset() {
	e.board = Board{}
	e.moveCount = 0
	e.won = false
	e.lost = false
	e.last = MoveResult{}

	e.spawn()
	e.spawn()
}

// Load replaces the board with b and clears the counter and both flags.
// No tiles are spawned.
func (e *Engine) Load(b Board) {
	e.board = b
	e.moveCount = 0
	e.won = false
	e.lost = false
	e.last = MoveResult{}
}

// MoveLeft slides all tiles left. Returns true if the board changed.
func (e *Engine) MoveLeft() bool { return e.Move(DirLeft) }

// MoveRight slides all tiles right. Returns true if the board changed.
func (e *Engine) MoveRight() bool { return e.Move(DirRight) }

// MoveUp slides all tiles up. Returns true if the board changed.
func (e *Engine) MoveUp() bool { return e.Move(DirUp) }

// MoveDown slides all tiles down. Returns true if the board changed.
func (e *Engine) MoveDown() bool { return e.Move(DirDown) }

// Move attempts a move in dir. The board is rotated so the move becomes a
// left move, every row is reduced, and the board is rotated back.
//
// A valid move increments the counter and spawns one tile. An invalid move
// leaves the engine untouched apart from LastMove. Once the game is won or
// lost every move is rejected until Reset.
func (e *Engine) Move(dir Direction) bool {
	frame, ok := moveFrames[dir]
	if !ok || e.won || e.lost {
		e.last = MoveResult{Direction: dir}
		return false
	}

	next, merges, won, changed := slideLeft(rotate(e.board, frame.in))
	if !changed {
		e.last = MoveResult{Direction: dir}
		return false
	}

	e.board = rotate(next, frame.out)
	e.moveCount++
	if won {
		e.won = true
	}

	e.last = MoveResult{
		Direction: dir,
		Valid:     true,
		Merges:    merges,
		WinMerge:  won,
	}
	e.last.SpawnIndex, e.last.SpawnValue, e.last.Spawned = e.spawn()

	return true
}

// slideLeft reduces every row of b independently.
// Returns the new board, merge count, whether WinValue was produced and
// whether any row changed.
func slideLeft(b Board) (next Board, merges int, won, changed bool) {
	for y := range Size {
		row := b.Row(y)
		compacted := compactRow(row)
		reduced, w := reduceRow(compacted)

		next.setRow(y, reduced)
		merges += compacted.Count() - reduced.Count()
		won = won || w
		if reduced != row {
			changed = true
		}
	}
	return next, merges, won, changed
}

// spawn places a 2 (80%) or a 4 in a uniformly chosen empty cell.
// It is a no-op on a full board.
func (e *Engine) spawn() (idx int, value Tile, ok bool) {
	empty := e.board.EmptyCells()
	if len(empty) == 0 {
		return -1, 0, false
	}

	idx = empty[e.rng.Intn(len(empty))]
	value = 2
	if e.rng.Float64() >= spawnTwoProbability {
		value = 4
	}

	e.board[idx] = value
	return idx, value, true
}

// CanMove reports whether any move could change the board.
func (e *Engine) CanMove() bool {
	return e.board.CanMove()
}

// CheckLoss marks the game lost when no move is possible and returns the lost flag.
// The input handler calls it around every input event.
func (e *Engine) CheckLoss() bool {
	if !e.board.CanMove() {
		e.lost = true
	}
	return e.lost
}

// IsWon reports whether a merge has produced WinValue since the last reset.
func (e *Engine) IsWon() bool { return e.won }

// IsLost reports whether the game has been marked lost.
func (e *Engine) IsLost() bool { return e.lost }

// MoveCount returns the number of valid moves since the last reset.
func (e *Engine) MoveCount() int { return e.moveCount }

// MaxTileValue returns the highest tile on the board.
func (e *Engine) MaxTileValue() Tile { return e.board.MaxTile() }

// Board returns a copy of the current board.
func (e *Engine) Board() Board { return e.board }

// LastMove returns the result of the most recent move attempt.
func (e *Engine) LastMove() MoveResult { return e.last }
