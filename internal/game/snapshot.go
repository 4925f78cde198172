package game

import "github.com/vovakirdan/term2048/internal/engine"

// StateType represents the current session state.
type StateType string

const (
	StatePlaying        StateType = "playing"
	StateWon            StateType = "won"
	StateLost           StateType = "lost"
	StateConfirmQuit    StateType = "confirm_quit"
	StateConfirmRestart StateType = "confirm_restart"
)

// Snapshot captures the complete session state for tests and headless output.
type Snapshot struct {
	Board   [engine.Size][engine.Size]int
	Moves   int
	MaxTile int
	State   StateType
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.eng.IsWon():
		state = StateWon
	case g.eng.IsLost():
		state = StateLost
	case g.quitArmed:
		state = StateConfirmQuit
	case g.restartArmed:
		state = StateConfirmRestart
	}

	var rows [engine.Size][engine.Size]int
	b := g.eng.Board()
	for y := range engine.Size {
		for x := range engine.Size {
			rows[y][x] = int(b.At(x, y))
		}
	}

	return Snapshot{
		Board:   rows,
		Moves:   g.eng.MoveCount(),
		MaxTile: int(g.eng.MaxTileValue()),
		State:   state,
	}
}
