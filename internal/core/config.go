package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is the read-only view of a game used by the platform.
type GameState struct {
	Moves    int  // Valid moves since the last reset
	MaxTile  int  // Highest tile on the board
	Won      bool // A merge reached the win value
	Lost     bool // No move is possible
	GameOver bool // Won or lost
}

// StepResult is returned after each input event.
type StepResult struct {
	State     GameState
	Moved     bool // A directional action changed the board
	Restarted bool // The game was reset
	Quit      bool // The player confirmed quitting
}
