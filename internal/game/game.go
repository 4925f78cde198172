// Package game implements the interactive 2048 session: key handling,
// confirmation prompts, move logging and rendering on top of the engine.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

// Options configures a Game.
type Options struct {
	ConfirmQuit    bool // Quit needs a second press while playing
	ConfirmRestart bool // Restart needs a second press while playing
	Theme          Theme
	Logger         *log.Logger   // nil discards log output
	Random         engine.Random // nil seeds a source from RuntimeConfig.Seed
}

// DefaultOptions returns options with both confirmations enabled.
func DefaultOptions() Options {
	return Options{
		ConfirmQuit:    true,
		ConfirmRestart: true,
		Theme:          DefaultTheme(),
	}
}

// OptionsFromConfig builds options from the loaded configuration.
func OptionsFromConfig(cfg config.Config, logger *log.Logger) Options {
	return Options{
		ConfirmQuit:    cfg.UI.ConfirmQuit,
		ConfirmRestart: cfg.UI.ConfirmRestart,
		Theme:          ThemeFromConfig(cfg.Theme),
		Logger:         logger,
	}
}

// Game is a single-player 2048 session.
type Game struct {
	opts  Options
	eng   *engine.Engine
	log   *log.Logger
	theme Theme
	seed  int64

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// Pending confirmations
	restartArmed bool
	quitArmed    bool
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Theme.Tiles == nil {
		opts.Theme = DefaultTheme()
	}
	return &Game{
		opts:  opts,
		log:   logger,
		theme: opts.Theme,
	}
}

// Reset starts a fresh game with a new random source.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := g.opts.Random
	if rng == nil {
		rng = engine.NewRandom(cfg.Seed)
	}
	g.seed = cfg.Seed
	g.eng = engine.New(rng)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.restart()
}

// restart resets the board keeping the random source.
func (g *Game) restart() {
	g.eng.Reset()
	g.restartArmed = false
	g.quitArmed = false
	g.log.Debug("new game", "board", g.eng.Board().String())
}

// Resize updates the screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < MinWidth || g.screenH < MinHeight
}

// Step handles a single input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult
	wasLost := g.eng.IsLost()

	if in.Has(core.ActionRestart) {
		if g.over() || !g.opts.ConfirmRestart || g.restartArmed {
			g.restart()
			res.Restarted = true
		} else {
			g.restartArmed = true
		}
	}

	if in.Has(core.ActionQuit) {
		if g.over() || !g.opts.ConfirmQuit || g.quitArmed {
			res.Quit = true
			res.State = g.State()
			return res
		}
		g.quitArmed = true
	}

	g.eng.CheckLoss()

	if dir, ok := directionOf(in); ok && !g.over() && !g.tooSmall {
		res.Moved = g.move(dir)
		g.restartArmed = false
		g.quitArmed = false
	}

	if !g.eng.IsWon() && g.eng.CheckLoss() && !wasLost && !res.Restarted {
		g.log.Info("game lost", "max", g.eng.MaxTileValue(), "moves", g.eng.MoveCount())
	}

	res.State = g.State()
	return res
}

// move applies a move and logs its outcome.
func (g *Game) move(dir engine.Direction) bool {
	if !g.eng.Move(dir) {
		g.log.Debug("invalid move", "dir", dir)
		return false
	}

	g.log.Info("valid move", "dir", dir, "max", g.eng.MaxTileValue(), "moves", g.eng.MoveCount())
	if g.eng.IsWon() {
		g.log.Info("game won", "moves", g.eng.MoveCount())
	}
	return true
}

// directionOf returns the first directional action in the frame.
func directionOf(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	}
	return 0, false
}

func (g *Game) over() bool {
	return g.eng.IsWon() || g.eng.IsLost()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.eng.MoveCount(),
		MaxTile:  int(g.eng.MaxTileValue()),
		Won:      g.eng.IsWon(),
		Lost:     g.eng.IsLost(),
		GameOver: g.over(),
	}
}

// Board returns a copy of the board.
func (g *Game) Board() engine.Board { return g.eng.Board() }

// Seed returns the seed passed to the last Reset.
func (g *Game) Seed() int64 { return g.seed }

// RestartArmed reports whether a restart awaits confirmation.
func (g *Game) RestartArmed() bool { return g.restartArmed }

// QuitArmed reports whether a quit awaits confirmation.
func (g *Game) QuitArmed() bool { return g.quitArmed }

// TooSmall reports whether the screen is below the minimum size.
func (g *Game) TooSmall() bool { return g.tooSmall }

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | R: Restart | Q: Quit"
}
