// Package tui provides the Bubble Tea integration for term2048.
// It handles the terminal UI loop, input mapping and result recording.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/storage"
)

// Options configures the game screen.
type Options struct {
	Store         *storage.Store // nil disables result recording
	Logger        *log.Logger    // nil discards log output
	ShowHelp      bool           // Reserve the bottom line for the key help bar
	ScreenshotDir string         // Defaults to ~/.term2048/screenshots
}

// Model is the Bubble Tea model for a 2048 session.
// The game advances only on key events; there is no tick loop.
type Model struct {
	game        *game.Game
	screen      *core.Screen
	config      core.RuntimeConfig
	opts        Options
	log         *log.Logger
	keyMapper   *KeyMapper
	help        help.Model
	gameState   core.GameState
	quitting    bool
	resultSaved bool // Whether the current game has been recorded
}

// NewModel creates a new Bubble Tea model and starts the game.
func NewModel(g *game.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:      g,
		config:    cfg,
		opts:      opts,
		log:       logger,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}

	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight(cfg.ScreenH))
	m.game.Reset(core.RuntimeConfig{ScreenW: cfg.ScreenW, ScreenH: m.gameHeight(cfg.ScreenH), Seed: cfg.Seed})
	m.gameState = m.game.State()
	return m
}

// gameHeight is the number of rows left for the game after the help bar.
func (m Model) gameHeight(h int) int {
	if m.opts.ShowHelp {
		return core.Max(0, h-1)
	}
	return h
}

// Init implements tea.Model. The game is already running.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.ForceQuit):
		m.recordResult()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Every key is an input event, mapped or not
	prev := m.gameState
	res := m.game.Step(m.keyMapper.MapKeyToFrame(msg))

	if res.Restarted {
		// The finished or abandoned game is the one before the reset
		m.gameState = prev
		m.recordResult()
		m.resultSaved = false
	}
	m.gameState = res.State

	if res.State.GameOver {
		m.recordResult()
	}

	if res.Quit {
		m.recordResult()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight(msg.Height))
	m.game.Resize(msg.Width, m.gameHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// recordResult saves the current game once. Games without a valid move are skipped.
func (m *Model) recordResult() {
	if m.resultSaved || m.gameState.Moves == 0 {
		return
	}
	m.resultSaved = true

	if m.opts.Store == nil {
		return
	}

	r := storage.Result{
		MaxTile: m.gameState.MaxTile,
		Moves:   m.gameState.Moves,
		Won:     m.gameState.Won,
		Lost:    m.gameState.Lost,
		Seed:    m.game.Seed(),
	}
	if _, err := m.opts.Store.SaveResult(r); err != nil {
		m.log.Warn("cannot record result", "err", err)
		return
	}
	m.log.Info("result recorded", "outcome", r.Outcome(), "max", r.MaxTile, "moves", r.Moves)
}

// saveScreenshot writes the current screen as plain text and returns the path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".term2048", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("term2048_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if m.opts.ShowHelp {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		view += "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
	}
	return view
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// ResultSaved reports whether the current game has been recorded.
func (m Model) ResultSaved() bool {
	return m.resultSaved
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(g, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
