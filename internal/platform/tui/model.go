package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sisyphus/internal/core"
	"github.com/vovakirdan/sisyphus/internal/registry"
)

// ModelOptions tunes a game model.
type ModelOptions struct {
	// HoldDuration is how long a key stays held after its last repeat.
	HoldDuration time.Duration

	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger

	// Embedded keeps the program running on Back so an outer model can
	// switch back to its menu; standalone models quit instead.
	Embedded bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	tracker    *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	styles     styleCache
	logger     *log.Logger
	tickID     int64
	embedded   bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg carries the full terminal size; the last row hosts the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		tracker:    NewHoldTracker(opts.HoldDuration),
		inputFrame: core.NewInputFrame(),
		styles:     make(styleCache),
		logger:     logger,
		embedded:   opts.Embedded,
		tickID:     nextTickID(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight())
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)

	// Start the tick loop
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Game.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.refit()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.logger.Info("game quit", "game", m.game.ID(), "tick", m.gameState.Tick)
		return m, tea.Quit

	case action == core.ActionBack:
		m.backToMenu = true
		m.tracker.ReleaseAll()
		m.logger.Info("back to menu", "game", m.game.ID(), "tick", m.gameState.Tick)
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case action != core.ActionNone:
		m.tracker.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The game keeps its state; only the play area is refitted.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.refit()
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// refit sizes the screen buffer and the game to the area above the footer.
func (m *Model) refit() {
	m.screen.Resize(m.config.ScreenW, m.playHeight())
	m.game.Resize(m.config.ScreenW, m.playHeight())
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	m.tracker.Frame(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Continue ticking
	return m, tickCmd(m.tickID, m.config.TickRate)
}

// footerHeight returns the rows taken by the help view.
func (m Model) footerHeight() int {
	if m.help.ShowAll {
		return len(m.keys.Game.FullHelp()[0])
	}
	return 1
}

// playHeight returns the rows left to the game.
func (m Model) playHeight() int {
	return max(m.config.ScreenH-m.footerHeight(), 1)
}

// gameConfig returns the runtime config as the game sees it.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.playHeight()
	return cfg
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return renderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys.Game)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) (backToMenu bool, err error) {
	opts.Embedded = false
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
