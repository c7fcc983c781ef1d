package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kong-arcade/internal/core"
	"github.com/vovakirdan/kong-arcade/internal/storage"
)

// Game is the simulation the terminal driver runs.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Ticks() uint64
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game   Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *core.HeldKeys
	mapper *KeyMapper
	logger *log.Logger
	player string

	gameState  core.GameState
	runStart   uint64 // Game tick at which the current run began
	runSaved   bool   // Whether the current run has been recorded
	quitting   bool
	backToMenu bool
	menuBack   bool // Whether b/esc may leave the game
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger game events are written to.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithPlayer sets the name runs are recorded under.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		m.player = name
	}
}

// WithMenuBack lets b/esc return to the menu while no run is active or
// the game is paused.
func WithMenuBack() ModelOption {
	return func(m *Model) {
		m.menuBack = true
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   core.NewHeldKeys(),
		mapper: NewKeyMapper(cfg.TickRate),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.menuBack && m.mapper.MapKeyToMenuAction(msg) == MenuActionBack &&
		(!m.gameState.Running || m.gameState.Paused) {
		m.saveRun(storage.EndQuit)
		m.backToMenu = true
		return m, nil
	}

	if m.mapper.Apply(msg, m.keys) {
		m.saveRun(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is drawn scaled to the screen, so the run carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	prev := m.gameState
	result := m.game.Step(m.keys.Frame())
	m.keys.Tick()
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug(ev.Name, "score", ev.Score, "level", ev.Level, "lives", ev.Lives)
	}

	if m.gameState.Running && !prev.Running {
		m.runStart = m.game.Ticks()
		m.runSaved = false
	}

	if m.gameState.GameOver && !prev.GameOver {
		m.saveRun(storage.EndGameOver)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once.
// Runs that scored nothing are not kept.
func (m *Model) saveRun(reason string) {
	if m.runSaved || m.gameState.Score <= 0 {
		return
	}
	if reason == storage.EndQuit && !m.gameState.Running {
		return
	}
	m.runSaved = true

	ticks := m.game.Ticks() - m.runStart
	m.logger.Info("run finished",
		"player", m.player,
		"score", m.gameState.Score,
		"level", m.gameState.Level,
		"reason", reason,
	)
	if m.store == nil {
		return
	}

	_, err := m.store.SaveRun(storage.RunRecord{
		GameID:    m.game.ID(),
		Player:    m.player,
		Score:     m.gameState.Score,
		Level:     m.gameState.Level,
		Ticks:     int64(ticks), //nolint:gosec // tick counts stay far below MaxInt64
		EndReason: reason,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
