package gui

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/kong-arcade/internal/core"
	"github.com/vovakirdan/kong-arcade/internal/storage"
)

var background = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}

// Game is the simulation a window runs.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Draw(c core.Canvas)
	State() core.GameState
	Ticks() uint64
	WorldSize() (w, h float64)
}

// Options configures a window.
type Options struct {
	Scale    float64 // Window size relative to the world
	TickRate int     // Simulation ticks per second
	Seed     int64   // Zero picks a time-based seed
	Player   string  // Name runs are recorded under
	Store    *storage.Store
	Logger   *log.Logger
	Bindings []Binding
	Keys     KeySource
}

// Window adapts a Game to ebiten.Game.
type Window struct {
	game   Game
	opts   Options
	keys   *core.HeldKeys
	width  int
	height int

	state    core.GameState
	runStart uint64
	runSaved bool
}

// NewWindow resets the game and prepares a window for it.
func NewWindow(game Game, opts Options) *Window {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Bindings == nil {
		opts.Bindings = DefaultBindings()
	}
	if opts.Keys == nil {
		opts.Keys = ebitenKeys{}
	}

	ww, wh := game.WorldSize()
	w := &Window{
		game:   game,
		opts:   opts,
		keys:   core.NewHeldKeys(),
		width:  int(math.Ceil(ww)),
		height: int(math.Ceil(wh)),
	}

	game.Reset(core.RuntimeConfig{
		ScreenW:  w.width,
		ScreenH:  w.height,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	w.state = game.State()
	return w
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	if Poll(w.opts.Keys, w.opts.Bindings, w.keys) {
		w.saveRun(storage.EndQuit)
		return ebiten.Termination
	}

	prev := w.state
	result := w.game.Step(w.keys.Frame())
	w.keys.Tick()
	w.state = result.State

	for _, ev := range result.Events {
		w.opts.Logger.Debug(ev.Name, "score", ev.Score, "level", ev.Level, "lives", ev.Lives)
	}

	if w.state.Running && !prev.Running {
		w.runStart = w.game.Ticks()
		w.runSaved = false
	}
	if w.state.GameOver && !prev.GameOver {
		w.saveRun(storage.EndGameOver)
	}
	return nil
}

// Draw renders the game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w.game.Draw(NewCanvas(screen, float64(w.width)))
}

// Layout keeps the logical screen at world size; Ebitengine scales it.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// saveRun records the current run once, skipping runs that scored nothing.
func (w *Window) saveRun(reason string) {
	if w.runSaved || w.state.Score <= 0 {
		return
	}
	if reason == storage.EndQuit && !w.state.Running {
		return
	}
	w.runSaved = true

	w.opts.Logger.Info("run finished", "score", w.state.Score, "level", w.state.Level, "reason", reason)
	if w.opts.Store == nil {
		return
	}
	_, err := w.opts.Store.SaveRun(storage.RunRecord{
		GameID:    w.game.ID(),
		Player:    w.opts.Player,
		Score:     w.state.Score,
		Level:     w.state.Level,
		Ticks:     int64(w.game.Ticks() - w.runStart), //nolint:gosec // tick counts stay far below MaxInt64
		EndReason: reason,
	})
	if err != nil {
		w.opts.Logger.Warn("could not save run", "error", err)
	}
}

// Run opens a window and plays the game until it is closed.
func Run(game Game, opts Options) error {
	if err := loadAssets(); err != nil {
		return fmt.Errorf("gui: cannot load font: %w", err)
	}

	w := NewWindow(game, opts)
	ebiten.SetWindowSize(int(float64(w.width)*w.opts.Scale), int(float64(w.height)*w.opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
