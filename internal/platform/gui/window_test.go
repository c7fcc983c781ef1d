package gui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/kong-arcade/internal/core"
	"github.com/vovakirdan/kong-arcade/internal/storage"
)

// fakeKeys is a scripted keyboard.
type fakeKeys struct {
	down map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) IsKeyPressed(k ebiten.Key) bool     { return f.down[k] }
func (f *fakeKeys) IsKeyJustPressed(k ebiten.Key) bool { return f.just[k] }

// fakeGame returns whatever state the test sets and records its input.
type fakeGame struct {
	state  core.GameState
	ticks  uint64
	reset  core.RuntimeConfig
	inputs []core.InputFrame
}

func (g *fakeGame) ID() string                   { return "fake" }
func (g *fakeGame) Title() string                { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.reset = cfg }
func (g *fakeGame) Draw(core.Canvas)             {}
func (g *fakeGame) State() core.GameState        { return g.state }
func (g *fakeGame) Ticks() uint64                { return g.ticks }
func (g *fakeGame) WorldSize() (w, h float64)    { return 800, 600.5 }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	g.inputs = append(g.inputs, in)
	return core.StepResult{State: g.state}
}

func TestPollHeldAndTapped(t *testing.T) {
	src := newFakeKeys()
	keys := core.NewHeldKeys()
	bindings := DefaultBindings()

	src.down[ebiten.KeyA] = true
	src.just[ebiten.KeySpace] = true
	if quit := Poll(src, bindings, keys); quit {
		t.Fatal("no quit key pressed")
	}

	f := keys.Frame()
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionJump) {
		t.Errorf("expected left and jump in the frame")
	}

	keys.Tick()
	src.just = map[ebiten.Key]bool{}
	Poll(src, bindings, keys)
	f = keys.Frame()
	if !f.Has(core.ActionLeft) {
		t.Error("left should stay down while the key is held")
	}
	if f.Has(core.ActionJump) {
		t.Error("jump should fire once per press")
	}

	src.down = map[ebiten.Key]bool{}
	Poll(src, bindings, keys)
	if keys.Frame().Has(core.ActionLeft) {
		t.Error("left should be released with the key")
	}
}

func TestPollQuit(t *testing.T) {
	src := newFakeKeys()
	keys := core.NewHeldKeys()

	src.just[ebiten.KeyQ] = true
	if !Poll(src, DefaultBindings(), keys) {
		t.Error("q should quit")
	}
	if keys.Frame().Has(core.ActionQuit) {
		t.Error("quit should not reach the game")
	}
}

func TestNewWindowResetsToWorldSize(t *testing.T) {
	g := &fakeGame{}
	w := NewWindow(g, Options{Keys: newFakeKeys(), Seed: 7})

	if g.reset.ScreenW != 800 || g.reset.ScreenH != 601 || g.reset.Seed != 7 || g.reset.TickRate != 60 {
		t.Errorf("unexpected runtime config: %+v", g.reset)
	}
	if lw, lh := w.Layout(1920, 1080); lw != 800 || lh != 601 {
		t.Errorf("Layout() = %d, %d", lw, lh)
	}
}

func TestWindowUpdateStepsGame(t *testing.T) {
	src := newFakeKeys()
	g := &fakeGame{}
	w := NewWindow(g, Options{Keys: src})

	src.down[ebiten.KeyArrowRight] = true
	if err := w.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if len(g.inputs) != 1 || !g.inputs[0].Has(core.ActionRight) {
		t.Errorf("expected one step with right held, got %d steps", len(g.inputs))
	}

	src.just[ebiten.KeyQ] = true
	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit should terminate, got %v", err)
	}
	if len(g.inputs) != 1 {
		t.Error("no step should run on quit")
	}
}

func TestWindowSavesRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	src := newFakeKeys()
	g := &fakeGame{}
	w := NewWindow(g, Options{Keys: src, Store: store, Player: "cat"})

	g.state = core.GameState{Running: true, Lives: 1, Level: 1}
	w.Update()
	g.state.Score = 800
	w.Update()
	w.Update()
	g.state = core.GameState{GameOver: true, Score: 800, Level: 1}
	w.Update()
	w.Update()

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}
	if r := runs[0]; r.Player != "cat" || r.Score != 800 || r.Ticks != 3 || r.EndReason != storage.EndGameOver {
		t.Errorf("unexpected run: %+v", r)
	}
}
