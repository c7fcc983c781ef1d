package tui

import (
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kong-arcade/internal/config"
	"github.com/vovakirdan/kong-arcade/internal/core"
	"github.com/vovakirdan/kong-arcade/internal/storage"
)

// fakeGame returns whatever state the test sets and records its input.
type fakeGame struct {
	state  core.GameState
	ticks  uint64
	resets int
	inputs []core.InputFrame
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Ticks() uint64            { return g.ticks }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	g.inputs = append(g.inputs, in)
	return core.StepResult{State: g.state}
}

var testCfg = core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testCfg)
	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelFeedsHeldKeys(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testCfg)
	m.Init()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, runeKey("p"))
	for range 16 {
		m = tick(t, m)
	}

	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].Has(core.ActionPause) {
		t.Errorf("first frame should carry left and pause")
	}
	if g.inputs[1].Has(core.ActionPause) {
		t.Error("pause should only reach one frame")
	}
	if !g.inputs[14].Has(core.ActionLeft) {
		t.Error("left should stay held for the hold window")
	}
	if g.inputs[15].Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestModelSavesRunOnGameOver(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testCfg, WithPlayer("ann"))
	m.Init()

	g.state = core.GameState{Running: true, Lives: 3, Level: 1}
	m = tick(t, m) // run starts on tick 1
	g.state.Score = 500
	g.state.Level = 2
	for range 9 {
		m = tick(t, m)
	}
	g.state = core.GameState{GameOver: true, Score: 500, Level: 2}
	m = tick(t, m)
	m = tick(t, m)

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Player != "ann" || r.Score != 500 || r.Level != 2 || r.Ticks != 10 || r.EndReason != storage.EndGameOver {
		t.Errorf("unexpected run: %+v", r)
	}
}

func TestModelSkipsScorelessRuns(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testCfg)
	m.Init()

	g.state = core.GameState{Running: true, Lives: 1, Level: 1}
	m = tick(t, m)
	g.state = core.GameState{GameOver: true, Level: 1}
	tick(t, m)

	if runs, _ := store.TopRuns("fake", 10); len(runs) != 0 {
		t.Errorf("scoreless run should not be saved: %+v", runs)
	}
}

func TestModelQuitSavesRunInProgress(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testCfg)
	m.Init()

	g.state = core.GameState{Running: true, Score: 300, Lives: 2, Level: 1}
	m = tick(t, m)
	m = tick(t, m)

	m, cmd := press(t, m, runeKey("q"))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	runs, _ := store.TopRuns("fake", 10)
	if len(runs) != 1 || runs[0].EndReason != storage.EndQuit || runs[0].Score != 300 {
		t.Errorf("expected one quit run, got %+v", runs)
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testCfg, WithMenuBack())
	m.Init()

	g.state = core.GameState{Running: true, Lives: 3, Level: 1}
	m = tick(t, m)
	m, _ = press(t, m, runeKey("b"))
	if m.BackToMenu() {
		t.Fatal("b should not leave a run in progress")
	}

	g.state.Paused = true
	m = tick(t, m)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc while paused should return to the menu")
	}
}

func TestModelBackNeedsOption(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testCfg)
	m.Init()
	m = tick(t, m)

	m, _ = press(t, m, runeKey("b"))
	if m.BackToMenu() {
		t.Error("a standalone model has no menu to return to")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testCfg)
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testCfg)
	lines := strings.Split(plain(m.View()), "\n")
	if len(lines) != testCfg.ScreenH {
		t.Fatalf("view has %d lines, expected %d", len(lines), testCfg.ScreenH)
	}
	if !strings.HasPrefix(lines[0], "fake") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "hi", core.ColorRed)
	s.DrawText(3, 1, "yo")

	got := plain(RenderScreen(s))
	want := "hi    \n   yo "
	if got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := plain(styleFor(core.ColorAmber + 1).Render("x")); got != "x" {
		t.Errorf("unknown color rendered %q, expected %q", got, "x")
	}
	if len(colorStyles) != int(core.ColorAmber)+1 {
		t.Errorf("len(colorStyles) = %d, expected one style per color", len(colorStyles))
	}
}

func TestSessionFlow(t *testing.T) {
	var picked []config.DifficultyPreset
	var games []*fakeGame
	factory := func(p config.DifficultyPreset) Game {
		picked = append(picked, p)
		g := &fakeGame{}
		games = append(games, g)
		return g
	}

	s := NewSessionModel(nil, testCfg, "ann", factory, log.New(io.Discard))
	update := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		s = sm
	}

	if !strings.Contains(plain(s.View()), "Pick a difficulty") {
		t.Fatalf("session should open on the menu:\n%s", s.View())
	}

	// Cursor starts on normal
	update(tea.KeyMsg{Type: tea.KeyDown})
	update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.Preset() != config.DifficultyHard {
		t.Fatalf("expected hard game, screen=%d preset=%q", s.screen, s.Preset())
	}
	if last := picked[len(picked)-1]; last != config.DifficultyHard {
		t.Errorf("factory got %q", last)
	}

	update(TickMsg{})
	if games[len(games)-1].ticks != 1 {
		t.Error("ticks should reach the running game")
	}

	// No run in progress, so esc goes back
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("expected menu, screen=%d", s.screen)
	}
	if s.menu.cursor != 2 {
		t.Errorf("menu should remember hard, cursor=%d", s.menu.cursor)
	}

	update(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores || !strings.Contains(plain(s.View()), "No runs recorded yet.") {
		t.Fatalf("expected empty scoreboard:\n%s", s.View())
	}

	update(runeKey("b"))
	if s.screen != screenMenu {
		t.Errorf("b should return to the menu, screen=%d", s.screen)
	}

	update(runeKey("q"))
	if !s.quitting || s.View() != "" {
		t.Error("q should end the session")
	}
}
