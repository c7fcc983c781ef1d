package kong

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/kong-arcade/internal/config"
	"github.com/vovakirdan/kong-arcade/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

// newRunningGame returns a game with a run in progress.
func newRunningGame(t *testing.T, cfg config.KongConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)
	g.SetRandom(fixedRandom(0.99))
	g.Step(input(core.ActionJump))
	if !g.State().Running {
		t.Fatal("jump on the start screen should start a run")
	}
	return g
}

func hasEvent(res core.StepResult, name string) bool {
	for _, e := range res.Events {
		if e.Name == name {
			return true
		}
	}
	return false
}

func TestResetShowsStartScreen(t *testing.T) {
	g := NewWithConfig(config.DefaultKongConfig())
	g.Reset(testRuntime)

	state := g.State()
	if state.Running || state.GameOver {
		t.Errorf("reset should be idle, got %+v", state)
	}
	if !g.Panel().Start {
		t.Error("start overlay should be visible")
	}

	// Movement does not start a run
	res := g.Step(input(core.ActionLeft))
	if res.State.Running {
		t.Error("only jump or confirm should start a run")
	}
	if g.Scheduler().Pending() != 0 {
		t.Error("no timers before the run starts")
	}
}

func TestStart(t *testing.T) {
	g := NewWithConfig(config.DefaultKongConfig())
	g.Reset(testRuntime)

	res := g.Step(input(core.ActionConfirm))
	if !hasEvent(res, EventRunStarted) {
		t.Error("expected run started event")
	}

	state := res.State
	if !state.Running || state.Lives != 3 || state.Score != 0 || state.Level != 1 {
		t.Errorf("unexpected start state %+v", state)
	}
	if len(g.Barrels()) != 0 {
		t.Errorf("expected no barrels, got %d", len(g.Barrels()))
	}
	if p := g.Player(); p.X != 50 || p.Y != 510 {
		t.Errorf("player at (%g, %g), expected (50, 510)", p.X, p.Y)
	}
	if !g.Scheduler().Active(TimerSpawn) || !g.Scheduler().Active(TimerEscalate) {
		t.Error("spawn and escalation timers should be armed")
	}
	if g.Scheduler().Period(TimerSpawn) != 1850 {
		t.Errorf("spawn period = %g, expected 1850", g.Scheduler().Period(TimerSpawn))
	}

	panel := g.Panel()
	if panel.Start || panel.GameOver {
		t.Error("overlays should be hidden while running")
	}
	if panel.Score != "Score: 0" || panel.Lives != "Lives: 3" || panel.Level != "Level: 1" {
		t.Errorf("unexpected panel %+v", panel)
	}
}

func TestBarrelSpawnsOnTimer(t *testing.T) {
	g := newRunningGame(t, config.DefaultKongConfig())

	spawned := 0
	for range 120 {
		if hasEvent(g.Step(core.NewInputFrame()), EventBarrelSpawned) {
			spawned++
		}
	}
	if spawned != 1 {
		t.Fatalf("spawned %d barrels in 2s, expected 1", spawned)
	}
	if len(g.Barrels()) != 1 {
		t.Fatalf("expected 1 live barrel, got %d", len(g.Barrels()))
	}
}

func TestBarrelHitOnLastLifeEndsRun(t *testing.T) {
	cfg := config.DefaultKongConfig()
	cfg.Gameplay.Lives = 1
	g := newRunningGame(t, cfg)
	g.score = 700

	p := g.Player()
	g.barrels = append(g.barrels, newBarrel(p.X, p.Y, cfg.Barrel))

	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver || res.State.Running {
		t.Fatalf("expected game over, got %+v", res.State)
	}
	if res.State.Lives != 0 {
		t.Errorf("lives = %d, expected 0", res.State.Lives)
	}
	if g.Scheduler().Pending() != 0 {
		t.Errorf("all timers should be cancelled, %d pending", g.Scheduler().Pending())
	}
	if g.Panel().Summary != "Your score: 700" || !g.Panel().GameOver {
		t.Errorf("unexpected game over panel %+v", g.Panel())
	}
	if !hasEvent(res, EventLifeLost) || !hasEvent(res, EventGameOver) {
		t.Errorf("expected life lost and game over events, got %+v", res.Events)
	}

	// The world is frozen until restart
	snap := g.Snapshot()
	for range 10 {
		g.Step(input(core.ActionLeft))
	}
	after := g.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("game over should not advance the simulation")
	}

	res = g.Step(input(core.ActionRestart))
	if !res.State.Running || res.State.Lives != 1 || res.State.Score != 0 {
		t.Errorf("restart should begin a fresh run, got %+v", res.State)
	}
}

func TestBarrelHitCostsLife(t *testing.T) {
	cfg := config.DefaultKongConfig()
	g := newRunningGame(t, cfg)

	p := g.Player()
	p.X = 200
	g.barrels = append(g.barrels,
		newBarrel(p.X, p.Y, cfg.Barrel),
		newBarrel(600, 200, cfg.Barrel),
	)

	res := g.Step(core.NewInputFrame())
	if res.State.Lives != 2 || !res.State.Running {
		t.Fatalf("expected a lost life and a running game, got %+v", res.State)
	}
	if len(g.Barrels()) != 0 {
		t.Errorf("life loss should clear barrels, %d left", len(g.Barrels()))
	}
	if p.X != 50 || p.Y != 510 || p.VX != 0 || p.VY != 0 {
		t.Errorf("player should be back at the start at rest, got %+v", p.Body)
	}
	if g.Panel().Lives != "Lives: 2" {
		t.Errorf("panel lives = %q", g.Panel().Lives)
	}
	if !g.Scheduler().Active(TimerSpawn) {
		t.Error("spawn timer should be re-armed")
	}
}

func TestFallingOffScreenCostsLife(t *testing.T) {
	cfg := config.DefaultKongConfig()
	cfg.Layout.Platforms = cfg.Layout.Platforms[1:] // no floor
	g := newRunningGame(t, cfg)

	lost := false
	for range 120 {
		if hasEvent(g.Step(core.NewInputFrame()), EventLifeLost) {
			lost = true
			break
		}
	}
	if !lost {
		t.Fatal("falling below the screen should cost a life")
	}
	if g.State().Lives != 2 {
		t.Errorf("lives = %d, expected 2", g.State().Lives)
	}
}

func TestReachingGoalAdvancesLevel(t *testing.T) {
	tests := []struct {
		level     int
		wantScore int
	}{
		{1, 1000},
		{3, 3000},
		{7, 7000},
	}

	for _, tc := range tests {
		cfg := config.DefaultKongConfig()
		g := newRunningGame(t, cfg)
		g.levelNum = tc.level
		g.barrels = append(g.barrels, newBarrel(300, 200, cfg.Barrel))

		p := g.Player()
		p.X, p.Y = 650, 110

		res := g.Step(core.NewInputFrame())
		if !hasEvent(res, EventLevelUp) {
			t.Fatalf("level %d: expected level up event", tc.level)
		}
		if res.State.Score != tc.wantScore || res.State.Level != tc.level+1 {
			t.Errorf("level %d: score=%d level=%d, expected %d and %d",
				tc.level, res.State.Score, res.State.Level, tc.wantScore, tc.level+1)
		}
		if len(g.Barrels()) != 0 {
			t.Errorf("level %d: barrels should be cleared", tc.level)
		}
		if p.X != 50 || p.Y != 510 {
			t.Errorf("level %d: player at (%g, %g), expected the start", tc.level, p.X, p.Y)
		}
		want := float64(g.difficulty.SpawnInterval(tc.level + 1))
		if g.Scheduler().Period(TimerSpawn) != want {
			t.Errorf("level %d: spawn period = %g, expected %g", tc.level, g.Scheduler().Period(TimerSpawn), want)
		}
	}
}

func TestBarrelBurnsInFire(t *testing.T) {
	cfg := config.DefaultKongConfig()
	g := newRunningGame(t, cfg)
	g.barrels = append(g.barrels, newBarrel(140, 526, cfg.Barrel))

	res := g.Step(core.NewInputFrame())
	if !hasEvent(res, EventBarrelBurned) {
		t.Fatal("expected barrel burned event")
	}
	if res.State.Score != 100 || res.State.Lives != 3 {
		t.Errorf("score=%d lives=%d, expected 100 and 3", res.State.Score, res.State.Lives)
	}
	if len(g.Barrels()) != 0 {
		t.Errorf("burned barrel should be removed, %d left", len(g.Barrels()))
	}
}

func TestEscalation(t *testing.T) {
	cfg := config.DefaultKongConfig()
	cfg.Barrel.FallChance = 0 // barrels stay on the top girder
	cfg.Difficulty.Escalation.EveryMs = 1000
	g := newRunningGame(t, cfg)

	escalated := false
	for range 61 {
		escalated = hasEvent(g.Step(core.NewInputFrame()), EventEscalated) || escalated
	}
	if !escalated || g.State().Level != 2 {
		t.Fatalf("expected escalation to level 2, level=%d", g.State().Level)
	}
	if g.Scheduler().Period(TimerSpawn) != 1700 {
		t.Errorf("spawn period = %g, expected 1700", g.Scheduler().Period(TimerSpawn))
	}

	for range 600 {
		g.Step(core.NewInputFrame())
	}
	state := g.State()
	if !state.Running {
		t.Fatalf("run ended unexpectedly: %+v", state)
	}
	if state.Level != cfg.Difficulty.Escalation.MaxLevel {
		t.Errorf("level = %d, expected the escalation cap %d", state.Level, cfg.Difficulty.Escalation.MaxLevel)
	}
}

func TestFixedDifficultyNeverEscalates(t *testing.T) {
	cfg := config.DefaultKongConfig()
	config.ApplyKongPreset(&cfg, config.DifficultyFixed)
	g := newRunningGame(t, cfg)

	if g.Scheduler().Active(TimerEscalate) {
		t.Error("fixed difficulty should not arm escalation")
	}
}

func TestSetPresetOverridesLoadedConfig(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.SetPreset(config.DifficultyHard)
	g.Reset(testRuntime)
	if g.Config().Gameplay.Lives != 2 || g.Config().Barrel.Speed != 4 {
		t.Errorf("hard preset not applied: %+v", g.Config().Gameplay)
	}

	g.SetPreset(config.DifficultyEasy)
	g.Reset(testRuntime)
	if g.Config().Gameplay.Lives != 5 {
		t.Errorf("easy preset should give 5 lives, got %d", g.Config().Gameplay.Lives)
	}
}

func TestPause(t *testing.T) {
	g := newRunningGame(t, config.DefaultKongConfig())
	g.Step(core.NewInputFrame())

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused || !res.State.Running {
		t.Fatalf("expected paused run, got %+v", res.State)
	}

	clock := g.Scheduler().Now()
	ticks := g.Ticks()
	for range 200 {
		g.Step(input(core.ActionRight))
	}
	if g.Scheduler().Now() != clock || g.Ticks() != ticks {
		t.Error("paused game should not advance")
	}
	if g.Player().X != 50 {
		t.Errorf("player moved while paused to %g", g.Player().X)
	}

	res = g.Step(input(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestAttachDisplay(t *testing.T) {
	cfg := config.DefaultKongConfig()
	g := newRunningGame(t, cfg)

	rec := &Panel{}
	g.AttachDisplay(rec)
	if rec.Lives != "Lives: 3" {
		t.Errorf("attached display should be brought up to date, got %+v", rec)
	}

	g.barrels = append(g.barrels, newBarrel(140, 526, cfg.Barrel))
	g.Step(core.NewInputFrame())
	if rec.Score != "Score: 100" {
		t.Errorf("attached display score = %q, expected Score: 100", rec.Score)
	}
}

func TestStateInvariantsHold(t *testing.T) {
	cfg := config.DefaultKongConfig()
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)

	for i := range 5000 {
		in := core.NewInputFrame()
		switch {
		case i%400 < 150:
			in.Set(core.ActionRight)
		case i%400 < 250:
			in.Set(core.ActionLeft)
		case i%400 < 330:
			in.Set(core.ActionUp)
		}
		if i%37 == 0 {
			in.Set(core.ActionJump)
		}
		if i%90 == 0 {
			in.Set(core.ActionConfirm)
		}

		g.Step(in)

		snap := g.Snapshot()
		if err := snap.Validate(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
}

func TestSnapshotValidateRejects(t *testing.T) {
	g := newRunningGame(t, config.DefaultKongConfig())
	base := g.Snapshot()

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"negative lives", func(s *Snapshot) { s.Lives = -1 }},
		{"zero level", func(s *Snapshot) { s.Level = 0 }},
		{"negative size", func(s *Snapshot) { s.PlayerW = -1 }},
		{"barrel too fast", func(s *Snapshot) {
			s.Barrels = []BarrelState{{VX: 5, W: 24, H: 24, RollingRight: true}}
		}},
		{"barrel direction", func(s *Snapshot) {
			s.Barrels = []BarrelState{{VX: -3, W: 24, H: 24, RollingRight: true}}
		}},
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("fresh run should be valid: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := base
			tc.mutate(&snap)
			if err := snap.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestGameDeterminism(t *testing.T) {
	inputSequence := make([]core.InputFrame, 1500)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputSequence[i].Set(core.ActionJump)
		case i%200 < 120:
			inputSequence[i].Set(core.ActionRight)
		default:
			inputSequence[i].Set(core.ActionLeft)
		}
		if i%50 == 25 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := NewWithConfig(config.DefaultKongConfig())
		g.Reset(testRuntime)
		for _, in := range inputSequence {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}
}

func TestPlayerClampedToScreen(t *testing.T) {
	tests := []struct {
		name         string
		x, y, vy     float64
		move         core.Action
		wantX, wantY float64
	}{
		{"right edge", 768, 510, 0, core.ActionRight, 770, 510},
		{"left edge", 2, 510, 0, core.ActionLeft, 0, 510},
		{"top edge", 50, -20, -3, core.ActionNone, 50, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newRunningGame(t, config.DefaultKongConfig())
			p := g.Player()
			p.X, p.Y, p.VY = tc.x, tc.y, tc.vy

			res := g.Step(input(tc.move))
			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("player at (%g, %g), expected (%g, %g)", p.X, p.Y, tc.wantX, tc.wantY)
			}
			if res.State.Lives != 3 {
				t.Errorf("clamping should not cost a life, lives = %d", res.State.Lives)
			}
		})
	}
}

func TestBarrelRemovedBelowScreen(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		kept int
	}{
		{"top passes the bottom edge", 599, 0},
		{"still on screen", 590, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultKongConfig()
			g := newRunningGame(t, cfg)
			b := newBarrel(700, tc.y, cfg.Barrel)
			b.Falling = true
			b.VY = cfg.Barrel.DropSpeed
			g.barrels = append(g.barrels, b)

			res := g.Step(core.NewInputFrame())
			if len(g.Barrels()) != tc.kept {
				t.Errorf("%d barrels left, expected %d", len(g.Barrels()), tc.kept)
			}
			if res.State.Score != 0 || res.State.Lives != 3 {
				t.Errorf("leaving the screen should not score or cost a life, got %+v", res.State)
			}
		})
	}
}

func TestBarrelHittingPlayerInFireCostsLife(t *testing.T) {
	cfg := config.DefaultKongConfig()
	g := newRunningGame(t, cfg)

	p := g.Player()
	p.X = 140
	g.barrels = append(g.barrels, newBarrel(145, 526, cfg.Barrel))

	res := g.Step(core.NewInputFrame())
	if res.State.Lives != 2 || res.State.Score != 0 {
		t.Errorf("lives=%d score=%d, expected 2 and 0", res.State.Lives, res.State.Score)
	}
	if hasEvent(res, EventBarrelBurned) {
		t.Error("a barrel that hit the player should not also burn")
	}
	if !hasEvent(res, EventLifeLost) {
		t.Error("expected life lost event")
	}
}

func TestTimersIgnoredWhenNotPlaying(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
	}{
		{"game over", func(g *Game) { g.gameOver() }},
		{"paused", func(g *Game) { g.state = StatePaused }},
		{"idle", func(g *Game) { g.state = StateIdle }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newRunningGame(t, config.DefaultKongConfig())
			tc.setup(g)
			g.events = nil

			g.onTimer(TimerSpawn)
			g.onTimer(TimerEscalate)

			if len(g.Barrels()) != 0 {
				t.Errorf("stale spawn added %d barrels", len(g.Barrels()))
			}
			if g.State().Level != 1 {
				t.Errorf("stale escalation changed level to %d", g.State().Level)
			}
			if len(g.events) != 0 {
				t.Errorf("stale timers emitted events: %+v", g.events)
			}
		})
	}
}
