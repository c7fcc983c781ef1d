package kong

import (
	"fmt"

	"github.com/vovakirdan/kong-arcade/internal/config"
	"github.com/vovakirdan/kong-arcade/internal/core"
)

// Game states
const (
	StateIdle     = "idle"     // Start screen, no run in progress
	StatePlaying  = "playing"  // Run in progress
	StatePaused   = "paused"   // Run in progress, clock stopped
	StateGameOver = "gameover" // No lives left
)

// Event names reported in StepResult.Events.
const (
	EventRunStarted    = "run started"
	EventBarrelSpawned = "barrel spawned"
	EventBarrelBurned  = "barrel burned"
	EventLifeLost      = "life lost"
	EventLevelUp       = "level up"
	EventEscalated     = "escalated"
	EventGameOver      = "game over"
	EventPaused        = "paused"
	EventResumed       = "resumed"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the barrel-dodging platformer.
type Game struct {
	// Game objects
	level   *Level
	player  *Player
	barrels []*Barrel

	// Game state
	state     string
	score     int
	lives     int
	levelNum  int
	tickCount uint64
	events    []core.Event

	sched   *Scheduler
	rng     Random
	panel   *Panel
	display displays

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.KongConfig
	fixedCfg   bool
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.KongConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "kong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Barrel Kong"
}

// Config returns the active configuration.
func (g *Game) Config() config.KongConfig {
	return g.cfg
}

// Reset loads the configuration and returns to the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadKong(configPath)
		if err != nil {
			cfg = config.DefaultKongConfig()
		}
		preset := g.preset
		if preset == "" {
			preset = difficultyPreset
		}
		if preset != "" {
			config.ApplyKongPreset(&cfg, preset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = NewSimpleRNG(runtime.Seed)
	g.panel = &Panel{}
	g.display = displays{g.panel}
	g.sched = NewScheduler()

	g.level = NewLevel(g.cfg.World, g.cfg.Layout)
	g.player = newPlayer(g.cfg.Player)
	g.barrels = nil

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.levelNum = 1
	g.tickCount = 0
	g.state = StateIdle

	g.pushHUD()
	g.display.SetSummary("")
	g.display.ShowGameOver(false)
	g.display.ShowStart(true)
}

// SetPreset picks the difficulty preset applied on the next Reset,
// overriding the one set with SetDifficultyPreset.
func (g *Game) SetPreset(preset config.DifficultyPreset) {
	g.preset = preset
}

// SetRandom replaces the barrel fall roll source.
func (g *Game) SetRandom(r Random) {
	g.rng = r
}

// AttachDisplay adds a HUD sink and brings it up to date.
func (g *Game) AttachDisplay(d Display) {
	g.display = append(g.display, d)
	d.SetScore(g.score)
	d.SetLives(g.lives)
	d.SetLevel(g.levelNum)
	d.SetSummary(g.panel.Summary)
	d.ShowStart(g.panel.Start)
	d.ShowGameOver(g.panel.GameOver)
}

// Start begins a new run.
func (g *Game) Start() {
	g.level = NewLevel(g.cfg.World, g.cfg.Layout)
	g.player.reset(g.cfg.Player)
	g.barrels = nil

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.levelNum = 1
	g.state = StatePlaying

	g.sched.CancelAll()
	g.scheduleSpawn()
	if g.difficulty.IsEnabled() {
		g.sched.Every(TimerEscalate, float64(g.difficulty.EscalationInterval()))
	}

	g.pushHUD()
	g.display.SetSummary("")
	g.display.ShowStart(false)
	g.display.ShowGameOver(false)
	g.emit(EventRunStarted)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch g.state {
	case StateIdle:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.Start()
		}
		return g.result()
	case StateGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.Start()
		}
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
			g.emit(EventResumed)
		} else {
			g.state = StatePaused
			g.emit(EventPaused)
		}
	}
	if g.state == StatePaused {
		return g.result()
	}

	g.tickCount++
	g.sched.Advance(g.runtime.TickMillis(), g.onTimer)

	g.update(in)
	if g.state == StatePlaying {
		g.level.tick()
	}

	return g.result()
}

// update runs the per-tick world update while a run is in progress.
func (g *Game) update(in core.InputFrame) {
	p := g.player
	p.update(in, g.level, g.cfg.Physics)

	if p.Intersects(g.level.Goal.Box) {
		g.advanceLevel()
	}

	if !g.updateBarrels() {
		return
	}

	p.X = core.ClampF(p.X, 0, g.cfg.World.Width-p.W)
	p.Y = max(p.Y, 0)
	if p.Bottom() > g.cfg.World.Height {
		g.loseLife()
	}
}

// updateBarrels moves barrels and resolves their collisions. It returns
// false when a barrel hit the player; the remaining barrels are not
// processed that tick.
func (g *Game) updateBarrels() bool {
	kept := make([]*Barrel, 0, len(g.barrels))
	for i, b := range g.barrels {
		b.update(g.level.Platforms, g.cfg.Barrel, g.cfg.Physics.Gravity, g.rng)

		if b.Intersects(g.player.Box) {
			g.barrels = append(kept, g.barrels[i+1:]...)
			g.loseLife()
			return false
		}
		if g.level.FireAt(b.Box) >= 0 {
			g.addScore(g.cfg.Scoring.FireBonus)
			g.emit(EventBarrelBurned)
			continue
		}
		if b.Y > g.cfg.World.Height {
			continue
		}
		kept = append(kept, b)
	}
	g.barrels = kept
	return true
}

// onTimer handles a scheduler occurrence.
func (g *Game) onTimer(kind TimerKind) {
	if g.state != StatePlaying {
		return
	}

	switch kind {
	case TimerSpawn:
		x, y := g.level.Kong.SpawnPoint(g.cfg.Barrel.Width)
		g.barrels = append(g.barrels, newBarrel(x, y, g.cfg.Barrel))
		g.emit(EventBarrelSpawned)
	case TimerEscalate:
		if !g.difficulty.CanEscalate(g.levelNum) {
			return
		}
		g.levelNum++
		g.scheduleSpawn()
		g.display.SetLevel(g.levelNum)
		g.emit(EventEscalated)
	}
}

// advanceLevel rewards reaching the goal and moves to the next level.
func (g *Game) advanceLevel() {
	g.addScore(g.cfg.Scoring.LevelBonus * g.levelNum)
	g.levelNum++
	g.display.SetLevel(g.levelNum)
	g.resetLayout()
	g.emit(EventLevelUp)
}

// loseLife takes a life and either resets the layout or ends the run.
func (g *Game) loseLife() {
	g.lives--
	if g.lives < 0 {
		g.lives = 0
	}
	g.display.SetLives(g.lives)
	g.emit(EventLifeLost)

	if g.lives == 0 {
		g.gameOver()
		return
	}
	g.resetLayout()
}

func (g *Game) gameOver() {
	g.state = StateGameOver
	g.sched.CancelAll()
	g.display.SetSummary(fmt.Sprintf("Your score: %d", g.score))
	g.display.ShowGameOver(true)
	g.emit(EventGameOver)
}

// resetLayout puts the player back at the start, clears barrels and
// restarts the spawn timer at the current level's interval.
func (g *Game) resetLayout() {
	g.player.reset(g.cfg.Player)
	g.barrels = nil
	g.scheduleSpawn()
}

func (g *Game) scheduleSpawn() {
	g.sched.Every(TimerSpawn, float64(g.difficulty.SpawnInterval(g.levelNum)))
}

func (g *Game) addScore(points int) {
	g.score += points
	g.display.SetScore(g.score)
}

func (g *Game) pushHUD() {
	g.display.SetScore(g.score)
	g.display.SetLives(g.lives)
	g.display.SetLevel(g.levelNum)
}

func (g *Game) emit(name string) {
	g.events = append(g.events, core.Event{
		Name:  name,
		Score: g.score,
		Level: g.levelNum,
		Lives: g.lives,
	})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.levelNum,
		Running:  g.state == StatePlaying || g.state == StatePaused,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Ticks returns the number of simulated ticks in the current session.
func (g *Game) Ticks() uint64 {
	return g.tickCount
}

// Player returns the player actor.
func (g *Game) Player() *Player {
	return g.player
}

// Barrels returns the live barrels.
func (g *Game) Barrels() []*Barrel {
	return g.barrels
}

// Level returns the current level geometry and actors.
func (g *Game) Level() *Level {
	return g.level
}

// Scheduler returns the game's timer queue.
func (g *Game) Scheduler() *Scheduler {
	return g.sched
}

// Panel returns the built-in HUD panel.
func (g *Game) Panel() *Panel {
	return g.panel
}
