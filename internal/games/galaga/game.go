package galaga

import (
	"github.com/galago-arcade/galago/internal/config"
	"github.com/galago-arcade/galago/internal/core"
	"github.com/galago-arcade/galago/internal/registry"
)

// Simulation phase reported in every snapshot.
const (
	PhasePlaying      = "playing"
	PhaseIntermission = "intermission" // between wave clear and the next wave
	PhaseGameOver     = "gameover"
	PhasePaused       = "paused"
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
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game is the formation shooter simulation. One Step call advances exactly
// one fixed time step; systems run in a strict order over an exclusively
// owned world, so no locking is needed and identical inputs replay to
// identical snapshots.
type Game struct {
	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.GalagaConfig
	difficulty *config.DifficultyManager

	// Simulation state
	world     *World
	formation *Formation
	attack    attackScheduler
	director  waveDirector
	rng       *SimpleRNG
	telemetry Telemetry

	phase string
	tick  int
	score int
	lives int

	playerID     EntityID
	lastPlayerX  Fixed
	respawnTimer int
	resumePhase  string // phase to restore when unpausing

	// Per-wave escalated pacing
	diveCadence int
	diveCap     int

	// Collision scratch space, reused across ticks
	buckets [][]EntityID

	// Layout (computed from screen size)
	fieldTop       int // first playfield row, below the HUD
	fieldBottom    int // last playfield row
	playerY        int // ship row
	minScreenW     int
	minScreenH     int
	screenTooSmall bool

	// Last fully committed tick's output, reused if a tick faults
	lastSnap Snapshot
}

// New creates a new formation shooter instance.
func New() *Game {
	return &Game{telemetry: nopTelemetry{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "galaga"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Galago"
}

// SetTelemetry wires in the external fault-reporting collaborator.
func (g *Game) SetTelemetry(t Telemetry) {
	if t == nil {
		t = nopTelemetry{}
	}
	g.telemetry = t
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadGalaga(configPath)
	if err != nil {
		cfg = config.DefaultGalagaConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGalagaPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 40
	g.minScreenH = 18
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// HUD takes the top two rows, the ship sits one row above the bottom.
	g.fieldTop = 2
	g.fieldBottom = runtime.ScreenH - 1
	g.playerY = runtime.ScreenH - 2

	g.world = NewWorld(cfg.Waves.MaxEntities)
	g.formation = NewFormation(
		cfg.Formation.Rows, cfg.Formation.Cols,
		runtime.ScreenW, g.fieldTop+cfg.Formation.TopMargin,
		cfg.Formation.SpacingX, cfg.Formation.SpacingY,
		cfg.Formation.SwayAmplitude, cfg.Formation.SwayPeriod,
	)
	g.rng = NewSimpleRNG(runtime.Seed)

	g.tick = 0
	g.score = 0
	g.lives = cfg.Player.Lives
	g.respawnTimer = 0
	g.attack = attackScheduler{}
	g.director = waveDirector{}
	g.phase = PhasePlaying

	g.spawnPlayer(0)
	g.startWave(1)
	g.lastSnap = g.Snapshot()
}

// Step advances the game by one tick. Any internal fault is caught here:
// the tick is logged and abandoned, and the previous tick's snapshot stays
// current, so a bug degrades one frame instead of ending the session.
func (g *Game) Step(in core.InputFrame) (result core.StepResult) {
	defer func() {
		if r := recover(); r != nil {
			g.telemetry.Error("simulation tick fault", "tick", g.tick, "panic", r)
			result = core.StepResult{State: g.State()}
		}
	}()

	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.phase == PhaseGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.phase {
		case PhasePaused:
			g.phase = g.resumePhase
		case PhasePlaying, PhaseIntermission:
			g.resumePhase = g.phase
			g.phase = PhasePaused
		}
	}

	if g.phase == PhasePaused || g.phase == PhaseGameOver {
		g.lastSnap.Phase = g.phase
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Fixed system order; each system sees the fully resolved output of
	// the one before it. Creations and destructions commit at Flush.
	g.applyInput(in)
	g.stepMovement()
	g.updateEnemies()
	g.resolveCollisions()
	g.updateWave()
	g.world.Flush()

	g.lastSnap = g.Snapshot()
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Wave:     g.director.wave,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("galaga", func() registry.Game {
		return New()
	})
}
