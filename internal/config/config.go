// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// GalagaConfig contains all tunables for the formation shooter.
// Everything the simulation treats as a constant lives here so pacing can
// be tuned without touching game code.
type GalagaConfig struct {
	Player      PlayerConfig     `yaml:"player"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Formation   FormationConfig  `yaml:"formation"`
	Attack      AttackConfig     `yaml:"attack"`
	Waves       WaveConfig       `yaml:"waves"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines ship handling and survivability.
// Speeds are fixed-point: 1000 = one cell per tick.
type PlayerConfig struct {
	Speed        int `yaml:"speed"`         // horizontal speed while a move intent is held
	Lives        int `yaml:"lives"`         // starting lives
	FireCooldown int `yaml:"fire_cooldown"` // ticks between shots
	RespawnDelay int `yaml:"respawn_delay"` // ticks from death to respawn
	InvulnTicks  int `yaml:"invuln_ticks"`  // post-respawn grace window
}

// ProjectileConfig defines both sides' shot behavior.
type ProjectileConfig struct {
	PlayerSpeed int `yaml:"player_speed"` // fixed-point cells per tick, travels up
	EnemySpeed  int `yaml:"enemy_speed"`  // fixed-point cells per tick, travels down
	Damage      int `yaml:"damage"`       // health removed per hit
}

// FormationConfig defines the slot grid and entrance choreography.
type FormationConfig struct {
	Rows          int `yaml:"rows"`
	Cols          int `yaml:"cols"`
	SpacingX      int `yaml:"spacing_x"`      // cells between slot columns
	SpacingY      int `yaml:"spacing_y"`      // cells between slot rows
	TopMargin     int `yaml:"top_margin"`     // cells between HUD and first row
	SwayAmplitude int `yaml:"sway_amplitude"` // horizontal oscillation, cells
	SwayPeriod    int `yaml:"sway_period"`    // full oscillation cycle, ticks
	EntryDuration int `yaml:"entry_duration"` // entrance path length, ticks
}

// AttackConfig defines dive scheduling and execution.
type AttackConfig struct {
	DiveCap         int `yaml:"dive_cap"`          // max concurrently attacking enemies
	Cadence         int `yaml:"cadence"`           // ticks between dive launches
	SlotCooldown    int `yaml:"slot_cooldown"`     // ticks before a slot may dive again
	DiveDuration    int `yaml:"dive_duration"`     // dive path length, ticks
	ReturnDuration  int `yaml:"return_duration"`   // return path length, ticks
	FirePoint       int `yaml:"fire_point"`        // percent of dive elapsed before firing
	MinFireInterval int `yaml:"min_fire_interval"` // ticks between any one enemy's shots
}

// WaveConfig defines spawn sequencing and escalation across waves.
type WaveConfig struct {
	BaseEnemies    int `yaml:"base_enemies"`     // enemies in wave 1
	EnemiesPerWave int `yaml:"enemies_per_wave"` // additional enemies per wave
	SpawnStagger   int `yaml:"spawn_stagger"`    // ticks between entrance spawns
	Intermission   int `yaml:"intermission"`     // ticks between wave clear and next wave
	CadenceFloor   int `yaml:"cadence_floor"`    // minimum dive cadence, ticks
	CadenceStep    int `yaml:"cadence_step"`     // cadence reduction per wave, ticks
	DiveCapStep    int `yaml:"dive_cap_step"`    // waves per extra concurrent diver
	MaxDiveCap     int `yaml:"max_dive_cap"`
	MaxEntities    int `yaml:"max_entities"` // world arena capacity
}

// ScoringConfig defines per-kind kill values.
type ScoringConfig struct {
	Bee            int `yaml:"bee"`
	Butterfly      int `yaml:"butterfly"`
	Boss           int `yaml:"boss"`
	DiveMultiplier int `yaml:"dive_multiplier"` // bonus factor for killing a diving enemy
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // dive/entrance speedup at max difficulty
	CadenceReduction int     `yaml:"cadence_reduction"` // dive cadence reduction at max difficulty, ticks
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
