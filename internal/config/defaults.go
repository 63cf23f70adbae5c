package config

import (
	_ "embed"
)

//go:embed defaults/galaga.yaml
var defaultGalagaYAML []byte

// DefaultGalagaConfig returns the default formation shooter configuration.
// Values target classic formation-shooter pacing at 60 ticks per second.
func DefaultGalagaConfig() GalagaConfig {
	return GalagaConfig{
		Player: PlayerConfig{
			Speed:        500, // half a cell per tick
			Lives:        3,
			FireCooldown: 18,
			RespawnDelay: 90,
			InvulnTicks:  120,
		},
		Projectiles: ProjectileConfig{
			PlayerSpeed: 900,
			EnemySpeed:  350,
			Damage:      1,
		},
		Formation: FormationConfig{
			Rows:          5,
			Cols:          8,
			SpacingX:      4,
			SpacingY:      2,
			TopMargin:     3,
			SwayAmplitude: 2,
			SwayPeriod:    240,
			EntryDuration: 150,
		},
		Attack: AttackConfig{
			DiveCap:         2,
			Cadence:         150,
			SlotCooldown:    600,
			DiveDuration:    200,
			ReturnDuration:  130,
			FirePoint:       35,
			MinFireInterval: 45,
		},
		Waves: WaveConfig{
			BaseEnemies:    12,
			EnemiesPerWave: 4,
			SpawnStagger:   12,
			Intermission:   180,
			CadenceFloor:   45,
			CadenceStep:    12,
			DiveCapStep:    2,
			MaxDiveCap:     4,
			MaxEntities:    256,
		},
		Scoring: ScoringConfig{
			Bee:            50,
			Butterfly:      80,
			Boss:           150,
			DiveMultiplier: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800, // three minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				CadenceReduction: 30,
			},
		},
	}
}
