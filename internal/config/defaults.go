package config

import (
	_ "embed"
)

//go:embed defaults/plane.yaml
var defaultPlaneYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultPlaneYAML
}

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/plane.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Container: ContainerConfig{
			Width:  800,
			Height: 600,
		},
		Plane: PlaneConfig{
			X:            50,
			Width:        54,
			Height:       27,
			LiftVelocity: -8,
			HitboxInset:  5,
			MaxTilt:      30,
		},
		Obstacles: ObstacleConfig{
			Width:          30,
			MinGap:         100,
			MaxGap:         250,
			Margin:         50,
			MaxPerWave:     3,
			IntervalStepMs: 50,
			MinIntervalMs:  600,
		},
		Enemies: EnemyConfig{
			Width:            40,
			Height:           20,
			SpawnChance:      0.3,
			SpeedFactor:      1.2,
			MinVerticalSpeed: 1,
			MaxVerticalSpeed: 3,
		},
		Powerups: PowerupConfig{
			Size:             25,
			DurationMs:       8000,
			MinDelayMs:       5000,
			MaxDelayMs:       10000,
			SlowFactor:       0.5,
			PointsMultiplier: 2,
		},
		Clouds: CloudConfig{
			Enabled:    true,
			IntervalMs: 2000,
			Width:      100,
			Height:     50,
			MinSpeed:   1,
			MaxSpeed:   3,
		},
		Scoring: ScoringConfig{
			PointsPerLevel: 10,
		},
		Difficulties: map[Difficulty]DifficultyProfile{
			DifficultyEasy: {
				BaseSpeed:             3,
				Gravity:               0.3,
				ObstacleIntervalMs:    1800,
				EnemyUnlockLevel:      4,
				PowerupChance:         0.4,
				SpeedIncreasePerLevel: 0.3,
			},
			DifficultyNormal: {
				BaseSpeed:             4,
				Gravity:               0.4,
				ObstacleIntervalMs:    1500,
				EnemyUnlockLevel:      3,
				PowerupChance:         0.25,
				SpeedIncreasePerLevel: 0.5,
			},
			DifficultyHard: {
				BaseSpeed:             5,
				Gravity:               0.5,
				ObstacleIntervalMs:    1200,
				EnemyUnlockLevel:      2,
				PowerupChance:         0.15,
				SpeedIncreasePerLevel: 0.7,
			},
		},
		DefaultDifficulty: DifficultyEasy,
	}
}
