// Package config provides YAML-based game configuration loading and the
// difficulty profile table for Flappy Plane.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all tunable parameters of the simulation.
// Distances are in logical container pixels; speeds are pixels per tick.
type Config struct {
	Container         ContainerConfig                  `yaml:"container"`
	Plane             PlaneConfig                      `yaml:"plane"`
	Obstacles         ObstacleConfig                   `yaml:"obstacles"`
	Enemies           EnemyConfig                      `yaml:"enemies"`
	Powerups          PowerupConfig                    `yaml:"powerups"`
	Clouds            CloudConfig                      `yaml:"clouds"`
	Scoring           ScoringConfig                    `yaml:"scoring"`
	Difficulties      map[Difficulty]DifficultyProfile `yaml:"difficulties"`
	DefaultDifficulty Difficulty                       `yaml:"default_difficulty"`
}

// ContainerConfig defines the logical play area.
type ContainerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlaneConfig defines the player's plane.
type PlaneConfig struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	LiftVelocity float64 `yaml:"lift_velocity"` // Negative = up
	HitboxInset  float64 `yaml:"hitbox_inset"`  // Forgiveness margin on every side
	MaxTilt      float64 `yaml:"max_tilt"`      // Degrees
}

// ObstacleConfig defines obstacle wave generation.
type ObstacleConfig struct {
	Width          float64 `yaml:"width"`
	MinGap         int     `yaml:"min_gap"`
	MaxGap         int     `yaml:"max_gap"` // Exclusive
	Margin         int     `yaml:"margin"`  // Minimum distance between gap and container edge
	MaxPerWave     int     `yaml:"max_per_wave"`
	IntervalStepMs int     `yaml:"interval_step_ms"` // Interval reduction per level
	MinIntervalMs  int     `yaml:"min_interval_ms"`
}

// EnemyConfig defines enemy spawning and movement.
type EnemyConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	SpawnChance      float64 `yaml:"spawn_chance"`
	SpeedFactor      float64 `yaml:"speed_factor"` // Horizontal speed = gameSpeed * factor
	MinVerticalSpeed float64 `yaml:"min_vertical_speed"`
	MaxVerticalSpeed float64 `yaml:"max_vertical_speed"` // Exclusive
}

// PowerupConfig defines collectible powerups and their effects.
type PowerupConfig struct {
	Size             float64 `yaml:"size"`
	DurationMs       int     `yaml:"duration_ms"`
	MinDelayMs       int     `yaml:"min_delay_ms"`
	MaxDelayMs       int     `yaml:"max_delay_ms"` // Exclusive
	SlowFactor       float64 `yaml:"slow_factor"`
	PointsMultiplier int     `yaml:"points_multiplier"`
}

// CloudConfig defines cosmetic background clouds.
type CloudConfig struct {
	Enabled    bool    `yaml:"enabled"`
	IntervalMs int     `yaml:"interval_ms"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"` // Exclusive
}

// ScoringConfig defines level progression.
type ScoringConfig struct {
	PointsPerLevel int `yaml:"points_per_level"`
}

// IntervalStep returns how much the wave interval shrinks per level.
func (o ObstacleConfig) IntervalStep() time.Duration {
	return time.Duration(o.IntervalStepMs) * time.Millisecond
}

// MinInterval returns the floor of the wave interval.
func (o ObstacleConfig) MinInterval() time.Duration {
	return time.Duration(o.MinIntervalMs) * time.Millisecond
}

// Duration returns the powerup effect duration.
func (p PowerupConfig) Duration() time.Duration {
	return time.Duration(p.DurationMs) * time.Millisecond
}

// Interval returns the minimum time between clouds.
func (c CloudConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// Validate checks that the configuration is playable.
func (c Config) Validate() error {
	switch {
	case c.Container.Width <= 0 || c.Container.Height <= 0:
		return fmt.Errorf("%w: container must have a positive size", ErrInvalidConfig)
	case c.Plane.Width <= 0 || c.Plane.Height <= 0:
		return fmt.Errorf("%w: plane must have a positive size", ErrInvalidConfig)
	case c.Plane.HitboxInset*2 >= c.Plane.Width || c.Plane.HitboxInset*2 >= c.Plane.Height:
		return fmt.Errorf("%w: hitbox inset %.1f leaves no hitbox", ErrInvalidConfig, c.Plane.HitboxInset)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("%w: obstacle width must be positive", ErrInvalidConfig)
	case c.Obstacles.Margin < 0:
		return fmt.Errorf("%w: obstacle margin %d is negative", ErrInvalidConfig, c.Obstacles.Margin)
	case c.Obstacles.MinGap <= 0 || c.Obstacles.MaxGap <= c.Obstacles.MinGap:
		return fmt.Errorf("%w: obstacle gap range [%d,%d) is empty", ErrInvalidConfig, c.Obstacles.MinGap, c.Obstacles.MaxGap)
	case float64(c.Obstacles.MaxGap+2*c.Obstacles.Margin) > c.Container.Height:
		return fmt.Errorf("%w: largest gap plus margins does not fit the container", ErrInvalidConfig)
	case c.Obstacles.MaxPerWave < 1:
		return fmt.Errorf("%w: max_per_wave must be at least 1", ErrInvalidConfig)
	case c.Obstacles.MinIntervalMs <= 0:
		return fmt.Errorf("%w: min_interval_ms must be positive", ErrInvalidConfig)
	case c.Enemies.Width <= 0 || c.Enemies.Height <= 0 || c.Enemies.Height >= c.Container.Height:
		return fmt.Errorf("%w: enemy size must fit inside the container", ErrInvalidConfig)
	case c.Enemies.SpawnChance < 0 || c.Enemies.SpawnChance > 1:
		return fmt.Errorf("%w: enemy spawn_chance must be within [0,1]", ErrInvalidConfig)
	case c.Powerups.Size <= 0 || c.Powerups.Size >= c.Container.Height:
		return fmt.Errorf("%w: powerup size must fit inside the container", ErrInvalidConfig)
	case c.Clouds.Enabled && (c.Clouds.Width <= 0 || c.Clouds.Height <= 0 || c.Clouds.Height >= c.Container.Height):
		return fmt.Errorf("%w: cloud size must fit inside the container", ErrInvalidConfig)
	case c.Powerups.MinDelayMs <= 0 || c.Powerups.MaxDelayMs < c.Powerups.MinDelayMs:
		return fmt.Errorf("%w: powerup delay range is invalid", ErrInvalidConfig)
	case c.Powerups.DurationMs <= 0:
		return fmt.Errorf("%w: powerup duration must be positive", ErrInvalidConfig)
	case c.Scoring.PointsPerLevel <= 0:
		return fmt.Errorf("%w: points_per_level must be positive", ErrInvalidConfig)
	}

	for _, d := range Difficulties() {
		p, ok := c.Difficulties[d]
		if !ok {
			return fmt.Errorf("%w: missing difficulty profile %q", ErrInvalidConfig, d)
		}
		if err := p.validate(); err != nil {
			return fmt.Errorf("%w: difficulty %q: %v", ErrInvalidConfig, d, err)
		}
	}

	if _, err := ParseDifficulty(string(c.DefaultDifficulty)); err != nil {
		return fmt.Errorf("%w: default_difficulty: %v", ErrInvalidConfig, err)
	}
	return nil
}
