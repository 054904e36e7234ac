package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDifficulty is returned for a tier name that is not in the table.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty names a difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns every tier in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty converts a user-supplied name to a Difficulty.
// An empty string is rejected; callers pick their own default.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Difficulties() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want easy, normal or hard)", ErrUnknownDifficulty, s)
}

// Next returns the following tier, wrapping around.
func (d Difficulty) Next() Difficulty {
	return d.offset(1)
}

// Prev returns the preceding tier, wrapping around.
func (d Difficulty) Prev() Difficulty {
	return d.offset(-1)
}

func (d Difficulty) offset(delta int) Difficulty {
	all := Difficulties()
	for i, known := range all {
		if known == d {
			return all[(i+delta+len(all))%len(all)]
		}
	}
	return all[0]
}

// Title returns the display name of the tier.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// DifficultyProfile holds the constants of one difficulty tier.
type DifficultyProfile struct {
	BaseSpeed             float64 `yaml:"base_speed"`
	Gravity               float64 `yaml:"gravity"`
	ObstacleIntervalMs    int     `yaml:"obstacle_interval_ms"`
	EnemyUnlockLevel      int     `yaml:"enemy_unlock_level"`
	PowerupChance         float64 `yaml:"powerup_chance"`
	SpeedIncreasePerLevel float64 `yaml:"speed_increase_per_level"`
}

// ObstacleInterval returns the base delay between obstacle waves.
func (p DifficultyProfile) ObstacleInterval() time.Duration {
	return time.Duration(p.ObstacleIntervalMs) * time.Millisecond
}

func (p DifficultyProfile) validate() error {
	switch {
	case p.BaseSpeed <= 0:
		return errors.New("base_speed must be positive")
	case p.Gravity < 0:
		return errors.New("gravity must not be negative")
	case p.ObstacleIntervalMs <= 0:
		return errors.New("obstacle_interval_ms must be positive")
	case p.EnemyUnlockLevel < 1:
		return errors.New("enemy_unlock_level must be at least 1")
	case p.PowerupChance < 0 || p.PowerupChance > 1:
		return errors.New("powerup_chance must be within [0,1]")
	case p.SpeedIncreasePerLevel < 0:
		return errors.New("speed_increase_per_level must not be negative")
	}
	return nil
}

// Profile looks up the profile for a tier.
func (c Config) Profile(d Difficulty) (DifficultyProfile, error) {
	p, ok := c.Difficulties[d]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	return p, nil
}
