package plane

import (
	"time"

	"github.com/vovakirdan/flappy-plane/internal/config"
)

// RunState holds the score-related state of one run.
type RunState struct {
	Score            int
	Level            int
	GameSpeed        float64 // Pixels per tick for obstacles and powerups
	PointsMultiplier int
	IsActive         bool
	IsPaused         bool
}

// ActivePowerup describes the single powerup currently in effect.
// The zero value means no powerup is active.
type ActivePowerup struct {
	Kind       PowerupKind
	StartedAt  time.Duration // Session clock at pickup
	Duration   time.Duration
	SavedSpeed float64 // Game speed before a slow powerup
}

// Active reports whether a powerup is in effect.
func (a ActivePowerup) Active() bool {
	return a.Kind != PowerupNone
}

// Session aggregates everything that belongs to one run.
// Every simulation component takes the session explicitly.
type Session struct {
	Config     config.Config
	Difficulty config.Difficulty
	Profile    config.DifficultyProfile

	Run      RunState
	Plane    Plane
	Entities *EntityStore
	Powerup  ActivePowerup

	StartedAt   time.Duration // Clock value when the run started
	NextCloudAt time.Duration // Earliest clock value for the next cloud
}

// NewSession creates a fresh run at clock value now.
// The plane starts at the vertical centre of the container with no velocity.
func NewSession(cfg config.Config, d config.Difficulty, profile config.DifficultyProfile, entities *EntityStore, now time.Duration) *Session {
	return &Session{
		Config:     cfg,
		Difficulty: d,
		Profile:    profile,
		Run: RunState{
			Score:            0,
			Level:            1,
			GameSpeed:        profile.BaseSpeed,
			PointsMultiplier: 1,
		},
		Plane:       NewPlane(cfg.Plane, cfg.Container.Height),
		Entities:    entities,
		StartedAt:   now,
		NextCloudAt: now,
	}
}

// Elapsed returns how long the run has lasted at clock value now.
func (s *Session) Elapsed(now time.Duration) time.Duration {
	return now - s.StartedAt
}
