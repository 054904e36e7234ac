package plane

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// PowerupManager applies and reverts powerup effects and owns the expiry timer.
type PowerupManager struct {
	sched  *Scheduler
	guard  func(func()) func()
	logger *log.Logger
}

// NewPowerupManager creates a manager arming expiry timers on sched.
// guard wraps every expiry callback so it is dropped once its run is over.
func NewPowerupManager(sched *Scheduler, guard func(func()) func(), logger *log.Logger) *PowerupManager {
	if guard == nil {
		guard = func(fn func()) func() { return fn }
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &PowerupManager{sched: sched, guard: guard, logger: logger}
}

// Activate replaces the current powerup with kind. The previous effect is
// fully reverted before the new one is applied.
func (m *PowerupManager) Activate(s *Session, kind PowerupKind) {
	m.Deactivate(s)

	now := m.sched.Now()
	duration := s.Config.Powerups.Duration()
	active := ActivePowerup{Kind: kind, StartedAt: now, Duration: duration}

	switch kind {
	case PowerupShield:
		s.Plane.Invincible = true
	case PowerupSlow:
		active.SavedSpeed = s.Run.GameSpeed
		s.Run.GameSpeed *= s.Config.Powerups.SlowFactor
	case PowerupPoints:
		s.Run.PointsMultiplier = s.Config.Powerups.PointsMultiplier
	default:
		return
	}

	s.Powerup = active
	m.armExpiry(s, duration)
	m.logger.Info("powerup activated", "kind", kind, "speed", s.Run.GameSpeed)
}

// Deactivate reverts the active powerup, if any, and cancels its timer.
// A slow powerup restores the speed saved at activation, dropping any
// level-up increase gained while it was active.
func (m *PowerupManager) Deactivate(s *Session) {
	if !s.Powerup.Active() {
		return
	}

	switch s.Powerup.Kind {
	case PowerupShield:
		s.Plane.Invincible = false
	case PowerupSlow:
		s.Run.GameSpeed = s.Powerup.SavedSpeed
	case PowerupPoints:
		s.Run.PointsMultiplier = 1
	}

	m.logger.Info("powerup expired", "kind", s.Powerup.Kind)
	s.Powerup = ActivePowerup{}
	m.sched.Cancel(TimerPowerupExpiry)
}

// Pause stops the expiry timer. The effect itself stays applied.
func (m *PowerupManager) Pause() {
	m.sched.Cancel(TimerPowerupExpiry)
}

// Resume re-arms the expiry timer with the time the powerup has left.
func (m *PowerupManager) Resume(s *Session) {
	if !s.Powerup.Active() {
		return
	}
	m.armExpiry(s, m.Remaining(s))
}

// Remaining returns how long the active powerup has left, never negative.
func (m *PowerupManager) Remaining(s *Session) time.Duration {
	if !s.Powerup.Active() {
		return 0
	}
	left := s.Powerup.Duration - (m.sched.Now() - s.Powerup.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}

func (m *PowerupManager) armExpiry(s *Session, delay time.Duration) {
	m.sched.Schedule(TimerPowerupExpiry, delay, m.guard(func() {
		m.Deactivate(s)
	}))
}
