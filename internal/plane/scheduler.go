package plane

import "time"

// TimerKey identifies the purpose of a scheduled timer.
// At most one timer per key is pending at any time.
type TimerKey int

const (
	TimerObstacleSpawn TimerKey = iota
	TimerPowerupSpawn
	TimerPowerupExpiry
)

// String returns a human-readable name for the timer.
func (k TimerKey) String() string {
	switch k {
	case TimerObstacleSpawn:
		return "obstacle-spawn"
	case TimerPowerupSpawn:
		return "powerup-spawn"
	case TimerPowerupExpiry:
		return "powerup-expiry"
	default:
		return "unknown"
	}
}

type timer struct {
	due time.Duration
	seq uint64 // Tie-breaker: earlier scheduling fires first
	fn  func()
}

// Scheduler is a virtual-clock timer set driven by Advance.
// Nothing happens between calls to Advance, which keeps the simulation
// deterministic and lets tests control time precisely.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers map[TimerKey]*timer
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[TimerKey]*timer),
	}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Schedule arms fn to run delay after the current time, replacing any
// timer already pending under key. A non-positive delay fires on the next Advance.
func (s *Scheduler) Schedule(key TimerKey, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.timers[key] = &timer{due: s.now + delay, seq: s.seq, fn: fn}
}

// Cancel removes the timer pending under key, if any.
func (s *Scheduler) Cancel(key TimerKey) {
	delete(s.timers, key)
}

// CancelAll removes every pending timer.
func (s *Scheduler) CancelAll() {
	for k := range s.timers {
		delete(s.timers, k)
	}
}

// Pending reports whether a timer is armed under key.
func (s *Scheduler) Pending(key TimerKey) bool {
	_, ok := s.timers[key]
	return ok
}

// Remaining returns the time left until the timer under key fires.
func (s *Scheduler) Remaining(key TimerKey) (time.Duration, bool) {
	t, ok := s.timers[key]
	if !ok {
		return 0, false
	}
	if t.due < s.now {
		return 0, true
	}
	return t.due - s.now, true
}

// Advance moves the clock forward by dt and fires every timer that falls due,
// in due-time order. While a callback runs the clock reads the timer's due
// time, so a callback that re-arms itself stays on its own cadence.
// Returns the number of callbacks fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0

	for {
		key, t, ok := s.nextDue(target)
		if !ok {
			break
		}
		delete(s.timers, key)
		if t.due > s.now {
			s.now = t.due
		}
		t.fn()
		fired++
	}

	s.now = target
	return fired
}

// nextDue returns the earliest timer due at or before target.
func (s *Scheduler) nextDue(target time.Duration) (TimerKey, *timer, bool) {
	var (
		bestKey TimerKey
		best    *timer
	)
	for k, t := range s.timers {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			bestKey, best = k, t
		}
	}
	return bestKey, best, best != nil
}
