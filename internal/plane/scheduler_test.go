package plane

import (
	"testing"
	"time"
)

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []TimerKey

	s.Schedule(TimerPowerupExpiry, 300*time.Millisecond, func() { order = append(order, TimerPowerupExpiry) })
	s.Schedule(TimerObstacleSpawn, 100*time.Millisecond, func() { order = append(order, TimerObstacleSpawn) })
	s.Schedule(TimerPowerupSpawn, 200*time.Millisecond, func() { order = append(order, TimerPowerupSpawn) })

	if fired := s.Advance(250 * time.Millisecond); fired != 2 {
		t.Fatalf("Advance(250ms) fired %d timers, expected 2", fired)
	}
	if len(order) != 2 || order[0] != TimerObstacleSpawn || order[1] != TimerPowerupSpawn {
		t.Errorf("fire order = %v", order)
	}
	if !s.Pending(TimerPowerupExpiry) {
		t.Error("expiry timer should still be pending")
	}

	s.Advance(50 * time.Millisecond)
	if len(order) != 3 || order[2] != TimerPowerupExpiry {
		t.Errorf("expiry should fire exactly at its due time, order = %v", order)
	}
	if s.Now() != 300*time.Millisecond {
		t.Errorf("Now() = %v, expected 300ms", s.Now())
	}
}

func TestSchedulerReplaceAndCancel(t *testing.T) {
	s := NewScheduler()
	calls := 0

	s.Schedule(TimerObstacleSpawn, 100*time.Millisecond, func() { calls += 100 })
	s.Schedule(TimerObstacleSpawn, 500*time.Millisecond, func() { calls++ })

	s.Advance(200 * time.Millisecond)
	if calls != 0 {
		t.Errorf("replaced timer fired, calls = %d", calls)
	}
	if left, ok := s.Remaining(TimerObstacleSpawn); !ok || left != 300*time.Millisecond {
		t.Errorf("Remaining() = %v, %v; expected 300ms, true", left, ok)
	}

	s.Cancel(TimerObstacleSpawn)
	s.Advance(time.Second)
	if calls != 0 {
		t.Errorf("cancelled timer fired, calls = %d", calls)
	}

	s.Schedule(TimerObstacleSpawn, 0, func() { calls++ })
	s.Schedule(TimerPowerupSpawn, 0, func() { calls++ })
	s.CancelAll()
	if s.Pending(TimerObstacleSpawn) || s.Pending(TimerPowerupSpawn) {
		t.Error("CancelAll() should clear every timer")
	}
}

func TestSchedulerZeroDelayFiresOnNextAdvance(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.Schedule(TimerObstacleSpawn, -time.Second, func() { fired = true })

	if fired {
		t.Fatal("Schedule must not run the callback synchronously")
	}
	s.Advance(0)
	if !fired {
		t.Error("zero-delay timer should fire on Advance(0)")
	}
}

func TestSchedulerRearmKeepsCadence(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration

	var tick func()
	tick = func() {
		at = append(at, s.Now())
		s.Schedule(TimerObstacleSpawn, 600*time.Millisecond, tick)
	}
	s.Schedule(TimerObstacleSpawn, 0, tick)

	// One big step must fire every occurrence at its own due time.
	s.Advance(2 * time.Second)

	want := []time.Duration{0, 600 * time.Millisecond, 1200 * time.Millisecond, 1800 * time.Millisecond}
	if len(at) != len(want) {
		t.Fatalf("fired at %v, expected %v", at, want)
	}
	for i := range want {
		if at[i] != want[i] {
			t.Errorf("firing %d at %v, expected %v", i, at[i], want[i])
		}
	}
	if left, _ := s.Remaining(TimerObstacleSpawn); left != 400*time.Millisecond {
		t.Errorf("next firing in %v, expected 400ms", left)
	}
}

func TestTimerKeyString(t *testing.T) {
	tests := []struct {
		key  TimerKey
		want string
	}{
		{TimerObstacleSpawn, "obstacle-spawn"},
		{TimerPowerupSpawn, "powerup-spawn"},
		{TimerPowerupExpiry, "powerup-expiry"},
		{TimerKey(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.key.String(); got != tc.want {
			t.Errorf("TimerKey(%d).String() = %q, expected %q", tc.key, got, tc.want)
		}
	}
}
