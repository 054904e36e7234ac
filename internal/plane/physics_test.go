package plane

import (
	"testing"

	"github.com/vovakirdan/flappy-plane/internal/config"
)

func TestPlaneTickIntegratesGravity(t *testing.T) {
	p := NewPlane(config.DefaultConfig().Plane, 600)
	if p.Y != 300 || p.Velocity != 0 {
		t.Fatalf("new plane at y=%v v=%v, expected centre at rest", p.Y, p.Velocity)
	}

	p.Tick(0.5)
	p.Tick(0.5)

	// v: 0.5, 1.0; y: 300.5, 301.5
	if p.Velocity != 1.0 || p.Y != 301.5 {
		t.Errorf("after two ticks y=%v v=%v, expected y=301.5 v=1", p.Y, p.Velocity)
	}
}

func TestApplyLiftOverridesFall(t *testing.T) {
	p := NewPlane(config.DefaultConfig().Plane, 600)
	p.Velocity = 12

	p.ApplyLift()
	if p.Velocity != -8 {
		t.Errorf("velocity after lift = %v, expected -8", p.Velocity)
	}

	p.ApplyLift()
	if p.Velocity != -8 {
		t.Errorf("lift should assign, not accumulate; got %v", p.Velocity)
	}
}

func TestRotation(t *testing.T) {
	tests := []struct {
		velocity float64
		want     float64
	}{
		{0, 0},
		{5, 10},
		{-8, -16},
		{15, 30},
		{40, 30},
		{-20, -30},
	}

	p := NewPlane(config.DefaultConfig().Plane, 600)
	for _, tc := range tests {
		p.Velocity = tc.velocity
		if got := p.Rotation(); got != tc.want {
			t.Errorf("Rotation() at v=%v = %v, expected %v", tc.velocity, got, tc.want)
		}
	}
}

func TestPlaneHitboxIsInsetCentredBox(t *testing.T) {
	p := NewPlane(config.DefaultConfig().Plane, 600)

	b := p.Bounds()
	if b.X != 50 || b.Y != 286.5 || b.W != 54 || b.H != 27 {
		t.Errorf("Bounds() = %+v", b)
	}

	h := p.Hitbox()
	if h.X != 55 || h.Y != 291.5 || h.W != 44 || h.H != 17 {
		t.Errorf("Hitbox() = %+v", h)
	}
}
