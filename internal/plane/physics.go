package plane

import (
	"github.com/vovakirdan/flappy-plane/internal/config"
	"github.com/vovakirdan/flappy-plane/internal/core"
)

// Plane is the player's aircraft. X is the left edge and Y the vertical
// centre line, so the bounding box spans [Y-Height/2, Y+Height/2].
type Plane struct {
	X, Y         float64
	Width        float64
	Height       float64
	Velocity     float64 // Positive = falling
	LiftVelocity float64
	HitboxInset  float64
	MaxTilt      float64
	Invincible   bool
}

// NewPlane places a plane at the vertical centre of a container of height containerH.
func NewPlane(cfg config.PlaneConfig, containerH float64) Plane {
	return Plane{
		X:            cfg.X,
		Y:            containerH / 2,
		Width:        cfg.Width,
		Height:       cfg.Height,
		LiftVelocity: cfg.LiftVelocity,
		HitboxInset:  cfg.HitboxInset,
		MaxTilt:      cfg.MaxTilt,
	}
}

// Tick integrates one frame of gravity. Position is not clamped;
// leaving the container is detected by CheckCollisions.
func (p *Plane) Tick(gravity float64) {
	p.Velocity += gravity
	p.Y += p.Velocity
}

// ApplyLift replaces the current velocity with the lift velocity.
func (p *Plane) ApplyLift() {
	p.Velocity = p.LiftVelocity
}

// Rotation returns the visual tilt in degrees, derived from velocity.
func (p Plane) Rotation() float64 {
	return core.ClampF(p.Velocity*2, -p.MaxTilt, p.MaxTilt)
}

// Bounds returns the full bounding box.
func (p Plane) Bounds() core.Box {
	return core.NewBox(p.X, p.Y-p.Height/2, p.Width, p.Height)
}

// Hitbox returns the bounding box shrunk by the forgiveness inset.
func (p Plane) Hitbox() core.Box {
	return p.Bounds().Inset(p.HitboxInset)
}

// View returns the renderer-facing description of the plane.
func (p Plane) View() PlaneView {
	return PlaneView{
		X:          p.X,
		Y:          p.Y,
		W:          p.Width,
		H:          p.Height,
		Rotation:   p.Rotation(),
		Invincible: p.Invincible,
	}
}

// StepPhysics advances the session's plane by one tick under the
// difficulty's gravity.
func StepPhysics(s *Session) {
	s.Plane.Tick(s.Profile.Gravity)
}
