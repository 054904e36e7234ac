package plane

// CollisionCause explains why a run ended.
type CollisionCause int

const (
	CauseNone CollisionCause = iota
	CauseBoundary
	CauseObstacle
	CauseEnemy
)

// String returns a human-readable name for the cause.
func (c CollisionCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseBoundary:
		return "boundary"
	case CauseObstacle:
		return "obstacle"
	case CauseEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// CollisionOutcome is the result of one collision pass.
type CollisionOutcome struct {
	GameOver  bool
	Cause     CollisionCause
	Collected []Powerup // In store order; already removed from the store
}

// CheckCollisions tests the plane against the container bounds and every entity.
//
// Leaving the container vertically ends the run even when invincible.
// Touching an obstacle or enemy ends the run unless the plane is invincible,
// in which case the entity is left untouched. Every powerup overlapping the
// hitbox is removed from the store and returned for activation.
func CheckCollisions(s *Session) CollisionOutcome {
	p := s.Plane
	if p.Y < 0 || p.Y > s.Config.Container.Height-p.Height {
		return CollisionOutcome{GameOver: true, Cause: CauseBoundary}
	}

	hitbox := p.Hitbox()
	es := s.Entities

	if !p.Invincible {
		for _, o := range es.Obstacles {
			if hitbox.Intersects(o.Bounds()) {
				return CollisionOutcome{GameOver: true, Cause: CauseObstacle}
			}
		}
		for _, e := range es.Enemies {
			if hitbox.Intersects(e.Bounds()) {
				return CollisionOutcome{GameOver: true, Cause: CauseEnemy}
			}
		}
	}

	var out CollisionOutcome
	for _, pu := range es.Powerups {
		if hitbox.Intersects(pu.Bounds()) {
			out.Collected = append(out.Collected, pu)
		}
	}
	for _, pu := range out.Collected {
		es.RemovePowerup(pu.ID)
	}
	return out
}
