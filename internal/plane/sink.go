package plane

import "time"

// EntityKind identifies the category of a live entity.
type EntityKind int

const (
	KindObstacleTop EntityKind = iota
	KindObstacleBottom
	KindEnemy
	KindPowerup
	KindCloud
)

// String returns a human-readable name for the entity kind.
func (k EntityKind) String() string {
	switch k {
	case KindObstacleTop:
		return "obstacle-top"
	case KindObstacleBottom:
		return "obstacle-bottom"
	case KindEnemy:
		return "enemy"
	case KindPowerup:
		return "powerup"
	case KindCloud:
		return "cloud"
	default:
		return "unknown"
	}
}

// EntityView is the renderer-facing description of one entity.
// Coordinates are logical container pixels; X, Y is the top-left corner.
type EntityView struct {
	ID      uint64
	Kind    EntityKind
	X, Y    float64
	W, H    float64
	Powerup PowerupKind // Set only for KindPowerup
}

// PlaneView is the renderer-facing description of the plane.
// Y is the vertical centre line; Rotation is the tilt in degrees.
type PlaneView struct {
	X, Y       float64
	W, H       float64
	Rotation   float64
	Invincible bool
}

// RenderSink receives entity lifecycle events from the simulation.
// Implementations must not call back into the game.
type RenderSink interface {
	EntitySpawned(EntityView)
	EntityMoved(EntityView)
	EntityRemoved(EntityView)
	PlaneMoved(PlaneView)
}

// NopSink discards all render events.
type NopSink struct{}

func (NopSink) EntitySpawned(EntityView) {}
func (NopSink) EntityMoved(EntityView)   {}
func (NopSink) EntityRemoved(EntityView) {}
func (NopSink) PlaneMoved(PlaneView)     {}

// HighScoreStore persists the best score across runs.
// LoadHighScore reports false when no score was saved yet.
type HighScoreStore interface {
	LoadHighScore() (int, bool, error)
	SaveHighScore(score int) error
}

// RunResult summarizes a finished run.
type RunResult struct {
	Difficulty string
	Score      int
	Level      int
	Duration   time.Duration
	Cause      string
}

// RunRecorder is implemented by stores that keep a history of runs.
// The game detects it on its HighScoreStore with a type assertion.
type RunRecorder interface {
	RecordRun(RunResult) error
}
