package plane

import (
	"math/rand"

	"github.com/vovakirdan/flappy-plane/internal/config"
	"github.com/vovakirdan/flappy-plane/internal/core"
)

// PowerupKind identifies the effect of a powerup.
type PowerupKind int

const (
	PowerupNone PowerupKind = iota
	PowerupShield
	PowerupSlow
	PowerupPoints
)

// powerupKinds lists the collectible kinds in spawn order.
var powerupKinds = []PowerupKind{PowerupShield, PowerupSlow, PowerupPoints}

// String returns a human-readable name for the powerup kind.
func (k PowerupKind) String() string {
	switch k {
	case PowerupNone:
		return "none"
	case PowerupShield:
		return "shield"
	case PowerupSlow:
		return "slow"
	case PowerupPoints:
		return "points"
	default:
		return "unknown"
	}
}

// Obstacle is one segment of an obstacle pair.
// The top segment spans [0, GapTop), the bottom one [GapTop+GapHeight, H).
type Obstacle struct {
	ID        uint64
	Kind      EntityKind // KindObstacleTop or KindObstacleBottom
	X, Y      float64    // Top-left corner
	Width     float64
	Height    float64
	GapTop    float64
	GapHeight float64
}

// Bounds returns the segment's bounding box.
func (o Obstacle) Bounds() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

func (o Obstacle) view() EntityView {
	return EntityView{ID: o.ID, Kind: o.Kind, X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Enemy flies left at a speed fixed at spawn and bounces vertically.
type Enemy struct {
	ID            uint64
	X, Y          float64
	Width         float64
	Height        float64
	Speed         float64 // Horizontal, captured from the game speed at spawn
	VerticalSpeed float64
	Direction     float64 // -1 = up, 1 = down
}

// Bounds returns the enemy's bounding box.
func (e Enemy) Bounds() core.Box {
	return core.NewBox(e.X, e.Y, e.Width, e.Height)
}

func (e Enemy) view() EntityView {
	return EntityView{ID: e.ID, Kind: KindEnemy, X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Powerup is a collectible moving with the game speed.
type Powerup struct {
	ID   uint64
	Kind PowerupKind
	X, Y float64
	Size float64
}

// Bounds returns the powerup's bounding box.
func (p Powerup) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

func (p Powerup) view() EntityView {
	return EntityView{ID: p.ID, Kind: KindPowerup, X: p.X, Y: p.Y, W: p.Size, H: p.Size, Powerup: p.Kind}
}

// Cloud is background decoration with its own speed.
type Cloud struct {
	ID     uint64
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64
}

func (c Cloud) view() EntityView {
	return EntityView{ID: c.ID, Kind: KindCloud, X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

// EntityStore owns every live entity of a run.
// Entities enter at the right edge of the container and are pruned once
// they have fully left through the left edge.
type EntityStore struct {
	Obstacles []Obstacle
	Enemies   []Enemy
	Powerups  []Powerup
	Clouds    []Cloud

	cfg    config.Config
	sink   RenderSink
	nextID uint64
}

// NewEntityStore creates an empty store reporting to sink.
func NewEntityStore(cfg config.Config, sink RenderSink) *EntityStore {
	if sink == nil {
		sink = NopSink{}
	}
	return &EntityStore{
		Obstacles: make([]Obstacle, 0, 12),
		Enemies:   make([]Enemy, 0, 4),
		Powerups:  make([]Powerup, 0, 4),
		Clouds:    make([]Cloud, 0, 8),
		cfg:       cfg,
		sink:      sink,
	}
}

func (es *EntityStore) newID() uint64 {
	es.nextID++
	return es.nextID
}

// Len returns the number of live entities, clouds included.
func (es *EntityStore) Len() int {
	return len(es.Obstacles) + len(es.Enemies) + len(es.Powerups) + len(es.Clouds)
}

// Clear removes every entity, reporting each removal.
func (es *EntityStore) Clear() {
	for _, o := range es.Obstacles {
		es.sink.EntityRemoved(o.view())
	}
	for _, e := range es.Enemies {
		es.sink.EntityRemoved(e.view())
	}
	for _, p := range es.Powerups {
		es.sink.EntityRemoved(p.view())
	}
	for _, c := range es.Clouds {
		es.sink.EntityRemoved(c.view())
	}
	es.Obstacles = es.Obstacles[:0]
	es.Enemies = es.Enemies[:0]
	es.Powerups = es.Powerups[:0]
	es.Clouds = es.Clouds[:0]
}

// WaveSize returns how many obstacle pairs one spawn cycle creates at level.
func (es *EntityStore) WaveSize(level int) int {
	count := (level + 1) / 2 // ceil(level/2)
	return core.Clamp(count, 1, es.cfg.Obstacles.MaxPerWave)
}

// SpawnObstacleWave adds one wave of obstacle pairs just past the right edge.
// Pairs are staggered horizontally so they do not overlap.
// Returns the number of pairs created.
func (es *EntityStore) SpawnObstacleWave(rng *rand.Rand, level int) int {
	oc := es.cfg.Obstacles
	containerW := es.cfg.Container.Width
	containerH := es.cfg.Container.Height
	count := es.WaveSize(level)

	for i := 0; i < count; i++ {
		gap := oc.MinGap + rng.Intn(oc.MaxGap-oc.MinGap)
		gapTop := rng.Intn(int(containerH)-gap-2*oc.Margin) + oc.Margin
		offset := float64(i) * containerW / float64(count*2)
		x := containerW + offset

		top := Obstacle{
			ID:        es.newID(),
			Kind:      KindObstacleTop,
			X:         x,
			Y:         0,
			Width:     oc.Width,
			Height:    float64(gapTop),
			GapTop:    float64(gapTop),
			GapHeight: float64(gap),
		}
		bottomY := float64(gapTop + gap)
		bottom := Obstacle{
			ID:        es.newID(),
			Kind:      KindObstacleBottom,
			X:         x,
			Y:         bottomY,
			Width:     oc.Width,
			Height:    containerH - bottomY,
			GapTop:    float64(gapTop),
			GapHeight: float64(gap),
		}

		es.Obstacles = append(es.Obstacles, top, bottom)
		es.sink.EntitySpawned(top.view())
		es.sink.EntitySpawned(bottom.view())
	}
	return count
}

// SpawnEnemy adds an enemy just past the right edge moving at gameSpeed times
// the configured factor.
func (es *EntityStore) SpawnEnemy(rng *rand.Rand, gameSpeed float64) Enemy {
	ec := es.cfg.Enemies
	direction := -1.0
	if rng.Float64() > 0.5 {
		direction = 1
	}

	e := Enemy{
		ID:            es.newID(),
		X:             es.cfg.Container.Width,
		Y:             rng.Float64() * (es.cfg.Container.Height - ec.Height),
		Width:         ec.Width,
		Height:        ec.Height,
		Speed:         gameSpeed * ec.SpeedFactor,
		VerticalSpeed: ec.MinVerticalSpeed + rng.Float64()*(ec.MaxVerticalSpeed-ec.MinVerticalSpeed),
		Direction:     direction,
	}
	es.Enemies = append(es.Enemies, e)
	es.sink.EntitySpawned(e.view())
	return e
}

// SpawnPowerup adds a powerup of the given kind just past the right edge.
func (es *EntityStore) SpawnPowerup(rng *rand.Rand, kind PowerupKind) Powerup {
	size := es.cfg.Powerups.Size
	p := Powerup{
		ID:   es.newID(),
		Kind: kind,
		X:    es.cfg.Container.Width,
		Y:    rng.Float64() * (es.cfg.Container.Height - size),
		Size: size,
	}
	es.Powerups = append(es.Powerups, p)
	es.sink.EntitySpawned(p.view())
	return p
}

// SpawnCloud adds a decorative cloud just past the right edge.
func (es *EntityStore) SpawnCloud(rng *rand.Rand) Cloud {
	cc := es.cfg.Clouds
	c := Cloud{
		ID:     es.newID(),
		X:      es.cfg.Container.Width,
		Y:      rng.Float64() * (es.cfg.Container.Height - cc.Height),
		Width:  cc.Width,
		Height: cc.Height,
		Speed:  cc.MinSpeed + rng.Float64()*(cc.MaxSpeed-cc.MinSpeed),
	}
	es.Clouds = append(es.Clouds, c)
	es.sink.EntitySpawned(c.view())
	return c
}

// Advance moves every entity one tick and prunes those that left the container.
// Obstacles and powerups move at gameSpeed; enemies and clouds at their own speed.
func (es *EntityStore) Advance(gameSpeed float64) {
	maxY := es.cfg.Container.Height - es.cfg.Enemies.Height

	for i := range es.Obstacles {
		es.Obstacles[i].X -= gameSpeed
	}
	for i := range es.Enemies {
		e := &es.Enemies[i]
		e.X -= e.Speed
		e.Y += e.Direction * e.VerticalSpeed
		if e.Y <= 0 || e.Y >= maxY {
			e.Direction = -e.Direction
			e.Y = core.ClampF(e.Y, 0, maxY)
		}
	}
	for i := range es.Powerups {
		es.Powerups[i].X -= gameSpeed
	}
	for i := range es.Clouds {
		es.Clouds[i].X -= es.Clouds[i].Speed
	}

	es.prune()
}

// prune compacts each collection in place, keeping entities still on screen.
// Survivors are reported as moved, the rest as removed.
func (es *EntityStore) prune() {
	obstacles := es.Obstacles[:0]
	for _, o := range es.Obstacles {
		if o.X+o.Width < 0 {
			es.sink.EntityRemoved(o.view())
			continue
		}
		es.sink.EntityMoved(o.view())
		obstacles = append(obstacles, o)
	}
	es.Obstacles = obstacles

	enemies := es.Enemies[:0]
	for _, e := range es.Enemies {
		if e.X+e.Width < 0 {
			es.sink.EntityRemoved(e.view())
			continue
		}
		es.sink.EntityMoved(e.view())
		enemies = append(enemies, e)
	}
	es.Enemies = enemies

	powerups := es.Powerups[:0]
	for _, p := range es.Powerups {
		if p.X+p.Size < 0 {
			es.sink.EntityRemoved(p.view())
			continue
		}
		es.sink.EntityMoved(p.view())
		powerups = append(powerups, p)
	}
	es.Powerups = powerups

	clouds := es.Clouds[:0]
	for _, c := range es.Clouds {
		if c.X+c.Width < 0 {
			es.sink.EntityRemoved(c.view())
			continue
		}
		es.sink.EntityMoved(c.view())
		clouds = append(clouds, c)
	}
	es.Clouds = clouds
}

// RemovePowerup deletes the powerup with the given ID.
// Returns false if it is no longer in the store.
func (es *EntityStore) RemovePowerup(id uint64) bool {
	for i, p := range es.Powerups {
		if p.ID == id {
			es.Powerups = append(es.Powerups[:i], es.Powerups[i+1:]...)
			es.sink.EntityRemoved(p.view())
			return true
		}
	}
	return false
}
