package tui

import (
	"math"
	"sort"

	"github.com/vovakirdan/flappy-plane/internal/core"
	"github.com/vovakirdan/flappy-plane/internal/plane"
)

// Visual characters for rendering
const (
	ObstacleChar    = '█'
	ObstacleCapTop  = '▀'
	ObstacleCapDown = '▄'
	EnemyChar       = '◀'
	CloudChar       = '░'
	ShieldChar      = '◉'
	SlowChar        = '◷'
	PointsChar      = '★'
	GroundChar      = '═'
)

// Scene mirrors the simulation's live entities from RenderSink events and
// draws them onto a Screen, scaling logical container pixels to cells.
type Scene struct {
	entities   map[uint64]plane.EntityView
	plane      plane.PlaneView
	containerW float64
	containerH float64
}

// NewScene creates an empty scene for a container of the given logical size.
func NewScene(containerW, containerH float64) *Scene {
	return &Scene{
		entities:   make(map[uint64]plane.EntityView),
		containerW: containerW,
		containerH: containerH,
	}
}

// EntitySpawned implements plane.RenderSink.
func (s *Scene) EntitySpawned(v plane.EntityView) { s.entities[v.ID] = v }

// EntityMoved implements plane.RenderSink.
func (s *Scene) EntityMoved(v plane.EntityView) { s.entities[v.ID] = v }

// EntityRemoved implements plane.RenderSink.
func (s *Scene) EntityRemoved(v plane.EntityView) { delete(s.entities, v.ID) }

// PlaneMoved implements plane.RenderSink.
func (s *Scene) PlaneMoved(v plane.PlaneView) { s.plane = v }

// Len returns the number of entities currently mirrored.
func (s *Scene) Len() int {
	return len(s.entities)
}

var _ plane.RenderSink = (*Scene)(nil)

// viewport maps container coordinates onto a rectangle of cells.
type viewport struct {
	area       core.Rect
	containerW float64
	containerH float64
}

func newViewport(area core.Rect, containerW, containerH float64) viewport {
	return viewport{area: area, containerW: containerW, containerH: containerH}
}

func (v viewport) col(x float64) float64 { return x * float64(v.area.W) / v.containerW }
func (v viewport) row(y float64) float64 { return y * float64(v.area.H) / v.containerH }

// rect converts a logical box to cells. Anything visible covers at least one cell.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(v.col(x)))
	y0 := int(math.Floor(v.row(y)))
	x1 := int(math.Ceil(v.col(x + w)))
	y1 := int(math.Ceil(v.row(y + h)))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	// Clip to the play area
	x0 = core.Clamp(x0, 0, v.area.W)
	x1 = core.Clamp(x1, 0, v.area.W)
	y0 = core.Clamp(y0, 0, v.area.H)
	y1 = core.Clamp(y1, 0, v.area.H)
	return core.NewRect(v.area.X+x0, v.area.Y+y0, x1-x0, y1-y0)
}

// Draw renders the mirrored scene into area.
// Layers from back to front: clouds, obstacles, powerups, enemies, plane.
func (s *Scene) Draw(dst *core.Screen, area core.Rect) {
	if area.W <= 0 || area.H <= 0 {
		return
	}
	vp := newViewport(area, s.containerW, s.containerH)

	for _, layer := range []plane.EntityKind{
		plane.KindCloud,
		plane.KindObstacleTop,
		plane.KindObstacleBottom,
		plane.KindPowerup,
		plane.KindEnemy,
	} {
		for _, e := range s.sorted(layer) {
			s.drawEntity(dst, vp, e)
		}
	}

	s.drawPlane(dst, vp)
}

// sorted returns entities of one kind in spawn order, so overlapping
// entities always draw the same way.
func (s *Scene) sorted(kind plane.EntityKind) []plane.EntityView {
	var out []plane.EntityView
	for _, e := range s.entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Scene) drawEntity(dst *core.Screen, vp viewport, e plane.EntityView) {
	r := vp.rect(e.X, e.Y, e.W, e.H)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	switch e.Kind {
	case plane.KindCloud:
		dst.FillRect(r, CloudChar, core.ColorGray)

	case plane.KindObstacleTop:
		dst.FillRect(r, ObstacleChar, core.ColorGreen)
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, ObstacleCapTop, core.ColorBrightGreen)

	case plane.KindObstacleBottom:
		dst.FillRect(r, ObstacleChar, core.ColorGreen)
		dst.DrawHLine(r.X, r.Y, r.W, ObstacleCapDown, core.ColorBrightGreen)

	case plane.KindEnemy:
		dst.FillRect(r, EnemyChar, core.ColorRed)

	case plane.KindPowerup:
		glyph, color := powerupGlyph(e.Powerup)
		dst.FillRect(r, glyph, color)
	}
}

// powerupGlyph returns the character and color for a powerup kind.
func powerupGlyph(k plane.PowerupKind) (rune, core.Color) {
	switch k {
	case plane.PowerupShield:
		return ShieldChar, core.ColorBlue
	case plane.PowerupSlow:
		return SlowChar, core.ColorMagenta
	case plane.PowerupPoints:
		return PointsChar, core.ColorYellow
	default:
		return '?', core.ColorDefault
	}
}

// drawPlane draws the plane as a one-row sprite whose nose follows the tilt.
func (s *Scene) drawPlane(dst *core.Screen, vp viewport) {
	p := s.plane
	if p.W == 0 {
		return
	}

	r := vp.rect(p.X, p.Y-p.H/2, p.W, p.H)
	row := r.Y + r.H/2

	color := core.ColorWhite
	if p.Invincible {
		color = core.ColorBrightCyan
	}

	nose := '▶'
	switch {
	case p.Rotation <= -10:
		nose = '◥'
	case p.Rotation >= 10:
		nose = '◢'
	}

	for x := r.X; x < r.Right()-1; x++ {
		dst.SetColored(x, row, '═', color)
	}
	dst.SetColored(r.Right()-1, row, nose, color)
	if r.W > 2 {
		dst.SetColored(r.X, row, '╘', color)
	}
}
