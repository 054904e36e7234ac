package plane

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/flappy-plane/internal/config"
	"github.com/vovakirdan/flappy-plane/internal/core"
)

// quietConfig returns the default config with gravity, powerups and clouds
// turned off so tests control every change explicitly.
func quietConfig() config.Config {
	cfg := config.DefaultConfig()
	for d, p := range cfg.Difficulties {
		p.Gravity = 0
		p.PowerupChance = 0
		cfg.Difficulties[d] = p
	}
	cfg.Clouds.Enabled = false
	return cfg
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

// startedGame returns a running game whose spawn timers have fired once.
func startedGame(t *testing.T, cfg config.Config, d config.Difficulty, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithDifficulty(d)}, opts...)
	g := New(cfg, testRuntime(), opts...)
	g.Start()
	if g.Phase() != PhaseRunning {
		t.Fatalf("Start() left phase %v", g.Phase())
	}
	g.Advance(core.NewInputFrame(), 0)
	return g
}

func idle(g *Game, dt time.Duration) Snapshot {
	return g.Advance(core.NewInputFrame(), dt)
}

func press(g *Game, a core.Action) Snapshot {
	in := core.NewInputFrame()
	in.Set(a)
	return g.Advance(in, 0)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// recordingSink counts render events per entity ID.
type recordingSink struct {
	spawned map[uint64]int
	moved   map[uint64]int
	removed map[uint64]int
	planes  int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		spawned: make(map[uint64]int),
		moved:   make(map[uint64]int),
		removed: make(map[uint64]int),
	}
}

func (r *recordingSink) EntitySpawned(v EntityView) { r.spawned[v.ID]++ }
func (r *recordingSink) EntityMoved(v EntityView)   { r.moved[v.ID]++ }
func (r *recordingSink) EntityRemoved(v EntityView) { r.removed[v.ID]++ }
func (r *recordingSink) PlaneMoved(PlaneView)       { r.planes++ }

// memoryStore is an in-memory HighScoreStore and RunRecorder.
type memoryStore struct {
	high    int
	hasHigh bool
	saves   []int
	runs    []RunResult
	failing bool
}

func (m *memoryStore) LoadHighScore() (int, bool, error) {
	if m.failing {
		return 0, false, errors.New("store offline")
	}
	return m.high, m.hasHigh, nil
}

func (m *memoryStore) SaveHighScore(score int) error {
	if m.failing {
		return errors.New("store offline")
	}
	m.high, m.hasHigh = score, true
	m.saves = append(m.saves, score)
	return nil
}

func (m *memoryStore) RecordRun(r RunResult) error {
	if m.failing {
		return errors.New("store offline")
	}
	m.runs = append(m.runs, r)
	return nil
}
