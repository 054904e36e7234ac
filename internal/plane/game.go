// Package plane implements the Flappy Plane simulation: a plane falling under
// gravity that must fly through gaps in scrolling obstacles, dodge enemies and
// collect powerups.
//
// The package is pure logic. Time only moves when Advance is called, drawing
// happens through a RenderSink, and the high score goes through a HighScoreStore.
package plane

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-plane/internal/config"
	"github.com/vovakirdan/flappy-plane/internal/core"
)

// Phase is the top-level state of the game.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of the game for HUDs and front ends.
type Snapshot struct {
	Phase      Phase
	Difficulty config.Difficulty

	Score      int
	HighScore  int
	Level      int
	GameSpeed  float64
	Multiplier int

	Powerup          PowerupKind
	PowerupRemaining time.Duration

	Plane     PlaneView
	Obstacles int // Segments, two per pair
	Enemies   int
	Powerups  int
	Clouds    int

	Elapsed      time.Duration
	Cause        CollisionCause // Why the last run ended
	NewHighScore bool           // The last run beat the previous high score
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for run events. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSink sets the render sink. The default is NopSink.
func WithSink(s RenderSink) Option {
	return func(g *Game) {
		if s != nil {
			g.sink = s
		}
	}
}

// WithStore sets the high score store. If it also implements RunRecorder,
// every finished run is recorded.
func WithStore(s HighScoreStore) Option {
	return func(g *Game) {
		g.store = s
	}
}

// WithDifficulty sets the initially selected difficulty.
func WithDifficulty(d config.Difficulty) Option {
	return func(g *Game) {
		g.difficulty = d
	}
}

// Game is the state machine driving one player's sessions.
// It is not safe for concurrent use; the front end owns it on one goroutine.
type Game struct {
	cfg        config.Config
	runtime    core.RuntimeConfig
	difficulty config.Difficulty
	phase      Phase

	session  *Session
	entities *EntityStore
	sched    *Scheduler
	powerups *PowerupManager
	rng      *rand.Rand

	sink   RenderSink
	store  HighScoreStore
	logger *log.Logger

	highScore    int
	newHighScore bool
	cause        CollisionCause
	runID        uint64 // Incremented per run; stale timer callbacks compare against it
}

// New creates a game in the intro phase. cfg must be valid.
// The high score is loaded from the store once, here.
func New(cfg config.Config, rc core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		runtime:    rc,
		difficulty: cfg.DefaultDifficulty,
		phase:      PhaseIntro,
		sched:      NewScheduler(),
		sink:       NopSink{},
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if _, err := cfg.Profile(g.difficulty); err != nil {
		g.difficulty = config.DifficultyEasy
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.entities = NewEntityStore(cfg, g.sink)
	g.powerups = NewPowerupManager(g.sched, g.guard, g.logger)
	g.session = g.newSession()
	g.loadHighScore()
	return g
}

func (g *Game) newSession() *Session {
	profile, err := g.cfg.Profile(g.difficulty)
	if err != nil {
		profile = config.DefaultConfig().Difficulties[config.DifficultyEasy]
	}
	return NewSession(g.cfg, g.difficulty, profile, g.entities, g.sched.Now())
}

func (g *Game) loadHighScore() {
	if g.store == nil {
		return
	}
	score, ok, err := g.store.LoadHighScore()
	if err != nil {
		g.logger.Warn("failed to load high score", "err", err)
		return
	}
	if ok {
		g.highScore = score
	}
}

// guard wraps a timer callback so it only runs for the run that armed it,
// and only while that run is in the running phase.
func (g *Game) guard(fn func()) func() {
	id := g.runID
	return func() {
		if g.runID != id || g.phase != PhaseRunning {
			return
		}
		fn()
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Difficulty returns the selected difficulty.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// HighScore returns the best score known to the game.
func (g *Game) HighScore() int {
	return g.highScore
}

// Session returns the current run. Between runs it holds the last run's state.
func (g *Game) Session() *Session {
	return g.session
}

// Now returns the session clock.
func (g *Game) Now() time.Duration {
	return g.sched.Now()
}

// SelectDifficulty changes the difficulty for the next run.
// Ignored outside the intro and game-over phases or for unknown tiers.
func (g *Game) SelectDifficulty(d config.Difficulty) {
	if g.phase != PhaseIntro && g.phase != PhaseGameOver {
		return
	}
	if _, err := g.cfg.Profile(d); err != nil {
		return
	}
	g.difficulty = d
}

// Start begins a run from the intro screen.
func (g *Game) Start() {
	if g.phase != PhaseIntro {
		return
	}
	g.startRun()
}

// Restart begins a new run with the same difficulty after a game over.
func (g *Game) Restart() {
	if g.phase != PhaseGameOver {
		return
	}
	g.startRun()
}

func (g *Game) startRun() {
	g.sched.CancelAll()
	g.powerups.Deactivate(g.session)
	g.entities.Clear()

	g.runID++
	g.session = g.newSession()
	g.session.Run.IsActive = true
	g.phase = PhaseRunning
	g.cause = CauseNone
	g.newHighScore = false

	g.armSpawners()
	g.sink.PlaneMoved(g.session.Plane.View())
	g.logger.Info("run started", "difficulty", g.difficulty, "speed", g.session.Run.GameSpeed)
}

// armSpawners schedules both spawners to fire on the next advance.
func (g *Game) armSpawners() {
	g.sched.Schedule(TimerObstacleSpawn, 0, g.guard(g.spawnObstacles))
	g.sched.Schedule(TimerPowerupSpawn, 0, g.guard(g.spawnPowerup))
}

// Pause suspends a running game. Spawn and expiry timers are cancelled.
func (g *Game) Pause() {
	if g.phase != PhaseRunning {
		return
	}
	g.phase = PhasePaused
	g.session.Run.IsPaused = true
	g.sched.Cancel(TimerObstacleSpawn)
	g.sched.Cancel(TimerPowerupSpawn)
	g.powerups.Pause()
	g.logger.Info("paused", "score", g.session.Run.Score)
}

// Resume continues a paused game. Spawners restart from scratch and the
// active powerup keeps only the time it had left.
func (g *Game) Resume() {
	if g.phase != PhasePaused {
		return
	}
	g.phase = PhaseRunning
	g.session.Run.IsPaused = false
	g.armSpawners()
	g.powerups.Resume(g.session)
	g.logger.Info("resumed", "powerup", g.session.Powerup.Kind, "remaining", g.powerups.Remaining(g.session))
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.Pause()
	case PhasePaused:
		g.Resume()
	}
}

// Lift gives the plane its upward velocity. Ignored unless running.
func (g *Game) Lift() {
	if g.phase != PhaseRunning {
		return
	}
	g.session.Plane.ApplyLift()
}

// GameOver ends a running game.
func (g *Game) GameOver() {
	if g.phase != PhaseRunning {
		return
	}
	g.endRun(CauseNone)
}

// BackToIntro returns to the intro screen after a game over.
func (g *Game) BackToIntro() {
	if g.phase != PhaseGameOver {
		return
	}
	g.entities.Clear()
	g.phase = PhaseIntro
	g.session = g.newSession()
	g.sink.PlaneMoved(g.session.Plane.View())
}

func (g *Game) endRun(cause CollisionCause) {
	s := g.session
	g.phase = PhaseGameOver
	g.cause = cause
	s.Run.IsActive = false
	s.Run.IsPaused = false
	g.sched.CancelAll()

	final := s.Run.Score
	if final > g.highScore {
		g.highScore = final
		g.newHighScore = true
		if g.store != nil {
			if err := g.store.SaveHighScore(final); err != nil {
				g.logger.Warn("failed to save high score", "err", err)
			}
		}
	}

	if rec, ok := g.store.(RunRecorder); ok {
		result := RunResult{
			Difficulty: string(s.Difficulty),
			Score:      final,
			Level:      s.Run.Level,
			Duration:   s.Elapsed(g.sched.Now()),
			Cause:      cause.String(),
		}
		if err := rec.RecordRun(result); err != nil {
			g.logger.Warn("failed to record run", "err", err)
		}
	}

	g.logger.Info("game over",
		"score", final,
		"level", s.Run.Level,
		"cause", cause,
		"high_score", g.highScore,
	)
}

// Step advances the game by one display tick.
func (g *Game) Step(in core.InputFrame) Snapshot {
	return g.Advance(in, g.runtime.FrameInterval())
}

// Advance applies the input, moves the clock forward by dt, fires due timers
// and, while running, simulates one tick: physics, entity movement,
// collisions, then clouds.
func (g *Game) Advance(in core.InputFrame, dt time.Duration) Snapshot {
	g.handleInput(in)
	g.sched.Advance(dt)
	if g.phase == PhaseRunning {
		g.tick()
	}
	return g.Snapshot()
}

func (g *Game) handleInput(in core.InputFrame) {
	switch g.phase {
	case PhaseIntro:
		g.handleDifficultyInput(in)
		if in.Has(core.ActionConfirm) {
			g.Start()
		}
	case PhaseRunning:
		if in.Has(core.ActionPause) {
			g.Pause()
			return
		}
		if in.Has(core.ActionLift) {
			g.Lift()
		}
	case PhasePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			g.Resume()
		}
	case PhaseGameOver:
		g.handleDifficultyInput(in)
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.Restart()
		case in.Has(core.ActionBack):
			g.BackToIntro()
		}
	}
}

func (g *Game) handleDifficultyInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionEasy):
		g.SelectDifficulty(config.DifficultyEasy)
	case in.Has(core.ActionNormal):
		g.SelectDifficulty(config.DifficultyNormal)
	case in.Has(core.ActionHard):
		g.SelectDifficulty(config.DifficultyHard)
	case in.Has(core.ActionLeft):
		g.SelectDifficulty(g.difficulty.Prev())
	case in.Has(core.ActionRight):
		g.SelectDifficulty(g.difficulty.Next())
	}
}

// tick runs one frame of simulation for a running game.
func (g *Game) tick() {
	s := g.session

	StepPhysics(s)
	g.sink.PlaneMoved(s.Plane.View())

	s.Entities.Advance(s.Run.GameSpeed)

	out := CheckCollisions(s)
	if out.GameOver {
		g.endRun(out.Cause)
		return
	}
	for _, p := range out.Collected {
		g.powerups.Activate(s, p.Kind)
	}

	g.spawnClouds()
}

// spawnObstacles is the obstacle timer callback. It is the only place the
// score changes: each wave credits the multiplier and may raise the level.
func (g *Game) spawnObstacles() {
	s := g.session
	s.Entities.SpawnObstacleWave(g.rng, s.Run.Level)

	if AwardObstacleCycle(s) {
		g.logger.Info("level up", "level", s.Run.Level, "speed", s.Run.GameSpeed)
	}

	if s.Run.Level >= s.Profile.EnemyUnlockLevel && g.rng.Float64() < g.cfg.Enemies.SpawnChance {
		s.Entities.SpawnEnemy(g.rng, s.Run.GameSpeed)
	}

	g.sched.Schedule(TimerObstacleSpawn, ObstacleInterval(s.Profile, g.cfg.Obstacles, s.Run.Level), g.guard(g.spawnObstacles))
}

// spawnPowerup is the powerup timer callback. Each firing spawns a powerup
// with the difficulty's probability, then re-arms with a random delay.
func (g *Game) spawnPowerup() {
	s := g.session
	if g.rng.Float64() < s.Profile.PowerupChance {
		kind := powerupKinds[g.rng.Intn(len(powerupKinds))]
		s.Entities.SpawnPowerup(g.rng, kind)
	}
	g.sched.Schedule(TimerPowerupSpawn, g.powerupDelay(), g.guard(g.spawnPowerup))
}

func (g *Game) powerupDelay() time.Duration {
	pc := g.cfg.Powerups
	ms := pc.MinDelayMs
	if span := pc.MaxDelayMs - pc.MinDelayMs; span > 0 {
		ms += g.rng.Intn(span)
	}
	return time.Duration(ms) * time.Millisecond
}

func (g *Game) spawnClouds() {
	s := g.session
	if !g.cfg.Clouds.Enabled {
		return
	}
	now := g.sched.Now()
	if now < s.NextCloudAt {
		return
	}
	s.Entities.SpawnCloud(g.rng)
	s.NextCloudAt = now + g.cfg.Clouds.Interval()
}

// Snapshot returns the current state for display.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Phase:        g.phase,
		Difficulty:   g.difficulty,
		Score:        s.Run.Score,
		HighScore:    g.highScore,
		Level:        s.Run.Level,
		GameSpeed:    s.Run.GameSpeed,
		Multiplier:   s.Run.PointsMultiplier,
		Plane:        s.Plane.View(),
		Obstacles:    len(s.Entities.Obstacles),
		Enemies:      len(s.Entities.Enemies),
		Powerups:     len(s.Entities.Powerups),
		Clouds:       len(s.Entities.Clouds),
		Elapsed:      s.Elapsed(g.sched.Now()),
		Cause:        g.cause,
		NewHighScore: g.newHighScore,
	}
	if g.phase == PhaseRunning || g.phase == PhasePaused {
		snap.Powerup = s.Powerup.Kind
		snap.PowerupRemaining = g.powerups.Remaining(s)
	}
	return snap
}
