package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-plane/internal/config"
	"github.com/vovakirdan/flappy-plane/internal/core"
	"github.com/vovakirdan/flappy-plane/internal/plane"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running Flappy Plane.
type Model struct {
	game       *plane.Game
	scene      *Scene
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	snapshot   plane.Snapshot
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model around a fresh game.
// The scene is installed as the game's render sink; opts may add a logger or store.
func NewModel(cfg config.Config, rc core.RuntimeConfig, opts ...plane.Option) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	scene := NewScene(cfg.Container.Width, cfg.Container.Height)
	opts = append([]plane.Option{plane.WithSink(scene)}, opts...)
	game := plane.New(cfg, rc, opts...)

	h := help.New()
	h.ShowAll = false
	h.Width = rc.ScreenW

	return Model{
		game:       game,
		scene:      scene,
		screen:     core.NewScreen(rc.ScreenW, screenRows(rc.ScreenH)),
		config:     rc,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		snapshot:   game.Snapshot(),
	}
}

// screenRows returns the rows left for the game screen below the help bar.
func screenRows(termH int) int {
	return core.Max(termH-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keyMapper.Keys().Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The simulation runs in container pixels, so only the view changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// maxCatchUpFrames caps how much game time one late tick may cover.
const maxCatchUpFrames = 4

// frameDelta returns the game time to advance for a tick arriving at now.
// Ticks without a usable previous timestamp advance one nominal frame.
func frameDelta(prev, now time.Time, frame time.Duration) time.Duration {
	if prev.IsZero() || now.IsZero() || !now.After(prev) {
		return frame
	}
	return min(now.Sub(prev), maxCatchUpFrames*frame)
}

// handleTick processes simulation ticks. Timers advance by the measured time
// between ticks so dropped frames do not stretch spawn and powerup timing.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, at, m.config.FrameInterval())
	m.lastTick = at
	m.snapshot = m.game.Advance(m.inputFrame, dt)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".flappy-plane", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("plane_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// render draws the scene, the HUD and the phase overlay into the screen buffer.
func (m Model) render() {
	dst := m.screen
	dst.Clear()

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-2)
	m.scene.Draw(dst, field)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGray)

	drawHUD(dst, m.snapshot)
	drawOverlay(dst, m.snapshot)
}

// Game returns the underlying game, mainly for tests.
func (m Model) Game() *plane.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg config.Config, rc core.RuntimeConfig, opts ...plane.Option) error {
	model := NewModel(cfg, rc, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse press lifts the plane
	)

	_, err := p.Run()
	return err
}
