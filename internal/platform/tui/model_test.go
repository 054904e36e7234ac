package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-plane/internal/config"
	"github.com/vovakirdan/flappy-plane/internal/core"
	"github.com/vovakirdan/flappy-plane/internal/plane"
)

func newTestModel() Model {
	rc := core.DefaultConfig()
	rc.Seed = 3
	return NewModel(config.DefaultConfig(), rc)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelStartsRunOnEnter(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.Game().Phase(); got != plane.PhaseRunning {
		t.Errorf("phase = %v, want running", got)
	}
	if m.snapshot.Phase != plane.PhaseRunning {
		t.Errorf("snapshot phase = %v, want running", m.snapshot.Phase)
	}

	// Input is consumed by a single tick
	m, _ = update(t, m, TickMsg{})
	if got := m.Game().Phase(); got != plane.PhaseRunning {
		t.Errorf("phase after second tick = %v, want running", got)
	}
}

func TestModelPauseToggle(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = update(t, m, TickMsg{})
	if got := m.Game().Phase(); got != plane.PhasePaused {
		t.Fatalf("phase = %v, want paused", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show the pause overlay")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.quitting {
		t.Error("model should be quitting")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelIntroView(t *testing.T) {
	m := newTestModel()

	view := m.View()
	for _, want := range []string{"FLAPPY PLANE", "[Easy]", "Press Enter to start"} {
		if !strings.Contains(view, want) {
			t.Errorf("intro view missing %q", want)
		}
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestDifficultySelector(t *testing.T) {
	got := difficultySelector(config.DifficultyHard)
	want := "<  Easy   Normal  [Hard] >"
	if got != want {
		t.Errorf("difficultySelector = %q, want %q", got, want)
	}
}

func TestFrameDelta(t *testing.T) {
	frame := time.Second / 60
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		prev, now time.Time
		want      time.Duration
	}{
		{"first tick", time.Time{}, base, frame},
		{"untimed tick", base, time.Time{}, frame},
		{"on time", base, base.Add(frame), frame},
		{"two dropped frames", base, base.Add(3 * frame), 3 * frame},
		{"long stall is capped", base, base.Add(2 * time.Second), maxCatchUpFrames * frame},
		{"clock went backwards", base, base.Add(-time.Millisecond), frame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.prev, tt.now, frame); got != tt.want {
				t.Errorf("frameDelta = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModelTickUsesMeasuredTime(t *testing.T) {
	m := newTestModel()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	frame := m.config.FrameInterval()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(base))
	start := m.Game().Now()

	// The next tick arrives three frames late.
	m, _ = update(t, m, TickMsg(base.Add(3*frame)))
	if got := m.Game().Now() - start; got != 3*frame {
		t.Errorf("clock advanced %v, want %v", got, 3*frame)
	}
}
