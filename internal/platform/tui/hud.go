package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/flappy-plane/internal/config"
	"github.com/vovakirdan/flappy-plane/internal/core"
	"github.com/vovakirdan/flappy-plane/internal/plane"
)

// drawHUD draws the status line on the top row.
func drawHUD(dst *core.Screen, snap plane.Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	left := fmt.Sprintf(" Score: %d  Level: %d  Best: %d ", snap.Score, snap.Level, snap.HighScore)
	dst.DrawTextColored(0, 0, left, core.ColorBrightYellow)

	x := len(left) + 1
	if snap.Powerup != plane.PowerupNone {
		label := fmt.Sprintf("[%s %s]", powerupTitle(snap.Powerup), formatSeconds(snap.PowerupRemaining))
		_, color := powerupGlyph(snap.Powerup)
		dst.DrawTextColored(x, 0, label, color)
	}

	right := fmt.Sprintf(" %s ", snap.Difficulty.Title())
	dst.DrawTextColored(dst.Width()-len(right), 0, right, difficultyColor(snap.Difficulty))
}

// drawOverlay draws the message box for the intro, pause and game-over phases.
func drawOverlay(dst *core.Screen, snap plane.Snapshot) {
	switch snap.Phase {
	case plane.PhaseIntro:
		drawMessageBox(dst, []line{
			{"FLAPPY PLANE", core.ColorBrightCyan},
			{"", core.ColorDefault},
			{difficultySelector(snap.Difficulty), core.ColorWhite},
			{"", core.ColorDefault},
			{fmt.Sprintf("High score: %d", snap.HighScore), core.ColorYellow},
			{"Press Enter to start", core.ColorBrightGreen},
		})

	case plane.PhasePaused:
		drawMessageBox(dst, []line{
			{"PAUSED", core.ColorBrightYellow},
			{"Press P to resume", core.ColorWhite},
		})

	case plane.PhaseGameOver:
		lines := []line{
			{"GAME OVER", core.ColorRed},
			{fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.HighScore), core.ColorWhite},
		}
		if snap.NewHighScore {
			lines = append(lines, line{"NEW HIGH SCORE!", core.ColorBrightYellow})
		}
		lines = append(lines,
			line{fmt.Sprintf("Crashed into: %s", snap.Cause), core.ColorGray},
			line{difficultySelector(snap.Difficulty), core.ColorWhite},
			line{"R restart  |  B intro", core.ColorBrightGreen},
		)
		drawMessageBox(dst, lines)
	}
}

type line struct {
	text  string
	color core.Color
}

// drawMessageBox draws a framed box of centered lines in the middle of the screen.
func drawMessageBox(dst *core.Screen, lines []line) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l.text)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l.text)))/2
		dst.DrawTextColored(x, box.Y+1+i, l.text, l.color)
	}
}

// difficultySelector renders the tier picker, e.g. "< Easy [Normal] Hard >".
func difficultySelector(selected config.Difficulty) string {
	parts := make([]string, 0, 3)
	for _, d := range config.Difficulties() {
		if d == selected {
			parts = append(parts, "["+d.Title()+"]")
		} else {
			parts = append(parts, " "+d.Title()+" ")
		}
	}
	return "< " + strings.Join(parts, " ") + " >"
}

func difficultyColor(d config.Difficulty) core.Color {
	switch d {
	case config.DifficultyEasy:
		return core.ColorGreen
	case config.DifficultyNormal:
		return core.ColorYellow
	case config.DifficultyHard:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

func powerupTitle(k plane.PowerupKind) string {
	switch k {
	case plane.PowerupShield:
		return "SHIELD"
	case plane.PowerupSlow:
		return "SLOW"
	case plane.PowerupPoints:
		return "2X POINTS"
	default:
		return strings.ToUpper(k.String())
	}
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
