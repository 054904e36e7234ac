package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-plane/internal/core"
)

// GameKeyMap defines the key bindings for the game screen.
type GameKeyMap struct {
	Lift           key.Binding
	Pause          key.Binding
	Start          key.Binding
	Restart        key.Binding
	Back           key.Binding
	PrevDifficulty key.Binding
	NextDifficulty key.Binding
	Easy           key.Binding
	Normal         key.Binding
	Hard           key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Lift, k.Pause, k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Lift, k.Pause, k.Start, k.Restart, k.Back},
		{k.PrevDifficulty, k.NextDifficulty, k.Easy, k.Normal, k.Hard},
		{k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Lift: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/click", "lift"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "intro"),
		),
		PrevDifficulty: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "easier"),
		),
		NextDifficulty: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "harder"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		Normal: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "normal"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for rendering help.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Lift):
		return core.ActionLift, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Start):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	case key.Matches(msg, k.PrevDifficulty):
		return core.ActionLeft, false
	case key.Matches(msg, k.NextDifficulty):
		return core.ActionRight, false
	case key.Matches(msg, k.Easy):
		return core.ActionEasy, false
	case key.Matches(msg, k.Normal):
		return core.ActionNormal, false
	case key.Matches(msg, k.Hard):
		return core.ActionHard, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame turns a left-button press into a lift.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionLift)
	}
}
