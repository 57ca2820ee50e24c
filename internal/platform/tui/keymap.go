package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neontype/internal/core"
	"github.com/vovakirdan/neontype/internal/game"
)

// KeyMap defines the key bindings of the game view.
// Letters are never bound here: while playing they go to the text input.
type KeyMap struct {
	Start    key.Binding
	Restart  key.Binding
	Again    key.Binding
	Back     key.Binding
	Quit     key.Binding
	History  key.Binding
	PowerUp1 key.Binding
	PowerUp2 key.Binding
	PowerUp3 key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		Again: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "play again"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		PowerUp1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "time warp"),
		),
		PowerUp2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "score surge"),
		),
		PowerUp3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "system shock"),
		),
	}
}

// Action translates a key to an action for the given session status.
// ActionNone while playing means the key belongs to the text input.
func (k KeyMap) Action(msg tea.KeyMsg, status game.Status) core.Action {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}

	switch status {
	case game.StatusReady:
		switch {
		case key.Matches(msg, k.Start):
			return core.ActionConfirm
		case key.Matches(msg, k.History):
			return core.ActionHistory
		case key.Matches(msg, k.Back):
			return core.ActionBack
		}
	case game.StatusPlaying:
		switch {
		case key.Matches(msg, k.Back):
			return core.ActionBack
		case key.Matches(msg, k.Restart):
			return core.ActionRestart
		case key.Matches(msg, k.PowerUp1):
			return core.ActionPowerUp1
		case key.Matches(msg, k.PowerUp2):
			return core.ActionPowerUp2
		case key.Matches(msg, k.PowerUp3):
			return core.ActionPowerUp3
		}
	case game.StatusGameOver:
		switch {
		case key.Matches(msg, k.Again):
			return core.ActionRestart
		case key.Matches(msg, k.Back):
			return core.ActionBack
		case key.Matches(msg, k.History):
			return core.ActionHistory
		}
	}
	return core.ActionNone
}

// statusHelp is the help.KeyMap for one session status.
type statusHelp struct {
	keys   KeyMap
	status game.Status
}

// ShortHelp returns the bindings relevant to the current status.
func (h statusHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.status {
	case game.StatusReady:
		return []key.Binding{k.Start, k.History, k.Back, k.Quit}
	case game.StatusPlaying:
		return []key.Binding{k.PowerUp1, k.PowerUp2, k.PowerUp3, k.Restart, k.Back}
	case game.StatusGameOver:
		return []key.Binding{k.Again, k.History, k.Back, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}

// FullHelp returns all bindings grouped.
func (h statusHelp) FullHelp() [][]key.Binding {
	k := h.keys
	return [][]key.Binding{
		{k.Start, k.Again, k.Restart, k.Back},
		{k.PowerUp1, k.PowerUp2, k.PowerUp3},
		{k.History, k.Quit},
	}
}
