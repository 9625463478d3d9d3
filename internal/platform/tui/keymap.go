package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorbot/internal/core"
	"github.com/vovakirdan/colorbot/internal/wheel"
)

// cardKeys maps number keys to cards, in wheel order.
var cardKeys = map[string]wheel.Color{
	"1": wheel.Yellow,
	"2": wheel.Green,
	"3": wheel.Blue,
	"4": wheel.Purple,
	"5": wheel.Red,
	"6": wheel.Orange,
}

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Card key.Binding
	Hint key.Binding
	Next key.Binding
	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Card, k.Hint, k.Next, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Card, k.Hint},
		{k.Next, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Card: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "show card"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "tap hint cube"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "next question"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to player inputs.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a player input.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, km.keys.Card):
		return core.Input{Action: core.ActionShowCard, Card: cardKeys[msg.String()]}
	case key.Matches(msg, km.keys.Hint):
		return core.Input{Action: core.ActionHint}
	case key.Matches(msg, km.keys.Next):
		return core.Input{Action: core.ActionNext}
	case key.Matches(msg, km.keys.Help):
		return core.Input{Action: core.ActionHelp}
	}
	return core.Input{Action: core.ActionNone}
}
