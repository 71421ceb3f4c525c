package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	NewGame key.Binding
	Quit    key.Binding
	Ledger  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.NewGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.NewGame, k.Ledger, k.Quit},
	}
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Up:      binding(cfg.Up, "up"),
		Down:    binding(cfg.Down, "down"),
		Left:    binding(cfg.Left, "left"),
		Right:   binding(cfg.Right, "right"),
		Pause:   binding(cfg.Pause, "pause"),
		NewGame: binding(cfg.NewGame, "new game"),
		Quit:    binding(cfg.Quit, "quit"),
		Ledger: key.NewBinding(
			key.WithKeys(config.LedgerKey),
			key.WithHelp(config.LedgerKey, "rounds"),
		),
	}
}

func binding(names []string, desc string) key.Binding {
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = teaKey(n)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// teaKey converts a configured key name to the string Bubble Tea reports.
func teaKey(name string) string {
	if name == "space" {
		return " "
	}
	return name
}

// Action maps a key message to a game symbol. Unbound keys map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, a := range core.Actions {
		if key.Matches(msg, k.binding(a)) {
			return a
		}
	}
	return core.ActionNone
}

func (k KeyMap) binding(a core.Action) key.Binding {
	switch a {
	case core.ActionUp:
		return k.Up
	case core.ActionDown:
		return k.Down
	case core.ActionLeft:
		return k.Left
	case core.ActionRight:
		return k.Right
	case core.ActionPauseToggle:
		return k.Pause
	case core.ActionNewGame:
		return k.NewGame
	case core.ActionQuit:
		return k.Quit
	default:
		return key.Binding{}
	}
}
