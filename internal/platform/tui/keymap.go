package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left        key.Binding
	Right       key.Binding
	SoftDrop    key.Binding
	HardDrop    key.Binding
	RotateRight key.Binding
	RotateLeft  key.Binding
	Hold        key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateRight, k.HardDrop, k.Hold, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop, k.HardDrop},
		{k.RotateRight, k.RotateLeft, k.Hold},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "soft drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" ", "up", "k", "w"),
			key.WithHelp("space/↑", "hard drop"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("x", "X"),
			key.WithHelp("x", "rotate cw"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("z", "Z"),
			key.WithHelp("z", "rotate ccw"),
		),
		Hold: key.NewBinding(
			key.WithKeys("c", "C", "shift+left"),
			key.WithHelp("c", "hold"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
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

// Keys returns the in-game bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop, false
	case key.Matches(msg, k.HardDrop):
		return core.ActionHardDrop, false
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight, false
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft, false
	case key.Matches(msg, k.Hold):
		return core.ActionHold, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// KeyLatch turns terminal key presses into held buttons.
// A terminal reports presses (and auto-repeats) but never releases, so a
// game action counts as held for a fixed number of ticks after its last
// press. Pause, restart and the other platform actions last one tick.
type KeyLatch struct {
	ticks     int
	remaining map[core.Action]int
	pulse     core.InputFrame
}

// NewKeyLatch creates a latch holding game actions for ticks ticks.
func NewKeyLatch(ticks int) *KeyLatch {
	if ticks < 1 {
		ticks = 1
	}
	return &KeyLatch{
		ticks:     ticks,
		remaining: make(map[core.Action]int, len(core.GameActions)),
	}
}

// Press registers a key press.
func (l *KeyLatch) Press(a core.Action) {
	if isGameAction(a) {
		l.remaining[a] = l.ticks
		return
	}
	l.pulse.Set(a)
}

// Frame returns the input for the next tick and ages the latch.
func (l *KeyLatch) Frame() core.InputFrame {
	f := l.pulse
	l.pulse.Clear()
	for a, n := range l.remaining {
		f.Set(a)
		if n <= 1 {
			delete(l.remaining, a)
		} else {
			l.remaining[a] = n - 1
		}
	}
	return f
}

// Release drops every held action, e.g. after a restart.
func (l *KeyLatch) Release() {
	clear(l.remaining)
	l.pulse.Clear()
}

func isGameAction(a core.Action) bool {
	return slices.Contains(core.GameActions, a)
}
