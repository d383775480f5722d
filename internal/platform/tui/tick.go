// Package tui provides the Bubble Tea front end: the fixed-rate game loop,
// key mapping, menus, the scoreboard and the Wish SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. Gen names the tick chain that sent it;
// a model ignores ticks from chains other than its own, so a chain left over
// from a previous game cannot double the simulation rate.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

var lastTickGen atomic.Uint64

// nextTickGen returns a tick chain ID unique within the process.
func nextTickGen() uint64 {
	return lastTickGen.Add(1)
}

// tickCmd schedules the next tick of chain gen at tickRate per second.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
