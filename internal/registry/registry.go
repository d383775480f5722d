// Package registry holds the playable modes. Mode packages register
// themselves from init(); the CLI, menus and SSH sessions look them up by ID.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// ErrUnknownMode is returned by Create for IDs nobody registered.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Game is the interface every playable mode implements.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the mode identifier (e.g., "tetra150").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after the game ends.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Summarizer is implemented by games that keep per-game statistics.
// The platform persists the summary when the game ends.
type Summarizer interface {
	Summary() core.Summary
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(width, height int)
}

// Factory creates a fresh game instance.
type Factory func() Game

// Mode describes one registered way to play.
type Mode struct {
	ID          string
	Title       string
	Description string
	Order       int // menu position, lower first; ties sort by ID
	New         Factory
}

var (
	mu    sync.RWMutex
	modes = make(map[string]Mode)
)

// Register adds a mode. It panics on an empty ID, a nil factory or a
// duplicate ID, since all of those are programming errors caught at init.
func Register(m Mode) {
	if m.ID == "" || m.New == nil {
		panic(fmt.Sprintf("registry: incomplete mode %+v", m))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}
	if m.Title == "" {
		m.Title = m.ID
	}
	modes[m.ID] = m
}

// List returns every registered mode in menu order.
func List() []Mode {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Mode, 0, len(modes))
	for _, m := range modes {
		result = append(result, m)
	}
	slices.SortFunc(result, func(a, b Mode) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})
	return result
}

// Lookup returns the mode registered under id.
func Lookup(id string) (Mode, bool) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	return m, ok
}

// Create instantiates a new game for the mode id.
func Create(id string) (Game, error) {
	m, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return m.New(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
