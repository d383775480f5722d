package core

import "fmt"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	Seed       int64  // RNG seed; 0 means the platform picks one
	StartLevel int    // starting level, 0 means the configured default
	Extreme    bool   // 20G mode with a fixed level multiplier
	Fixture    string // debug board to load instead of an empty field
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FormatTicks renders a tick count as m:ss. A non-positive rate counts as
// the default 60 ticks per second.
func FormatTicks(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := ticks / tickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level
	Lines    int  // Cleared lines
	GameOver bool // The game has ended, won or lost
	Cleared  bool // The line target was reached
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Summary describes a finished game for persistence.
type Summary struct {
	GameID  string
	Score   int
	Level   int
	Extreme bool
	Lines   int
	Frames  int
	Cleared bool
	Stats   map[string]int // named counters, e.g. "tetrises" or "max_ren"
}
