package tetra

import (
	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/registry"
)

// Minimum screen size for the board, hold and next panels.
const (
	MinScreenW = 60
	MinScreenH = 22
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game adapts a Session to the platform registry.
type Game struct {
	mode     string
	runtime  core.RuntimeConfig
	cfg      config.TetraConfig
	session  *Session
	paused   bool
	endTicks int   // ticks since the session finished
	err      error // why the session could not start

	screenTooSmall bool
}

// New creates a Line150 game.
func New() *Game {
	return &Game{mode: config.ModeLine150}
}

// NewLine999 creates a Line999 game.
func NewLine999() *Game {
	return &Game{mode: config.ModeLine999}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == config.ModeLine999 {
		return "tetra999"
	}
	return "tetra150"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == config.ModeLine999 {
		return "Tetra (999 Lines)"
	}
	return "Tetra (150 Lines)"
}

// Reset loads the rules and starts a new session.
// Runtime start level and extreme flag override the config and preset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.endTicks = 0
	g.err = nil
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	cfg, err := config.LoadTetra(configPath)
	if err != nil {
		cfg = config.DefaultTetraConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetraPreset(&cfg, difficultyPreset)
	}
	cfg.Game.Mode = g.mode
	if runtime.StartLevel > 0 {
		cfg.Game.StartLevel = min(runtime.StartLevel, cfg.Levels.Max)
	}
	if runtime.Extreme {
		cfg.Game.Extreme = true
	}
	g.cfg = cfg

	g.session, g.err = NewSession(cfg, SessionOptions{
		Seed:    runtime.Seed,
		Fixture: runtime.Fixture,
	})
}

// Resize follows a terminal resize. The session keeps running; only the
// too-small check changes.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < MinScreenW || height < MinScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.session.Outcome() != OutcomePlaying {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if g.session.Outcome() != OutcomePlaying {
		g.endTicks++
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.session.Step(ButtonsFrom(in))
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Level:    s.Level(),
		Lines:    s.Lines(),
		GameOver: s.Outcome() != OutcomePlaying,
		Cleared:  s.Outcome() == OutcomeCleared,
		Paused:   g.paused,
	}
}

// Session returns the running session, or nil if it failed to start.
func (g *Game) Session() *Session {
	return g.session
}

// Summary describes the finished game for persistence.
func (g *Game) Summary() core.Summary {
	if g.session == nil {
		return core.Summary{GameID: g.ID()}
	}
	s := g.session
	return core.Summary{
		GameID:  g.ID(),
		Score:   s.Score(),
		Level:   s.Level(),
		Extreme: s.Extreme(),
		Lines:   s.Lines(),
		Frames:  s.Frame(),
		Cleared: s.Outcome() == OutcomeCleared,
		Stats:   StatsMap(s.Statistics()),
	}
}

func init() {
	registry.Register(registry.Mode{
		ID:          "tetra150",
		Title:       "Tetra (150 Lines)",
		Description: "Clear 150 lines to win",
		Order:       1,
		New:         func() registry.Game { return New() },
	})
	registry.Register(registry.Mode{
		ID:          "tetra999",
		Title:       "Tetra (999 Lines)",
		Description: "The long haul: 999 lines",
		Order:       2,
		New:         func() registry.Game { return NewLine999() },
	})
}

// LatchTicks is how long a terminal key press counts as held.
func (g *Game) LatchTicks() int {
	return g.cfg.Input.LatchTicks
}
