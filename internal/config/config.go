// Package config provides YAML-based rules configuration and difficulty
// presets for Tetra.
package config

import "fmt"

// TetraConfig contains all tunable rules of the game.
type TetraConfig struct {
	Board   TetraBoard   `yaml:"board"`
	Timing  TetraTiming  `yaml:"timing"`
	Input   TetraInput   `yaml:"input"`
	Gravity TetraGravity `yaml:"gravity"`
	Levels  TetraLevels  `yaml:"levels"`
	Scoring TetraScoring `yaml:"scoring"`
	Game    TetraGame    `yaml:"game"`
}

// TetraBoard sizes the playfield. Dimensions exclude the wall border.
type TetraBoard struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`     // including hidden rows
	Visible   int `yaml:"visible"`    // rows shown above the floor
	SpawnRow  int `yaml:"spawn_row"`  // 0 = first visible row
	NextCount int `yaml:"next_count"` // preview length
}

// TetraTiming holds tick counts for waits, lock delay and effects.
type TetraTiming struct {
	LockDelay              int `yaml:"lock_delay"`
	LineClearWait          int `yaml:"line_clear_wait"`
	SpawnWait              int `yaml:"spawn_wait"`
	LineClearAnimeInterval int `yaml:"line_clear_anime_interval"`
	LineClearAnimePhases   int `yaml:"line_clear_anime_phases"`
	MaxOperationsAfterLand int `yaml:"max_operations_after_land"`
	RotateEnableWait       int `yaml:"rotate_enable_wait"`
	HardDropEnableWait     int `yaml:"hard_drop_enable_wait"`
	ReadyTicks             int `yaml:"ready_ticks"`
	ReadyGapTicks          int `yaml:"ready_gap_ticks"`
	GoTicks                int `yaml:"go_ticks"`
	EffectTicks            int `yaml:"effect_ticks"`
	PerfectClearTicks      int `yaml:"perfect_clear_ticks"`
	HardDropEffectTicks    int `yaml:"hard_drop_effect_ticks"`
}

// TetraInput configures the signal chain applied to raw buttons.
type TetraInput struct {
	ArrowDelay         int `yaml:"arrow_delay"`
	HorizontalDelay    int `yaml:"horizontal_delay"`
	HorizontalInterval int `yaml:"horizontal_interval"`
	VerticalDelay      int `yaml:"vertical_delay"`
	VerticalInterval   int `yaml:"vertical_interval"`
	LatchTicks         int `yaml:"latch_ticks"` // ticks a key press counts as held in the terminal
}

// GravityStep moves the piece Cells rows every Frames ticks.
type GravityStep struct {
	Frames int `yaml:"frames"`
	Cells  int `yaml:"cells"`
}

// TetraGravity is the per-level fall table plus the extreme-mode rate.
type TetraGravity struct {
	Levels  []GravityStep `yaml:"levels"` // index 0 is level 1
	Extreme GravityStep   `yaml:"extreme"`
}

// TetraLevels configures level progression.
type TetraLevels struct {
	Max           int `yaml:"max"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// TetraScoring holds the scoring constants.
type TetraScoring struct {
	Single             int   `yaml:"single"`
	Double             int   `yaml:"double"`
	Triple             int   `yaml:"triple"`
	Tetris             int   `yaml:"tetris"`
	TSpinMiniZero      int   `yaml:"tspin_mini_zero"`
	TSpinZero          int   `yaml:"tspin_zero"`
	TSpinMiniSingle    int   `yaml:"tspin_mini_single"`
	TSpinSingle        int   `yaml:"tspin_single"`
	TSpinMiniDouble    int   `yaml:"tspin_mini_double"`
	TSpinDouble        int   `yaml:"tspin_double"`
	TSpinTriple        int   `yaml:"tspin_triple"`
	Ren                int   `yaml:"ren"`
	SoftDrop           int   `yaml:"soft_drop"`
	HardDrop           int   `yaml:"hard_drop"`
	ExtremeMultiplier  int   `yaml:"extreme_multiplier"`
	PerfectClear       []int `yaml:"perfect_clear"` // by lines, index 0 is a single
	PerfectClearBonus  bool  `yaml:"perfect_clear_bonus"`
	LevelMultipliesRen bool  `yaml:"level_multiplies_ren"`
}

// Game modes.
const (
	ModeLine150 = "line150"
	ModeLine999 = "line999"
)

// TetraGame selects the mode.
type TetraGame struct {
	Mode       string `yaml:"mode"`
	StartLevel int    `yaml:"start_level"`
	Extreme    bool   `yaml:"extreme"`
}

// TargetLines returns the cleared-line count that wins the mode.
func TargetLines(mode string) int {
	if mode == ModeLine999 {
		return 999
	}
	return 150
}

// GravityFor returns the fall rate for a level, or the extreme rate.
// Levels past the end of the table use its last entry.
func (c TetraConfig) GravityFor(level int, extreme bool) GravityStep {
	if extreme || len(c.Gravity.Levels) == 0 {
		return c.Gravity.Extreme
	}
	i := min(max(level-1, 0), len(c.Gravity.Levels)-1)
	return c.Gravity.Levels[i]
}

// Validate rejects configurations the game cannot run with.
func (c TetraConfig) Validate() error {
	b := c.Board
	switch {
	case b.Width < 4:
		return fmt.Errorf("config: board width %d is narrower than 4", b.Width)
	case b.Visible < 4 || b.Visible > b.Height:
		return fmt.Errorf("config: visible rows %d must be within [4, %d]", b.Visible, b.Height)
	case b.NextCount < 1:
		return fmt.Errorf("config: next_count %d must be positive", b.NextCount)
	}
	if c.Levels.Max < 1 {
		return fmt.Errorf("config: levels.max %d must be positive", c.Levels.Max)
	}
	if c.Levels.LinesPerLevel < 1 {
		return fmt.Errorf("config: levels.lines_per_level %d must be positive", c.Levels.LinesPerLevel)
	}
	if len(c.Gravity.Levels) == 0 {
		return fmt.Errorf("config: gravity table is empty")
	}
	for i, g := range c.Gravity.Levels {
		if g.Frames < 1 || g.Cells < 1 {
			return fmt.Errorf("config: gravity level %d needs positive frames and cells, got %d/%d", i+1, g.Frames, g.Cells)
		}
	}
	if g := c.Gravity.Extreme; g.Frames < 1 || g.Cells < 1 {
		return fmt.Errorf("config: extreme gravity needs positive frames and cells, got %d/%d", g.Frames, g.Cells)
	}
	if c.Game.StartLevel < 1 || c.Game.StartLevel > c.Levels.Max {
		return fmt.Errorf("config: start level %d outside 1..%d", c.Game.StartLevel, c.Levels.Max)
	}
	if c.Game.Mode != ModeLine150 && c.Game.Mode != ModeLine999 {
		return fmt.Errorf("config: unknown mode %q", c.Game.Mode)
	}
	if c.Timing.LockDelay < 1 {
		return fmt.Errorf("config: lock_delay %d must be positive", c.Timing.LockDelay)
	}
	if c.Input.HorizontalInterval < 1 || c.Input.VerticalInterval < 1 {
		return fmt.Errorf("config: repeat intervals must be positive")
	}
	return nil
}
