package config

import (
	_ "embed"
)

//go:embed defaults/tetra.yaml
var defaultTetraYAML []byte

// DefaultTetraConfig returns the built-in rules, used when no YAML can be read.
func DefaultTetraConfig() TetraConfig {
	return TetraConfig{
		Board: TetraBoard{
			Width:     10,
			Height:    40,
			Visible:   20,
			NextCount: 6,
		},
		Timing: TetraTiming{
			LockDelay:              30,
			LineClearWait:          40,
			SpawnWait:              0,
			LineClearAnimeInterval: 3,
			LineClearAnimePhases:   3,
			MaxOperationsAfterLand: 15,
			RotateEnableWait:       10,
			HardDropEnableWait:     10,
			ReadyTicks:             60,
			ReadyGapTicks:          6,
			GoTicks:                60,
			EffectTicks:            120,
			PerfectClearTicks:      180,
			HardDropEffectTicks:    10,
		},
		Input: TetraInput{
			ArrowDelay:         1,
			HorizontalDelay:    10,
			HorizontalInterval: 2,
			VerticalDelay:      4,
			VerticalInterval:   4,
			LatchTicks:         6,
		},
		Gravity: TetraGravity{
			Levels: []GravityStep{
				{60, 1}, {48, 1}, {38, 1}, {29, 1}, {22, 1},
				{16, 1}, {12, 1}, {9, 1}, {6, 1}, {4, 1},
				{8, 3}, {2, 1}, {2, 1}, {1, 1}, {1, 2},
			},
			Extreme: GravityStep{Frames: 1, Cells: 20},
		},
		Levels: TetraLevels{
			Max:           15,
			LinesPerLevel: 10,
		},
		Scoring: TetraScoring{
			Single:            100,
			Double:            300,
			Triple:            500,
			Tetris:            800,
			TSpinMiniZero:     100,
			TSpinZero:         400,
			TSpinMiniSingle:   200,
			TSpinSingle:       800,
			TSpinMiniDouble:   1200,
			TSpinDouble:       1200,
			TSpinTriple:       1600,
			Ren:               50,
			SoftDrop:          1,
			HardDrop:          2,
			ExtremeMultiplier: 20,
			PerfectClear:      []int{800, 1200, 1800, 2000},
		},
		Game: TetraGame{
			Mode:       ModeLine150,
			StartLevel: 1,
		},
	}
}

// DefaultTetraYAML returns the embedded default YAML.
func DefaultTetraYAML() []byte {
	return defaultTetraYAML
}
