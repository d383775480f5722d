package tetra

import (
	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
)

// engineOptions converts the board section into engine options.
// A spawn_row of 0 keeps the engine default, the first visible row.
func engineOptions(cfg config.TetraConfig) engine.Options {
	b := cfg.Board
	opts := engine.Options{
		Width:     b.Width,
		Height:    b.Height,
		Visible:   b.Visible,
		NextCount: b.NextCount,
	}
	if b.SpawnRow > 0 {
		opts.SpawnY = b.Height + 1 - b.Visible + b.SpawnRow
	}
	return opts
}

// scoreTable converts the scoring section into an engine score table.
func scoreTable(cfg config.TetraConfig) engine.ScoreTable {
	s := cfg.Scoring
	t := engine.ScoreTable{
		Lines: [5]int{0, s.Single, s.Double, s.Triple, s.Tetris},
		Ren:   s.Ren,

		SoftDrop:           s.SoftDrop,
		HardDrop:           s.HardDrop,
		ExtremeLevel:       s.ExtremeMultiplier,
		PerfectClearBonus:  s.PerfectClearBonus,
		LevelMultipliesRen: s.LevelMultipliesRen,
	}
	t.TSpin[engine.TSpinZero] = s.TSpinZero
	t.TSpin[engine.TSpinMiniZero] = s.TSpinMiniZero
	t.TSpin[engine.TSpinSingle] = s.TSpinSingle
	t.TSpin[engine.TSpinMiniSingle] = s.TSpinMiniSingle
	t.TSpin[engine.TSpinDouble] = s.TSpinDouble
	t.TSpin[engine.TSpinMiniDouble] = s.TSpinMiniDouble
	t.TSpin[engine.TSpinTriple] = s.TSpinTriple
	for i, v := range s.PerfectClear {
		if i+1 < len(t.PerfectClear) {
			t.PerfectClear[i+1] = v
		}
	}
	return t
}
