package tetra

import "github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"

// StatLine is one labeled counter on an end-screen page.
type StatLine struct {
	Key   string // storage key
	Label string
	Value int
}

// StatPage groups counters for the end screen.
type StatPage struct {
	Title string
	Lines []StatLine
}

// StatPages lays out the counters shown after a game ends.
func StatPages(st engine.Statistics) []StatPage {
	return []StatPage{
		{Title: "LINES", Lines: []StatLine{
			{"cleared_lines", "Lines", st.ClearedLines},
			{"singles", "Single", st.Singles},
			{"doubles", "Double", st.Doubles},
			{"triples", "Triple", st.Triples},
			{"tetrises", "Tetris", st.Tetrises},
			{"perfect_clears", "Perfect Clear", st.PerfectClears},
		}},
		{Title: "T-SPINS", Lines: []StatLine{
			{"tspin_zero", "T-Spin", st.TSpinCount(engine.TSpinZero)},
			{"tspin_mini_zero", "T-Spin Mini", st.TSpinCount(engine.TSpinMiniZero)},
			{"tspin_single", "TSS", st.TSpinCount(engine.TSpinSingle)},
			{"tspin_mini_single", "TSS Mini", st.TSpinCount(engine.TSpinMiniSingle)},
			{"tspin_double", "TSD", st.TSpinCount(engine.TSpinDouble)},
			{"tspin_mini_double", "TSD Mini", st.TSpinCount(engine.TSpinMiniDouble)},
			{"tspin_triple", "TST", st.TSpinCount(engine.TSpinTriple)},
			{"all_tspins", "All T-Spins", st.AllSpins},
		}},
		{Title: "CHAINS", Lines: []StatLine{
			{"total_back_to_back", "B2B Total", st.TotalBackToBack},
			{"max_back_to_back", "B2B Max", st.MaxBackToBack},
			{"total_ren", "REN Total", st.TotalRen},
			{"max_ren", "REN Max", st.MaxRen},
			{"max_ren_lines", "REN Max Lines", st.MaxRenLines},
		}},
		{Title: "OPERATIONS", Lines: []StatLine{
			{"minos", "Minos", st.Minos},
			{"holds", "Hold", st.Holds},
			{"hard_drops", "Hard Drop", st.HardDrops},
			{"moves_left", "Move Left", st.MovesLeft},
			{"moves_right", "Move Right", st.MovesRight},
			{"rotations_left", "Rotate Left", st.RotationsLeft},
			{"rotations_right", "Rotate Right", st.RotationsRight},
			{"drop_distance", "Drop Distance", st.DropDistance},
		}},
	}
}

// StatsMap flattens the counters into named values for storage.
func StatsMap(st engine.Statistics) map[string]int {
	m := make(map[string]int, 32)
	for _, page := range StatPages(st) {
		for _, l := range page.Lines {
			m[l.Key] = l.Value
		}
	}
	return m
}
