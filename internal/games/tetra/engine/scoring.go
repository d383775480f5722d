package engine

// ScoreTable holds the scoring constants. The zero value scores nothing; use
// DefaultScoreTable.
type ScoreTable struct {
	Lines        [5]int             // indexed by cleared lines, no T-Spin
	TSpin        [NumTSpinKinds]int // indexed by TSpin
	PerfectClear [5]int             // indexed by cleared lines
	Ren          int                // per REN step
	SoftDrop     int                // per cell of player soft drop
	HardDrop     int                // per cell of hard drop
	ExtremeLevel int                // level multiplier in extreme mode

	PerfectClearBonus  bool // add PerfectClear on perfect clears
	LevelMultipliesRen bool // apply the level multiplier to the REN bonus too
}

// DefaultScoreTable returns the standard constants.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		Lines: [5]int{0, 100, 300, 500, 800},
		TSpin: [NumTSpinKinds]int{
			TSpinNone:       0,
			TSpinZero:       400,
			TSpinMiniZero:   100,
			TSpinSingle:     800,
			TSpinMiniSingle: 200,
			TSpinDouble:     1200,
			TSpinMiniDouble: 1200,
			TSpinTriple:     1600,
		},
		PerfectClear: [5]int{0, 800, 1200, 1800, 2000},
		Ren:          50,
		SoftDrop:     1,
		HardDrop:     2,
		ExtremeLevel: 20,
	}
}

// LockResult is what scoring needs to know about one lock.
type LockResult struct {
	Lines        int
	TSpin        TSpin
	BackToBack   int // count before the lock, as reported by LineClearInfo or TSpinEvent
	Ren          int
	PerfectClear bool
}

// BackToBackBonus returns score raised by half when a back-to-back chain is running.
func BackToBackBonus(score, backToBack int) int {
	if backToBack > 0 {
		return score + score/2
	}
	return score
}

// Multiplier returns the level multiplier for level, or ExtremeLevel in extreme mode.
func (t ScoreTable) Multiplier(level int, extreme bool) int {
	if extreme {
		return t.ExtremeLevel
	}
	return level
}

// LockScore scores one lock. Only a Tetris or a T-Spin receives the
// back-to-back bonus. The REN bonus is flat unless LevelMultipliesRen is set.
func (t ScoreTable) LockScore(r LockResult, level int, extreme bool) int {
	score := 0
	lines := min(max(r.Lines, 0), 4)
	if r.TSpin != TSpinNone {
		score = BackToBackBonus(t.TSpin[r.TSpin], r.BackToBack)
	} else if lines > 0 {
		score = t.Lines[lines]
		if lines == 4 {
			score = BackToBackBonus(score, r.BackToBack)
		}
	}
	if t.PerfectClearBonus && r.PerfectClear {
		score += t.PerfectClear[lines]
	}

	ren := 0
	if lines > 0 {
		ren = t.Ren * r.Ren
	}
	mult := t.Multiplier(level, extreme)
	if t.LevelMultipliesRen {
		return (score + ren) * mult
	}
	return score*mult + ren
}

// SoftDropScore scores cells moved down by the player.
func (t ScoreTable) SoftDropScore(cells int) int {
	return t.SoftDrop * cells
}

// HardDropScore scores a hard drop of the given distance.
func (t ScoreTable) HardDropScore(cells int) int {
	return t.HardDrop * cells
}

// LevelProgress tracks level-ups driven by the cumulative cleared-line count.
type LevelProgress struct {
	Level         int
	MaxLevel      int
	LinesPerLevel int
	LinesToNext   int // cleared-line total for the next level; 0 once levels are locked
}

// NewLevelProgress starts at level. Extreme mode and the max level never level up.
func NewLevelProgress(level, maxLevel, linesPerLevel int, extreme bool) LevelProgress {
	p := LevelProgress{Level: level, MaxLevel: maxLevel, LinesPerLevel: linesPerLevel}
	if !extreme && level < maxLevel {
		p.LinesToNext = linesPerLevel
	}
	return p
}

// Advance applies the cleared-line total and reports whether the level went up.
// At most one level is gained per call.
func (p *LevelProgress) Advance(clearedLines int) bool {
	if p.LinesToNext == 0 || clearedLines < p.LinesToNext {
		return false
	}
	p.Level++
	if p.Level >= p.MaxLevel {
		p.LinesToNext = 0
	} else {
		p.LinesToNext += p.LinesPerLevel
	}
	return true
}
