package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockScore(t *testing.T) {
	table := DefaultScoreTable()
	tests := []struct {
		name    string
		result  LockResult
		level   int
		extreme bool
		want    int
	}{
		{"single at level 1", LockResult{Lines: 1}, 1, false, 100},
		{"triple at level 3", LockResult{Lines: 3}, 3, false, 1500},
		{"tetris", LockResult{Lines: 4}, 1, false, 800},
		{"back-to-back tetris", LockResult{Lines: 4, BackToBack: 1}, 1, false, 1200},
		{"back-to-back does not apply to doubles", LockResult{Lines: 2, BackToBack: 3}, 1, false, 300},
		{"t-spin zero", LockResult{TSpin: TSpinZero}, 2, false, 800},
		{"t-spin mini zero with chain", LockResult{TSpin: TSpinMiniZero, BackToBack: 1}, 1, false, 150},
		{"t-spin triple", LockResult{Lines: 3, TSpin: TSpinTriple}, 1, false, 1600},
		{"ren is flat", LockResult{Lines: 1, Ren: 3}, 4, false, 400 + 150},
		{"ren needs lines", LockResult{Ren: 3}, 1, false, 0},
		{"extreme multiplier", LockResult{Lines: 1}, 7, true, 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.LockScore(tt.result, tt.level, tt.extreme))
		})
	}
}

func TestLockScoreOptions(t *testing.T) {
	table := DefaultScoreTable()
	table.LevelMultipliesRen = true
	assert.Equal(t, (100+100)*3, table.LockScore(LockResult{Lines: 1, Ren: 2}, 3, false))

	table = DefaultScoreTable()
	assert.Equal(t, 100, table.LockScore(LockResult{Lines: 1, PerfectClear: true}, 1, false), "bonus is off by default")
	table.PerfectClearBonus = true
	assert.Equal(t, 100+800, table.LockScore(LockResult{Lines: 1, PerfectClear: true}, 1, false))
	assert.Equal(t, (800+2000)*2, table.LockScore(LockResult{Lines: 4, PerfectClear: true}, 2, false))
}

func TestDropScores(t *testing.T) {
	table := DefaultScoreTable()
	assert.Equal(t, 5, table.SoftDropScore(5))
	assert.Equal(t, 36, table.HardDropScore(18))
}

func TestLevelProgress(t *testing.T) {
	p := NewLevelProgress(1, 15, 10, false)
	assert.False(t, p.Advance(9))
	assert.True(t, p.Advance(10))
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 20, p.LinesToNext)
	assert.False(t, p.Advance(19))

	p = NewLevelProgress(14, 15, 10, false)
	assert.True(t, p.Advance(12))
	assert.Equal(t, 15, p.Level)
	assert.Zero(t, p.LinesToNext)
	assert.False(t, p.Advance(1000))
	assert.Equal(t, 15, p.Level)

	p = NewLevelProgress(1, 15, 10, true)
	assert.False(t, p.Advance(500))
	assert.Equal(t, 1, p.Level)
}
