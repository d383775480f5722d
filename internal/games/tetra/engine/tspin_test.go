package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTSpin(t *testing.T) {
	pos := Point{4, 4}
	tests := []struct {
		name   string
		r      Rotation
		filled []Point // box-relative cells occupied around the T
		kick   int
		lines  int
		mobile bool
		want   TSpin
	}{
		{
			name:   "two corners is no t-spin",
			filled: []Point{{0, 2}, {2, 2}},
			kick:   1,
			lines:  1,
			want:   TSpinNone,
		},
		{
			name:   "double while mobile is mini even with the fifth kick",
			filled: []Point{{0, 0}, {0, 2}, {2, 2}, {1, 2}},
			kick:   NumWallKicks - 1,
			lines:  2,
			mobile: true,
			want:   TSpinMiniDouble,
		},
		{
			name:   "fifth kick is never mini",
			filled: []Point{{0, 0}, {0, 2}, {2, 2}},
			kick:   NumWallKicks - 1,
			lines:  1,
			want:   TSpinSingle,
		},
		{
			name:   "empty behind with an open pointing corner is mini",
			filled: []Point{{0, 0}, {0, 2}, {2, 2}},
			kick:   0,
			lines:  0,
			want:   TSpinMiniZero,
		},
		{
			name:   "empty behind with both pointing corners filled is not mini",
			filled: []Point{{0, 0}, {2, 0}, {0, 2}, {2, 2}},
			kick:   1,
			lines:  1,
			want:   TSpinSingle,
		},
		{
			name:   "filled behind single with a kick is mini",
			filled: []Point{{0, 0}, {0, 2}, {2, 2}, {1, 2}},
			kick:   1,
			lines:  1,
			want:   TSpinMiniSingle,
		},
		{
			name:   "filled behind without a kick is not mini",
			filled: []Point{{0, 0}, {0, 2}, {2, 2}, {1, 2}},
			kick:   0,
			lines:  0,
			want:   TSpinZero,
		},
		{
			name:   "filled behind double is not mini",
			filled: []Point{{0, 0}, {0, 2}, {2, 2}, {1, 2}},
			kick:   2,
			lines:  2,
			want:   TSpinDouble,
		},
		{
			name:   "triple",
			filled: []Point{{0, 0}, {0, 2}, {2, 2}, {1, 2}},
			kick:   3,
			lines:  3,
			want:   TSpinTriple,
		},
		{
			name:   "behind and sides follow the rotation",
			r:      1,
			filled: []Point{{0, 0}, {0, 2}, {2, 0}},
			kick:   0,
			lines:  1,
			want:   TSpinMiniSingle,
		},
		{
			name:   "rotated with behind filled and no kick",
			r:      1,
			filled: []Point{{0, 0}, {0, 2}, {2, 0}, {0, 1}},
			kick:   0,
			lines:  1,
			want:   TSpinSingle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(12, 12)
			for _, p := range tt.filled {
				b.set(pos.Add(p), BlockO)
			}
			got := detectTSpin(b, pos, tt.r, tt.kick, tt.lines, tt.mobile)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestTSpinKinds(t *testing.T) {
	assert.True(t, TSpinMiniDouble.IsMini())
	assert.False(t, TSpinDouble.IsMini())
	assert.Equal(t, 2, TSpinMiniDouble.Lines())
	assert.Equal(t, "T-Spin Mini Single", TSpinMiniSingle.String())
	assert.Equal(t, TSpinNone, tspinFor(4, false), "no four-line t-spin")
}
