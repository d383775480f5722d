package engine

import (
	"math/bits"
	"testing"

	"pgregory.net/rapid"
)

func TestShapePatterns(t *testing.T) {
	tests := []struct {
		mino MinoType
		rot  Rotation
		want uint16
	}{
		{MinoT, 0, 0x4E00},
		{MinoJ, 0, 0x8E00},
		{MinoJ, 1, 0x6440},
		{MinoJ, 2, 0x0E20},
		{MinoJ, 3, 0x44C0},
		{MinoO, 0, 0xCC00},
		{MinoO, 1, 0xCC00},
		{MinoO, 2, 0xCC00},
		{MinoO, 3, 0xCC00},
		{MinoI, 0, 0x0F00},
		{MinoI, 1, 0x2222},
		{MinoI, 2, 0x00F0},
		{MinoI, 3, 0x4444},
	}
	for _, tt := range tests {
		got := Shape(tt.mino, tt.rot).Pattern
		if got != tt.want {
			t.Errorf("Shape(%v, %d).Pattern = %#04x, want %#04x", tt.mino, tt.rot, got, tt.want)
		}
	}
}

func TestSizeOf(t *testing.T) {
	want := map[MinoType]int{MinoI: 4, MinoO: 2, MinoS: 3, MinoZ: 3, MinoJ: 3, MinoL: 3, MinoT: 3}
	for m, size := range want {
		if got := SizeOf(m); got != size {
			t.Errorf("SizeOf(%v) = %d, want %d", m, got, size)
		}
	}
}

func TestKickTables(t *testing.T) {
	tests := []struct {
		name      string
		mino      MinoType
		rot       Rotation
		clockwise bool
		want      [NumWallKicks]Point
	}{
		{"T 0->R", MinoT, 0, true, [5]Point{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}},
		{"T 0->L", MinoT, 0, false, [5]Point{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}}},
		{"T R->2", MinoT, 1, true, [5]Point{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}},
		{"T 2->R", MinoT, 2, false, [5]Point{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}},
		{"T L->0", MinoT, 3, true, [5]Point{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}},
		{"I 0->R", MinoI, 0, true, [5]Point{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}},
		{"I R->2", MinoI, 1, true, [5]Point{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shape(tt.mino, tt.rot).Kicks(tt.clockwise)
			if got != tt.want {
				t.Errorf("kicks = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotationSuccessors(t *testing.T) {
	for r := Rotation(0); r < NumRotations; r++ {
		if r.Right().Left() != r {
			t.Errorf("Rotation(%d).Right().Left() = %d", r, r.Right().Left())
		}
	}
	if Rotation(3).Right() != 0 || Rotation(0).Left() != 3 {
		t.Error("rotation does not wrap")
	}
}

func TestShapeGeometryProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := MinoType(rapid.IntRange(0, NumMinoTypes-1).Draw(t, "mino"))
		r := Rotation(rapid.IntRange(0, NumRotations-1).Draw(t, "rot"))
		s := Shape(m, r)

		if n := bits.OnesCount16(s.Pattern); n != NumMinoCells {
			t.Fatalf("%v/%d pattern has %d cells", m, r, n)
		}
		size := SizeOf(m)
		for _, p := range s.Points {
			if p.X < s.Min.X || p.Y < s.Min.Y || p.X > s.Max.X || p.Y > s.Max.Y {
				t.Fatalf("%v/%d point %v outside bounds %v..%v", m, r, p, s.Min, s.Max)
			}
			if p.X >= size || p.Y >= size {
				t.Fatalf("%v/%d point %v outside %dx%d box", m, r, p, size, size)
			}
		}
		if s.Width != s.Max.X-s.Min.X+1 || s.Height != s.Max.Y-s.Min.Y+1 {
			t.Fatalf("%v/%d size %dx%d does not match bounds", m, r, s.Width, s.Height)
		}
		// Four quarter turns are the identity.
		if Shape(m, r.Right().Right().Right().Right()).Pattern != s.Pattern {
			t.Fatalf("%v/%d not periodic", m, r)
		}
	})
}
