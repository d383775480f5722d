package engine

import (
	"testing"

	"pgregory.net/rapid"
)

func TestNewBoardWalls(t *testing.T) {
	b := NewBoard(12, 42)
	for y := 0; y < b.Height(); y++ {
		if b.At(Point{0, y}) != BlockWall || b.At(Point{11, y}) != BlockWall {
			t.Fatalf("row %d side walls missing", y)
		}
	}
	for x := 0; x < b.Width(); x++ {
		if b.At(Point{x, 41}) != BlockWall {
			t.Fatalf("floor missing at column %d", x)
		}
	}
	if b.At(Point{5, 0}) != BlockNone {
		t.Error("top row should have no ceiling")
	}
	if b.At(Point{-1, 3}) != BlockWall || b.At(Point{3, 42}) != BlockWall {
		t.Error("out of range cells should read as wall")
	}
}

func TestBoardRowFilled(t *testing.T) {
	b := NewBoard(6, 6)
	for x := 1; x < 5; x++ {
		b.set(Point{x, 3}, BlockO)
	}
	if !b.RowFilled(3) {
		t.Error("RowFilled(3) = false, want true")
	}
	b.set(Point{2, 3}, BlockNone)
	if b.RowFilled(3) {
		t.Error("RowFilled(3) = true after removing a block")
	}
	if b.RowFilled(5) != true {
		t.Error("the floor row counts as filled")
	}
}

func TestBoardClearRowsNonAdjacent(t *testing.T) {
	b := NewBoard(6, 8)
	// rows 3 and 5 full, marker in row 4, another marker in row 2
	for x := 1; x < 5; x++ {
		b.set(Point{x, 3}, BlockO)
		b.set(Point{x, 5}, BlockO)
	}
	b.set(Point{1, 4}, BlockGarbage)
	b.set(Point{4, 2}, BlockT)

	b.clearRow(3)
	b.clearRow(5)
	b.resetTopRows(2)

	if got := b.At(Point{1, 5}); got != BlockGarbage {
		t.Errorf("marker between cleared rows at (1,5) = %v, want G", got)
	}
	if got := b.At(Point{4, 4}); got != BlockT {
		t.Errorf("marker above both rows at (4,4) = %v, want T", got)
	}
	for y := 0; y < 4; y++ {
		for x := 1; x < 5; x++ {
			if b.At(Point{x, y}) != BlockNone {
				t.Errorf("cell (%d,%d) = %v, want empty", x, y, b.At(Point{x, y}))
			}
		}
		if b.At(Point{0, y}) != BlockWall || b.At(Point{5, y}) != BlockWall {
			t.Errorf("row %d lost its walls", y)
		}
	}
}

func TestBoardFill(t *testing.T) {
	b := NewBoard(6, 8)
	n, err := b.fill([]string{"ONNO", "TIGN"})
	if err != nil {
		t.Fatalf("fill() error = %v", err)
	}
	if n != 5 {
		t.Errorf("fill() = %d blocks, want 5", n)
	}
	if b.At(Point{1, 5}) != BlockO || b.At(Point{2, 5}) != BlockNone {
		t.Error("first fixture row misplaced")
	}
	if b.At(Point{1, 6}) != BlockT || b.At(Point{3, 6}) != BlockGarbage {
		t.Error("second fixture row misplaced")
	}

	if _, err := b.fill([]string{"OOO"}); err == nil {
		t.Error("expected error for short row")
	}
	if _, err := b.fill([]string{"OOOZ", "OOO?"}); err == nil {
		t.Error("expected error for unknown cell")
	}
}

func TestCollideMatchesCellwiseCheck(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewBoard(12, 42)
		blocks := rapid.IntRange(0, 120).Draw(t, "blocks")
		for i := 0; i < blocks; i++ {
			x := rapid.IntRange(1, 10).Draw(t, "x")
			y := rapid.IntRange(0, 40).Draw(t, "y")
			b.set(Point{x, y}, BlockGarbage)
		}
		m := MinoType(rapid.IntRange(0, NumMinoTypes-1).Draw(t, "mino"))
		r := Rotation(rapid.IntRange(0, NumRotations-1).Draw(t, "rot"))
		pos := Point{rapid.IntRange(-3, 12).Draw(t, "px"), rapid.IntRange(-3, 42).Draw(t, "py")}

		want := false
		for _, p := range Shape(m, r).Points {
			c := pos.Add(p)
			if c.X < 0 || c.Y < 0 || c.X >= b.Width() || c.Y >= b.Height() || b.At(c) != BlockNone {
				want = true
			}
		}
		if got := b.Collide(m, pos, r); got != want {
			t.Fatalf("Collide(%v, %v, %d) = %v, want %v", m, pos, r, got, want)
		}
	})
}
