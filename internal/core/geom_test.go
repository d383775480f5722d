package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	got := NewRect(2, 3, 10, 6).Inset(1)
	if want := NewRect(3, 4, 8, 4); got != want {
		t.Errorf("Inset(1) = %+v, expected %+v", got, want)
	}
	if got := NewRect(0, 0, 1, 1).Inset(2); got.W != 0 || got.H != 0 {
		t.Errorf("Inset past zero = %+v, expected empty", got)
	}
}

func TestRectBeside(t *testing.T) {
	hold := NewRect(4, 2, 10, 5)
	board := hold.Beside(1, 22, 22)
	if want := NewRect(15, 2, 22, 22); board != want {
		t.Errorf("Beside = %+v, expected %+v", board, want)
	}
}

func TestCentered(t *testing.T) {
	tests := []struct {
		name                string
		width, height, w, h int
		expected            Rect
	}{
		{"fits", 80, 24, 60, 22, NewRect(10, 1, 60, 22)},
		{"odd slack rounds down", 81, 25, 60, 22, NewRect(10, 1, 60, 22)},
		{"too small pins to origin", 40, 10, 60, 22, NewRect(0, 0, 60, 22)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Centered(tc.width, tc.height, tc.w, tc.h); got != tc.expected {
				t.Errorf("Centered() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks, rate int
		expected    string
	}{
		{0, 60, "0:00"},
		{59, 60, "0:00"},
		{60 * 75, 60, "1:15"},
		{30 * 125, 30, "2:05"},
		{120, 0, "0:02"}, // zero rate falls back to 60
	}

	for _, tc := range tests {
		if got := FormatTicks(tc.ticks, tc.rate); got != tc.expected {
			t.Errorf("FormatTicks(%d, %d) = %q, expected %q", tc.ticks, tc.rate, got, tc.expected)
		}
	}
}
