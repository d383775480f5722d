package core

import (
	"strings"
)

// Cell is one character of the screen with its palette color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a 2D buffer of colored characters. Games draw into it and the
// platform turns it into terminal output. Drawing outside the buffer is
// clipped silently.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	width, height = max(width, 0), max(height, 0)
	s := &Screen{width: width, height: height}
	s.cells = make([]Cell, width*height)
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize changes the screen dimensions, preserving the top-left content.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	old, oldW, oldH := s.cells, s.width, s.height
	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()
	for y := range min(oldH, height) {
		copy(s.cells[y*width:y*width+min(oldW, width)], old[y*oldW:])
	}
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// SetCell places a cell.
func (s *Screen) SetCell(x, y int, c Cell) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = c
	}
}

// GetCell returns the cell at the given position, or a blank cell out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawText writes uncolored text starting at (x, y).
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes text starting at (x, y), one rune per cell.
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Color: c})
		i++
	}
}

// DrawTextCentered draws uncolored text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColor(y, text, ColorDefault)
}

// DrawTextCenteredColor draws text centered on row y.
func (s *Screen) DrawTextCenteredColor(y int, text string, c Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextColor(x, y, text, c)
}

// DrawRect fills r with an uncolored rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: fill})
		}
	}
}

// DrawBoxColor draws the outline of r with box-drawing characters.
func (s *Screen) DrawBoxColor(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	set := func(x, y int, ch rune) { s.SetCell(x, y, Cell{Rune: ch, Color: c}) }

	set(r.X, r.Y, '┌')
	set(r.Right()-1, r.Y, '┐')
	set(r.X, r.Bottom()-1, '└')
	set(r.Right()-1, r.Bottom()-1, '┘')
	for x := r.X + 1; x < r.Right()-1; x++ {
		set(x, r.Y, '─')
		set(x, r.Bottom()-1, '─')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		set(r.X, y, '│')
		set(r.Right()-1, y, '│')
	}
}

// DrawPanel draws a box with an uncolored title set into its top edge.
func (s *Screen) DrawPanel(r Rect, title string, c Color) {
	s.DrawBoxColor(r, c)
	if title != "" {
		s.DrawText(r.X+1, r.Y, title)
	}
}

// String returns the runes of the buffer, rows joined with newlines. Colors are dropped.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range s.cells[y*s.width : (y+1)*s.width] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
