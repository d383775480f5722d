// Package core provides the platform-neutral types shared by games and the
// terminal front end: logical actions and per-tick input frames, boolean
// signal decorators, the colored screen buffer and runtime configuration.
// It has no Bubble Tea dependency so game logic stays pure and testable.
package core

// Rect is an axis-aligned area of the screen. X and Y are the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inset shrinks the rectangle by n on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// Beside returns a w by h rectangle gap columns to the right of r,
// top-aligned with it.
func (r Rect) Beside(gap, w, h int) Rect {
	return Rect{X: r.Right() + gap, Y: r.Y, W: w, H: h}
}

// Centered returns a w by h rectangle centered in a width by height area.
// It is pinned to the top-left when the area is too small.
func Centered(width, height, w, h int) Rect {
	return Rect{X: max((width-w)/2, 0), Y: max((height-h)/2, 0), W: w, H: h}
}
