package engine

import (
	"fmt"
	"strings"
)

// Board is a width x height grid of cells including the wall border.
// Columns 0 and width-1 and the bottom row are always BlockWall. Row 0 is the
// topmost hidden row and has no ceiling.
type Board struct {
	width  int
	height int
	cells  []BlockType
}

// NewBoard creates an empty walled board. Width and height include the border.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]BlockType, width*height),
	}
	for y := 0; y < height; y++ {
		b.cells[y*width] = BlockWall
		b.cells[y*width+width-1] = BlockWall
	}
	for x := 0; x < width; x++ {
		b.cells[(height-1)*width+x] = BlockWall
	}
	return b
}

// Width returns the board width including walls.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height including the floor.
func (b *Board) Height() int {
	return b.height
}

// At returns the cell at p. Coordinates outside the grid read as BlockWall.
func (b *Board) At(p Point) BlockType {
	if p.X < 0 || p.X >= b.width || p.Y < 0 || p.Y >= b.height {
		return BlockWall
	}
	return b.cells[p.Y*b.width+p.X]
}

func (b *Board) set(p Point, v BlockType) {
	b.cells[p.Y*b.width+p.X] = v
}

// Collide reports whether mino m at position pos in orientation r overlaps a
// non-empty cell or leaves the grid.
func (b *Board) Collide(m MinoType, pos Point, r Rotation) bool {
	shape := Shape(m, r)
	if lo := pos.Add(shape.Min); lo.X < 0 || lo.Y < 0 {
		return true
	}
	if hi := pos.Add(shape.Max); hi.X >= b.width || hi.Y >= b.height {
		return true
	}
	for _, p := range shape.Points {
		if b.cells[(pos.Y+p.Y)*b.width+pos.X+p.X] != BlockNone {
			return true
		}
	}
	return false
}

// RowFilled reports whether every interior cell of row y is occupied.
func (b *Board) RowFilled(y int) bool {
	row := b.cells[y*b.width : (y+1)*b.width]
	for x := 1; x < b.width-1; x++ {
		if row[x] == BlockNone {
			return false
		}
	}
	return true
}

// clearRow removes row y and shifts every row above it down by one.
// The top row is left as it was; callers reset it after all shifts.
func (b *Board) clearRow(y int) {
	copy(b.cells[b.width:(y+1)*b.width], b.cells[:y*b.width])
}

// resetTopRows empties the top n rows and restores their side walls.
func (b *Board) resetTopRows(n int) {
	for y := 0; y < n; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := range row {
			row[x] = BlockNone
		}
		row[0] = BlockWall
		row[b.width-1] = BlockWall
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{width: b.width, height: b.height, cells: make([]BlockType, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

func (b *Board) copyFrom(src *Board) {
	copy(b.cells, src.cells)
}

// Cells returns a copy of the raw row-major cell slice.
func (b *Board) Cells() []BlockType {
	out := make([]BlockType, len(b.cells))
	copy(out, b.cells)
	return out
}

// String dumps the board one row per line using BlockType names.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteString(b.cells[y*b.width+x].String())
		}
	}
	return sb.String()
}

// fill writes rows of fixture text into the interior, bottom-aligned above the floor.
// 'O' or any mino letter marks a block, '.' or 'N' or ' ' an empty cell.
// It returns the number of blocks written.
func (b *Board) fill(rows []string) (int, error) {
	interior := b.width - 2
	top := b.height - 1 - len(rows)
	if top < 0 {
		return 0, fmt.Errorf("tetra: fixture has %d rows, board fits %d", len(rows), b.height-1)
	}
	count := 0
	for i, row := range rows {
		if len(row) != interior {
			return 0, fmt.Errorf("tetra: fixture row %d has width %d, want %d", i, len(row), interior)
		}
		for x, c := range row {
			v, err := parseFixtureCell(c)
			if err != nil {
				return 0, fmt.Errorf("tetra: fixture row %d: %w", i, err)
			}
			b.set(Point{x + 1, top + i}, v)
			if v != BlockNone {
				count++
			}
		}
	}
	return count, nil
}

func parseFixtureCell(c rune) (BlockType, error) {
	switch c {
	case '.', 'N', ' ':
		return BlockNone, nil
	case 'O', 'X', '#':
		return BlockO, nil
	case 'I':
		return BlockI, nil
	case 'S':
		return BlockS, nil
	case 'Z':
		return BlockZ, nil
	case 'J':
		return BlockJ, nil
	case 'L':
		return BlockL, nil
	case 'T':
		return BlockT, nil
	case 'G':
		return BlockGarbage, nil
	}
	return BlockNone, fmt.Errorf("unknown cell %q", c)
}
