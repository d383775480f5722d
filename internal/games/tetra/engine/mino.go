// Package engine implements the Tetra rules: piece geometry with SRS-style wall
// kicks, the board state machine, T-Spin recognition, line clears, REN and
// back-to-back bookkeeping, statistics and the 7-bag piece source.
//
// The package is deterministic and has no dependencies on timing, input or
// rendering. The session driver in the parent package feeds it operations
// one tick at a time.
package engine

import "fmt"

// MinoType identifies one of the seven tetrominoes.
type MinoType int8

const (
	MinoI MinoType = iota
	MinoO
	MinoS
	MinoZ
	MinoJ
	MinoL
	MinoT
)

// NumMinoTypes is the number of distinct tetrominoes.
const NumMinoTypes = 7

// AllMinoTypes lists the tetrominoes in table order.
var AllMinoTypes = [NumMinoTypes]MinoType{MinoI, MinoO, MinoS, MinoZ, MinoJ, MinoL, MinoT}

// String returns the single-letter name of the mino.
func (m MinoType) String() string {
	switch m {
	case MinoI:
		return "I"
	case MinoO:
		return "O"
	case MinoS:
		return "S"
	case MinoZ:
		return "Z"
	case MinoJ:
		return "J"
	case MinoL:
		return "L"
	case MinoT:
		return "T"
	default:
		return fmt.Sprintf("MinoType(%d)", int(m))
	}
}

// Valid reports whether m is one of the seven tetrominoes.
func (m MinoType) Valid() bool {
	return m >= MinoI && m <= MinoT
}

// Block returns the board cell tag written when this mino locks.
func (m MinoType) Block() BlockType {
	return BlockType(m + 1)
}

// BlockType is the content of a single board cell.
type BlockType int8

const (
	BlockNone BlockType = iota
	BlockI
	BlockO
	BlockS
	BlockZ
	BlockJ
	BlockL
	BlockT
	BlockWall
	BlockGarbage // reserved, never produced by the engine
)

// String returns a short name used by fixtures and debug dumps.
func (b BlockType) String() string {
	switch b {
	case BlockNone:
		return "."
	case BlockWall:
		return "#"
	case BlockGarbage:
		return "G"
	}
	if b >= BlockI && b <= BlockT {
		return MinoType(b - 1).String()
	}
	return "?"
}

// IsMino reports whether the cell holds a locked tetromino block.
func (b BlockType) IsMino() bool {
	return b >= BlockI && b <= BlockT
}

// Rotation is one of the four orientation states.
// 0 is the spawn orientation, 1 is a clockwise turn from it, 2 a half turn,
// 3 a counter-clockwise turn.
type Rotation int8

// NumRotations is the number of orientation states.
const NumRotations = 4

// Right returns the orientation after a clockwise turn.
func (r Rotation) Right() Rotation {
	return (r + 1) % NumRotations
}

// Left returns the orientation after a counter-clockwise turn.
func (r Rotation) Left() Rotation {
	return (r + NumRotations - 1) % NumRotations
}

// Point is a cell coordinate or offset. Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// NumMinoCells is the number of cells in every tetromino.
const NumMinoCells = 4

// NumWallKicks is the number of candidate offsets tried per rotation.
const NumWallKicks = 5

// maxMinoSize is the side of the grid the base shapes are described in.
const maxMinoSize = 4

// RotatedMino is the immutable geometry of one mino in one orientation.
// Points are relative to the top-left corner of the mino's size x size box.
type RotatedMino struct {
	Width, Height int
	Min, Max      Point
	Pattern       uint16 // row-major 4x4 bitmap, MSB is (0,0)
	Points        [NumMinoCells]Point
	KicksRight    [NumWallKicks]Point // tried when turning clockwise out of this orientation
	KicksLeft     [NumWallKicks]Point // tried when turning counter-clockwise out of this orientation
}

// Kicks returns the kick candidates for leaving this orientation in the given direction.
func (m *RotatedMino) Kicks(clockwise bool) [NumWallKicks]Point {
	if clockwise {
		return m.KicksRight
	}
	return m.KicksLeft
}

type minoSet struct {
	size  int
	minos [NumRotations]RotatedMino
}

// Base kick tables in board coordinates (y down).
var (
	kicksBasic = [NumWallKicks]Point{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}
	kicksI     = [NumWallKicks]Point{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}
)

const (
	flipX = 1 << 0
	flipY = 1 << 1
)

// Flip flags per source orientation.
var (
	kickFlipRight = [NumRotations]int{0, flipX | flipY, flipX, flipY}
	kickFlipLeft  = [NumRotations]int{flipX, flipX | flipY, 0, flipY}
)

// Rotation matrices {m0, m1, m2, m3}: x' = m0*x + m1*y, y' = m2*x + m3*y.
var rotationMatrices = [NumRotations][4]int{
	{1, 0, 0, 1},
	{0, -1, 1, 0},
	{-1, 0, 0, -1},
	{0, 1, -1, 0},
}

// Base shapes on a 4x4 grid, row-major.
var baseShapes = [NumMinoTypes][maxMinoSize * maxMinoSize]uint8{
	MinoI: {
		0, 0, 0, 0,
		1, 1, 1, 1,
		0, 0, 0, 0,
		0, 0, 0, 0,
	},
	MinoO: {
		1, 1, 0, 0,
		1, 1, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	},
	MinoS: {
		0, 1, 1, 0,
		1, 1, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	},
	MinoZ: {
		1, 1, 0, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	},
	MinoJ: {
		1, 0, 0, 0,
		1, 1, 1, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	},
	MinoL: {
		0, 0, 1, 0,
		1, 1, 1, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	},
	MinoT: {
		0, 1, 0, 0,
		1, 1, 1, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	},
}

var minoTable [NumMinoTypes]minoSet

func init() {
	for _, m := range AllMinoTypes {
		kicks := kicksBasic
		if m == MinoI {
			kicks = kicksI
		}
		minoTable[m] = buildMinoSet(baseShapes[m], kicks)
	}
}

// Shape returns the geometry of mino m in orientation r.
func Shape(m MinoType, r Rotation) *RotatedMino {
	return &minoTable[m].minos[r]
}

// SizeOf returns the side of the square box the mino rotates in.
// It is 4 for I, 2 for O and 3 for the rest.
func SizeOf(m MinoType) int {
	return minoTable[m].size
}

func flipKicks(kicks [NumWallKicks]Point, flags int) [NumWallKicks]Point {
	kx, ky := 1, 1
	if flags&flipX != 0 {
		kx = -1
	}
	if flags&flipY != 0 {
		ky = -1
	}
	for i := range kicks {
		kicks[i].X *= kx
		kicks[i].Y *= ky
	}
	return kicks
}

// rotatePoint turns p by r quarter turns about the box centre. Working in doubled
// coordinates keeps the pivot on the grid for both even and odd box sizes.
func rotatePoint(p Point, originDoubled int, r Rotation) Point {
	m := rotationMatrices[r]
	dx := p.X*2 - originDoubled
	dy := p.Y*2 - originDoubled
	rx := m[0]*dx + m[1]*dy + originDoubled
	ry := m[2]*dx + m[3]*dy + originDoubled
	if rx%2 != 0 || ry%2 != 0 {
		panic(fmt.Sprintf("tetra: rotated point (%d,%d) off grid", rx, ry))
	}
	return Point{rx / 2, ry / 2}
}

func buildMinoSet(cells [maxMinoSize * maxMinoSize]uint8, kicks [NumWallKicks]Point) minoSet {
	minX, maxX := maxMinoSize-1, 0
	minY, maxY := maxMinoSize-1, 0
	for i, c := range cells {
		if c == 0 {
			continue
		}
		x, y := i%maxMinoSize, i/maxMinoSize
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	size := max(maxX-minX+1, maxY-minY+1)
	originDoubled := size - 1

	var set minoSet
	set.size = size
	for r := Rotation(0); r < NumRotations; r++ {
		mino := RotatedMino{
			Min:        Point{maxMinoSize - 1, maxMinoSize - 1},
			KicksRight: flipKicks(kicks, kickFlipRight[r]),
			KicksLeft:  flipKicks(kicks, kickFlipLeft[r]),
		}
		k := 0
		for i, c := range cells {
			if c == 0 {
				continue
			}
			p := rotatePoint(Point{i % maxMinoSize, i / maxMinoSize}, originDoubled, r)
			mino.Min = Point{min(mino.Min.X, p.X), min(mino.Min.Y, p.Y)}
			mino.Max = Point{max(mino.Max.X, p.X), max(mino.Max.Y, p.Y)}
			mino.Pattern |= 1 << (maxMinoSize*maxMinoSize - (p.Y*maxMinoSize + p.X) - 1)
			mino.Points[k] = p
			k++
		}
		mino.Width = mino.Max.X - mino.Min.X + 1
		mino.Height = mino.Max.Y - mino.Min.Y + 1
		set.minos[r] = mino
	}
	return set
}
