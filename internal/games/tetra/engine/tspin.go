package engine

// TSpin classifies how a T piece was locked after a rotation.
type TSpin int8

const (
	TSpinNone TSpin = iota
	TSpinZero
	TSpinMiniZero
	TSpinSingle
	TSpinMiniSingle
	TSpinDouble
	TSpinMiniDouble
	TSpinTriple

	NumTSpinKinds = int(TSpinTriple) + 1
)

// String returns a display name such as "T-Spin Mini Single".
func (t TSpin) String() string {
	switch t {
	case TSpinNone:
		return "None"
	case TSpinZero:
		return "T-Spin"
	case TSpinMiniZero:
		return "T-Spin Mini"
	case TSpinSingle:
		return "T-Spin Single"
	case TSpinMiniSingle:
		return "T-Spin Mini Single"
	case TSpinDouble:
		return "T-Spin Double"
	case TSpinMiniDouble:
		return "T-Spin Mini Double"
	case TSpinTriple:
		return "T-Spin Triple"
	}
	return "Unknown"
}

// IsMini reports whether t is one of the Mini variants.
func (t TSpin) IsMini() bool {
	return t == TSpinMiniZero || t == TSpinMiniSingle || t == TSpinMiniDouble
}

// Lines returns the number of lines the T-Spin kind implies.
func (t TSpin) Lines() int {
	switch t {
	case TSpinSingle, TSpinMiniSingle:
		return 1
	case TSpinDouble, TSpinMiniDouble:
		return 2
	case TSpinTriple:
		return 3
	}
	return 0
}

func tspinFor(lines int, mini bool) TSpin {
	switch lines {
	case 0:
		if mini {
			return TSpinMiniZero
		}
		return TSpinZero
	case 1:
		if mini {
			return TSpinMiniSingle
		}
		return TSpinSingle
	case 2:
		if mini {
			return TSpinMiniDouble
		}
		return TSpinDouble
	case 3:
		return TSpinTriple
	}
	return TSpinNone
}

// Corner cells of the T's 3x3 box and, per orientation, the cell behind the
// flat side and the two corners on the pointing side.
var (
	tspinCorners = [4]Point{{0, 0}, {0, 2}, {2, 0}, {2, 2}}
	tspinBehind  = [NumRotations]Point{{1, 2}, {0, 1}, {1, 0}, {2, 1}}
	tspinSides   = [NumRotations][2]Point{
		{{0, 0}, {2, 0}},
		{{2, 0}, {2, 2}},
		{{0, 2}, {2, 2}},
		{{0, 0}, {0, 2}},
	}
)

// detectTSpin classifies a T lock. It must be called after the piece has been
// written into b and before any rows are removed.
//
// A lock is a T-Spin when at least three of the four box corners are occupied.
// It is a Mini when, in order:
//  1. two lines were cleared while the piece could still fall: Mini;
//  2. the last rotation used the fifth kick: not Mini;
//  3. the cell behind the flat side is empty: Mini if either pointing corner is empty;
//  4. otherwise: Mini if at most one line was cleared with a non-zero kick.
func detectTSpin(b *Board, pos Point, r Rotation, kick, lines int, mobile bool) TSpin {
	occupied := 0
	for _, c := range tspinCorners {
		if b.At(pos.Add(c)) != BlockNone {
			occupied++
		}
	}
	if occupied < 3 {
		return TSpinNone
	}

	var mini bool
	switch {
	case lines == 2 && mobile:
		mini = true
	case kick == NumWallKicks-1:
		mini = false
	case b.At(pos.Add(tspinBehind[r])) == BlockNone:
		sides := tspinSides[r]
		mini = b.At(pos.Add(sides[0])) == BlockNone || b.At(pos.Add(sides[1])) == BlockNone
	default:
		mini = lines <= 1 && kick != 0
	}
	return tspinFor(lines, mini)
}
