package board

import "sync"

// Direction is the signed square difference of a single step.
type Direction int8

const (
	Up        Direction = 0x10
	Down      Direction = -0x10
	Right     Direction = 1
	Left      Direction = -1
	UpRight   Direction = 0x11
	UpLeft    Direction = 0x0F
	DownRight Direction = -0x0F
	DownLeft  Direction = -0x11
)

var (
	DiagonalDirections = [4]Direction{UpRight, UpLeft, DownRight, DownLeft}
	CardinalDirections = [4]Direction{Up, Down, Right, Left}
	KingOffsets        = [8]Direction{Up, Down, Right, Left, UpRight, UpLeft, DownRight, DownLeft}
	KnightOffsets      = [8]Direction{0x21, 0x1F, 0x12, 0x0E, -0x21, -0x1F, -0x12, -0x0E}
)

// pawnAdvance is indexed by Color.
var pawnAdvance = [2]Direction{Up, Down}

// Diagonal reports whether d is one of the four diagonal steps.
func (d Direction) Diagonal() bool {
	return d == UpRight || d == UpLeft || d == DownRight || d == DownLeft
}

// Squares differ by at most 0x77 in either direction, so every ordered pair
// maps into 239 slots.
const diffTableSize = 240

var (
	diffDirection [diffTableSize]Direction
	diffSlider    [diffTableSize]Piece // Bishop or Rook bit for aligned pairs
	diffKnight    [diffTableSize]bool
	diffAdjacent  [diffTableSize]bool
)

func diffIndex(from, to Square) int { return 0x77 + int(to) - int(from) }

// DirectionBetween returns the step that walks from one square toward the
// other, or 0 when they do not share a rank, file or diagonal.
func DirectionBetween(from, to Square) Direction { return diffDirection[diffIndex(from, to)] }

// sliderMask returns Bishop for diagonal pairs, Rook for cardinal pairs and
// Empty otherwise. A piece p can slide between the pair iff p&mask != 0.
func sliderMask(from, to Square) Piece { return diffSlider[diffIndex(from, to)] }

var initOnce sync.Once

// Init fills the process-wide lookup tables and zobrist keys. It is safe to
// call more than once; every board constructor calls it.
func Init() {
	initOnce.Do(func() {
		initGeometry()
		initZobrist(ZobristSeed)
		tablesReady = true
	})
}

var tablesReady bool

func initGeometry() {
	for _, d := range DiagonalDirections {
		fillRay(d, Bishop)
	}
	for _, d := range CardinalDirections {
		fillRay(d, Rook)
	}
	for _, d := range KnightOffsets {
		diffKnight[0x77+int(d)] = true
	}
	for _, d := range KingOffsets {
		diffAdjacent[0x77+int(d)] = true
	}
}

func fillRay(d Direction, mask Piece) {
	for dist := 1; dist <= 7; dist++ {
		idx := 0x77 + int(d)*dist
		diffDirection[idx] = d
		diffSlider[idx] = mask
	}
}

// PawnAdvance is the direction pawns of side c move in.
func PawnAdvance(c Color) Direction { return pawnAdvance[c] }
