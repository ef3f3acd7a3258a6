package engine

import (
	"github.com/Solid-State-Chess/max-sub000/board"
)

// Evaluator scores a position in centipawns from the side to move's view.
type Evaluator interface {
	Evaluate(b *board.Board) int32
}

// EvalParams holds the weights of the default evaluator.
type EvalParams struct {
	Material          [16]int32
	StackedPawn       int32
	BishopPair        int32
	ConnectedRooks    int32
	DisconnectedRooks int32
	SliderSquare      int32
	PinnedSlider      int32
}

// DefaultEvalParams returns the standard weights.
func DefaultEvalParams() EvalParams {
	var p EvalParams
	p.Material[board.Pawn] = 100
	p.Material[board.Knight] = 300
	p.Material[board.Bishop] = 310
	p.Material[board.Rook] = 500
	p.Material[board.Queen] = 900
	p.StackedPawn = 75
	p.BishopPair = 125
	p.ConnectedRooks = 50
	p.DisconnectedRooks = 10
	p.SliderSquare = 4
	p.PinnedSlider = 30
	return p
}

// Eval is the default evaluator: material, piece-square tables, stacked
// pawns, the bishop pair, connected rooks and slider reach.
type Eval struct {
	Params EvalParams
}

func NewEval() *Eval { return &Eval{Params: DefaultEvalParams()} }

var scoreSign = [2]int32{1, -1}

func (e *Eval) Evaluate(b *board.Board) int32 {
	score := e.evaluateSide(b, board.White) - e.evaluateSide(b, board.Black)
	return score * scoreSign[b.SideToMove()]
}

func (e *Eval) evaluateSide(b *board.Board, c board.Color) int32 {
	l := b.Pieces(c)
	var score int32
	for _, kind := range board.Kinds {
		table := &pieceSquareTables[kind]
		for _, sq := range l.Squares(kind) {
			score += e.Params.Material[kind] + table[pstIndex(sq, c)]
		}
	}
	score -= e.stackedPawns(b, c)
	if l.Count(board.Bishop) >= 2 {
		score += e.Params.BishopPair
	}
	score += e.connectedRooks(b, c)
	score += e.sliderReach(b, c)
	return score
}

// pstIndex maps a square onto the tables below, which are written from
// white's side with rank 8 first.
func pstIndex(sq board.Square, c board.Color) int {
	if c == board.White {
		sq ^= 0x70
	}
	return int(sq.Compact())
}

// stackedPawns charges every pawn that has a friendly pawn directly in
// front of it.
func (e *Eval) stackedPawns(b *board.Board, c board.Color) int32 {
	pawn := board.MakePiece(c, board.Pawn)
	adv := board.PawnAdvance(c)
	var penalty int32
	for _, sq := range b.Pieces(c).Squares(board.Pawn) {
		if b.At(sq.Add(adv)) == pawn {
			penalty += e.Params.StackedPawn
		}
	}
	return penalty
}

func (e *Eval) connectedRooks(b *board.Board, c board.Color) int32 {
	rooks := b.Pieces(c).Squares(board.Rook)
	if len(rooks) != 2 {
		return 0
	}
	d := board.DirectionBetween(rooks[0], rooks[1])
	if d == 0 || d.Diagonal() {
		return -e.Params.DisconnectedRooks
	}
	sq := rooks[0].Add(d)
	for b.At(sq) == board.Empty {
		sq = sq.Add(d)
	}
	if sq == rooks[1] {
		return e.Params.ConnectedRooks
	}
	return -e.Params.DisconnectedRooks
}

func (e *Eval) sliderReach(b *board.Board, c board.Color) int32 {
	l := b.Pieces(c)
	var score int32
	for _, sq := range l.Squares(board.Bishop) {
		score += e.reach(b, sq, board.DiagonalDirections)
	}
	for _, sq := range l.Squares(board.Rook) {
		score += e.reach(b, sq, board.CardinalDirections)
	}
	for _, sq := range l.Squares(board.Queen) {
		score += e.reach(b, sq, board.DiagonalDirections) + e.reach(b, sq, board.CardinalDirections)
	}
	return score
}

func (e *Eval) reach(b *board.Board, sq board.Square, dirs [4]board.Direction) int32 {
	if b.IsPinned(sq) {
		return -e.Params.PinnedSlider
	}
	var n int32
	for _, d := range dirs {
		s := sq.Add(d)
		for b.At(s) == board.Empty {
			n++
			s = s.Add(d)
		}
		if b.At(s) != board.Invalid {
			n++
		}
	}
	return n * e.Params.SliderSquare
}

var pieceSquareTables = [16][64]int32{
	board.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	board.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	board.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	board.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	board.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}
