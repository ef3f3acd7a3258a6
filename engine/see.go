package engine

import (
	"github.com/Solid-State-Chess/max-sub000/board"
)

var SeePieceValue = [16]int{
	board.King:   5000,
	board.Pawn:   100,
	board.Knight: 300,
	board.Bishop: 300,
	board.Rook:   500,
	board.Queen:  900}

// see runs the swap algorithm for a capture on a private copy of the
// mailbox. Pieces are lifted as they capture, so sliders behind them are
// found on the next pass.
func see(b *board.Board, move board.Move) int {
	var gain [32]int
	squares := b.Mailbox()
	from, target := move.From(), move.To()

	victim := squares[target].Kind()
	if move.IsEnPassant() {
		victim = board.Pawn
		squares[target.Add(-board.PawnAdvance(b.SideToMove()))] = board.Empty
	}
	attacker := squares[from].Kind()
	squares[from] = board.Empty
	gain[0] = SeePieceValue[victim]

	side := b.SideToMove().Other()
	depth := 0
	for {
		depth++
		gain[depth] = SeePieceValue[attacker] - gain[depth-1]

		// Neither side can come out ahead by continuing.
		if max(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		sq, p := leastValuableAttacker(&squares, target, side)
		if p == board.Empty || depth == len(gain)-1 {
			break
		}
		squares[sq] = board.Empty
		attacker = p.Kind()
		side = side.Other()
	}

	for depth--; depth > 0; depth-- {
		gain[depth-1] = -max(-gain[depth-1], gain[depth])
	}
	return gain[0]
}

func leastValuableAttacker(squares *[256]board.Piece, target board.Square, side board.Color) (board.Square, board.Piece) {
	back := -board.PawnAdvance(side)
	pawn := board.MakePiece(side, board.Pawn)
	for _, d := range [2]board.Direction{back + board.Left, back + board.Right} {
		if sq := target.Add(d); squares[sq] == pawn {
			return sq, pawn
		}
	}

	knight := board.MakePiece(side, board.Knight)
	for _, d := range board.KnightOffsets {
		if sq := target.Add(d); squares[sq] == knight {
			return sq, knight
		}
	}

	queenSq := board.NoSquare
	queen := board.MakePiece(side, board.Queen)
	bishop := board.MakePiece(side, board.Bishop)
	for _, d := range board.DiagonalDirections {
		sq := firstOnRay(squares, target, d)
		switch squares[sq] {
		case bishop:
			return sq, bishop
		case queen:
			queenSq = sq
		}
	}
	rook := board.MakePiece(side, board.Rook)
	for _, d := range board.CardinalDirections {
		sq := firstOnRay(squares, target, d)
		switch squares[sq] {
		case rook:
			return sq, rook
		case queen:
			queenSq = sq
		}
	}
	if queenSq != board.NoSquare {
		return queenSq, queen
	}

	king := board.MakePiece(side, board.King)
	for _, d := range board.KingOffsets {
		if sq := target.Add(d); squares[sq] == king {
			return sq, king
		}
	}
	return board.NoSquare, board.Empty
}

func firstOnRay(squares *[256]board.Piece, sq board.Square, d board.Direction) board.Square {
	sq = sq.Add(d)
	for squares[sq] == board.Empty {
		sq = sq.Add(d)
	}
	return sq
}
