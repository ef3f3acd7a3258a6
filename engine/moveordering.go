package engine

import (
	"github.com/Solid-State-Chess/max-sub000/board"
)

type move struct {
	move  board.Move
	score int32
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva = [16][16]int32{
	board.Pawn:   {board.Pawn: 15, board.Knight: 14, board.Bishop: 13, board.Rook: 12, board.Queen: 11, board.King: 10},
	board.Knight: {board.Pawn: 25, board.Knight: 24, board.Bishop: 23, board.Rook: 22, board.Queen: 21, board.King: 20},
	board.Bishop: {board.Pawn: 35, board.Knight: 34, board.Bishop: 33, board.Rook: 32, board.Queen: 31, board.King: 30},
	board.Rook:   {board.Pawn: 45, board.Knight: 44, board.Bishop: 43, board.Rook: 42, board.Queen: 41, board.King: 40},
	board.Queen:  {board.Pawn: 55, board.Knight: 54, board.Bishop: 53, board.Rook: 52, board.Queen: 51, board.King: 50},
}

/*
	Move ordering offsets.
	- The transposition table move goes first; it is the best move found by the previous
	  iteration or a refutation found elsewhere in the tree.
	- Promotions next, then captures that do not lose material by SEE, sorted by MVV-LVA.
	- Killers come before the remaining quiet moves, which are ordered by history score.
	- Captures that lose material by SEE go last, below the quiet moves.
*/
const (
	ttMoveOffset    int32 = 30000
	promotionOffset int32 = 20000
	captureOffset   int32 = 15000
	killerOffset    int32 = 2000
)

// scoreMoves writes an ordering score for every move into list.
func (s *Searcher) scoreMoves(b *board.Board, moves []board.Move, list []move, ttMove board.Move, ply int) []move {
	us := b.SideToMove()
	them := us.Other()
	killers := &s.killers.KillerMoves[ply]
	for _, m := range moves {
		var score int32
		victim := b.At(m.To())
		capture := victim.Is(them) || m.IsEnPassant()
		switch {
		case m == ttMove:
			score = ttMoveOffset
		case m.IsPromotion():
			score = promotionOffset + int32(SeePieceValue[m.Promotion()])
		case capture:
			kind := victim.Kind()
			if m.IsEnPassant() {
				kind = board.Pawn
			}
			if gain := see(b, m); gain < 0 {
				score = int32(gain)
			} else {
				score = captureOffset + mvvLva[kind][b.At(m.From()).Kind()]
			}
		case m == killers[0]:
			score = killerOffset + 200
		case m == killers[1]:
			score = killerOffset
		default:
			score = s.history.score(us, m)
		}
		list = append(list, move{move: m, score: score})
	}
	return list
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves []move) {
	bestIndex := currIndex
	bestScore := moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves); index++ {
		if moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves[index].score
		}
	}

	moves[currIndex], moves[bestIndex] = moves[bestIndex], moves[currIndex]
}

func isQuiet(b *board.Board, m board.Move) bool {
	return !m.IsPromotion() && !m.IsEnPassant() && !b.At(m.To()).Is(b.SideToMove().Other())
}
