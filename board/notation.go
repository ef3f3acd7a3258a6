package board

import (
	"github.com/pkg/errors"
)

// ParseMove resolves coordinate notation ("e2e4", "a7a8q", "e1g1") against
// the legal moves of the current position. The MoveText of a move always
// resolves to that move; other spellings fall back to the first legal move
// with matching squares and promotion.
func (b *Board) ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return NullMove, errors.Wrapf(ErrBadMoveText, "%q", text)
	}
	from, ok1 := ParseSquare(text[0:2])
	to, ok2 := ParseSquare(text[2:4])
	if !ok1 || !ok2 {
		return NullMove, errors.Wrapf(ErrBadMoveText, "%q", text)
	}
	promo := Empty
	if len(text) == 5 {
		p, ok := pieceFromChar(text[4])
		if !ok || p.Kind() == Pawn || p.Kind() == King {
			return NullMove, errors.Wrapf(ErrBadMoveText, "%q", text)
		}
		promo = p.Kind()
	}
	var buf [MaxMoves]Move
	match := NullMove
	for _, m := range b.LegalMoves(buf[:0]) {
		if b.MoveText(m) == text {
			return m, nil
		}
		if match == NullMove && m.From() == from && m.To() == to && m.Promotion() == promo {
			match = m
		}
	}
	if match != NullMove {
		return match, nil
	}
	return NullMove, errors.Wrapf(ErrIllegalMove, "%s in %s", text, b.FEN())
}

// MoveText renders m in coordinate notation for the current position.
// Castles on a shuffled back rank are written king-takes-rook ("b1a1"),
// since the king's destination square can also be reached by a plain king
// move. Standard castles keep the king's destination ("e1g1").
func (b *Board) MoveText(m Move) string {
	if m.IsCastle() {
		c, cs := b.SideToMove(), m.CastleSide()
		if rook := b.rookOrigin[c][cs]; b.shuffledCastle(c, cs) {
			return m.From().String() + rook.String()
		}
	}
	return m.String()
}

func (b *Board) shuffledCastle(c Color, cs CastleSide) bool {
	corner := NewSquare(7, backRank[c])
	if cs == Queenside {
		corner = NewSquare(0, backRank[c])
	}
	return b.kingOrigin[c] != NewSquare(4, backRank[c]) || b.rookOrigin[c][cs] != corner
}

// ApplyMoves plays a sequence of coordinate moves. On error the moves that
// were already played stay on the board.
func (b *Board) ApplyMoves(moves []string) error {
	for i, text := range moves {
		m, err := b.ParseMove(text)
		if err != nil {
			return errors.Wrapf(err, "move %d", i+1)
		}
		b.MakeMove(m)
	}
	return nil
}
