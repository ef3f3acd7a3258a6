package board

var backRank = [2]int{0, 7}

func kingDestination(c Color, cs CastleSide) Square {
	if cs == Kingside {
		return NewSquare(6, backRank[c])
	}
	return NewSquare(2, backRank[c])
}

func rookDestination(c Color, cs CastleSide) Square {
	if cs == Kingside {
		return NewSquare(5, backRank[c])
	}
	return NewSquare(3, backRank[c])
}

// castlePathClear reports whether every square the king and rook cross or
// land on is empty, ignoring the two castling pieces themselves.
func (b *Board) castlePathClear(c Color, cs CastleSide) bool {
	kFrom := b.KingSquare(c)
	rFrom := b.rookOrigin[c][cs]
	kTo, rTo := kingDestination(c, cs), rookDestination(c, cs)
	lo, hi := kFrom, kFrom
	for _, sq := range [3]Square{rFrom, kTo, rTo} {
		if sq < lo {
			lo = sq
		}
		if sq > hi {
			hi = sq
		}
	}
	for sq := lo; sq <= hi; sq++ {
		if sq != kFrom && sq != rFrom && b.squares[sq] != Empty {
			return false
		}
	}
	return true
}

// castle relocates king and rook. Both are lifted before either is placed
// because on a shuffled back rank a destination may be the other's origin.
func (b *Board) castle(c Color, cs CastleSide) {
	king := b.removePiece(b.KingSquare(c))
	rook := b.removePiece(b.rookOrigin[c][cs])
	b.addPiece(king, kingDestination(c, cs))
	b.addPiece(rook, rookDestination(c, cs))
}

func (b *Board) uncastle(c Color, cs CastleSide) {
	king := b.removePiece(kingDestination(c, cs))
	rook := b.removePiece(rookDestination(c, cs))
	b.addPiece(king, b.kingOrigin[c])
	b.addPiece(rook, b.rookOrigin[c][cs])
}

// castleLegal checks that the king is not in check and that no square on the
// king's path, destination included, is attacked. King and rook are lifted
// off the mailbox for the test so neither shields a square it is leaving.
func (b *Board) castleLegal(m Move) bool {
	if b.InCheck() {
		return false
	}
	us := b.SideToMove()
	them := us.Other()
	cs := m.CastleSide()
	kFrom, kTo := m.From(), m.To()
	rFrom := b.rookOrigin[us][cs]

	king, rook := b.squares[kFrom], b.squares[rFrom]
	b.squares[kFrom], b.squares[rFrom] = Empty, Empty
	defer func() {
		b.squares[kFrom], b.squares[rFrom] = king, rook
	}()

	step := Right
	if kTo < kFrom {
		step = Left
	}
	for sq := kFrom; ; sq = sq.Add(step) {
		if sq != kFrom && b.Attacked(sq, them) {
			return false
		}
		if sq == kTo {
			return true
		}
	}
}
