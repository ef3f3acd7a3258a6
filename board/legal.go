package board

// IsLegal reports whether a pseudo-legal move for the side to move leaves
// its own king safe. It relies on the checkers recorded for this ply and
// only examines the lines through the king.
func (b *Board) IsLegal(m Move) bool {
	us := b.SideToMove()
	from, to := m.From(), m.To()
	ksq := b.KingSquare(us)
	if m.IsCastle() {
		return b.castleLegal(m)
	}
	if from == ksq {
		return b.kingMoveLegal(from, to)
	}
	pl := b.top()
	if pl.NChecks == 2 {
		return false
	}
	if pl.NChecks == 1 && !b.resolvesCheck(m, pl.Checkers[0], ksq) {
		return false
	}
	if m.IsEnPassant() {
		return b.enPassantLegal(m, ksq)
	}
	return !b.breaksPin(from, to, ksq)
}

// kingMoveLegal lifts the king off the mailbox so that a slider checking
// along a line also covers the square behind the king.
func (b *Board) kingMoveLegal(from, to Square) bool {
	pl := b.top()
	for i := uint8(0); i < pl.NChecks; i++ {
		c := pl.Checkers[i]
		if c.Sliding() && to == from.Add(c.Dir) {
			return false
		}
	}
	them := b.SideToMove().Other()
	king := b.squares[from]
	b.squares[from] = Empty
	attacked := b.Attacked(to, them)
	b.squares[from] = king
	return !attacked
}

// resolvesCheck reports whether m captures the single checker or blocks its
// line to the king.
func (b *Board) resolvesCheck(m Move, c Checker, ksq Square) bool {
	to := m.To()
	if to == c.Square {
		return true
	}
	if m.IsEnPassant() && to.Add(-pawnAdvance[b.SideToMove()]) == c.Square {
		return true
	}
	if !c.Sliding() {
		return false
	}
	for sq := c.Square.Add(c.Dir); sq != ksq; sq = sq.Add(c.Dir) {
		if sq == to {
			return true
		}
	}
	return false
}

// breaksPin reports whether the piece on from is absolutely pinned against
// the king and the move leaves the pin line.
func (b *Board) breaksPin(from, to, ksq Square) bool {
	mask := sliderMask(ksq, from)
	if mask == Empty {
		return false
	}
	d := DirectionBetween(ksq, from)
	if b.firstSquareOnRay(ksq, d) != from {
		return false
	}
	p := b.firstOnRay(from, d)
	if !p.Is(b.SideToMove().Other()) || p&mask == 0 {
		return false
	}
	return DirectionBetween(ksq, to) != d
}

// IsPinned reports whether the piece on sq is absolutely pinned to its own
// king.
func (b *Board) IsPinned(sq Square) bool {
	p := b.squares[sq]
	if !p.Occupied() || p.Kind() == King {
		return false
	}
	c := p.Color()
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	mask := sliderMask(ksq, sq)
	if mask == Empty {
		return false
	}
	d := DirectionBetween(ksq, sq)
	if b.firstSquareOnRay(ksq, d) != sq {
		return false
	}
	q := b.firstOnRay(sq, d)
	return q.Is(c.Other()) && q&mask != 0
}

// enPassantLegal removes both pawns from the mailbox and asks whether the
// king is attacked. That covers ordinary pins as well as a rank along which
// the two pawns were the only blockers.
func (b *Board) enPassantLegal(m Move, ksq Square) bool {
	us := b.SideToMove()
	from, to := m.From(), m.To()
	victim := to.Add(-pawnAdvance[us])
	pawn, captured := b.squares[from], b.squares[victim]
	b.squares[from], b.squares[victim], b.squares[to] = Empty, Empty, pawn
	attacked := b.Attacked(ksq, us.Other())
	b.squares[from], b.squares[victim], b.squares[to] = pawn, captured, Empty
	return !attacked
}

// IsLegalSlow makes the move and tests the mover's king directly. It is the
// reference the incremental analyzer is checked against.
func (b *Board) IsLegalSlow(m Move) bool {
	us := b.SideToMove()
	if m.IsCastle() {
		return b.castleLegal(m)
	}
	b.MakeMove(m)
	safe := !b.Attacked(b.KingSquare(us), us.Other())
	b.UnmakeMove(m)
	return safe
}

// LegalMoves appends the legal moves of the side to move to buf.
func (b *Board) LegalMoves(buf []Move) []Move {
	start := len(buf)
	buf = b.GenerateMoves(buf)
	n := start
	for _, m := range buf[start:] {
		if b.IsLegal(m) {
			buf[n] = m
			n++
		}
	}
	return buf[:n]
}
