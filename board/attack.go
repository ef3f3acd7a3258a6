package board

// Attacked reports whether side by attacks sq. Only the mailbox is read, so
// callers may lift pieces off the mailbox temporarily before asking.
func (b *Board) Attacked(sq Square, by Color) bool {
	pawn := MakePiece(by, Pawn)
	back := -pawnAdvance[by]
	if b.squares[sq.Add(back+Left)] == pawn || b.squares[sq.Add(back+Right)] == pawn {
		return true
	}
	knight := MakePiece(by, Knight)
	for _, d := range KnightOffsets {
		if b.squares[sq.Add(d)] == knight {
			return true
		}
	}
	king := MakePiece(by, King)
	for _, d := range KingOffsets {
		if b.squares[sq.Add(d)] == king {
			return true
		}
	}
	for _, d := range DiagonalDirections {
		if p := b.firstOnRay(sq, d); p.Is(by) && p.Diagonal() {
			return true
		}
	}
	for _, d := range CardinalDirections {
		if p := b.firstOnRay(sq, d); p.Is(by) && p.Cardinal() {
			return true
		}
	}
	return false
}

// firstOnRay walks from sq along d and returns the first non-empty code,
// which is Invalid when the ray runs off the board.
func (b *Board) firstOnRay(sq Square, d Direction) Piece {
	s := sq.Add(d)
	for b.squares[s] == Empty {
		s = s.Add(d)
	}
	return b.squares[s]
}

// firstSquareOnRay is firstOnRay returning the square instead.
func (b *Board) firstSquareOnRay(sq Square, d Direction) Square {
	s := sq.Add(d)
	for b.squares[s] == Empty {
		s = s.Add(d)
	}
	return s
}

// attacksFrom reports whether piece p standing on from attacks target. For
// sliders the returned direction steps from the attacker to the target.
func (b *Board) attacksFrom(p Piece, from, target Square) (Direction, bool) {
	idx := diffIndex(from, target)
	switch p.Kind() {
	case Pawn:
		adv := pawnAdvance[p.Color()]
		diff := Direction(int(target) - int(from))
		return 0, diff == adv+Left || diff == adv+Right
	case Knight:
		return 0, diffKnight[idx]
	case King:
		return 0, diffAdjacent[idx]
	}
	if p&diffSlider[idx] == 0 {
		return 0, false
	}
	d := diffDirection[idx]
	s := from.Add(d)
	for s != target {
		if b.squares[s] != Empty {
			return 0, false
		}
		s = s.Add(d)
	}
	return d, true
}

// scanCheckers finds every piece checking the side to move by walking the
// enemy piece lists. It is the slow counterpart of the incremental update.
func (b *Board) scanCheckers() Plate {
	var pl Plate
	us := b.SideToMove()
	them := us.Other()
	ksq := b.KingSquare(us)
	if ksq == NoSquare {
		return pl
	}
	l := &b.lists[them]
	for _, kind := range Kinds {
		p := MakePiece(them, kind)
		for _, sq := range l.Squares(kind) {
			if d, ok := b.attacksFrom(p, sq, ksq); ok {
				pl.addChecker(Checker{Square: sq, Dir: d})
			}
		}
	}
	return pl
}

// updateCheckers records the checks given by the move just made. Only the
// destination squares can give a direct check and only vacated squares can
// open a discovered one.
func (b *Board) updateCheckers(m Move) {
	pl := b.top()
	pl.NChecks = 0
	us := b.SideToMove()
	ksq := b.KingSquare(us)
	if ksq == NoSquare {
		return
	}
	them := us.Other()
	from, to := m.From(), m.To()

	b.directCheck(pl, to, ksq)
	vacated := [3]Square{from, NoSquare, NoSquare}
	switch {
	case m.IsCastle():
		cs := m.CastleSide()
		b.directCheck(pl, rookDestination(them, cs), ksq)
		vacated[1] = b.rookOrigin[them][cs]
	case m.IsEnPassant():
		vacated[1] = to.Add(-pawnAdvance[them])
	}
	for _, v := range vacated {
		if v != NoSquare {
			b.discoveredCheck(pl, v, ksq, them)
		}
	}
}

func (b *Board) directCheck(pl *Plate, sq, ksq Square) {
	p := b.squares[sq]
	if !p.Occupied() {
		return
	}
	if d, ok := b.attacksFrom(p, sq, ksq); ok {
		pl.addChecker(Checker{Square: sq, Dir: d})
	}
}

// discoveredCheck looks behind a vacated square, as seen from the king, for
// a slider of the side that just moved.
func (b *Board) discoveredCheck(pl *Plate, vacated, ksq Square, attacker Color) {
	mask := sliderMask(ksq, vacated)
	if mask == Empty {
		return
	}
	d := DirectionBetween(ksq, vacated)
	sq := b.firstSquareOnRay(ksq, d)
	p := b.squares[sq]
	if p.Is(attacker) && p&mask != 0 {
		pl.addChecker(Checker{Square: sq, Dir: -d})
	}
}
