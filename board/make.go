package board

// MakeMove plays a pseudo-legal move. No legality check is done here; the
// caller filters with IsLegal or accepts pseudo-legal semantics.
func (b *Board) MakeMove(m Move) {
	us := b.SideToMove()
	them := us.Other()
	from, to := m.From(), m.To()

	assert(len(b.plates) < cap(b.plates), "plate stack full")
	prev := b.top()
	b.plates = append(b.plates, Plate{
		Castle:   prev.Castle,
		EPFile:   NoFile,
		Halfmove: prev.Halfmove + 1,
		Hash:     prev.Hash ^ epKey(prev.EPFile) ^ zobristSide,
	})
	pl := b.top()

	moving := b.squares[from]
	rights := pl.Castle
	if moving.Kind() == King {
		rights &^= sideRights(us)
	}
	for _, cs := range [2]CastleSide{Kingside, Queenside} {
		if from == b.rookOrigin[us][cs] {
			rights &^= castleRight(us, cs)
		}
		if to == b.rookOrigin[them][cs] {
			rights &^= castleRight(them, cs)
		}
	}
	if rights != pl.Castle {
		b.setCastle(rights)
	}

	switch {
	case m.IsCastle():
		b.castle(us, m.CastleSide())
	case m.IsEnPassant():
		b.pushCapture(b.removePiece(to.Add(-pawnAdvance[us])))
		pl.Captured = true
		b.movePiece(from, to)
	default:
		if target := b.squares[to]; target != Empty {
			b.pushCapture(b.removePiece(to))
			pl.Captured = true
		}
		if m.IsPromotion() {
			b.removePiece(from)
			b.addPiece(MakePiece(us, m.Promotion()), to)
		} else {
			b.movePiece(from, to)
		}
		if m.Tag() == TagDoublePush {
			b.setEPFile(uint8(from.File()))
		}
	}
	if pl.Captured || moving.Kind() == Pawn {
		pl.Halfmove = 0
	}

	b.ply++
	b.updateCheckers(m)
	if debugAsserts {
		b.mustValidate()
	}
}

// UnmakeMove reverts the most recent MakeMove of m.
func (b *Board) UnmakeMove(m Move) {
	assert(len(b.plates) > 1, "unmake below the floor plate")
	b.ply--
	us := b.SideToMove()
	from, to := m.From(), m.To()
	pl := b.top()

	switch {
	case m.IsCastle():
		b.uncastle(us, m.CastleSide())
	case m.IsEnPassant():
		b.movePiece(to, from)
		b.addPiece(b.popCapture(), to.Add(-pawnAdvance[us]))
	default:
		if m.IsPromotion() {
			b.removePiece(to)
			b.addPiece(MakePiece(us, Pawn), from)
		} else {
			b.movePiece(to, from)
		}
		if pl.Captured {
			b.addPiece(b.popCapture(), to)
		}
	}

	b.plates = b.plates[:len(b.plates)-1]
	if debugAsserts {
		b.mustValidate()
	}
}
