package board

// MaxMoves bounds the pseudo-legal moves of any reachable position.
const MaxMoves = 256

// GenerateMoves appends every pseudo-legal move for the side to move to buf
// and returns the extended slice. Moves may leave the mover's king in check;
// filter with IsLegal. Order is pawns, knights, bishops, rooks, queens, king.
func (b *Board) GenerateMoves(buf []Move) []Move {
	return b.generate(buf, false)
}

// GenerateCaptures appends only the capturing moves: ordinary captures,
// en passant and capturing promotions.
func (b *Board) GenerateCaptures(buf []Move) []Move {
	return b.generate(buf, true)
}

func (b *Board) generate(buf []Move, capturesOnly bool) []Move {
	us := b.SideToMove()
	l := &b.lists[us]
	for _, sq := range l.Squares(Pawn) {
		buf = b.pawnMoves(buf, sq, us, capturesOnly)
	}
	for _, sq := range l.Squares(Knight) {
		buf = b.jumpMoves(buf, sq, us, KnightOffsets[:], capturesOnly)
	}
	for _, sq := range l.Squares(Bishop) {
		buf = b.slideMoves(buf, sq, us, DiagonalDirections[:], capturesOnly)
	}
	for _, sq := range l.Squares(Rook) {
		buf = b.slideMoves(buf, sq, us, CardinalDirections[:], capturesOnly)
	}
	for _, sq := range l.Squares(Queen) {
		buf = b.slideMoves(buf, sq, us, DiagonalDirections[:], capturesOnly)
		buf = b.slideMoves(buf, sq, us, CardinalDirections[:], capturesOnly)
	}
	for _, sq := range l.Squares(King) {
		buf = b.jumpMoves(buf, sq, us, KingOffsets[:], capturesOnly)
		if !capturesOnly {
			buf = b.castleMoves(buf, sq, us)
		}
	}
	return buf
}

func (b *Board) jumpMoves(buf []Move, from Square, us Color, offsets []Direction, capturesOnly bool) []Move {
	them := us.Other()
	for _, d := range offsets {
		to := from.Add(d)
		p := b.squares[to]
		switch {
		case p == Empty && !capturesOnly:
			buf = append(buf, NewMove(from, to, TagNone))
		case p.Is(them):
			buf = append(buf, NewMove(from, to, TagNone))
		}
	}
	return buf
}

func (b *Board) slideMoves(buf []Move, from Square, us Color, dirs []Direction, capturesOnly bool) []Move {
	them := us.Other()
	for _, d := range dirs {
		to := from.Add(d)
		for b.squares[to] == Empty {
			if !capturesOnly {
				buf = append(buf, NewMove(from, to, TagNone))
			}
			to = to.Add(d)
		}
		if b.squares[to].Is(them) {
			buf = append(buf, NewMove(from, to, TagNone))
		}
	}
	return buf
}

var (
	pawnHomeRank    = [2]int{1, 6}
	pawnPromoteRank = [2]int{7, 0}
	pawnEPRank      = [2]int{4, 3}
)

func (b *Board) pawnMoves(buf []Move, from Square, us Color, capturesOnly bool) []Move {
	them := us.Other()
	adv := pawnAdvance[us]
	promotes := from.Add(adv).Rank() == pawnPromoteRank[us]

	for _, side := range [2]Direction{Left, Right} {
		to := from.Add(adv + side)
		if b.squares[to].Is(them) {
			if promotes {
				buf = appendPromotions(buf, from, to, true)
			} else {
				buf = append(buf, NewMove(from, to, TagNone))
			}
		}
	}

	if ep := b.top().EPFile; ep != NoFile && from.Rank() == pawnEPRank[us] {
		if df := int(ep) - from.File(); df == 1 || df == -1 {
			buf = append(buf, NewMove(from, NewSquare(int(ep), from.Rank()).Add(adv), TagEnPassant))
		}
	}

	if capturesOnly {
		return buf
	}
	to := from.Add(adv)
	if b.squares[to] != Empty {
		return buf
	}
	if promotes {
		return appendPromotions(buf, from, to, false)
	}
	buf = append(buf, NewMove(from, to, TagNone))
	if from.Rank() == pawnHomeRank[us] {
		if two := to.Add(adv); b.squares[two] == Empty {
			buf = append(buf, NewMove(from, two, TagDoublePush))
		}
	}
	return buf
}

func appendPromotions(buf []Move, from, to Square, capture bool) []Move {
	for _, kind := range promotionKinds {
		buf = append(buf, NewMove(from, to, PromotionTag(kind, capture)))
	}
	return buf
}

func (b *Board) castleMoves(buf []Move, from Square, us Color) []Move {
	rights := b.top().Castle
	if rights&sideRights(us) == 0 || from != b.kingOrigin[us] {
		return buf
	}
	for _, cs := range [2]CastleSide{Kingside, Queenside} {
		if !rights.Has(us, cs) || !b.castlePathClear(us, cs) {
			continue
		}
		tag := TagCastleKingside
		if cs == Queenside {
			tag = TagCastleQueen
		}
		buf = append(buf, NewMove(from, kingDestination(us, cs), tag))
	}
	return buf
}
