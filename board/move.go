package board

import (
	"strings"
)

// Move packs two compact squares and a tag into 16 bits.
type Move uint16

// Tag distinguishes the special moves. Values with tagPromote set are
// promotions; for those the low two bits select the piece and tagCapture
// marks a capturing promotion.
type Tag uint8

const (
	TagNone           Tag = 0
	TagEnPassant      Tag = 1
	TagDoublePush     Tag = 2
	TagCastleKingside Tag = 3
	TagCastleQueen    Tag = 4

	tagCapture Tag = 0x4
	tagPromote Tag = 0x8

	TagPromoteKnight Tag = tagPromote | 0
	TagPromoteBishop Tag = tagPromote | 1
	TagPromoteRook   Tag = tagPromote | 2
	TagPromoteQueen  Tag = tagPromote | 3
)

const (
	moveToShift  = 6
	moveTagShift = 12
)

// NullMove is the zero move; a1a1 can never be generated.
const NullMove Move = 0

var promotionKinds = [4]Piece{Knight, Bishop, Rook, Queen}

// NewMove builds a move from its parts.
func NewMove(from, to Square, tag Tag) Move {
	return Move(uint16(from.Compact()) | uint16(to.Compact())<<moveToShift | uint16(tag)<<moveTagShift)
}

// PromotionTag returns the tag promoting to kind, optionally capturing.
func PromotionTag(kind Piece, capture bool) Tag {
	var t Tag
	switch kind {
	case Knight:
		t = TagPromoteKnight
	case Bishop:
		t = TagPromoteBishop
	case Rook:
		t = TagPromoteRook
	default:
		t = TagPromoteQueen
	}
	if capture {
		t |= tagCapture
	}
	return t
}

func (m Move) From() Square { return SquareFromCompact(uint8(m & 0x3F)) }

func (m Move) To() Square { return SquareFromCompact(uint8(m>>moveToShift) & 0x3F) }

func (m Move) Tag() Tag { return Tag(m >> moveTagShift) }

func (m Move) IsPromotion() bool { return m.Tag()&tagPromote != 0 }

// IsPromotionCapture is only set on promotions that take a piece.
func (m Move) IsPromotionCapture() bool {
	t := m.Tag()
	return t&tagPromote != 0 && t&tagCapture != 0
}

// Promotion returns the kind a pawn becomes, or Empty.
func (m Move) Promotion() Piece {
	if !m.IsPromotion() {
		return Empty
	}
	return promotionKinds[m.Tag()&3]
}

func (m Move) IsCastle() bool {
	t := m.Tag()
	return t == TagCastleKingside || t == TagCastleQueen
}

// CastleSide is only meaningful for castle moves.
func (m Move) CastleSide() CastleSide {
	if m.Tag() == TagCastleQueen {
		return Queenside
	}
	return Kingside
}

func (m Move) IsEnPassant() bool { return m.Tag() == TagEnPassant }

// String renders coordinate notation: "e2e4", "e7e8q". Castles are written
// as the king's origin and destination; Board.MoveText disambiguates them
// on shuffled back ranks.
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteByte(MakePiece(Black, m.Promotion()).Char())
	}
	return sb.String()
}
