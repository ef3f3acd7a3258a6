package board

// Piece packs colour and kind into one byte. The kind bits are laid out so
// that Bishop and Rook are single-bit masks and Queen is their union, which
// makes "slides diagonally" and "slides along a rank or file" one AND each.
type Piece uint8

const (
	Empty  Piece = 0
	Pawn   Piece = 1
	Knight Piece = 2
	King   Piece = 3
	Bishop Piece = 4
	Rook   Piece = 8
	Queen  Piece = Bishop | Rook

	WhitePiece Piece = 0x20
	BlackPiece Piece = 0x40

	// Invalid fills every off-board square of the mailbox so that ray walks
	// stop on the border without a range check.
	Invalid Piece = 0x80

	kindMask  Piece = 0x0F
	colorMask Piece = WhitePiece | BlackPiece
)

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

var colorBits = [2]Piece{WhitePiece, BlackPiece}

// MakePiece combines a colour and a kind.
func MakePiece(c Color, kind Piece) Piece { return colorBits[c] | kind }

func (p Piece) Kind() Piece { return p & kindMask }

// Color is only meaningful for occupied squares.
func (p Piece) Color() Color {
	if p&BlackPiece != 0 {
		return Black
	}
	return White
}

// Is reports whether p belongs to side c.
func (p Piece) Is(c Color) bool { return p&colorBits[c] != 0 }

// Occupied is true for a real piece of either side.
func (p Piece) Occupied() bool { return p&colorMask != 0 }

func (p Piece) Diagonal() bool { return p&colorMask != 0 && p&Bishop != 0 }

func (p Piece) Cardinal() bool { return p&colorMask != 0 && p&Rook != 0 }

var pieceChars = map[Piece]byte{
	Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k',
}

// Char returns the FEN letter, upper case for white.
func (p Piece) Char() byte {
	c, ok := pieceChars[p.Kind()]
	if !ok || !p.Occupied() {
		return '.'
	}
	if p.Is(White) {
		return c - 'a' + 'A'
	}
	return c
}

func pieceFromChar(ch byte) (Piece, bool) {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch = ch - 'a' + 'A'
	}
	switch ch {
	case 'P':
		return MakePiece(color, Pawn), true
	case 'N':
		return MakePiece(color, Knight), true
	case 'B':
		return MakePiece(color, Bishop), true
	case 'R':
		return MakePiece(color, Rook), true
	case 'Q':
		return MakePiece(color, Queen), true
	case 'K':
		return MakePiece(color, King), true
	}
	return Empty, false
}

// kindSlot maps a kind onto its piece-list index: pawn, knight, bishop, rook,
// queen, king.
var kindSlot = [16]uint8{Pawn: 0, Knight: 1, Bishop: 2, Rook: 3, Queen: 4, King: 5}

// Kinds lists piece kinds in generation order.
var Kinds = [6]Piece{Pawn, Knight, Bishop, Rook, Queen, King}
