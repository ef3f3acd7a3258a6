package board

// Square is an index on a 16x8 board: the high nibble holds the rank and the
// low nibble the file. Every square with a bit of 0x88 set lies off the board.
type Square uint8

const (
	A1 Square = 0x00
	B1 Square = 0x01
	C1 Square = 0x02
	D1 Square = 0x03
	E1 Square = 0x04
	F1 Square = 0x05
	G1 Square = 0x06
	H1 Square = 0x07
	A8 Square = 0x70
	E8 Square = 0x74
	H8 Square = 0x77

	// NoSquare is never a valid square.
	NoSquare Square = 0x88
)

// NoFile marks a missing en-passant file.
const NoFile uint8 = 8

// NewSquare builds a square from zero-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank<<4 | file) }

// Valid reports whether sq lies on the board.
func (sq Square) Valid() bool { return sq&0x88 == 0 }

func (sq Square) File() int { return int(sq & 7) }

func (sq Square) Rank() int { return int(sq >> 4) }

// Compact converts to the 6-bit 0..63 encoding used by lookup tables.
func (sq Square) Compact() uint8 { return uint8(sq>>4)<<3 | uint8(sq&7) }

// SquareFromCompact is the inverse of Compact.
func SquareFromCompact(c uint8) Square { return Square((c>>3)<<4 | c&7) }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare reads a coordinate such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	f, r := s[0], s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, false
	}
	return NewSquare(int(f-'a'), int(r-'1')), true
}

// Add steps sq by a direction. The result wraps within a byte, so a single
// step off any edge always lands on an invalid square.
func (sq Square) Add(d Direction) Square { return Square(int(sq) + int(d)) }
