package board

import "fmt"

// DefaultPlateCapacity bounds the plate stack of boards built without
// caller-supplied storage: a long game plus a deep search.
const DefaultPlateCapacity = 1024

// MaxCaptures is the most pieces that can ever be off the board: every
// piece except the two kings.
const MaxCaptures = 30

// Board is a 0x88 mailbox kept in step with one piece list per side, a
// stack of irreversible state plates and a stack of captured pieces. All
// mutation goes through addPiece, removePiece and movePiece so that the
// mailbox, the lists, their index maps and the hash never drift apart.
type Board struct {
	squares  [256]Piece
	lists    [2]PieceList
	ply      uint16
	plates   []Plate
	captures [MaxCaptures]Piece
	ncapture uint8

	// Rook and king origins drive castling for both standard and shuffled
	// back ranks.
	rookOrigin [2][2]Square
	kingOrigin [2]Square
}

// New returns a board on the standard starting position. plates is the
// backing storage for the state stack; nil allocates DefaultPlateCapacity.
func New(plates []Plate) *Board {
	b := NewEmpty(plates)
	if err := b.SetFEN(FENStartPos); err != nil {
		panic(err)
	}
	return b
}

// NewEmpty returns a cleared board holding only the floor plate.
func NewEmpty(plates []Plate) *Board {
	Init()
	if plates == nil {
		plates = make([]Plate, 0, DefaultPlateCapacity)
	}
	b := &Board{plates: plates[:0]}
	b.Clear()
	return b
}

// Clear empties the board and leaves a single zeroed plate.
func (b *Board) Clear() {
	assert(tablesReady, "board.Init not called")
	for i := range b.squares {
		if Square(i).Valid() {
			b.squares[i] = Empty
		} else {
			b.squares[i] = Invalid
		}
	}
	b.lists[White].reset()
	b.lists[Black].reset()
	b.ply = 0
	b.ncapture = 0
	b.plates = append(b.plates[:0], Plate{EPFile: NoFile})
	b.rookOrigin = [2][2]Square{{H1, A1}, {H8, A8}}
	b.kingOrigin = [2]Square{E1, E8}
}

func (b *Board) top() *Plate { return &b.plates[len(b.plates)-1] }

// State returns the current plate.
func (b *Board) State() Plate { return *b.top() }

// Depth is the number of plates on the stack, floor included.
func (b *Board) Depth() int { return len(b.plates) }

func (b *Board) Ply() int { return int(b.ply) }

// SideToMove follows the parity of the ply counter.
func (b *Board) SideToMove() Color { return Color(b.ply & 1) }

func (b *Board) Hash() uint64 { return b.top().Hash }

func (b *Board) Castling() CastleRights { return b.top().Castle }

// EnPassantFile returns NoFile when no en-passant capture is available.
func (b *Board) EnPassantFile() uint8 { return b.top().EPFile }

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool { return b.top().NChecks > 0 }

// Checkers returns the pieces giving check to the side to move.
func (b *Board) Checkers() []Checker {
	pl := b.top()
	return pl.Checkers[:pl.NChecks]
}

// At returns the piece on sq, Invalid for off-board squares.
func (b *Board) At(sq Square) Piece { return b.squares[sq] }

// Mailbox returns a copy of the square array.
func (b *Board) Mailbox() [256]Piece { return b.squares }

// Pieces returns the piece list of side c. It must not be modified.
func (b *Board) Pieces(c Color) *PieceList { return &b.lists[c] }

// KingSquare returns NoSquare if the side has no king.
func (b *Board) KingSquare(c Color) Square {
	kings := b.lists[c].Squares(King)
	if len(kings) == 0 {
		return NoSquare
	}
	return kings[0]
}

// CapturedCount is the depth of the captured-piece stack.
func (b *Board) CapturedCount() int { return int(b.ncapture) }

// RookOrigin returns the starting square of the rook side c castles with.
func (b *Board) RookOrigin(c Color, cs CastleSide) Square { return b.rookOrigin[c][cs] }

func (b *Board) addPiece(p Piece, sq Square) {
	assert(b.squares[sq] == Empty, "add onto occupied square")
	b.squares[sq] = p
	b.lists[p.Color()].add(p.Kind(), sq)
	b.top().Hash ^= pieceKey(p, sq)
}

func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	assert(p.Occupied(), "remove from empty square")
	b.squares[sq] = Empty
	b.lists[p.Color()].remove(p.Kind(), sq)
	b.top().Hash ^= pieceKey(p, sq)
	return p
}

func (b *Board) movePiece(from, to Square) {
	p := b.squares[from]
	assert(p.Occupied() && b.squares[to] == Empty, "bad relocation")
	b.squares[from] = Empty
	b.squares[to] = p
	b.lists[p.Color()].move(p.Kind(), from, to)
	b.top().Hash ^= pieceKey(p, from) ^ pieceKey(p, to)
}

func (b *Board) pushCapture(p Piece) {
	assert(b.ncapture < MaxCaptures, "capture stack overflow")
	b.captures[b.ncapture] = p
	b.ncapture++
}

func (b *Board) popCapture() Piece {
	assert(b.ncapture > 0, "capture stack underflow")
	b.ncapture--
	return b.captures[b.ncapture]
}

func (b *Board) setCastle(r CastleRights) {
	pl := b.top()
	pl.Hash ^= castleKey(pl.Castle ^ r)
	pl.Castle = r
}

func (b *Board) setEPFile(file uint8) {
	pl := b.top()
	pl.Hash ^= epKey(pl.EPFile) ^ epKey(file)
	pl.EPFile = file
}

// Validate cross-checks the mailbox, the piece lists, their index maps, the
// incremental hash and the recorded checkers.
func (b *Board) Validate() error {
	seen := 0
	for c := White; c <= Black; c++ {
		l := &b.lists[c]
		for _, kind := range Kinds {
			p := MakePiece(c, kind)
			for slot, sq := range l.Squares(kind) {
				if !sq.Valid() {
					return fmt.Errorf("%c list holds invalid square %#x", p.Char(), uint8(sq))
				}
				if b.squares[sq] != p {
					return fmt.Errorf("list says %c on %v, mailbox has %c", p.Char(), sq, b.squares[sq].Char())
				}
				if int(l.index[sq]) != slot {
					return fmt.Errorf("index map for %v is %d, want %d", sq, l.index[sq], slot)
				}
				seen++
			}
		}
	}
	occupied := 0
	for i := range b.squares {
		sq := Square(i)
		switch {
		case !sq.Valid() && b.squares[i] != Invalid:
			return fmt.Errorf("border square %#x holds %#x", i, uint8(b.squares[i]))
		case sq.Valid() && b.squares[i].Occupied():
			occupied++
		}
	}
	if occupied != seen {
		return fmt.Errorf("mailbox has %d pieces, lists have %d", occupied, seen)
	}
	if got, want := b.Hash(), b.ComputeZobrist(); got != want {
		return fmt.Errorf("hash %016x, recomputed %016x", got, want)
	}
	fresh := b.scanCheckers()
	pl := b.top()
	if fresh.NChecks != pl.NChecks {
		return fmt.Errorf("recorded %d checkers, scan found %d", pl.NChecks, fresh.NChecks)
	}
	for i := uint8(0); i < fresh.NChecks; i++ {
		found := false
		for j := uint8(0); j < pl.NChecks; j++ {
			if pl.Checkers[j] == fresh.Checkers[i] {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("checker on %v not recorded", fresh.Checkers[i].Square)
		}
	}
	return nil
}

func (b *Board) mustValidate() {
	if err := b.Validate(); err != nil {
		panic("board: " + err.Error())
	}
}

// String draws the board with rank 8 at the top.
func (b *Board) String() string {
	buf := make([]byte, 0, 90)
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			buf = append(buf, b.squares[NewSquare(f, r)].Char())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// IsRepetition reports whether the current position already occurred since
// the last capture or pawn move. Only plates on the stack are consulted, so
// positions before the loaded FEN are unknown.
func (b *Board) IsRepetition() bool {
	top := len(b.plates) - 1
	pl := &b.plates[top]
	for i := top - 2; i >= 0 && top-i <= int(pl.Halfmove); i -= 2 {
		if b.plates[i].Hash == pl.Hash {
			return true
		}
	}
	return false
}
