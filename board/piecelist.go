package board

// Per-kind capacities: eight pawns, up to ten knights, bishops or rooks and
// nine queens after promotion, exactly one king.
var kindCapacity = [6]uint8{8, 10, 10, 10, 9, 1}

const maxKindCapacity = 10

// PieceList holds the squares of one side's pieces, grouped by kind. index
// maps an occupied square back to its slot in the owning kind list.
type PieceList struct {
	squares [6][maxKindCapacity]Square
	count   [6]uint8
	index   [128]uint8
}

// Squares returns the occupied squares of one kind. The slice aliases the
// list and is only valid until the next board mutation.
func (l *PieceList) Squares(kind Piece) []Square {
	k := kindSlot[kind]
	return l.squares[k][:l.count[k]]
}

// Count returns how many pieces of kind the side owns.
func (l *PieceList) Count(kind Piece) int { return int(l.count[kindSlot[kind]]) }

// Total returns the number of pieces of every kind.
func (l *PieceList) Total() int {
	n := 0
	for _, c := range l.count {
		n += int(c)
	}
	return n
}

func (l *PieceList) full(kind Piece) bool {
	k := kindSlot[kind]
	return l.count[k] >= kindCapacity[k]
}

func (l *PieceList) add(kind Piece, sq Square) {
	k := kindSlot[kind]
	assert(l.count[k] < kindCapacity[k], "piece list overflow")
	slot := l.count[k]
	l.squares[k][slot] = sq
	l.index[sq] = slot
	l.count[k]++
}

// remove swaps the last entry of the kind list into the vacated slot.
func (l *PieceList) remove(kind Piece, sq Square) {
	k := kindSlot[kind]
	slot := l.index[sq]
	assert(l.count[k] > 0 && l.squares[k][slot] == sq, "piece list out of sync")
	last := l.count[k] - 1
	moved := l.squares[k][last]
	l.squares[k][slot] = moved
	l.index[moved] = slot
	l.count[k] = last
}

func (l *PieceList) move(kind Piece, from, to Square) {
	k := kindSlot[kind]
	slot := l.index[from]
	l.squares[k][slot] = to
	l.index[to] = slot
}

func (l *PieceList) reset() {
	l.count = [6]uint8{}
}
