package board

// ZobristSeed is the default seed for the key tables.
const ZobristSeed uint64 = 0x4D41585F5A4F4252

var (
	zobristPiece  [2][6][64]uint64
	zobristCastle [4]uint64
	zobristEP     [8]uint64
	zobristSide   uint64
)

// splitMix64 scrambles a small seed into a well mixed 64-bit state.
func splitMix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// xorshift64star is the key generator. Its state must never be zero.
type xorshift64star struct{ state uint64 }

func newKeyGenerator(seed uint64) *xorshift64star {
	s := splitMix64(seed)
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &xorshift64star{state: s}
}

func (g *xorshift64star) next() uint64 {
	g.state ^= g.state >> 12
	g.state ^= g.state << 25
	g.state ^= g.state >> 27
	return g.state * 0x2545F4914F6CDD1D
}

func initZobrist(seed uint64) {
	g := newKeyGenerator(seed)
	for c := 0; c < 2; c++ {
		for k := 0; k < 6; k++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][k][sq] = g.next()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = g.next()
	}
	for i := range zobristEP {
		zobristEP[i] = g.next()
	}
	zobristSide = g.next()
}

func pieceKey(p Piece, sq Square) uint64 {
	return zobristPiece[p.Color()][kindSlot[p.Kind()]][sq.Compact()]
}

// castleKey xors together the keys of every right set in r.
func castleKey(r CastleRights) uint64 {
	var key uint64
	for i := 0; i < 4; i++ {
		if r&(1<<i) != 0 {
			key ^= zobristCastle[i]
		}
	}
	return key
}

func epKey(file uint8) uint64 {
	if file == NoFile {
		return 0
	}
	return zobristEP[file]
}

// ComputeZobrist rebuilds the hash from scratch. Search never needs it; it
// exists to check the incrementally maintained value.
func (b *Board) ComputeZobrist() uint64 {
	assert(tablesReady, "board.Init not called")
	var key uint64
	for c := White; c <= Black; c++ {
		l := &b.lists[c]
		for _, kind := range Kinds {
			p := MakePiece(c, kind)
			for _, sq := range l.Squares(kind) {
				key ^= pieceKey(p, sq)
			}
		}
	}
	pl := b.top()
	key ^= castleKey(pl.Castle)
	key ^= epKey(pl.EPFile)
	if b.SideToMove() == Black {
		key ^= zobristSide
	}
	return key
}
