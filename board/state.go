package board

// CastleRights holds one bit per side and castling direction.
type CastleRights uint8

const (
	CastleWhiteKingside CastleRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside

	NoCastle CastleRights = 0
)

// CastleSide selects the direction of a castle: towards the h-file rook or
// towards the a-file rook.
type CastleSide uint8

const (
	Kingside  CastleSide = 0
	Queenside CastleSide = 1
)

// castleRight returns the single bit for a side and direction.
func castleRight(c Color, cs CastleSide) CastleRights {
	return CastleWhiteKingside << (uint(c)*2 + uint(cs))
}

func sideRights(c Color) CastleRights {
	return castleRight(c, Kingside) | castleRight(c, Queenside)
}

// Has reports whether side c may still castle in direction cs.
func (r CastleRights) Has(c Color, cs CastleSide) bool { return r&castleRight(c, cs) != 0 }

// Checker describes one piece giving check. Dir is zero for pawns and
// knights; for sliders it is the step leading from the checker to the king.
type Checker struct {
	Square Square
	Dir    Direction
}

// Sliding reports whether the check runs along a ray.
func (c Checker) Sliding() bool { return c.Dir != 0 }

// Plate is the part of the position that cannot be recovered by reversing a
// move. One plate is pushed per make and popped per unmake.
type Plate struct {
	Castle   CastleRights
	EPFile   uint8
	Checkers [2]Checker
	NChecks  uint8
	Captured bool
	Halfmove uint16
	Hash     uint64
}

// InCheck reports whether at least one checker is recorded.
func (p *Plate) InCheck() bool { return p.NChecks > 0 }

func (p *Plate) addChecker(c Checker) {
	for i := uint8(0); i < p.NChecks; i++ {
		if p.Checkers[i].Square == c.Square {
			return
		}
	}
	if p.NChecks < 2 {
		p.Checkers[p.NChecks] = c
		p.NChecks++
	}
}
