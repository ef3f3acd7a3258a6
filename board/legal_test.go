package board

import "testing"

func TestEnPassantDiscoveredCheck(t *testing.T) {
	b := mustFEN(t, "rnbq1bnr/pp1pkppp/8/1Pp1p3/8/B7/P1PPPPPP/RN1QKBNR w KQ-- c6 0 1")
	m := mustMove(t, b, "b5c6")
	if !m.IsEnPassant() {
		t.Fatalf("b5c6 should be en passant, tag %d", m.Tag())
	}
	b.MakeMove(m)
	checkers := b.Checkers()
	if len(checkers) != 1 {
		t.Fatalf("checkers: got %d want 1", len(checkers))
	}
	c := checkers[0]
	if !c.Sliding() || c.Square != NewSquare(0, 2) || c.Dir != UpRight {
		t.Fatalf("checker: got %+v want sliding from a3", c)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestPinnedEnPassantIllegal(t *testing.T) {
	b := mustFEN(t, "k7/8/8/r2pPK2/8/8/8/8 w - d6 0 1")
	m := NewMove(NewSquare(4, 4), NewSquare(3, 5), TagEnPassant)
	if b.IsLegal(m) {
		t.Fatalf("e5d6 exposes the king along the fifth rank")
	}
	if b.IsLegalSlow(m) {
		t.Fatalf("slow check disagrees: e5d6 must be illegal")
	}
	if _, err := b.ParseMove("e5d6"); err == nil {
		t.Fatalf("ParseMove accepted an illegal en passant")
	}
}

func TestKingEscapesDiagonalCheck(t *testing.T) {
	b := mustFEN(t, "rnbqkbnr/pp1ppppp/8/2p5/5P2/3P4/PPP1P1PP/RNBQKBNR b KQkq - 0 1")
	b.MakeMove(mustMove(t, b, "d8a5"))
	if !b.InCheck() {
		t.Fatalf("Qa5 should give check")
	}
	if _, err := b.ParseMove("e1f2"); err != nil {
		t.Fatalf("e1f2 should be legal: %v", err)
	}
}

func TestKingCannotStayOnCheckingRay(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	if !b.InCheck() {
		t.Fatalf("rook on a1 should check the king on e1")
	}
	for _, text := range []string{"e1f1", "e1d1"} {
		m := NewMove(E1, mustSquare(t, text[2:]), TagNone)
		if b.IsLegal(m) {
			t.Fatalf("%s keeps the king on the checking rank", text)
		}
	}
	for _, text := range []string{"e1e2", "e1d2", "e1f2"} {
		if _, err := b.ParseMove(text); err != nil {
			t.Fatalf("%s should be legal: %v", text, err)
		}
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Nf6+ uncovers the rook on e1: knight and rook both check.
	b := mustFEN(t, "3qk3/8/8/8/4N3/8/8/3QR1K1 w - - 0 1")
	b.MakeMove(mustMove(t, b, "e4f6"))
	if got := len(b.Checkers()); got != 2 {
		t.Fatalf("checkers: got %d want 2", got)
	}
	var buf [MaxMoves]Move
	for _, m := range b.LegalMoves(buf[:0]) {
		if m.From() != E8 {
			t.Fatalf("non-king move %v legal under double check", m)
		}
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestAbsolutePin(t *testing.T) {
	b := mustFEN(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	bishop := NewSquare(4, 1)
	if !b.IsPinned(bishop) {
		t.Fatalf("bishop on e2 should be pinned")
	}
	var buf [MaxMoves]Move
	for _, m := range b.LegalMoves(buf[:0]) {
		if m.From() == bishop {
			t.Fatalf("pinned bishop move %v reported legal", m)
		}
	}

	b = mustFEN(t, "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1")
	for _, text := range []string{"e2e7", "e2e5", "e2e3"} {
		if _, err := b.ParseMove(text); err != nil {
			t.Fatalf("pinned rook %s along the pin should be legal: %v", text, err)
		}
	}
	if _, err := b.ParseMove("e2d2"); err == nil {
		t.Fatalf("pinned rook left the pin line")
	}
}

func TestCastleThroughCheck(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1")
	if b.InCheck() {
		t.Fatalf("king on e1 is not in check")
	}
	if _, err := b.ParseMove("e1g1"); err == nil {
		t.Fatalf("castling through f1 attacked by the f2 rook accepted")
	}
	if _, err := b.ParseMove("e1c1"); err != nil {
		t.Fatalf("queenside castle should be legal: %v", err)
	}

	b = mustFEN(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	b.MakeMove(mustMove(t, b, "e1g1"))
	if b.At(G1) != MakePiece(White, King) || b.At(F1) != MakePiece(White, Rook) || b.At(H1) != Empty {
		t.Fatalf("castle placed pieces wrong:\n%s", b)
	}
	if b.Castling() != NoCastle {
		t.Fatalf("castle rights after castling: %04b", b.Castling())
	}
}

func TestIncrementalLegalityMatchesSlow(t *testing.T) {
	for _, fen := range oracleFENs {
		b := mustFEN(t, fen)
		walkLegality(t, b, 3)
	}
}

func walkLegality(t *testing.T, b *Board, depth int) {
	t.Helper()
	var buf [MaxMoves]Move
	for _, m := range b.GenerateMoves(buf[:0]) {
		fast, slow := b.IsLegal(m), b.IsLegalSlow(m)
		if fast != slow {
			t.Fatalf("%s: %v legal=%v, slow check says %v", b.FEN(), m, fast, slow)
		}
		if !fast || depth == 1 {
			continue
		}
		b.MakeMove(m)
		walkLegality(t, b, depth-1)
		b.UnmakeMove(m)
	}
}

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, ok := ParseSquare(s)
	if !ok {
		t.Fatalf("bad square %q", s)
	}
	return sq
}

func TestShuffledCastleNotation(t *testing.T) {
	b := mustFEN(t, shuffledCastleFEN)
	cases := []struct {
		text   string
		castle bool
		side   CastleSide
	}{
		{"b1a1", true, Queenside},
		{"b1h1", true, Kingside},
		{"b1c1", false, Kingside},
	}
	for _, c := range cases {
		m, err := b.ParseMove(c.text)
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", c.text, err)
		}
		if m.IsCastle() != c.castle {
			t.Fatalf("%s: castle got %v want %v", c.text, m.IsCastle(), c.castle)
		}
		if c.castle && m.CastleSide() != c.side {
			t.Fatalf("%s: side got %v want %v", c.text, m.CastleSide(), c.side)
		}
		if got := b.MoveText(m); got != c.text {
			t.Fatalf("MoveText: got %s want %s", got, c.text)
		}
	}

	std := New(nil)
	if err := std.ApplyMoves([]string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	m := mustMove(t, std, "e1g1")
	if !m.IsCastle() || std.MoveText(m) != "e1g1" {
		t.Fatalf("standard castle text: got %s castle %v", std.MoveText(m), m.IsCastle())
	}
}
