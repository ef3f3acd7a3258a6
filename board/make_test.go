package board

import (
	"sort"
	"testing"
)

type snapshot struct {
	squares  [256]Piece
	pieces   [2][6][]Square
	ply      int
	depth    int
	captured int
	plate    Plate
}

func takeSnapshot(b *Board) snapshot {
	s := snapshot{
		squares:  b.Mailbox(),
		ply:      b.Ply(),
		depth:    b.Depth(),
		captured: b.CapturedCount(),
		plate:    b.State(),
	}
	for c := White; c <= Black; c++ {
		for i, kind := range Kinds {
			sqs := append([]Square(nil), b.Pieces(c).Squares(kind)...)
			sort.Slice(sqs, func(a, b int) bool { return sqs[a] < sqs[b] })
			s.pieces[c][i] = sqs
		}
	}
	return s
}

func (s snapshot) diff(o snapshot) string {
	switch {
	case s.squares != o.squares:
		return "mailbox"
	case s.ply != o.ply:
		return "ply"
	case s.depth != o.depth:
		return "plate depth"
	case s.captured != o.captured:
		return "capture stack"
	case s.plate != o.plate:
		return "plate"
	}
	for c := 0; c < 2; c++ {
		for k := 0; k < 6; k++ {
			if len(s.pieces[c][k]) != len(o.pieces[c][k]) {
				return "piece list length"
			}
			for i := range s.pieces[c][k] {
				if s.pieces[c][k][i] != o.pieces[c][k][i] {
					return "piece list contents"
				}
			}
		}
	}
	return ""
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := append([]string{
		"bqnb1rkr/pp3ppp/3ppn2/2p5/5P2/P2P4/NPP1P1PP/BQ1BNRKR w HFhf - 2 9",
		"r3k2r/1P6/8/8/8/8/6p1/R3K2R w KQkq - 0 1",
	}, oracleFENs...)
	for _, fen := range fens {
		b := mustFEN(t, fen)
		walkRoundTrip(t, b, 3)
	}
}

func walkRoundTrip(t *testing.T, b *Board, depth int) {
	t.Helper()
	var buf [MaxMoves]Move
	for _, m := range b.LegalMoves(buf[:0]) {
		before := takeSnapshot(b)
		b.MakeMove(m)
		if err := b.Validate(); err != nil {
			b.UnmakeMove(m)
			t.Fatalf("%s after %v: %v", b.FEN(), m, err)
		}
		if depth > 1 {
			walkRoundTrip(t, b, depth-1)
		}
		b.UnmakeMove(m)
		if d := takeSnapshot(b).diff(before); d != "" {
			t.Fatalf("%s: %v make/unmake changed the %s", b.FEN(), m, d)
		}
	}
}

func TestCaptureStack(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	m := mustMove(t, b, "e4d5")
	b.MakeMove(m)
	if b.CapturedCount() != 1 || b.Pieces(Black).Count(Pawn) != 0 {
		t.Fatalf("capture not recorded: stack %d", b.CapturedCount())
	}
	b.UnmakeMove(m)
	if b.CapturedCount() != 0 || b.At(NewSquare(3, 4)) != MakePiece(Black, Pawn) {
		t.Fatalf("capture not restored")
	}
}

func TestPromotionCaptureRestores(t *testing.T) {
	b := mustFEN(t, promoteFEN)
	m := mustMove(t, b, "a7b8q")
	if !m.IsPromotionCapture() || m.Promotion() != Queen {
		t.Fatalf("a7b8q tag: %d", m.Tag())
	}
	before := b.FEN()
	b.MakeMove(m)
	if b.At(NewSquare(1, 7)) != MakePiece(White, Queen) || b.Pieces(White).Count(Pawn) != 0 {
		t.Fatalf("promotion not applied:\n%s", b)
	}
	b.UnmakeMove(m)
	if got := b.FEN(); got != before {
		t.Fatalf("after unmake: got %q want %q", got, before)
	}
}

func TestZobristTransposition(t *testing.T) {
	a := New(nil)
	if err := a.ApplyMoves([]string{"g1f3", "g8f6", "b1c3", "b8c6"}); err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}
	b := New(nil)
	if err := b.ApplyMoves([]string{"b1c3", "b8c6", "g1f3", "g8f6"}); err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("same position via different orders: %016x vs %016x", a.Hash(), b.Hash())
	}
	if a.Hash() != a.ComputeZobrist() {
		t.Fatalf("incremental hash differs from recomputed")
	}
}

func TestZobristDistinguishesState(t *testing.T) {
	base := mustFEN(t, "r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq d6 0 1").Hash()
	variants := []string{
		"r3k2r/8/8/3pP3/8/8/8/R3K2R b KQkq - 0 1",
		"r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/3pP3/8/8/8/R3K2R w Kkq d6 0 1",
		"r3k2r/8/8/3pP3/8/8/8/R3K2R w - d6 0 1",
		"r3k2r/8/8/3pP3/8/8/8/R3K1R1 w Qkq d6 0 1",
	}
	seen := map[uint64]string{base: "base"}
	for _, fen := range variants {
		h := mustFEN(t, fen).Hash()
		if prev, ok := seen[h]; ok {
			t.Fatalf("%q hashes like %q", fen, prev)
		}
		seen[h] = fen
	}
}

func TestZobristSeedDeterministic(t *testing.T) {
	g1, g2 := newKeyGenerator(7), newKeyGenerator(7)
	for i := 0; i < 16; i++ {
		if g1.next() != g2.next() {
			t.Fatalf("generator not deterministic at step %d", i)
		}
	}
	if newKeyGenerator(7).next() == newKeyGenerator(8).next() {
		t.Fatalf("adjacent seeds produced the same first key")
	}
}

func TestRepetition(t *testing.T) {
	b := New(nil)
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for i, text := range moves {
		if b.IsRepetition() {
			t.Fatalf("repetition reported before move %d", i)
		}
		if err := b.ApplyMoves([]string{text}); err != nil {
			t.Fatalf("apply %s: %v", text, err)
		}
	}
	if !b.IsRepetition() {
		t.Fatalf("start position repeated but not reported")
	}

	// A pawn move resets the counter, so earlier positions no longer count.
	if err := b.ApplyMoves([]string{"e2e4", "e7e5"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if b.IsRepetition() {
		t.Fatalf("repetition reported after pawn moves")
	}
}
