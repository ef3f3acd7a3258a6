package engine

import (
	"testing"
)

func newTestSearcher() *Searcher {
	opts := NewOptions()
	opts.TTBits = 16
	return NewSearcher(opts)
}

func TestSearchCheckmateHasNoMove(t *testing.T) {
	b := mustBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	res := newTestSearcher().Search(b, 3)
	if !res.NoMove || !res.InCheck {
		t.Fatalf("expected no move in check, got %+v", res)
	}
	if !res.Checkmate() || res.Stalemate() {
		t.Fatalf("classified wrong: checkmate %v stalemate %v", res.Checkmate(), res.Stalemate())
	}
}

func TestSearchStalemateHasNoMove(t *testing.T) {
	b := mustBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	res := newTestSearcher().Search(b, 3)
	if !res.NoMove || res.InCheck {
		t.Fatalf("expected no move out of check, got %+v", res)
	}
	if !res.Stalemate() || res.Checkmate() {
		t.Fatalf("classified wrong: checkmate %v stalemate %v", res.Checkmate(), res.Stalemate())
	}
	if res.Score != DrawScore {
		t.Fatalf("stalemate score: got %d want %d", res.Score, DrawScore)
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	b := mustBoard(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	res := newTestSearcher().Search(b, 4)
	if res.NoMove {
		t.Fatalf("unexpected no move")
	}
	if got := res.Move.String(); got != "a1a8" {
		t.Fatalf("best move: got %s want a1a8", got)
	}
	if !IsMateScore(res.Score) {
		t.Fatalf("expected mate score, got %d", res.Score)
	}
	if got := ScoreString(res.Score); got != "mate 1" {
		t.Fatalf("score string: got %s want mate 1", got)
	}
	if len(res.PV) == 0 || res.PV[0] != res.Move {
		t.Fatalf("pv does not start with best move: %s", PVString(res.PV))
	}
}

func TestSearchWinsHangingQueen(t *testing.T) {
	for _, useTT := range []bool{true, false} {
		opts := NewOptions()
		opts.TTBits = 12
		opts.UseTT = useTT
		s := NewSearcher(opts)

		b := mustBoard(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
		res := s.Search(b, 3)
		if got := res.Move.String(); got != "d1d5" {
			t.Fatalf("tt %v: best move: got %s want d1d5", useTT, got)
		}
		if res.Score < 300 {
			t.Fatalf("tt %v: score too low: %d", useTT, res.Score)
		}
		if res.Nodes == 0 {
			t.Fatalf("tt %v: no nodes counted", useTT)
		}
		if useTT != (s.TT() != nil) {
			t.Fatalf("tt %v: table presence mismatch", useTT)
		}
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	b := mustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	fen, hash, ply := b.FEN(), b.Hash(), b.Ply()
	res := newTestSearcher().Search(b, 3)
	if res.NoMove {
		t.Fatalf("unexpected no move")
	}
	if b.FEN() != fen || b.Hash() != hash || b.Ply() != ply {
		t.Fatalf("board not restored: got %s want %s", b.FEN(), fen)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("board invalid after search: %v", err)
	}
}

func TestSearchUnorderedAgreesOnScore(t *testing.T) {
	fen := "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1"
	opts := NewOptions()
	opts.UseTT = false
	ordered := NewSearcher(opts).Search(mustBoard(t, fen), 3)

	opts.OrderMoves = false
	plain := NewSearcher(opts).Search(mustBoard(t, fen), 3)

	if ordered.Score != plain.Score {
		t.Fatalf("score: ordered %d plain %d", ordered.Score, plain.Score)
	}
}

func TestScoreString(t *testing.T) {
	cases := []struct {
		score int32
		want  string
	}{
		{35, "cp 35"},
		{-120, "cp -120"},
		{MaxScore - 1, "mate 1"},
		{MaxScore - 3, "mate 2"},
		{-MaxScore + 2, "mate -1"},
	}
	for _, c := range cases {
		if got := ScoreString(c.score); got != c.want {
			t.Fatalf("ScoreString(%d): got %s want %s", c.score, got, c.want)
		}
	}
}

func TestDrawDetection(t *testing.T) {
	if !isDraw(mustBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 100 80")) {
		t.Fatalf("fifty-move counter not treated as draw")
	}
	if isDraw(mustBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 99 80")) {
		t.Fatalf("draw reported before the counter ran out")
	}

	b := mustBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err := b.ApplyMoves([]string{"a1a2", "e8d8", "a2a1", "d8e8"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !isDraw(b) {
		t.Fatalf("repeated position not treated as draw")
	}
}
