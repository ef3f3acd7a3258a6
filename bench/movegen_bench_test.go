package bench

import (
	"testing"

	"github.com/Solid-State-Chess/max-sub000/board"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustBoard(b *testing.B, fen string) *board.Board {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	return pos
}

func benchGenerateMoves(b *testing.B, fen string) {
	pos := mustBoard(b, fen)
	buf := make([]board.Move, 0, board.MaxMoves)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = pos.GenerateMoves(buf[:0])
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, board.FENStartPos)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	benchGenerateMoves(b, kiwipeteFEN)
}

func BenchmarkGenerateMoves_Pos6(b *testing.B) {
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
	benchGenerateMoves(b, fen)
}

func BenchmarkGenerateCaptures_Kiwipete(b *testing.B) {
	pos := mustBoard(b, kiwipeteFEN)
	buf := make([]board.Move, 0, board.MaxMoves)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = pos.GenerateCaptures(buf[:0])
	}
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	pos := mustBoard(b, kiwipeteFEN)
	buf := make([]board.Move, 0, board.MaxMoves)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = pos.LegalMoves(buf[:0])
	}
}

func BenchmarkMakeUnmake_Kiwipete(b *testing.B) {
	pos := mustBoard(b, kiwipeteFEN)
	moves := pos.LegalMoves(make([]board.Move, 0, board.MaxMoves))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			pos.MakeMove(m)
			pos.UnmakeMove(m)
		}
	}
}
