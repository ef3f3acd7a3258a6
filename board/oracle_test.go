package board

import (
	"sort"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

var oracleFENs = []string{
	FENStartPos,
	kiwipeteFEN,
	position3FEN,
	position4FEN,
	position5FEN,
	epFEN,
	promoteFEN,
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	"8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1",
	"rnbqkbnr/pp1ppppp/8/2p5/5P2/3P4/PPP1P1PP/RNBQKBNR b KQkq - 0 1",
}

func dragonDivide(fen string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		out[strings.ToLower(m.String())] = dragonPerft(&b, depth-1)
		undo()
	}
	return out
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		undo := b.Apply(m)
		n += dragonPerft(b, depth-1)
		undo()
	}
	return n
}

func TestDivideAgainstDragontooth(t *testing.T) {
	for _, fen := range oracleFENs {
		b := mustFEN(t, fen)
		got := b.DivideStrings(PerftDivide(b, 3))
		want := dragonDivide(fen, 3)
		if len(got) != len(want) {
			t.Fatalf("%s: %d root moves, reference has %d", fen, len(got), len(want))
		}
		for m, n := range want {
			if got[m] != n {
				t.Fatalf("%s: %s got %d want %d", fen, m, got[m], n)
			}
		}
	}
}

func TestLegalMovesAgainstNotnil(t *testing.T) {
	for _, fen := range oracleFENs {
		opt, err := chess.FEN(fen)
		if err != nil {
			t.Fatalf("chess.FEN(%q): %v", fen, err)
		}
		game := chess.NewGame(opt)
		var want []string
		for _, m := range game.ValidMoves() {
			want = append(want, chess.UCINotation{}.Encode(game.Position(), m))
		}

		b := mustFEN(t, fen)
		var buf [MaxMoves]Move
		var got []string
		for _, m := range b.LegalMoves(buf[:0]) {
			got = append(got, m.String())
		}
		sort.Strings(want)
		sort.Strings(got)
		if strings.Join(got, " ") != strings.Join(want, " ") {
			t.Fatalf("%s:\n got  %v\n want %v", fen, got, want)
		}
	}
}
