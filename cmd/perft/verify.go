package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Solid-State-Chess/max-sub000/board"
	"github.com/dylhunn/dragontoothmg"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// verifyDivide prints every root move whose count differs from
// dragontoothmg. Standard castling only; shuffled back ranks are not
// understood by the reference generator.
func verifyDivide(w io.Writer, b *board.Board, depth int) error {
	got := b.DivideStrings(board.PerftDivide(b, depth))
	want := dragonDivide(b.FEN(), depth)

	keys := maps.Keys(got)
	for k := range want {
		if _, ok := got[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	mismatches := 0
	for _, k := range keys {
		g, inGot := got[k]
		r, inWant := want[k]
		switch {
		case !inWant:
			fmt.Fprintf(w, "%s %d (not generated by reference)\n", k, g)
		case !inGot:
			fmt.Fprintf(w, "%s missing (reference %d)\n", k, r)
		case g != r:
			fmt.Fprintf(w, "%s %d (reference %d)\n", k, g, r)
		default:
			continue
		}
		mismatches++
	}
	if mismatches > 0 {
		return errors.Errorf("%d root moves disagree at depth %d", mismatches, depth)
	}
	fmt.Fprintf(w, "ok: %d root moves agree at depth %d\n", len(keys), depth)
	return nil
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
