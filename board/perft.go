package board

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// perftBuffers holds one move buffer per remaining ply so a perft run does
// not allocate while walking the tree.
type perftBuffers [][MaxMoves]Move

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	bufs := make(perftBuffers, depth)
	return perft(b, depth, bufs)
}

func perft(b *Board, depth int, bufs perftBuffers) uint64 {
	moves := b.GenerateMoves(bufs[depth-1][:0])
	var nodes uint64
	for _, m := range moves {
		if !b.IsLegal(m) {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		b.MakeMove(m)
		nodes += perft(b, depth-1, bufs)
		b.UnmakeMove(m)
	}
	return nodes
}

// PerftDivide returns the node count below each legal root move.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	var root [MaxMoves]Move
	bufs := make(perftBuffers, depth)
	for _, m := range b.LegalMoves(root[:0]) {
		b.MakeMove(m)
		if depth == 1 {
			out[m] = 1
		} else {
			out[m] = perft(b, depth-1, bufs)
		}
		b.UnmakeMove(m)
	}
	return out
}

// PerftCounts breaks the leaf nodes of a perft run down by move type.
type PerftCounts struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64
}

func (c *PerftCounts) add(o PerftCounts) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassants += o.EnPassants
	c.Castles += o.Castles
	c.Promotions += o.Promotions
	c.Checks += o.Checks
	c.Checkmates += o.Checkmates
}

// PerftDetailed counts leaf nodes together with the kind of move that led
// to each of them.
func PerftDetailed(b *Board, depth int) PerftCounts {
	var counts PerftCounts
	if depth <= 0 {
		counts.Nodes = 1
		return counts
	}
	bufs := make(perftBuffers, depth+1)
	perftDetailed(b, depth, bufs, &counts)
	return counts
}

func perftDetailed(b *Board, depth int, bufs perftBuffers, counts *PerftCounts) {
	moves := b.GenerateMoves(bufs[depth][:0])
	for _, m := range moves {
		if !b.IsLegal(m) {
			continue
		}
		if depth > 1 {
			b.MakeMove(m)
			perftDetailed(b, depth-1, bufs, counts)
			b.UnmakeMove(m)
			continue
		}
		b.countLeaf(m, bufs[0][:0], counts)
	}
}

// countLeaf classifies a legal move played at the last ply.
func (b *Board) countLeaf(m Move, buf []Move, counts *PerftCounts) {
	counts.Nodes++
	switch {
	case m.IsEnPassant():
		counts.Captures++
		counts.EnPassants++
	case m.IsCastle():
		counts.Castles++
	case b.squares[m.To()].Occupied():
		counts.Captures++
	}
	if m.IsPromotion() {
		counts.Promotions++
	}
	b.MakeMove(m)
	if b.InCheck() {
		counts.Checks++
		if !b.hasLegalMove(buf) {
			counts.Checkmates++
		}
	}
	b.UnmakeMove(m)
}

func (b *Board) hasLegalMove(buf []Move) bool {
	for _, m := range b.GenerateMoves(buf) {
		if b.IsLegal(m) {
			return true
		}
	}
	return false
}

type rootJob struct {
	move Move
	text string
}

// forEachRootMove spreads the legal root moves of fen plus moves over
// workers. Each worker owns a board built from the same FEN and move list,
// so no state is shared during the walk; visit runs on the worker's board
// and must synchronize its own output.
func forEachRootMove(ctx context.Context, fen string, moves []string, workers int, visit func(b *Board, job rootJob)) error {
	if workers < 1 {
		workers = 1
	}
	root, err := ParseFEN(fen)
	if err != nil {
		return err
	}
	if err := root.ApplyMoves(moves); err != nil {
		return err
	}
	var buf [MaxMoves]Move
	rootMoves := root.LegalMoves(buf[:0])

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan rootJob)
	g.Go(func() error {
		defer close(jobs)
		for _, m := range rootMoves {
			select {
			case jobs <- rootJob{move: m, text: root.MoveText(m)}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			b, err := ParseFEN(fen)
			if err != nil {
				return err
			}
			if err := b.ApplyMoves(moves); err != nil {
				return err
			}
			for job := range jobs {
				visit(b, job)
			}
			return nil
		})
	}
	return g.Wait()
}

// ParallelDivide runs a divide with the root moves spread over workers.
// Results are keyed by MoveText of the root position.
func ParallelDivide(ctx context.Context, fen string, moves []string, depth, workers int) (map[string]uint64, error) {
	var mu sync.Mutex
	out := make(map[string]uint64)
	err := forEachRootMove(ctx, fen, moves, workers, func(b *Board, job rootJob) {
		var n uint64 = 1
		if depth > 1 {
			b.MakeMove(job.move)
			n = Perft(b, depth-1)
			b.UnmakeMove(job.move)
		}
		mu.Lock()
		out[job.text] = n
		mu.Unlock()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParallelDetailed is PerftDetailed with the root moves spread over workers.
func ParallelDetailed(ctx context.Context, fen string, moves []string, depth, workers int) (PerftCounts, error) {
	var mu sync.Mutex
	var total PerftCounts
	if depth <= 0 {
		total.Nodes = 1
		return total, nil
	}
	err := forEachRootMove(ctx, fen, moves, workers, func(b *Board, job rootJob) {
		var counts PerftCounts
		bufs := make(perftBuffers, depth)
		if depth == 1 {
			b.countLeaf(job.move, bufs[0][:0], &counts)
		} else {
			b.MakeMove(job.move)
			perftDetailed(b, depth-1, bufs, &counts)
			b.UnmakeMove(job.move)
		}
		mu.Lock()
		total.add(counts)
		mu.Unlock()
	})
	if err != nil {
		return PerftCounts{}, err
	}
	return total, nil
}

// DivideStrings converts a divide keyed by move into one keyed by the
// MoveText of each move. b must be the position the divide was run on.
func (b *Board) DivideStrings(div map[Move]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(div))
	for m, n := range div {
		out[b.MoveText(m)] = n
	}
	return out
}

// WriteDivide prints "move count" lines sorted by move, a blank line and the
// total, the format perftree expects.
func WriteDivide(w io.Writer, div map[string]uint64) (uint64, error) {
	keys := maps.Keys(div)
	slices.Sort(keys)
	var total uint64
	for _, k := range keys {
		total += div[k]
		if _, err := fmt.Fprintf(w, "%s %d\n", k, div[k]); err != nil {
			return total, err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d\n", total)
	return total, err
}
