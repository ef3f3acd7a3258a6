package engine

import (
	"github.com/Solid-State-Chess/max-sub000/board"
)

/*
	HISTORY
	A quiet move that causes a beta cutoff earns depth*depth points for its side, keyed by
	from/to square. Quiet moves that are searched without a cutoff lose most of theirs.
	Scores stay below the killer offset so killers keep priority.
*/

const historyMaxVal int32 = 2000

type historyTable [2][64][64]int32

func (h *historyTable) score(c board.Color, m board.Move) int32 {
	return h[c][m.From().Compact()][m.To().Compact()]
}

func (h *historyTable) increment(c board.Color, m board.Move, depth int8) {
	v := &h[c][m.From().Compact()][m.To().Compact()]
	*v += int32(depth) * int32(depth)
	if *v >= historyMaxVal {
		h.age(c)
	}
}

func (h *historyTable) decrement(c board.Color, m board.Move) {
	h[c][m.From().Compact()][m.To().Compact()] /= 4
}

// Age the values in the history table.
func (h *historyTable) age(c board.Color) {
	for from := range h[c] {
		for to := range h[c][from] {
			h[c][from][to] /= 8
		}
	}
}

func (h *historyTable) clear() {
	*h = historyTable{}
}
