package engine

import (
	"github.com/Solid-State-Chess/max-sub000/board"
)

const fiftyMoveLimit = 100

// isDraw reports positions scored as drawn without searching further: a
// repetition of an earlier position or a spent fifty-move counter.
func isDraw(b *board.Board) bool {
	return b.State().Halfmove >= fiftyMoveLimit || b.IsRepetition()
}
