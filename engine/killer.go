package engine

import (
	"github.com/Solid-State-Chess/max-sub000/board"
)

type KillerStruct struct {
	KillerMoves [MaxPly + 1][2]board.Move
}

func (k *KillerStruct) InsertKiller(move board.Move, ply int) {
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

// Clear the killer moves table.
func (k *KillerStruct) ClearKillers() {
	for ply := range k.KillerMoves {
		k.KillerMoves[ply][0] = board.NullMove
		k.KillerMoves[ply][1] = board.NullMove
	}
}
