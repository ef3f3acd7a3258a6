package engine

import (
	"github.com/Solid-State-Chess/max-sub000/board"
)

const (
	// Flags. EmptyFlag marks a slot that holds nothing.
	EmptyFlag uint8 = iota
	AlphaFlag
	BetaFlag
	ExactFlag
)

type TTEntry struct {
	Key   uint64
	Move  board.Move
	Score int32
	Depth int8
	Flag  uint8
}

// TransTable is a fixed array of 2^bits entries indexed by the low bits of
// the position hash. Entries keep the remaining high bits to detect
// collisions.
type TransTable struct {
	entries []TTEntry
	bits    uint
	mask    uint64
}

func NewTransTable(bits uint) *TransTable {
	tt := &TransTable{}
	tt.init(bits)
	return tt
}

func (TT *TransTable) init(bits uint) {
	TT.bits = bits
	TT.mask = (1 << bits) - 1
	TT.entries = make([]TTEntry, 1<<bits)
}

// Len returns the number of slots.
func (TT *TransTable) Len() int { return len(TT.entries) }

func (TT *TransTable) Clear() {
	for i := range TT.entries {
		TT.entries[i] = TTEntry{}
	}
}

func (TT *TransTable) key(hash uint64) uint64 { return hash >> TT.bits }

// Probe returns the live entry for hash, if any.
func (TT *TransTable) Probe(hash uint64) (TTEntry, bool) {
	e := TT.entries[hash&TT.mask]
	if e.Flag == EmptyFlag || e.Key != TT.key(hash) {
		return TTEntry{}, false
	}
	return e, true
}

// Insert writes the entry unless the slot already holds a live entry searched
// at least as deep.
func (TT *TransTable) Insert(hash uint64, move board.Move, score int32, depth int8, flag uint8) bool {
	slot := &TT.entries[hash&TT.mask]
	if slot.Flag != EmptyFlag && slot.Depth >= depth {
		return false
	}
	*slot = TTEntry{
		Key:   TT.key(hash),
		Move:  move,
		Score: score,
		Depth: depth,
		Flag:  flag,
	}
	return true
}

// Mate scores are stored relative to the node and converted back to the
// root distance on probe.
func scoreToTT(score int32, ply int) int32 {
	if score > Checkmate {
		return score + int32(ply)
	}
	if score < -Checkmate {
		return score - int32(ply)
	}
	return score
}

func scoreFromTT(score int32, ply int) int32 {
	if score > Checkmate {
		return score - int32(ply)
	}
	if score < -Checkmate {
		return score + int32(ply)
	}
	return score
}

// useEntry reports whether a probed entry settles the node for the given
// window.
func useEntry(e TTEntry, depth int8, alpha, beta int32, ply int) (bool, int32) {
	if e.Depth < depth {
		return false, 0
	}
	score := scoreFromTT(e.Score, ply)
	switch e.Flag {
	case ExactFlag:
		return true, score
	case AlphaFlag:
		if score <= alpha {
			return true, score
		}
	case BetaFlag:
		if score >= beta {
			return true, score
		}
	}
	return false, 0
}
