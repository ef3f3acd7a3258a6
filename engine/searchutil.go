package engine

import (
	"fmt"
	"strings"

	"github.com/Solid-State-Chess/max-sub000/board"
)

// IsMateScore reports whether score announces a forced mate.
func IsMateScore(score int32) bool { return abs(score) > Checkmate }

// ScoreString formats a score as "cp N" or "mate N", negative when the side
// to move is the one being mated.
func ScoreString(score int32) string {
	if !IsMateScore(score) {
		return fmt.Sprintf("cp %d", score)
	}
	pliesToMate := int(MaxScore - abs(score))
	mateInN := (pliesToMate + 1) / 2
	if score < 0 {
		mateInN = -mateInN
	}
	return fmt.Sprintf("mate %d", mateInN)
}

func PVString(pv []board.Move) string {
	var sb strings.Builder
	for i, m := range pv {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
