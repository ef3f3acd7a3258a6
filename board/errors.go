package board

import (
	"errors"
	"fmt"
)

// FENErrorKind names the defect found in a FEN string.
type FENErrorKind uint8

const (
	FENErrEnd FENErrorKind = iota + 1
	FENErrPiece
	FENErrFileCount
	FENErrRankCount
	FENErrSide
	FENErrCastle
	FENErrEnPassant
	FENErrPieceCount
	FENErrKing
	FENErrCounter
)

var fenErrorText = map[FENErrorKind]string{
	FENErrEnd:        "unexpected end of input",
	FENErrPiece:      "invalid piece",
	FENErrFileCount:  "rank does not have 8 files",
	FENErrRankCount:  "board does not have 8 ranks",
	FENErrSide:       "invalid side to move",
	FENErrCastle:     "invalid castle rights",
	FENErrEnPassant:  "invalid en passant square",
	FENErrPieceCount: "too many pieces of one kind",
	FENErrKing:       "each side needs exactly one king",
	FENErrCounter:    "invalid move counter",
}

func (k FENErrorKind) String() string {
	if s, ok := fenErrorText[k]; ok {
		return s
	}
	return "unknown FEN error"
}

// FENError reports a malformed FEN string. Pos is the byte offset of the
// offending field or character.
type FENError struct {
	Kind FENErrorKind
	Pos  int
	Text string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("fen: %s at offset %d in %q", e.Kind, e.Pos, e.Text)
}

// Is lets errors.Is match on kind: errors.Is(err, &FENError{Kind: FENErrSide}).
func (e *FENError) Is(target error) bool {
	t, ok := target.(*FENError)
	return ok && t.Kind == e.Kind
}

// Move text errors.
var (
	ErrBadMoveText = errors.New("malformed move text")
	ErrIllegalMove = errors.New("illegal move")
)
