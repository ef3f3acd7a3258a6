package board

import (
	"math"
	"strconv"
	"strings"
)

// FENStartPos is the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Counter limits keep the halfmove clock and the ply derived from the
// fullmove number inside uint16.
const (
	maxHalfmove = math.MaxUint16
	maxFullmove = math.MaxUint16 / 2
)

// ParseFEN builds a board from FEN text.
func ParseFEN(fen string) (*Board, error) {
	b := NewEmpty(nil)
	if err := b.SetFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// SetFEN loads a position into b. On error b is left cleared.
func (b *Board) SetFEN(fen string) error {
	b.Clear()
	if err := b.loadFEN(fen); err != nil {
		b.Clear()
		return err
	}
	return nil
}

type fenField struct {
	text string
	pos  int
}

func splitFEN(fen string) []fenField {
	var out []fenField
	start := -1
	for i := 0; i <= len(fen); i++ {
		if i == len(fen) || fen[i] == ' ' || fen[i] == '\t' {
			if start >= 0 {
				out = append(out, fenField{fen[start:i], start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	return out
}

func (b *Board) loadFEN(fen string) error {
	fail := func(kind FENErrorKind, pos int) error {
		return &FENError{Kind: kind, Pos: pos, Text: fen}
	}
	fields := splitFEN(fen)
	if len(fields) < 4 {
		return fail(FENErrEnd, len(fen))
	}

	if kind, pos := b.placePieces(fields[0]); kind != 0 {
		return fail(kind, pos)
	}
	for c := White; c <= Black; c++ {
		if b.lists[c].Count(King) != 1 {
			return fail(FENErrKing, fields[0].pos)
		}
		b.kingOrigin[c] = b.KingSquare(c)
	}

	var side Color
	switch fields[1].text {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return fail(FENErrSide, fields[1].pos)
	}

	rights, ok := b.parseCastle(fields[2].text)
	if !ok {
		return fail(FENErrCastle, fields[2].pos)
	}

	epFile, ok := b.parseEnPassant(fields[3].text, side)
	if !ok {
		return fail(FENErrEnPassant, fields[3].pos)
	}

	halfmove, fullmove := 0, 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4].text)
		if err != nil || n < 0 || n > maxHalfmove {
			return fail(FENErrCounter, fields[4].pos)
		}
		halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5].text)
		if err != nil || n < 0 || n > maxFullmove {
			return fail(FENErrCounter, fields[5].pos)
		}
		if n > 0 {
			fullmove = n
		}
	}

	b.ply = uint16(2*(fullmove-1)) + uint16(side)
	pl := b.top()
	pl.Castle = rights
	pl.EPFile = epFile
	pl.Halfmove = uint16(halfmove)
	pl.Hash = b.ComputeZobrist()
	fresh := b.scanCheckers()
	pl.Checkers, pl.NChecks = fresh.Checkers, fresh.NChecks
	return nil
}

func (b *Board) placePieces(f fenField) (FENErrorKind, int) {
	rank, file := 7, 0
	for i := 0; i < len(f.text); i++ {
		ch := f.text[i]
		pos := f.pos + i
		switch {
		case ch == '/':
			if file != 8 {
				return FENErrFileCount, pos
			}
			rank--
			file = 0
			if rank < 0 {
				return FENErrRankCount, pos
			}
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
			if file > 8 {
				return FENErrFileCount, pos
			}
		default:
			p, ok := pieceFromChar(ch)
			if !ok || (p.Kind() == Pawn && (rank == 0 || rank == 7)) {
				return FENErrPiece, pos
			}
			if file >= 8 {
				return FENErrFileCount, pos
			}
			if b.lists[p.Color()].full(p.Kind()) {
				return FENErrPieceCount, pos
			}
			b.addPiece(p, NewSquare(file, rank))
			file++
		}
	}
	if file != 8 {
		return FENErrFileCount, f.pos + len(f.text)
	}
	if rank != 0 {
		return FENErrRankCount, f.pos + len(f.text)
	}
	return 0, 0
}

// parseCastle accepts "-", standard and Shredder letters ("KQkq", "HAha")
// and the fixed four-slot form with dashes ("KQ--", "-Q-q"), where the
// slots are white kingside, white queenside, black kingside, black
// queenside. A file letter names the rook for shuffled back ranks.
func (b *Board) parseCastle(s string) (CastleRights, bool) {
	if s == "-" {
		return NoCastle, true
	}
	fixed := len(s) == 4 && strings.Contains(s, "-")
	var rights CastleRights
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '-' {
			if !fixed {
				return NoCastle, false
			}
			continue
		}
		c := White
		if ch >= 'a' && ch <= 'z' {
			c = Black
		}
		if fixed {
			c = Color(i / 2)
		}
		ksq := b.KingSquare(c)
		if ksq.Rank() != backRank[c] {
			return NoCastle, false
		}
		lower := ch | 0x20
		var cs CastleSide
		var rook Square
		switch {
		case lower == 'k':
			cs, rook = Kingside, b.outerRook(c, Kingside)
		case lower == 'q':
			cs, rook = Queenside, b.outerRook(c, Queenside)
		case lower >= 'a' && lower <= 'h':
			file := int(lower - 'a')
			switch {
			case file > ksq.File():
				cs = Kingside
			case file < ksq.File():
				cs = Queenside
			default:
				return NoCastle, false
			}
			rook = NewSquare(file, backRank[c])
		default:
			return NoCastle, false
		}
		if fixed && CastleSide(i%2) != cs {
			return NoCastle, false
		}
		if rook == NoSquare || b.squares[rook] != MakePiece(c, Rook) || rights.Has(c, cs) {
			return NoCastle, false
		}
		rights |= castleRight(c, cs)
		b.rookOrigin[c][cs] = rook
	}
	return rights, true
}

// outerRook finds the rook furthest from the king on one side of it.
func (b *Board) outerRook(c Color, cs CastleSide) Square {
	ksq := b.KingSquare(c)
	rook := MakePiece(c, Rook)
	if cs == Kingside {
		for f := 7; f > ksq.File(); f-- {
			if sq := NewSquare(f, backRank[c]); b.squares[sq] == rook {
				return sq
			}
		}
		return NoSquare
	}
	for f := 0; f < ksq.File(); f++ {
		if sq := NewSquare(f, backRank[c]); b.squares[sq] == rook {
			return sq
		}
	}
	return NoSquare
}

// parseEnPassant checks that the target square sits behind an enemy pawn
// that could just have advanced two squares.
func (b *Board) parseEnPassant(s string, side Color) (uint8, bool) {
	if s == "-" {
		return NoFile, true
	}
	sq, ok := ParseSquare(s)
	if !ok {
		return NoFile, false
	}
	them := side.Other()
	wantRank := 5
	if side == Black {
		wantRank = 2
	}
	if sq.Rank() != wantRank || b.squares[sq] != Empty {
		return NoFile, false
	}
	if b.squares[sq.Add(pawnAdvance[them])] != MakePiece(them, Pawn) {
		return NoFile, false
	}
	return uint8(sq.File()), true
}

// FEN renders the position. Castle rights use K/Q for corner rooks and the
// rook's file letter otherwise.
func (b *Board) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b.squares[NewSquare(f, r)]
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.SideToMove().String())
	sb.WriteByte(' ')
	sb.WriteString(b.castleString())
	sb.WriteByte(' ')
	pl := b.top()
	if pl.EPFile == NoFile {
		sb.WriteByte('-')
	} else {
		rank := 5
		if b.SideToMove() == Black {
			rank = 2
		}
		sb.WriteString(NewSquare(int(pl.EPFile), rank).String())
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(pl.Halfmove)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.ply)/2 + 1))
	return sb.String()
}

func (b *Board) castleString() string {
	rights := b.top().Castle
	if rights == NoCastle {
		return "-"
	}
	var out []byte
	for c := White; c <= Black; c++ {
		for _, cs := range [2]CastleSide{Kingside, Queenside} {
			if !rights.Has(c, cs) {
				continue
			}
			var ch byte
			switch f := b.rookOrigin[c][cs].File(); {
			case cs == Kingside && f == 7:
				ch = 'K'
			case cs == Queenside && f == 0:
				ch = 'Q'
			default:
				ch = byte('A' + f)
			}
			if c == Black {
				ch |= 0x20
			}
			out = append(out, ch)
		}
	}
	return string(out)
}
