package common

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidFEN = errors.New("invalid fen")

func (p *Position) At(sq int) Piece {
	return p.Board[sq]
}

func (p *Position) Put(sq int, piece Piece) {
	p.Board[sq] = piece
}

func (p *Position) Remove(sq int) {
	p.Board[sq] = NoPiece
}

func (p *Position) WhatPiece(sq int) int {
	return p.Board[sq].Kind()
}

func (p *Position) IsEmpty(sq int) bool {
	return p.Board[sq] == NoPiece
}

func (p *Position) CanCastle(flag int) bool {
	return p.CastleRights&flag != 0
}

// KingSquare panics when c has no king: every reachable position has one.
func (p *Position) KingSquare(c Color) int {
	var king = MakePiece(King, c)
	for sq, piece := range p.Board {
		if piece == king {
			return sq
		}
	}
	panic(fmt.Errorf("no %v king on board %v", c, p.String()))
}

func (p *Position) CountPieces() int {
	var count = 0
	for _, piece := range p.Board {
		if piece != NoPiece {
			count++
		}
	}
	return count
}

func NewPositionFromFEN(fen string) (Position, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 4 || len(tokens) > 6 {
		return Position{}, fmt.Errorf("%w: expected 4 to 6 fields: %q", ErrInvalidFEN, fen)
	}

	var p = Position{EpFile: FileNone}

	var ranks = strings.Split(tokens[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("%w: expected 8 ranks: %q", ErrInvalidFEN, fen)
	}
	for i, sRank := range ranks {
		var rank = Rank8 - i
		var file = FileA
		for _, ch := range sRank {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			var piece, ok = parsePiece(ch)
			if !ok {
				return Position{}, fmt.Errorf("%w: bad piece %q: %q", ErrInvalidFEN, ch, fen)
			}
			if file > FileH {
				return Position{}, fmt.Errorf("%w: rank %d too long: %q", ErrInvalidFEN, rank+1, fen)
			}
			p.Board[MakeSquare(file, rank)] = piece
			file++
		}
		if file != FileH+1 {
			return Position{}, fmt.Errorf("%w: rank %d has %d files: %q", ErrInvalidFEN, rank+1, file, fen)
		}
	}

	switch tokens[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return Position{}, fmt.Errorf("%w: bad side to move %q", ErrInvalidFEN, tokens[1])
	}

	if tokens[2] != "-" {
		for _, ch := range tokens[2] {
			var flag = strings.IndexRune("KQkq", ch)
			if flag < 0 {
				return Position{}, fmt.Errorf("%w: bad castling %q", ErrInvalidFEN, tokens[2])
			}
			p.CastleRights |= 1 << flag
		}
	}

	var epSquare, err = ParseSquare(tokens[3])
	if err != nil {
		return Position{}, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}
	if epSquare != SquareNone {
		var epRank = let(p.SideToMove == White, Rank6, Rank3)
		if Rank(epSquare) != epRank {
			return Position{}, fmt.Errorf("%w: en passant square %v with %v to move", ErrInvalidFEN, tokens[3], p.SideToMove)
		}
		p.EpFile = File(epSquare)
	}

	for _, c := range [...]Color{White, Black} {
		var kings = 0
		for _, piece := range p.Board {
			if piece == MakePiece(King, c) {
				kings++
			}
		}
		if kings != 1 {
			return Position{}, fmt.Errorf("%w: %d %v kings: %q", ErrInvalidFEN, kings, c, fen)
		}
	}

	return p, nil
}

func (p *Position) String() string {
	var sb strings.Builder

	for rank := Rank8; rank >= Rank1; rank-- {
		var emptyCount = 0
		for file := FileA; file <= FileH; file++ {
			var piece = p.Board[MakeSquare(file, rank)]
			if piece == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				fmt.Fprint(&sb, emptyCount)
				emptyCount = 0
			}
			sb.WriteString(pieceToChar(piece))
		}
		if emptyCount != 0 {
			fmt.Fprint(&sb, emptyCount)
		}
		if rank != Rank1 {
			sb.WriteString("/")
		}
	}

	if p.SideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if p.CastleRights == 0 {
		sb.WriteString("-")
	} else {
		for i, ch := range "KQkq" {
			if p.CastleRights&(1<<i) != 0 {
				sb.WriteRune(ch)
			}
		}
	}
	sb.WriteString(" ")

	sb.WriteString(SquareName(p.EpSquare()))
	sb.WriteString(" 0 1")

	return sb.String()
}

// EpSquare is the square behind the pawn that just made a double step.
func (p *Position) EpSquare() int {
	if p.EpFile < FileA || p.EpFile > FileH {
		return SquareNone
	}
	return MakeSquare(p.EpFile, let(p.SideToMove == White, Rank6, Rank3))
}
