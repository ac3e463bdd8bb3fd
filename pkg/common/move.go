package common

import (
	"fmt"
	"strings"
)

type MoveKind int

const (
	_ MoveKind = iota
	SimpleMove
	Castling
	EnPassant
)

// Move layout: from (bits 0-5), to (6-11), kind (12-13), king side flag (14).
type Move int32

const MoveEmpty = Move(0)

const kingSideFlag = 1 << 14

func NewSimpleMove(from, to int) Move {
	return Move(from ^ (to << 6) ^ (int(SimpleMove) << 12))
}

func NewEnPassant(from, to int) Move {
	return Move(from ^ (to << 6) ^ (int(EnPassant) << 12))
}

func NewCastling(kingSide bool) Move {
	var m = Move(int(Castling) << 12)
	if kingSide {
		m |= kingSideFlag
	}
	return m
}

func (m Move) Kind() MoveKind {
	return MoveKind((m >> 12) & 3)
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) KingSide() bool {
	return m&kingSideFlag != 0
}

func (m Move) String() string {
	switch m.Kind() {
	case SimpleMove:
		return SquareName(m.From()) + SquareName(m.To())
	case EnPassant:
		return SquareName(m.From()) + SquareName(m.To()) + "ep"
	case Castling:
		if m.KingSide() {
			return "O-O"
		}
		return "O-O-O"
	}
	return "0000"
}

func castlingSquares(kingSide bool, c Color) (kingFrom, kingTo, rookFrom, rookTo int) {
	var rank = let(c == White, Rank1, Rank8)
	kingFrom = MakeSquare(FileE, rank)
	if kingSide {
		return kingFrom, MakeSquare(FileG, rank), MakeSquare(FileH, rank), MakeSquare(FileF, rank)
	}
	return kingFrom, MakeSquare(FileC, rank), MakeSquare(FileA, rank), MakeSquare(FileD, rank)
}

// MoveLAN renders m in long algebraic notation for the side to move of p.
func (p *Position) MoveLAN(m Move) string {
	switch m.Kind() {
	case Castling:
		var from, to, _, _ = castlingSquares(m.KingSide(), p.SideToMove)
		return SquareName(from) + SquareName(to)
	case EnPassant:
		return SquareName(m.From()) + SquareName(m.To())
	case SimpleMove:
		var s = SquareName(m.From()) + SquareName(m.To())
		if p.WhatPiece(m.From()) == Pawn && isLastRank(m.To()) {
			s += "q"
		}
		return s
	}
	return "0000"
}

func (p *Position) ParseMoveLAN(lan string) (Move, error) {
	var ml, _ = p.GenerateLegalMoves()
	for _, m := range ml {
		var s = p.MoveLAN(m)
		// promotion suffix is optional, queen is the only choice
		if strings.EqualFold(s, lan) || len(s) == 5 && strings.EqualFold(s[:4], lan) {
			return m, nil
		}
	}
	return MoveEmpty, fmt.Errorf("illegal move %q in %v", lan, p.String())
}

func isLastRank(sq int) bool {
	var rank = Rank(sq)
	return rank == Rank1 || rank == Rank8
}
