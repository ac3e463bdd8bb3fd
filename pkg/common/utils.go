package common

import (
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](l, r T) T {
	if l < r {
		return l
	}
	return r
}

func Max[T constraints.Ordered](l, r T) T {
	if l > r {
		return l
	}
	return r
}

func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func let(ok bool, yes, no int) int {
	if ok {
		return yes
	}
	return no
}

const pieceLetters = "pnbrqk"

func parsePiece(ch rune) (Piece, bool) {
	var i = strings.IndexRune(pieceLetters, unicode.ToLower(ch))
	if i < 0 {
		return NoPiece, false
	}
	var color = Black
	if unicode.IsUpper(ch) {
		color = White
	}
	return MakePiece(i+Pawn, color), true
}

func pieceToChar(piece Piece) string {
	var result = string(pieceLetters[piece.Kind()-Pawn])
	if piece.Color() == White {
		result = strings.ToUpper(result)
	}
	return result
}
