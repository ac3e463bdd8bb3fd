package common

import (
	"errors"
	"fmt"
)

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	SquareNone = -1
	FileNone   = -1
)

var ErrInvalidSquare = errors.New("invalid square")

func FlipSquare(sq int) int {
	return sq ^ 56
}

func File(sq int) int {
	return sq & 7
}

func Rank(sq int) int {
	return sq >> 3
}

func IsDarkSquare(sq int) bool {
	return (File(sq) & 1) == (Rank(sq) & 1)
}

func MakeSquare(file, rank int) int {
	return (rank << 3) | file
}

func IsValidCoord(file, rank int) bool {
	return file >= 0 && file <= 7 && rank >= 0 && rank <= 7
}

// Offset shifts sq by df files and dr ranks.
// ok is false when the result leaves the board.
func Offset(sq, df, dr int) (result int, ok bool) {
	var file = File(sq) + df
	var rank = Rank(sq) + dr
	if !IsValidCoord(file, rank) {
		return SquareNone, false
	}
	return MakeSquare(file, rank), true
}

func FileDistance(sq1, sq2 int) int {
	return Abs(File(sq1) - File(sq2))
}

func RankDistance(sq1, sq2 int) int {
	return Abs(Rank(sq1) - Rank(sq2))
}

func SquareDistance(sq1, sq2 int) int {
	return Max(FileDistance(sq1, sq2), RankDistance(sq1, sq2))
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func SquareName(sq int) string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string(fileNames[File(sq)]) + string(rankNames[Rank(sq)])
}

func ParseSquare(s string) (int, error) {
	if s == "-" {
		return SquareNone, nil
	}
	if len(s) != 2 {
		return SquareNone, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	var file = int(s[0]) - 'a'
	var rank = int(s[1]) - '1'
	if !IsValidCoord(file, rank) {
		return SquareNone, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return MakeSquare(file, rank), nil
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(s string) int {
	var sq, err = ParseSquare(s)
	if err != nil {
		panic(err)
	}
	if sq == SquareNone {
		panic(fmt.Errorf("%w: %q", ErrInvalidSquare, s))
	}
	return sq
}
