package common

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece packs a kind (low three bits) and a color (bit 3).
// The zero value is an empty square.
type Piece uint8

const NoPiece Piece = 0

func MakePiece(kind int, color Color) Piece {
	return Piece(kind | int(color)<<3)
}

func (pc Piece) Kind() int {
	return int(pc & 7)
}

func (pc Piece) Color() Color {
	return Color(pc >> 3)
}

func (pc Piece) IsEmpty() bool {
	return pc == NoPiece
}

func (pc Piece) String() string {
	if pc == NoPiece {
		return "."
	}
	return pieceToChar(pc)
}

const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

const MaxMoves = 256

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a plain value: copying it clones the game state.
type Position struct {
	Board        [64]Piece
	SideToMove   Color
	CastleRights int
	EpFile       int
}

type GameResult int

const (
	Ongoing GameResult = iota
	Draw
	WhiteWins
	BlackWins
)

func WinFor(c Color) GameResult {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

func (r GameResult) IsOver() bool {
	return r != Ongoing
}

func (r GameResult) Winner() (Color, bool) {
	switch r {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	}
	return White, false
}

func (r GameResult) String() string {
	switch r {
	case Draw:
		return "draw"
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	}
	return "ongoing"
}
