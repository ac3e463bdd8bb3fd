package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/ChizhovVadim/ChessAI/pkg/common"
)

var chessSymbols = [2][common.King + 1]string{
	{" ", "♙", "♘", "♗", "♖", "♕", "♔"},
	{" ", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// ANSI SGR codes
const (
	fgBlack   = 30
	bgWhite   = 47
	bgHiWhite = 107
)

func pieceString(piece common.Piece, darkSquare bool) string {
	var s = chessSymbols[piece.Color()][piece.Kind()] + " "
	var bgColor = bgHiWhite
	if darkSquare {
		bgColor = bgWhite
	}
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%d;%dm%s%s[%dm", escape, fgBlack, bgColor, s, escape, reset)
}

// printBoard draws p from White's side, rank 8 first.
func printBoard(w io.Writer, p *common.Position) {
	var sb strings.Builder
	for rank := common.Rank8; rank >= common.Rank1; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := common.FileA; file <= common.FileH; file++ {
			var sq = common.MakeSquare(file, rank)
			sb.WriteString(pieceString(p.At(sq), common.IsDarkSquare(sq)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	io.WriteString(w, sb.String())
}
