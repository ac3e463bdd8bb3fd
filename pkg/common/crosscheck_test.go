package common

import (
	"fmt"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

func moveFromTo(p *Position, m Move) (int, int) {
	if m.Kind() == Castling {
		var kingFrom, kingTo, _, _ = castlingSquares(m.KingSide(), p.SideToMove)
		return kingFrom, kingTo
	}
	return m.From(), m.To()
}

func ourMoveKeys(p *Position) []string {
	var ml, _ = p.GenerateLegalMoves()
	var keys []string
	for _, m := range ml {
		var from, to = moveFromTo(p, m)
		keys = append(keys, SquareName(from)+SquareName(to))
	}
	sort.Strings(keys)
	return keys
}

func dragontoothMoveKeys(b *dragontoothmg.Board) []string {
	var keys []string
	for _, m := range queenOnly(b.GenerateLegalMoves()) {
		keys = append(keys, SquareName(int(m.From()))+SquareName(int(m.To())))
	}
	sort.Strings(keys)
	return keys
}

func queenOnly(ml []dragontoothmg.Move) []dragontoothmg.Move {
	var result []dragontoothmg.Move
	for _, m := range ml {
		if promote := m.Promote(); promote == 0 || promote == dragontoothmg.Queen {
			result = append(result, m)
		}
	}
	return result
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) int {
	var ml = queenOnly(b.GenerateLegalMoves())
	if depth == 1 {
		return len(ml)
	}
	var result = 0
	for _, m := range ml {
		var unapply = b.Apply(m)
		result += dragontoothPerft(b, depth-1)
		unapply()
	}
	return result
}

func TestMovesMatchDragontooth(t *testing.T) {
	for _, fen := range testFENs {
		var p = mustPosition(t, fen)
		var b = dragontoothmg.ParseFen(fen)
		var ours = ourMoveKeys(&p)
		var theirs = dragontoothMoveKeys(&b)
		if fmt.Sprint(ours) != fmt.Sprint(theirs) {
			t.Error(fen, ours, theirs)
		}
	}
}

func TestPerftMatchesDragontooth(t *testing.T) {
	for _, fen := range testFENs {
		var p = mustPosition(t, fen)
		var b = dragontoothmg.ParseFen(fen)
		var depth = 3
		if nodes, expected := p.Perft(depth), dragontoothPerft(&b, depth); nodes != expected {
			t.Error(fen, nodes, expected)
		}
	}
}

func TestStatusMatchesNotnil(t *testing.T) {
	var tests = append([]string{
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"k7/8/1QK5/8/8/8/8/8 b - - 0 1",
		"6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1",
	}, testFENs...)
	for _, fen := range tests {
		var p = mustPosition(t, fen)
		var opt, err = chess.FEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var game = chess.NewGame(opt)
		var _, result = p.GenerateLegalMoves()
		var expected = Ongoing
		switch game.Position().Status() {
		case chess.Checkmate:
			expected = WinFor(p.SideToMove.Opposite())
		case chess.Stalemate:
			expected = Draw
		}
		if result != expected {
			t.Error(fen, result, expected)
		}
		var count = 0
		for _, m := range game.ValidMoves() {
			if m.Promo() == chess.NoPieceType || m.Promo() == chess.Queen {
				count++
			}
		}
		if count != len(ourMoveKeys(&p)) {
			t.Error(fen, count)
		}
	}
}
