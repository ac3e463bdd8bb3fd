package common

import (
	"testing"
)

var testFENs = []string{
	// Initial position
	InitialPositionFen,
	// Kiwipete
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	// Enpassant
	"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
	"1K1k4/8/5n2/3p4/8/1BN2B2/6b1/7b w - - 0 1",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"5n1r/6P1/8/8/8/8/8/K6k w - - 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
}

func mustPosition(t *testing.T, fen string) Position {
	t.Helper()
	var p, err = NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func playLAN(t *testing.T, p *Position, moves ...string) {
	t.Helper()
	for _, lan := range moves {
		var m, err = p.ParseMoveLAN(lan)
		if err != nil {
			t.Fatal(err)
		}
		p.Apply(m)
	}
}

func containsMove(ml []Move, m Move) bool {
	for _, x := range ml {
		if x == m {
			return true
		}
	}
	return false
}

func TestLegalMovesKeepKingSafe(t *testing.T) {
	for _, fen := range testFENs {
		var p = mustPosition(t, fen)
		var ml, _ = p.GenerateLegalMoves()
		for _, m := range ml {
			var child = p.MakeMove(m)
			if child.IsSquareAttacked(child.KingSquare(p.SideToMove), child.SideToMove) {
				t.Error(fen, m)
			}
		}
	}
}

func TestEnPassant(t *testing.T) {
	var p = mustPosition(t, InitialPositionFen)
	playLAN(t, &p, "e2e4", "a7a6", "e4e5", "f7f5")
	if p.EpFile != FileF {
		t.Fatal(p.EpFile)
	}
	var ep = NewEnPassant(MustParseSquare("e5"), MustParseSquare("f6"))
	var ml, _ = p.GenerateLegalMoves()
	if !containsMove(ml, ep) {
		t.Fatal(ml)
	}
	p.Apply(ep)
	if !p.IsEmpty(MustParseSquare("f5")) || !p.IsEmpty(MustParseSquare("e5")) {
		t.Error(p.String())
	}
	if p.At(MustParseSquare("f6")) != MakePiece(Pawn, White) {
		t.Error(p.String())
	}
	if p.EpFile != FileNone {
		t.Error(p.EpFile)
	}
}

func TestEnPassantExpires(t *testing.T) {
	var p = mustPosition(t, InitialPositionFen)
	playLAN(t, &p, "e2e4", "a7a6", "e4e5", "f7f5", "g1f3", "a6a5")
	var ml, _ = p.GenerateLegalMoves()
	for _, m := range ml {
		if m.Kind() == EnPassant {
			t.Error(m)
		}
	}
}

func TestPromotion(t *testing.T) {
	var p = mustPosition(t, "5n1r/6P1/8/8/8/8/8/K6k w - - 0 1")
	var ml, _ = p.GenerateLegalMoves()
	var promotions = 0
	for _, m := range ml {
		if p.WhatPiece(m.From()) != Pawn || Rank(m.To()) != Rank8 {
			continue
		}
		promotions++
		var child = p.MakeMove(m)
		if child.At(m.To()) != MakePiece(Queen, White) {
			t.Error(m, child.String())
		}
	}
	if promotions != 3 {
		t.Error(promotions)
	}
}

func TestCastlingKingSide(t *testing.T) {
	var p = mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var ml, _ = p.GenerateLegalMoves()
	var castling = NewCastling(true)
	if !containsMove(ml, castling) || !containsMove(ml, NewCastling(false)) {
		t.Fatal(ml)
	}
	p.Apply(castling)
	if p.At(MustParseSquare("g1")) != MakePiece(King, White) ||
		p.At(MustParseSquare("f1")) != MakePiece(Rook, White) ||
		!p.IsEmpty(MustParseSquare("e1")) ||
		!p.IsEmpty(MustParseSquare("h1")) {
		t.Error(p.String())
	}
	if p.CanCastle(WhiteKingSide | WhiteQueenSide) {
		t.Error(p.CastleRights)
	}
	if !p.CanCastle(BlackKingSide) || !p.CanCastle(BlackQueenSide) {
		t.Error(p.CastleRights)
	}
}

func TestCastlingQueenSide(t *testing.T) {
	var p = mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	p.Apply(NewCastling(false))
	if p.String() != "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 0 1" {
		t.Error(p.String())
	}
}

func TestCastlingDenied(t *testing.T) {
	var tests = []struct {
		name      string
		fen       string
		kingSide  bool
		queenSide bool
	}{
		{"pawn attacks f1", "4k3/8/8/8/8/8/6p1/R3K2R w KQ - 0 1", false, true},
		{"pawn attacks d1", "4k3/8/8/8/8/8/2p5/R3K2R w KQ - 0 1", true, false},
		{"in check", "4k3/8/8/8/4r3/8/8/R3K2R w KQ - 0 1", false, false},
		{"blocked", "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1", false, false},
		{"no rights", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", false, false},
		{"rook missing", "4k3/8/8/8/8/8/8/4K2R w KQ - 0 1", true, false},
		{"b1 attacked only", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
	}
	for _, test := range tests {
		var p = mustPosition(t, test.fen)
		var ml, _ = p.GenerateLegalMoves()
		if containsMove(ml, NewCastling(true)) != test.kingSide ||
			containsMove(ml, NewCastling(false)) != test.queenSide {
			t.Error(test.name, ml)
		}
	}
}

func TestCastleRightsOnRookCapture(t *testing.T) {
	var p = mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	playLAN(t, &p, "a1a8")
	if p.CanCastle(WhiteQueenSide) || p.CanCastle(BlackQueenSide) {
		t.Error(p.String())
	}
	if !p.CanCastle(WhiteKingSide) || !p.CanCastle(BlackKingSide) {
		t.Error(p.String())
	}
}

func TestGameEnd(t *testing.T) {
	var tests = []struct {
		fen    string
		result GameResult
	}{
		{InitialPositionFen, Ongoing},
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", BlackWins},
		{"r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", WhiteWins},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Draw},
		{"k7/8/1QK5/8/8/8/8/8 b - - 0 1", Draw},
	}
	for _, test := range tests {
		var p = mustPosition(t, test.fen)
		var ml, result = p.GenerateLegalMoves()
		if result != test.result {
			t.Error(test.fen, result)
		}
		if result.IsOver() != (len(ml) == 0) {
			t.Error(test.fen, len(ml))
		}
	}
}

func TestIsCheck(t *testing.T) {
	var tests = []struct {
		fen   string
		check bool
	}{
		{InitialPositionFen, false},
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true},
		{"4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", true},
		{"4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", false},
		{"4k3/8/8/8/8/8/8/4K2r w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/4KB1r w - - 0 1", false},
		{"4k3/8/8/8/8/5N2/8/4K3 b - - 0 1", false},
		{"4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", true},
	}
	for _, test := range tests {
		var p = mustPosition(t, test.fen)
		if p.IsCheck() != test.check {
			t.Error(test.fen)
		}
	}
}

func TestFrontierFilter(t *testing.T) {
	var p = mustPosition(t, InitialPositionFen)
	playLAN(t, &p, "e2e4", "d7d5", "e4e5", "f7f5")
	var ml, _ = p.GenerateLegalMoves()
	var quiet = p.FilterFrontierMoves(append([]Move(nil), ml...))
	for _, m := range quiet {
		if m.Kind() == EnPassant || !p.IsEmpty(m.To()) && m.Kind() == SimpleMove {
			t.Error(m)
		}
	}
	if len(quiet) != len(ml)-1 {
		t.Error(len(ml), len(quiet))
	}
}

func TestMoveLAN(t *testing.T) {
	var tests = []struct {
		fen string
		lan string
		str string
	}{
		{InitialPositionFen, "e2e4", "e2e4"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", "O-O-O"},
		{"5n1r/6P1/8/8/8/8/8/K6k w - - 0 1", "g7h8q", "g7h8"},
		{"4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1", "d5e6", "d5e6ep"},
	}
	for _, test := range tests {
		var p = mustPosition(t, test.fen)
		var m, err = p.ParseMoveLAN(test.lan)
		if err != nil {
			t.Error(test.fen, err)
			continue
		}
		if m.String() != test.str || p.MoveLAN(m) != test.lan {
			t.Error(test, m.String(), p.MoveLAN(m))
		}
	}
	var p = mustPosition(t, InitialPositionFen)
	if _, err := p.ParseMoveLAN("e2e5"); err == nil {
		t.Error("illegal move accepted")
	}
}

// Promotions are queen only, so the reference counts below come from
// positions without promotions in reach.
func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes int
	}{
		{InitialPositionFen, 1, 20},
		{InitialPositionFen, 2, 400},
		{InitialPositionFen, 3, 8902},
		{InitialPositionFen, 4, 197281},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
		{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 2, 2079},
	}
	for i, test := range tests {
		var p = mustPosition(t, test.fen)
		var nodes = p.Perft(test.depth)
		if nodes != test.nodes {
			t.Error(i, test, nodes)
		}
	}
}

func TestGameResultMatchesLegalMoves(t *testing.T) {
	var fens = append([]string{
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	}, testFENs...)
	for _, fen := range fens {
		var p = mustPosition(t, fen)
		var _, expected = p.GenerateLegalMoves()
		if result := p.GameResult(); result != expected {
			t.Error(fen, result, expected)
		}
	}
}
