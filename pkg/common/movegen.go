package common

// moveRule appends the moves of one rule category for the side to move.
type moveRule func(p *Position, ml []Move) []Move

// Chess rules are fixed, so the pipeline is a closed array of rules.
var pseudoLegalRules = [...]moveRule{
	genPawnMoves,
	genKnightMoves,
	genDiagonalMoves,
	genStraightMoves,
	genKingMoves,
	genCastling,
}

type direction struct {
	df, dr int
}

var (
	knightSteps = [...]direction{
		{1, 2}, {2, 1}, {-1, 2}, {-2, 1}, {1, -2}, {2, -1}, {-1, -2}, {-2, -1},
	}
	kingSteps = [...]direction{
		{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	diagonalRays = [...]direction{
		{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	}
	straightRays = [...]direction{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}
)

func pawnForward(c Color) int {
	return let(c == White, 1, -1)
}

// GeneratePseudoLegalMoves appends moves that obey the piece movement rules
// but may leave the mover's king attacked.
func (p *Position) GeneratePseudoLegalMoves(ml []Move) []Move {
	for _, rule := range pseudoLegalRules {
		ml = rule(p, ml)
	}
	return ml
}

// GenerateLegalMoves returns every legal move of the side to move. When there
// is none the result reports checkmate (win for the opponent) or stalemate.
func (p *Position) GenerateLegalMoves() ([]Move, GameResult) {
	var ml = p.GeneratePseudoLegalMoves(make([]Move, 0, 64))
	ml = p.filterLegal(ml)
	if len(ml) != 0 {
		return ml, Ongoing
	}
	if p.IsCheck() {
		return ml, WinFor(p.SideToMove.Opposite())
	}
	return ml, Draw
}

func (p *Position) filterLegal(ml []Move) []Move {
	var us = p.SideToMove
	var n = 0
	for _, m := range ml {
		var child = p.MakeMove(m)
		if !child.IsSquareAttacked(child.KingSquare(us), child.SideToMove) {
			ml[n] = m
			n++
		}
	}
	return ml[:n]
}

// FilterFrontierMoves keeps quiet moves and castling, dropping captures and
// en passant. The search uses it one ply above the horizon.
func (p *Position) FilterFrontierMoves(ml []Move) []Move {
	var n = 0
	for _, m := range ml {
		var keep bool
		switch m.Kind() {
		case SimpleMove:
			keep = p.IsEmpty(m.To())
		case Castling:
			keep = true
		}
		if keep {
			ml[n] = m
			n++
		}
	}
	return ml[:n]
}

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool {
	return p.IsSquareAttacked(p.KingSquare(p.SideToMove), p.SideToMove.Opposite())
}

// GameResult reports checkmate/stalemate for the side to move.
// It stops at the first legal move found.
func (p *Position) GameResult() GameResult {
	var buffer [MaxMoves]Move
	var us = p.SideToMove
	for _, m := range p.GeneratePseudoLegalMoves(buffer[:0]) {
		var child = p.MakeMove(m)
		if !child.IsSquareAttacked(child.KingSquare(us), child.SideToMove) {
			return Ongoing
		}
	}
	if p.IsCheck() {
		return WinFor(us.Opposite())
	}
	return Draw
}

func (p *Position) IsSquareAttacked(sq int, by Color) bool {
	var pawn = MakePiece(Pawn, by)
	var dr = -pawnForward(by)
	for _, df := range [...]int{-1, 1} {
		if from, ok := Offset(sq, df, dr); ok && p.Board[from] == pawn {
			return true
		}
	}
	if p.stepAttacked(sq, knightSteps[:], MakePiece(Knight, by)) ||
		p.stepAttacked(sq, kingSteps[:], MakePiece(King, by)) {
		return true
	}
	return p.rayAttacked(sq, diagonalRays[:], MakePiece(Bishop, by), MakePiece(Queen, by)) ||
		p.rayAttacked(sq, straightRays[:], MakePiece(Rook, by), MakePiece(Queen, by))
}

func (p *Position) stepAttacked(sq int, steps []direction, attacker Piece) bool {
	for _, d := range steps {
		if from, ok := Offset(sq, d.df, d.dr); ok && p.Board[from] == attacker {
			return true
		}
	}
	return false
}

func (p *Position) rayAttacked(sq int, rays []direction, slider, queen Piece) bool {
	for _, d := range rays {
		for from, ok := Offset(sq, d.df, d.dr); ok; from, ok = Offset(from, d.df, d.dr) {
			var piece = p.Board[from]
			if piece == NoPiece {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break
		}
	}
	return false
}

func genPawnMoves(p *Position, ml []Move) []Move {
	var us = p.SideToMove
	var pawn = MakePiece(Pawn, us)
	var enemyPawn = MakePiece(Pawn, us.Opposite())
	var forward = pawnForward(us)
	var startRank = let(us == White, Rank2, Rank7)
	var epRank = let(us == White, Rank5, Rank4)
	for from, piece := range p.Board {
		if piece != pawn {
			continue
		}
		if to, ok := Offset(from, 0, forward); ok && p.IsEmpty(to) {
			ml = append(ml, NewSimpleMove(from, to))
			if Rank(from) == startRank {
				if to2, ok := Offset(to, 0, forward); ok && p.IsEmpty(to2) {
					ml = append(ml, NewSimpleMove(from, to2))
				}
			}
		}
		for _, df := range [...]int{-1, 1} {
			var to, ok = Offset(from, df, forward)
			if !ok {
				continue
			}
			var target = p.Board[to]
			if target != NoPiece {
				if target.Color() != us {
					ml = append(ml, NewSimpleMove(from, to))
				}
			} else if Rank(from) == epRank && File(to) == p.EpFile &&
				p.Board[MakeSquare(File(to), Rank(from))] == enemyPawn {
				ml = append(ml, NewEnPassant(from, to))
			}
		}
	}
	return ml
}

func genKnightMoves(p *Position, ml []Move) []Move {
	return genStepMoves(p, ml, Knight, knightSteps[:])
}

func genKingMoves(p *Position, ml []Move) []Move {
	return genStepMoves(p, ml, King, kingSteps[:])
}

func genDiagonalMoves(p *Position, ml []Move) []Move {
	return genRayMoves(p, ml, Bishop, diagonalRays[:])
}

func genStraightMoves(p *Position, ml []Move) []Move {
	return genRayMoves(p, ml, Rook, straightRays[:])
}

func genStepMoves(p *Position, ml []Move, kind int, steps []direction) []Move {
	var us = p.SideToMove
	var mover = MakePiece(kind, us)
	for from, piece := range p.Board {
		if piece != mover {
			continue
		}
		for _, d := range steps {
			var to, ok = Offset(from, d.df, d.dr)
			if !ok {
				continue
			}
			if target := p.Board[to]; target == NoPiece || target.Color() != us {
				ml = append(ml, NewSimpleMove(from, to))
			}
		}
	}
	return ml
}

// genRayMoves handles sliders of the given kind together with the queen.
func genRayMoves(p *Position, ml []Move, kind int, rays []direction) []Move {
	var us = p.SideToMove
	var slider = MakePiece(kind, us)
	var queen = MakePiece(Queen, us)
	for from, piece := range p.Board {
		if piece != slider && piece != queen {
			continue
		}
		for _, d := range rays {
			for to, ok := Offset(from, d.df, d.dr); ok; to, ok = Offset(to, d.df, d.dr) {
				var target = p.Board[to]
				if target == NoPiece {
					ml = append(ml, NewSimpleMove(from, to))
					continue
				}
				if target.Color() != us {
					ml = append(ml, NewSimpleMove(from, to))
				}
				break
			}
		}
	}
	return ml
}

func castleFlag(c Color, kingSide bool) int {
	if c == White {
		return let(kingSide, WhiteKingSide, WhiteQueenSide)
	}
	return let(kingSide, BlackKingSide, BlackQueenSide)
}

func genCastling(p *Position, ml []Move) []Move {
	var us = p.SideToMove
	var them = us.Opposite()
	for _, kingSide := range [...]bool{true, false} {
		if !p.CanCastle(castleFlag(us, kingSide)) {
			continue
		}
		var kingFrom, kingTo, rookFrom, _ = castlingSquares(kingSide, us)
		if p.Board[kingFrom] != MakePiece(King, us) ||
			p.Board[rookFrom] != MakePiece(Rook, us) {
			continue
		}
		var step = let(rookFrom > kingFrom, 1, -1)
		var pathEmpty = true
		for sq := kingFrom + step; sq != rookFrom; sq += step {
			if !p.IsEmpty(sq) {
				pathEmpty = false
				break
			}
		}
		if !pathEmpty {
			continue
		}
		// the king may not start on, cross or land on an attacked square
		var safe = true
		for sq := kingFrom; ; sq += step {
			if p.IsSquareAttacked(sq, them) {
				safe = false
				break
			}
			if sq == kingTo {
				break
			}
		}
		if safe {
			ml = append(ml, NewCastling(kingSide))
		}
	}
	return ml
}

// Perft counts leaf nodes of the legal move tree. Promotions are queen only.
func (p *Position) Perft(depth int) int {
	if depth <= 0 {
		return 1
	}
	var ml, _ = p.GenerateLegalMoves()
	if depth == 1 {
		return len(ml)
	}
	var result = 0
	for _, m := range ml {
		var child = p.MakeMove(m)
		result += child.Perft(depth - 1)
	}
	return result
}
