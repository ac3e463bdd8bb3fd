package common

var castleMask [64]int

func init() {
	for sq := range castleMask {
		castleMask[sq] = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	}
	castleMask[MakeSquare(FileE, Rank1)] &^= WhiteKingSide | WhiteQueenSide
	castleMask[MakeSquare(FileH, Rank1)] &^= WhiteKingSide
	castleMask[MakeSquare(FileA, Rank1)] &^= WhiteQueenSide
	castleMask[MakeSquare(FileE, Rank8)] &^= BlackKingSide | BlackQueenSide
	castleMask[MakeSquare(FileH, Rank8)] &^= BlackKingSide
	castleMask[MakeSquare(FileA, Rank8)] &^= BlackQueenSide
}

// Apply plays m on p in place. The move is trusted to come from the move
// generator (or from trusted notation); no legality check is made.
func (p *Position) Apply(m Move) {
	var color = p.SideToMove
	p.EpFile = FileNone
	p.SideToMove = color.Opposite()

	switch m.Kind() {
	case SimpleMove:
		var from, to = m.From(), m.To()
		var piece = p.Board[from]
		p.Board[from] = NoPiece
		if piece.Kind() == Pawn {
			if RankDistance(from, to) == 2 {
				p.EpFile = File(to)
			} else if isLastRank(to) {
				piece = MakePiece(Queen, color)
			}
		}
		p.Board[to] = piece
		p.CastleRights &= castleMask[from] & castleMask[to]
	case Castling:
		var kingFrom, kingTo, rookFrom, rookTo = castlingSquares(m.KingSide(), color)
		p.Board[kingFrom] = NoPiece
		p.Board[rookFrom] = NoPiece
		p.Board[rookTo] = MakePiece(Rook, color)
		p.Board[kingTo] = MakePiece(King, color)
		p.CastleRights &= castleMask[kingFrom]
	case EnPassant:
		var from, to = m.From(), m.To()
		p.Board[to] = MakePiece(Pawn, color)
		p.Board[from] = NoPiece
		p.Board[MakeSquare(File(to), Rank(from))] = NoPiece
	}
}

// MakeMove returns the position after m, leaving p untouched.
func (p *Position) MakeMove(m Move) Position {
	var child = *p
	child.Apply(m)
	return child
}
