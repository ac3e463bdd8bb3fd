package san

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/ChizhovVadim/ChessAI/pkg/common"
)

func toChessPosition(p *common.Position) (*chess.Position, error) {
	var opt, err = chess.FEN(p.String())
	if err != nil {
		return nil, err
	}
	return chess.NewGame(opt).Position(), nil
}

// Encode renders m, legal in p, in standard algebraic notation.
func Encode(p *common.Position, m common.Move) (string, error) {
	var pos, err = toChessPosition(p)
	if err != nil {
		return "", err
	}
	move, err := chess.UCINotation{}.Decode(pos, p.MoveLAN(m))
	if err != nil {
		return "", err
	}
	return chess.AlgebraicNotation{}.Encode(pos, move), nil
}

// Decode accepts standard algebraic notation ("Nf3", "O-O", "exd8=Q") or
// long algebraic notation ("g1f3").
func Decode(p *common.Position, s string) (common.Move, error) {
	if m, err := p.ParseMoveLAN(s); err == nil {
		return m, nil
	}
	var pos, err = toChessPosition(p)
	if err != nil {
		return common.MoveEmpty, err
	}
	move, err := chess.AlgebraicNotation{}.Decode(pos, s)
	if err != nil {
		return common.MoveEmpty, fmt.Errorf("bad move %q: %w", s, err)
	}
	if promo := move.Promo(); promo != chess.NoPieceType && promo != chess.Queen {
		return common.MoveEmpty, fmt.Errorf("unsupported promotion %q", s)
	}
	return p.ParseMoveLAN(move.String())
}

// EncodeLine renders moves played from start as numbered SAN: "1. e4 e5 2. Nf3".
func EncodeLine(start common.Position, moves []common.Move) (string, error) {
	var sb strings.Builder
	var p = start
	var fullMove = 1
	for i, m := range moves {
		var s, err = Encode(&p, m)
		if err != nil {
			return "", err
		}
		if i != 0 {
			sb.WriteString(" ")
		}
		if p.SideToMove == common.White {
			fmt.Fprintf(&sb, "%v. ", fullMove)
		} else if i == 0 {
			fmt.Fprintf(&sb, "%v... ", fullMove)
		}
		sb.WriteString(s)
		if p.SideToMove == common.Black {
			fullMove++
		}
		p = p.MakeMove(m)
	}
	return sb.String(), nil
}
