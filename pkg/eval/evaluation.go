package eval

import (
	. "github.com/ChizhovVadim/ChessAI/pkg/common"
	"github.com/ChizhovVadim/ChessAI/pkg/tablebase"
)

const (
	// positions with fewer pieces are scored from game end or tablebase first
	tablebasePieces = 6
	// a mate without a known distance ranks behind every mate the search finds
	unknownMateDistance = 100
)

type EvaluationService struct {
	prober tablebase.Prober
}

func NewEvaluationService(prober tablebase.Prober) *EvaluationService {
	if prober == nil {
		prober = tablebase.NoopProber{}
	}
	return &EvaluationService{prober: prober}
}

// QuickEvaluate sums material and piece-square bonuses.
func (e *EvaluationService) QuickEvaluate(p *Position) Score {
	var score = 0
	for sq, piece := range p.Board {
		if piece != NoPiece {
			score += pst[piece][sq]
		}
	}
	return Score(score)
}

func (e *EvaluationService) FullEvaluate(p *Position) Score {
	if score, ok := e.endgameScore(p); ok {
		return score
	}
	return e.QuickEvaluate(p)
}

func (e *EvaluationService) endgameScore(p *Position) (Score, bool) {
	if p.CountPieces() >= tablebasePieces {
		return 0, false
	}
	var _, gameResult = p.GenerateLegalMoves()
	if gameResult == Draw {
		return DrawScore, true
	}
	if winner, ok := gameResult.Winner(); ok {
		return ScoreForCheckmate(winner, unknownMateDistance), true
	}
	var r, found = e.prober.Probe(p)
	if !found {
		return 0, false
	}
	var winner, decisive = tablebase.Winner(p, r).Winner()
	if !decisive {
		return DrawScore, true
	}
	var distance = unknownMateDistance
	if r.HasDTZ {
		distance = Abs(r.DTZ)
	}
	return ScoreForCheckmate(winner, distance), true
}

// IsInEndgame reports whether the tablebase classifies the position.
func (e *EvaluationService) IsInEndgame(p *Position) bool {
	var _, found = e.prober.Probe(p)
	return found
}
