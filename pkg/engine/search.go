package engine

import (
	"errors"
	"fmt"
	"sort"

	. "github.com/ChizhovVadim/ChessAI/pkg/common"
	. "github.com/ChizhovVadim/ChessAI/pkg/eval"
)

var ErrNoLegalMoves = errors.New("no legal moves")

type Evaluator interface {
	QuickEvaluate(p *Position) Score
	FullEvaluate(p *Position) Score
}

// Minimax is a fixed depth alpha-beta search. Black maximizes the score,
// White minimizes it. Every node works on its own copy of the position.
type Minimax struct {
	evaluator      Evaluator
	frontierFilter bool
	maxDepth       int
	nodes          int64
}

type node struct {
	position Position
	estimate Score
}

func NewMinimax(evaluator Evaluator, frontierFilter bool) *Minimax {
	return &Minimax{
		evaluator:      evaluator,
		frontierFilter: frontierFilter,
	}
}

// Nodes is the number of positions visited by the last search.
func (s *Minimax) Nodes() int64 {
	return s.nodes
}

// FindBestMove panics when maxDepth is not positive.
func (s *Minimax) FindBestMove(p *Position, maxDepth int, progress func(float64)) (Move, error) {
	if maxDepth <= 0 {
		panic(fmt.Errorf("search depth %v", maxDepth))
	}
	s.maxDepth = maxDepth
	s.nodes = 1

	var ml, _ = p.GenerateLegalMoves()
	if len(ml) == 0 {
		return MoveEmpty, ErrNoLegalMoves
	}
	reportProgress(progress, 0)

	var maximize = p.SideToMove == Black
	var alpha, beta = MinScore, MaxScore
	var bestMove = MoveEmpty
	for i, m := range ml {
		var child = p.MakeMove(m)
		if maximize {
			var score = s.min(&child, maxDepth-1, alpha, beta)
			if bestMove == MoveEmpty || score > alpha {
				alpha = score
				bestMove = m
			}
		} else {
			var score = s.max(&child, maxDepth-1, alpha, beta)
			if bestMove == MoveEmpty || score < beta {
				beta = score
				bestMove = m
			}
		}
		reportProgress(progress, float64(i+1)/float64(len(ml)))
	}
	return bestMove, nil
}

func reportProgress(progress func(float64), value float64) {
	if progress != nil {
		progress(value)
	}
}

func (s *Minimax) min(p *Position, depth int, alpha, beta Score) Score {
	var children, score, terminal = s.expand(p, depth, false)
	if terminal {
		return score
	}
	for i := range children {
		var score = s.max(&children[i].position, depth-depthLoss(i, depth), alpha, beta)
		if score <= alpha {
			return alpha
		}
		if score < beta {
			beta = score
		}
	}
	return beta
}

func (s *Minimax) max(p *Position, depth int, alpha, beta Score) Score {
	var children, score, terminal = s.expand(p, depth, true)
	if terminal {
		return score
	}
	for i := range children {
		var score = s.min(&children[i].position, depth-depthLoss(i, depth), alpha, beta)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// expand scores game ends and leaves, otherwise it returns the child
// positions ordered best first for the side to move.
// Game end is checked before the depth so a mate on the horizon is a mate.
func (s *Minimax) expand(p *Position, depth int, maximize bool) ([]node, Score, bool) {
	s.nodes++
	if depth <= 0 {
		if result := p.GameResult(); result.IsOver() {
			return nil, s.gameEndScore(result, depth), true
		}
		return nil, s.evaluator.FullEvaluate(p), true
	}

	var ml, result = p.GenerateLegalMoves()
	if result.IsOver() {
		return nil, s.gameEndScore(result, depth), true
	}
	if depth == 1 && s.frontierFilter {
		var quiet = p.FilterFrontierMoves(append([]Move(nil), ml...))
		if len(quiet) != 0 {
			ml = quiet
		}
	}

	var children = make([]node, len(ml))
	for i, m := range ml {
		children[i].position = p.MakeMove(m)
		children[i].estimate = s.evaluator.QuickEvaluate(&children[i].position)
	}
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].estimate < children[j].estimate
	})
	if maximize {
		for i, j := 0, len(children)-1; i < j; i, j = i+1, j-1 {
			children[i], children[j] = children[j], children[i]
		}
	}
	return children, 0, false
}

func (s *Minimax) gameEndScore(result GameResult, depth int) Score {
	if winner, ok := result.Winner(); ok {
		return ScoreForCheckmate(winner, s.maxDepth-depth)
	}
	return DrawScore
}
