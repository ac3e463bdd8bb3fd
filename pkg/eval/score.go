package eval

import (
	"fmt"
	"math"

	. "github.com/ChizhovVadim/ChessAI/pkg/common"
)

// Score is positive when Black stands better and negative when White does.
type Score int16

const (
	MinScore  Score = math.MinInt16
	MaxScore  Score = math.MaxInt16
	DrawScore Score = 0
)

// mateWindow bounds the distance a checkmate score is ever offset by.
const mateWindow = 1000

// ScoreForCheckmate is the score of a forced win for winner in movesUntil plies.
// Nearer mates are more extreme.
func ScoreForCheckmate(winner Color, movesUntil int) Score {
	movesUntil = Min(Max(movesUntil, 0), mateWindow)
	if winner == White {
		return MinScore + Score(movesUntil)
	}
	return MaxScore - Score(movesUntil)
}

// Mate reports the winner and distance when s is a checkmate score.
func (s Score) Mate() (winner Color, movesUntil int, ok bool) {
	if s <= MinScore+mateWindow {
		return White, int(s - MinScore), true
	}
	if s >= MaxScore-mateWindow {
		return Black, int(MaxScore - s), true
	}
	return White, 0, false
}

func (s Score) String() string {
	if winner, moves, ok := s.Mate(); ok {
		return fmt.Sprintf("%v mates in %d", winner, moves)
	}
	return fmt.Sprintf("cp %d", int(s))
}
