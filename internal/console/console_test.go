package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/ChessAI/pkg/book"
	"github.com/ChizhovVadim/ChessAI/pkg/common"
	"github.com/ChizhovVadim/ChessAI/pkg/engine"
	"github.com/ChizhovVadim/ChessAI/pkg/worker"
)

func playGame(t *testing.T, fen string, input string) string {
	t.Helper()
	var start, err = common.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	var engineOptions = engine.NewOptions()
	engineOptions.Depth = 2
	var w = worker.New(engine.NewEngine(engineOptions, book.Default(), nil, zerolog.Nop()), zerolog.Nop())
	defer w.Close()

	var options = NewOptions()
	options.PollInterval = time.Millisecond
	var out = &bytes.Buffer{}
	var game = NewGame(options, w, out, zerolog.Nop())
	if err := game.Run(context.Background(), strings.NewReader(input), start); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestPlay(t *testing.T) {
	var tests = []struct {
		fen    string
		input  string
		output []string
	}{
		{common.InitialPositionFen, "e4\nmoves\nquit\nd4\n", []string{
			"your move (white)", "engine plays e7e5 (e5)", "1. e4 e5",
		}},
		{common.InitialPositionFen, "e5\nfen\n", []string{
			"bad move e5", common.InitialPositionFen,
		}},
		{"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "Ra8\ne2e4\n", []string{
			"checkmate, white wins", "game over",
		}},
		{"r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1", "", []string{
			"engine plays a8a1 (Ra1#)", "checkmate, black wins",
		}},
		{"7k/8/6Q1/8/8/8/8/K7 w - - 0 1", "Qf7\n", []string{
			"stalemate",
		}},
	}
	for _, test := range tests {
		var output = playGame(t, test.fen, test.input)
		for _, s := range test.output {
			if !strings.Contains(output, s) {
				t.Error(test.fen, test.input, s)
			}
		}
	}
}

func TestPlayQuitStopsInput(t *testing.T) {
	var output = playGame(t, common.InitialPositionFen, "quit\ne4\n")
	if strings.Contains(output, "engine plays") {
		t.Error(output)
	}
}

func TestPlayEngineMovesForHuman(t *testing.T) {
	var output = playGame(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "go\nmoves\n")
	if !strings.Contains(output, "engine plays e7e5 (e5)") {
		t.Error(output)
	}
}
