package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/ChessAI/pkg/book"
	. "github.com/ChizhovVadim/ChessAI/pkg/common"
	"github.com/ChizhovVadim/ChessAI/pkg/eval"
)

// Engine picks a move: book reply first, then a minimax search whose depth
// depends on whether the tablebase knows the position.
// An Engine runs one search at a time.
type Engine struct {
	Options   Options
	book      *book.Book
	evaluator *eval.EvaluationService
	log       zerolog.Logger
	stats     Stats
}

type Stats struct {
	BookHit bool
	Depth   int
	Nodes   int64
	Time    time.Duration
}

// NewEngine accepts a nil book (no book) and a nil evaluator (no tablebase).
func NewEngine(options Options, openingBook *book.Book, evaluator *eval.EvaluationService, logger zerolog.Logger) *Engine {
	if evaluator == nil {
		evaluator = eval.NewEvaluationService(nil)
	}
	return &Engine{
		Options:   options,
		book:      openingBook,
		evaluator: evaluator,
		log:       logger,
	}
}

func (e *Engine) Search(p *Position, progress func(float64)) (Move, error) {
	var start = time.Now()
	if e.book != nil {
		if m, ok := e.book.Lookup(p); ok {
			e.stats = Stats{BookHit: true, Time: time.Since(start)}
			e.log.Debug().
				Str("fen", p.String()).
				Str("move", p.MoveLAN(m)).
				Msg("book move")
			reportProgress(progress, 1)
			return m, nil
		}
	}

	var depth = e.Options.Depth
	var endgame = e.evaluator.IsInEndgame(p)
	if endgame {
		depth = e.Options.EndgameDepth
	}
	e.log.Debug().
		Str("fen", p.String()).
		Int("depth", depth).
		Bool("endgame", endgame).
		Msg("search started")

	var search = NewMinimax(e.evaluator, e.Options.FrontierFilter)
	var m, err = search.FindBestMove(p, depth, progress)
	e.stats = Stats{
		Depth: depth,
		Nodes: search.Nodes(),
		Time:  time.Since(start),
	}
	if err != nil {
		return MoveEmpty, err
	}
	e.log.Debug().
		Str("move", p.MoveLAN(m)).
		Int64("nodes", e.stats.Nodes).
		Dur("time", e.stats.Time).
		Msg("search finished")
	return m, nil
}

// Stats describes the last call to Search.
func (e *Engine) Stats() Stats {
	return e.stats
}
