package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/ChessAI/internal/cli"
	"github.com/ChizhovVadim/ChessAI/internal/console"
	"github.com/ChizhovVadim/ChessAI/internal/san"
	"github.com/ChizhovVadim/ChessAI/pkg/book"
	"github.com/ChizhovVadim/ChessAI/pkg/common"
	"github.com/ChizhovVadim/ChessAI/pkg/engine"
	"github.com/ChizhovVadim/ChessAI/pkg/eval"
	"github.com/ChizhovVadim/ChessAI/pkg/tablebase"
	"github.com/ChizhovVadim/ChessAI/pkg/worker"
)

const name = "ChessAI"

var versionName = "dev"

func main() {
	var args = cli.ParseArgs(os.Args[1:])
	var verbose, _ = args.GetBool("v", false)
	var logger = newLogger(verbose)

	logger.Debug().
		Str("version", versionName).
		Str("runtime", runtime.Version()).
		Int("numCPU", runtime.NumCPU()).
		Msg(name)

	if err := run(args, logger); err != nil {
		logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	var level = zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func run(args *cli.Args, logger zerolog.Logger) error {
	var handler = cli.NewCommandHandler()
	handler.Add("play", func() error {
		return playCommand(args, logger)
	})
	handler.Add("bestmove", func() error {
		return bestMoveCommand(args, logger)
	})
	handler.Add("perft", func() error {
		return perftCommand(args)
	})
	handler.Add("bench", func() error {
		return benchCommand(args, logger)
	})
	var commandName = args.CommandName()
	if commandName == "" {
		commandName = "play"
	}
	return handler.Execute(commandName)
}

func playCommand(args *cli.Args, logger zerolog.Logger) error {
	var start, err = startPosition(args)
	if err != nil {
		return err
	}
	evaluator, err := newEvaluator(args, logger)
	if err != nil {
		return err
	}
	eng, err := newEngine(args, book.Default(), evaluator, logger)
	if err != nil {
		return err
	}
	var options = console.NewOptions()
	if args.GetString("human", "white") == "black" {
		options.Human = common.Black
	}

	var w = worker.New(eng, logger)
	defer w.Close()
	return console.NewGame(options, w, os.Stdout, logger).
		Run(context.Background(), os.Stdin, start)
}

func bestMoveCommand(args *cli.Args, logger zerolog.Logger) error {
	var p, err = startPosition(args)
	if err != nil {
		return err
	}
	evaluator, err := newEvaluator(args, logger)
	if err != nil {
		return err
	}
	eng, err := newEngine(args, book.Default(), evaluator, logger)
	if err != nil {
		return err
	}
	m, err := eng.Search(&p, nil)
	if err != nil {
		return err
	}
	s, err := san.Encode(&p, m)
	if err != nil {
		return err
	}
	var stats = eng.Stats()
	fmt.Println("bestmove", p.MoveLAN(m), s)
	fmt.Println("Book", stats.BookHit, "Depth", stats.Depth, "Nodes", stats.Nodes, "Time", stats.Time)
	return nil
}

func perftCommand(args *cli.Args) error {
	var p, err = startPosition(args)
	if err != nil {
		return err
	}
	depth, err := args.GetInt("depth", 4)
	if err != nil {
		return err
	}
	var start = time.Now()
	var nodes = p.Perft(depth)
	fmt.Println("Depth", depth, "Nodes", nodes, "Time", time.Since(start))
	return nil
}

func startPosition(args *cli.Args) (common.Position, error) {
	return common.NewPositionFromFEN(args.GetString("fen", common.InitialPositionFen))
}

// newEvaluator wires local tablebase files (-tb a.tb,b.tb) and the lichess
// service (-lichess URL, "default" for the public one).
func newEvaluator(args *cli.Args, logger zerolog.Logger) (*eval.EvaluationService, error) {
	var probers []tablebase.Prober
	if paths := args.GetString("tb", ""); paths != "" {
		var table, err = tablebase.Open(strings.Split(paths, ",")...)
		if err != nil {
			return nil, err
		}
		logger.Info().Int("positions", table.Len()).Msg("tablebase loaded")
		probers = append(probers, table)
	}
	if url := args.GetString("lichess", ""); url != "" {
		if url == "default" {
			url = tablebase.DefaultLichessURL
		}
		probers = append(probers, tablebase.NewLichess(tablebase.LichessOptions{
			BaseURL: url,
			Logger:  logger,
		}))
	}
	return eval.NewEvaluationService(tablebase.Chain(probers...)), nil
}

func newEngine(args *cli.Args, openingBook *book.Book, evaluator *eval.EvaluationService, logger zerolog.Logger) (*engine.Engine, error) {
	var options = engine.NewOptions()
	var err error
	if options.Depth, err = args.GetInt("depth", options.Depth); err != nil {
		return nil, err
	}
	if options.EndgameDepth, err = args.GetInt("endgamedepth", options.EndgameDepth); err != nil {
		return nil, err
	}
	if options.FrontierFilter, err = args.GetBool("frontier", options.FrontierFilter); err != nil {
		return nil, err
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if nobook, _ := args.GetBool("nobook", false); nobook {
		openingBook = nil
	}
	return engine.NewEngine(options, openingBook, evaluator, logger), nil
}
