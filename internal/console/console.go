package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/ChessAI/internal/san"
	"github.com/ChizhovVadim/ChessAI/pkg/common"
	"github.com/ChizhovVadim/ChessAI/pkg/worker"
)

type Worker interface {
	Submit(p common.Position) error
	Poll() worker.State
}

type Options struct {
	Human        common.Color
	PollInterval time.Duration
}

func NewOptions() Options {
	return Options{
		Human:        common.White,
		PollInterval: 100 * time.Millisecond,
	}
}

// Game is a human against engine game played on a text terminal.
// The engine searches on the worker while the game keeps polling it.
type Game struct {
	options  Options
	worker   Worker
	out      io.Writer
	log      zerolog.Logger
	start    common.Position
	position common.Position
	moves    []common.Move
	thinking bool
	progress int
}

func NewGame(options Options, w Worker, out io.Writer, logger zerolog.Logger) *Game {
	return &Game{
		options: options,
		worker:  w,
		out:     out,
		log:     logger,
	}
}

// Run plays from start until "quit" or the end of input.
// Commands besides moves: new, go, moves, fen, board.
func (g *Game) Run(ctx context.Context, in io.Reader, start common.Position) error {
	eg, ctx := errgroup.WithContext(ctx)
	var lines = make(chan string)

	eg.Go(func() error {
		defer close(lines)
		return readLines(ctx, in, lines)
	})

	eg.Go(func() error {
		return g.loop(ctx, start, lines)
	})

	return eg.Wait()
}

func readLines(ctx context.Context, in io.Reader, lines chan<- string) error {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "quit" {
			return nil
		}
		if line == "" {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case lines <- line:
		}
	}
	return scanner.Err()
}

func (g *Game) loop(ctx context.Context, start common.Position, lines <-chan string) error {
	var ticker = time.NewTicker(g.options.PollInterval)
	defer ticker.Stop()

	if err := g.newGame(start); err != nil {
		return err
	}
	for {
		// input waits while the engine thinks
		var input <-chan string
		if !g.thinking {
			input = lines
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-input:
			if !ok {
				return nil
			}
			if err := g.handle(line); err != nil {
				return err
			}
		case <-ticker.C:
			if g.thinking {
				if err := g.pollEngine(); err != nil {
					return err
				}
			}
		}
	}
}

func (g *Game) newGame(start common.Position) error {
	g.start = start
	g.position = start
	g.moves = g.moves[:0]
	printBoard(g.out, &g.position)
	return g.next()
}

func (g *Game) handle(line string) error {
	switch line {
	case "new":
		return g.newGame(g.start)
	case "moves":
		var s, err = san.EncodeLine(g.start, g.moves)
		if err != nil {
			g.log.Warn().Err(err).Msg("san failed")
			return nil
		}
		fmt.Fprintln(g.out, s)
		return nil
	case "fen":
		fmt.Fprintln(g.out, g.position.String())
		return nil
	case "board":
		printBoard(g.out, &g.position)
		return nil
	}

	if g.position.GameResult().IsOver() {
		fmt.Fprintln(g.out, "game over")
		return nil
	}
	if line == "go" {
		return g.think()
	}
	if g.position.SideToMove != g.options.Human {
		fmt.Fprintln(g.out, "engine to move, type go")
		return nil
	}
	var m, err = san.Decode(&g.position, line)
	if err != nil {
		fmt.Fprintln(g.out, "bad move", line)
		g.log.Debug().Err(err).Msg("bad move")
		return nil
	}
	g.play(m)
	return g.next()
}

// next starts the engine when it is its turn.
func (g *Game) next() error {
	var result = g.position.GameResult()
	if result.IsOver() {
		printResult(g.out, result)
		return nil
	}
	if g.position.SideToMove == g.options.Human {
		fmt.Fprintf(g.out, "your move (%v)\n", g.position.SideToMove)
		return nil
	}
	return g.think()
}

func (g *Game) think() error {
	if err := g.worker.Submit(g.position); err != nil {
		return err
	}
	g.thinking = true
	g.progress = -1
	return nil
}

func (g *Game) pollEngine() error {
	var state = g.worker.Poll()
	switch state.Kind {
	case worker.Thinking:
		var percent = int(state.Progress * 100)
		if percent/10 != g.progress/10 {
			fmt.Fprintf(g.out, "thinking %d%%\n", percent)
		}
		g.progress = percent
	case worker.Finished:
		g.thinking = false
		if state.Err != nil {
			fmt.Fprintln(g.out, "engine error:", state.Err)
			g.log.Error().Err(state.Err).Str("fen", g.position.String()).Msg("search failed")
			return nil
		}
		var lan = g.position.MoveLAN(state.Move)
		var s, err = san.Encode(&g.position, state.Move)
		if err != nil {
			g.log.Warn().Err(err).Str("move", lan).Msg("san failed")
			s = lan
		}
		fmt.Fprintf(g.out, "engine plays %v (%v)\n", lan, s)
		g.play(state.Move)
		return g.next()
	}
	return nil
}

func (g *Game) play(m common.Move) {
	g.moves = append(g.moves, m)
	g.position = g.position.MakeMove(m)
	printBoard(g.out, &g.position)
}

func printResult(w io.Writer, result common.GameResult) {
	if winner, ok := result.Winner(); ok {
		fmt.Fprintf(w, "checkmate, %v wins\n", winner)
	} else {
		fmt.Fprintln(w, "stalemate")
	}
}
