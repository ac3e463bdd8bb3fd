package main

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/ChessAI/internal/cli"
	"github.com/ChizhovVadim/ChessAI/pkg/common"
)

var benchFENs = []string{
	common.InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"8/8/4k3/8/2p5/8/B2P2K1/8 w - - 0 1",
}

// benchCommand searches benchFENs in parallel, one engine per goroutine.
func benchCommand(args *cli.Args, logger zerolog.Logger) error {
	var concurrency, err = args.GetInt("concurrency", runtime.NumCPU())
	if err != nil {
		return err
	}
	evaluator, err := newEvaluator(args, logger)
	if err != nil {
		return err
	}
	var positions []common.Position
	for _, fen := range benchFENs {
		var p, err = common.NewPositionFromFEN(fen)
		if err != nil {
			return err
		}
		positions = append(positions, p)
	}

	logger.Info().
		Int("positions", len(positions)).
		Int("concurrency", concurrency).
		Msg("bench started")

	g, ctx := errgroup.WithContext(context.Background())
	var jobs = make(chan common.Position)
	var nodes int64

	g.Go(func() error {
		defer close(jobs)
		for _, p := range positions {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- p:
			}
		}
		return nil
	})

	var start = time.Now()
	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			var eng, err = newEngine(args, nil, evaluator, logger)
			if err != nil {
				return err
			}
			for p := range jobs {
				if _, err := eng.Search(&p, nil); err != nil {
					return fmt.Errorf("%v: %w", p.String(), err)
				}
				atomic.AddInt64(&nodes, eng.Stats().Nodes)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var elapsed = time.Since(start)
	fmt.Println("Time", elapsed)
	fmt.Println("Nodes", nodes)
	fmt.Println("kNPS", nodes/common.Max(1, elapsed.Milliseconds()))
	return nil
}
