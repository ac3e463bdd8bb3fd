package worker

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/ChessAI/pkg/common"
)

var (
	ErrBusy        = errors.New("search still run")
	ErrClosed      = errors.New("worker closed")
	ErrEngineFault = errors.New("engine fault")
)

type Kind int

const (
	Idle Kind = iota
	Thinking
	Finished
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Thinking:
		return "thinking"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// State is what the owner of a Worker sees. Progress is meaningful while
// Thinking, Move and Err once Finished.
type State struct {
	Kind     Kind
	Progress float64
	Move     common.Move
	Err      error
}

type Searcher interface {
	Search(p *common.Position, progress func(float64)) (common.Move, error)
}

type request struct {
	id        int
	position  common.Position
	terminate bool
}

type progressEvent struct {
	id    int
	value float64
}

type resultEvent struct {
	id   int
	move common.Move
	err  error
}

// Worker runs searches on its own goroutine, one at a time.
// Submit, Poll and Close must be called from a single goroutine.
type Worker struct {
	searcher   Searcher
	log        zerolog.Logger
	requests   chan request
	progress   chan progressEvent
	results    chan resultEvent
	done       chan struct{}
	state      State
	generation int
	closed     bool
}

const progressBuffer = 16

func New(searcher Searcher, logger zerolog.Logger) *Worker {
	var w = &Worker{
		searcher: searcher,
		log:      logger,
		requests: make(chan request, 1),
		progress: make(chan progressEvent, progressBuffer),
		results:  make(chan resultEvent, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w
}

// Submit starts a search of a copy of p. A finished result that was not
// read yet is discarded.
func (w *Worker) Submit(p common.Position) error {
	if w.closed {
		return ErrClosed
	}
	w.Poll()
	if w.state.Kind == Thinking {
		return ErrBusy
	}
	w.generation++
	w.state = State{Kind: Thinking}
	w.requests <- request{id: w.generation, position: p}
	w.log.Debug().
		Int("id", w.generation).
		Str("fen", p.String()).
		Msg("search request accepted")
	return nil
}

// Poll never blocks. It applies every pending event and returns the
// resulting state.
func (w *Worker) Poll() State {
	for {
		select {
		case e := <-w.results:
			if e.id == w.generation && w.state.Kind == Thinking {
				w.state = State{Kind: Finished, Progress: 1, Move: e.move, Err: e.err}
			}
		case e := <-w.progress:
			if e.id == w.generation && w.state.Kind == Thinking && e.value > w.state.Progress {
				w.state.Progress = common.Min(e.value, 1)
			}
		default:
			return w.state
		}
	}
}

// Close stops the worker goroutine. A running search is finished first.
func (w *Worker) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.requests <- request{terminate: true}
	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)
	w.log.Debug().Msg("worker started")
	for req := range w.requests {
		if req.terminate {
			w.log.Debug().Msg("worker stopped")
			return
		}
		var m, err = w.search(req)
		if err != nil {
			w.log.Warn().Int("id", req.id).Err(err).Msg("search failed")
		} else {
			w.log.Debug().Int("id", req.id).Str("move", m.String()).Msg("search finished")
		}
		w.results <- resultEvent{id: req.id, move: m, err: err}
	}
}

func (w *Worker) search(req request) (m common.Move, err error) {
	defer func() {
		if r := recover(); r != nil {
			m = common.MoveEmpty
			err = fmt.Errorf("%w: %v", ErrEngineFault, r)
		}
	}()
	var p = req.position
	return w.searcher.Search(&p, func(value float64) {
		w.sendProgress(progressEvent{id: req.id, value: value})
	})
}

// sendProgress drops the oldest pending event when the consumer is slow.
func (w *Worker) sendProgress(e progressEvent) {
	for {
		select {
		case w.progress <- e:
			return
		default:
		}
		select {
		case <-w.progress:
		default:
		}
	}
}
