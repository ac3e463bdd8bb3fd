package tablebase

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ChizhovVadim/ChessAI/pkg/common"
)

var ErrBadRecord = errors.New("bad tablebase record")

// WDL is a win/draw/loss classification from the side to move's point of view.
type WDL int

const (
	Loss        WDL = -2
	BlessedLoss WDL = -1
	Draw        WDL = 0
	CursedWin   WDL = 1
	Win         WDL = 2
)

var wdlNames = map[WDL]string{
	Loss:        "loss",
	BlessedLoss: "blessed-loss",
	Draw:        "draw",
	CursedWin:   "cursed-win",
	Win:         "win",
}

func (w WDL) String() string {
	if name, ok := wdlNames[w]; ok {
		return name
	}
	return strconv.Itoa(int(w))
}

// ParseWDL accepts either a name ("win", "cursed-win", ...) or a number in -2..2.
func ParseWDL(s string) (WDL, error) {
	for wdl, name := range wdlNames {
		if name == s {
			return wdl, nil
		}
	}
	var n, err = strconv.Atoi(s)
	if err != nil || n < int(Loss) || n > int(Win) {
		return Draw, fmt.Errorf("%w: wdl %q", ErrBadRecord, s)
	}
	return WDL(n), nil
}

// Result of a probe. DTZ is signed like WDL: positive when the side to move wins.
type Result struct {
	WDL    WDL
	DTZ    int
	HasDTZ bool
}

type Prober interface {
	// Probe reports false when the table has no data for the position.
	Probe(p *common.Position) (Result, bool)
	MaxPieces() int
}

type NoopProber struct{}

func (NoopProber) Probe(p *common.Position) (Result, bool) {
	return Result{}, false
}

func (NoopProber) MaxPieces() int {
	return 0
}

// Winner turns a side to move classification into an absolute result.
// Cursed wins count as wins and blessed losses as losses.
func Winner(p *common.Position, r Result) common.GameResult {
	if r.WDL > Draw {
		return common.WinFor(p.SideToMove)
	}
	if r.WDL < Draw {
		return common.WinFor(p.SideToMove.Opposite())
	}
	return common.Draw
}

type chain []Prober

// Chain asks each prober in turn and returns the first hit.
func Chain(probers ...Prober) Prober {
	var result chain
	for _, prober := range probers {
		if prober != nil {
			result = append(result, prober)
		}
	}
	if len(result) == 0 {
		return NoopProber{}
	}
	if len(result) == 1 {
		return result[0]
	}
	return result
}

func (c chain) Probe(p *common.Position) (Result, bool) {
	for _, prober := range c {
		if r, ok := prober.Probe(p); ok {
			return r, true
		}
	}
	return Result{}, false
}

func (c chain) MaxPieces() int {
	var result = 0
	for _, prober := range c {
		result = common.Max(result, prober.MaxPieces())
	}
	return result
}

// normalize drops an en passant file that no legal capture can use,
// so a position reached over the board matches its table key.
func normalize(p *common.Position) common.Position {
	var result = *p
	if result.EpFile == common.FileNone {
		return result
	}
	var ml, _ = result.GenerateLegalMoves()
	for _, m := range ml {
		if m.Kind() == common.EnPassant {
			return result
		}
	}
	result.EpFile = common.FileNone
	return result
}
