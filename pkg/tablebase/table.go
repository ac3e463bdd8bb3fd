package tablebase

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ChizhovVadim/ChessAI/pkg/common"
)

// Table is an in-memory tablebase loaded from text files.
// Each line holds "<fen>;<wdl>[;<dtz>]", lines starting with '#' are comments.
// A loaded Table is read only and safe for concurrent probes.
type Table struct {
	entries   map[common.Position]Result
	maxPieces int
}

func NewTable() *Table {
	return &Table{
		entries: make(map[common.Position]Result),
	}
}

func Open(paths ...string) (*Table, error) {
	var t = NewTable()
	for _, path := range paths {
		if err := t.loadFile(path); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) loadFile(path string) error {
	var file, err = os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := t.Load(file); err != nil {
		return fmt.Errorf("%v: %w", path, err)
	}
	return nil
}

func (t *Table) Load(r io.Reader) error {
	var scanner = bufio.NewScanner(r)
	var lineNo = 0
	for scanner.Scan() {
		lineNo++
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var p, result, err = parseRecord(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		t.Add(p, result)
	}
	return scanner.Err()
}

func parseRecord(line string) (common.Position, Result, error) {
	var fields = strings.Split(line, ";")
	if len(fields) < 2 || len(fields) > 3 {
		return common.Position{}, Result{}, fmt.Errorf("%w: %q", ErrBadRecord, line)
	}
	var p, err = common.NewPositionFromFEN(strings.TrimSpace(fields[0]))
	if err != nil {
		return common.Position{}, Result{}, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}
	wdl, err := ParseWDL(strings.TrimSpace(fields[1]))
	if err != nil {
		return common.Position{}, Result{}, err
	}
	var result = Result{WDL: wdl}
	if len(fields) == 3 && strings.TrimSpace(fields[2]) != "" {
		var dtz, err = strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return common.Position{}, Result{}, fmt.Errorf("%w: dtz %q", ErrBadRecord, fields[2])
		}
		result.DTZ = dtz
		result.HasDTZ = true
	}
	return p, result, nil
}

func (t *Table) Add(p common.Position, r Result) {
	t.entries[normalize(&p)] = r
	t.maxPieces = common.Max(t.maxPieces, p.CountPieces())
}

func (t *Table) Probe(p *common.Position) (Result, bool) {
	if p.CountPieces() > t.maxPieces {
		return Result{}, false
	}
	var r, ok = t.entries[normalize(p)]
	return r, ok
}

func (t *Table) MaxPieces() int {
	return t.maxPieces
}

func (t *Table) Len() int {
	return len(t.entries)
}
