package book

import (
	"fmt"

	"github.com/ChizhovVadim/ChessAI/pkg/common"
)

// Entry is a book reply: the move, in long algebraic notation, to play in FEN.
type Entry struct {
	Name string
	FEN  string
	Move string
}

var defaultEntries = []Entry{
	{"King's pawn", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "e7e5"},
	{"King's knight", "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2", "b8c6"},
	{"Giuoco Piano", "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3", "f8c5"},
	{"Ruy Lopez, Morphy defence", "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3", "a7a6"},
	{"Indian game", "rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1", "g8f6"},
	{"East Indian defence", "rnbqkb1r/pppppppp/5n2/8/2PP4/8/PP2PPPP/RNBQKBNR b KQkq c3 0 2", "e7e6"},
}

// Book maps exact positions, castling rights and en passant file included,
// to a canned reply.
type Book struct {
	entries map[common.Position]common.Move
}

func New(entries ...Entry) (*Book, error) {
	var b = &Book{
		entries: make(map[common.Position]common.Move),
	}
	for _, entry := range entries {
		if err := b.Add(entry); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Default returns the built-in book.
func Default() *Book {
	var b, err = New(defaultEntries...)
	if err != nil {
		panic(err)
	}
	return b
}

// Add rejects malformed positions and moves that are not legal in them.
func (b *Book) Add(entry Entry) error {
	var p, err = common.NewPositionFromFEN(entry.FEN)
	if err != nil {
		return fmt.Errorf("book entry %q: %w", entry.Name, err)
	}
	m, err := p.ParseMoveLAN(entry.Move)
	if err != nil {
		return fmt.Errorf("book entry %q: %w", entry.Name, err)
	}
	b.entries[p] = m
	return nil
}

func (b *Book) Lookup(p *common.Position) (common.Move, bool) {
	var m, ok = b.entries[*p]
	return m, ok
}

func (b *Book) Len() int {
	return len(b.entries)
}
