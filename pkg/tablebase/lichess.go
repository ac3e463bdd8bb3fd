package tablebase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/ChessAI/pkg/common"
)

const DefaultLichessURL = "https://tablebase.lichess.ovh"

type LichessOptions struct {
	BaseURL   string
	Timeout   time.Duration
	MaxPieces int
	Client    *http.Client
	Logger    zerolog.Logger
}

// Lichess probes the public lichess tablebase service over HTTP.
// Answers (including "no data") are cached, transport failures are not.
type Lichess struct {
	baseURL   string
	timeout   time.Duration
	maxPieces int
	client    *http.Client
	log       zerolog.Logger
	cache     sync.Map
}

type lichessEntry struct {
	result Result
	found  bool
}

var lichessCategories = map[string]WDL{
	"win":          Win,
	"syzygy-win":   Win,
	"maybe-win":    Win,
	"cursed-win":   CursedWin,
	"draw":         Draw,
	"blessed-loss": BlessedLoss,
	"maybe-loss":   Loss,
	"syzygy-loss":  Loss,
	"loss":         Loss,
}

func NewLichess(opts LichessOptions) *Lichess {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultLichessURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.MaxPieces == 0 {
		opts.MaxPieces = 7
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	return &Lichess{
		baseURL:   strings.TrimSuffix(opts.BaseURL, "/"),
		timeout:   opts.Timeout,
		maxPieces: opts.MaxPieces,
		client:    opts.Client,
		log:       opts.Logger,
	}
}

func (l *Lichess) MaxPieces() int {
	return l.maxPieces
}

func (l *Lichess) Probe(p *common.Position) (Result, bool) {
	if p.CountPieces() > l.maxPieces {
		return Result{}, false
	}
	var key = normalize(p)
	if v, ok := l.cache.Load(key); ok {
		var entry = v.(lichessEntry)
		return entry.result, entry.found
	}
	var result, found, err = l.query(&key)
	if err != nil {
		l.log.Warn().Err(err).Str("fen", key.String()).Msg("tablebase query failed")
		return Result{}, false
	}
	l.cache.Store(key, lichessEntry{result: result, found: found})
	return result, found
}

func (l *Lichess) query(p *common.Position) (Result, bool, error) {
	var ctx, cancel = context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	var u = l.baseURL + "/standard?fen=" + url.QueryEscape(p.String())
	var req, err = http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Result{}, false, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return Result{}, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Result{}, false, fmt.Errorf("tablebase status %v", resp.Status)
	}

	var body struct {
		Category string `json:"category"`
		DTZ      *int   `json:"dtz"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, false, fmt.Errorf("decode tablebase response: %w", err)
	}
	var wdl, ok = lichessCategories[body.Category]
	if !ok {
		l.log.Debug().Str("category", body.Category).Str("fen", p.String()).Msg("tablebase has no data")
		return Result{}, false, nil
	}
	var result = Result{WDL: wdl}
	if body.DTZ != nil {
		result.DTZ = *body.DTZ
		result.HasDTZ = true
	}
	return result, true, nil
}
