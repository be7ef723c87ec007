package transitdb

import (
	"bytes"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/transitdb/codec"
	"github.com/theoremus-urban-solutions/transitdb/config"
	"github.com/theoremus-urban-solutions/transitdb/formatter"
	"github.com/theoremus-urban-solutions/transitdb/requests"
	"github.com/theoremus-urban-solutions/transitdb/transit"
)

// Engine runs batches end to end: decode, parse, dispatch, encode.
// Every batch gets a fresh catalogue.
type Engine struct {
	Cfg config.AppConfig
	rb  *formatter.ResponseBuilder
}

// NewEngine creates an engine for cfg
func NewEngine(cfg config.AppConfig) *Engine {
	return &Engine{Cfg: cfg, rb: formatter.NewResponseBuilder(cfg.Output, cfg.Stats)}
}

// Process decodes one batch from r and dispatches it. Nothing is applied if the
// document is malformed.
func (e *Engine) Process(r io.Reader) (requests.Result, error) {
	batch, err := codec.Decode(e.Cfg.Input.Format, r)
	if err != nil {
		return requests.Result{}, err
	}
	reqs, err := requests.ParseBatch(batch)
	if err != nil {
		return requests.Result{}, err
	}
	d := requests.NewDispatcher(transit.NewCatalogue(), e.dispatchOptions())
	return d.Run(reqs)
}

// Run processes one batch and encodes its answers in the configured output format.
func (e *Engine) Run(r io.Reader) ([]byte, error) {
	res, err := e.Process(r)
	if err != nil {
		return nil, err
	}
	out, err := e.rb.Build(e.Cfg.Output.Format, res.Answers)
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", res.BatchID, err)
	}
	return out, nil
}

// RunBytes is Run over an in-memory document.
func (e *Engine) RunBytes(data []byte) ([]byte, error) {
	return e.Run(bytes.NewReader(data))
}

func (e *Engine) dispatchOptions() requests.Options {
	return requests.Options{
		CurvatureDigits: e.Cfg.Stats.Digits(),
		CacheStats:      e.Cfg.Stats.CacheStats,
	}
}
