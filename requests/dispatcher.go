package requests

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/theoremus-urban-solutions/transitdb/transit"
	"github.com/theoremus-urban-solutions/transitdb/utils"
)

// Options contains everything the Dispatcher needs besides the catalogue.
// It has no dependency on config files.
type Options struct {
	// CurvatureDigits rounds the reported curvature. Negative keeps full precision.
	CurvatureDigits int

	// CacheStats memoizes route statistics for the query phase. Safe because
	// the catalogue is sealed before the first query.
	CacheStats bool
}

// DefaultOptions rounds curvature to six digits and disables the stats cache.
func DefaultOptions() Options {
	return Options{CurvatureDigits: 6}
}

// Result is the outcome of one batch
type Result struct {
	BatchID   string
	Mutations int
	Answers   []Answer
	// CacheHits counts bus queries answered from the stats cache.
	CacheHits int
}

// Dispatcher applies a batch of requests to a catalogue in two phases:
// every mutation in received order, then every query against the final state.
type Dispatcher struct {
	cat   *transit.Catalogue
	opts  Options
	stats *cache.Cache
	hits  int
}

// NewDispatcher creates a dispatcher that owns cat for the lifetime of a batch.
func NewDispatcher(cat *transit.Catalogue, opts Options) *Dispatcher {
	return &Dispatcher{cat: cat, opts: opts}
}

// Catalogue returns the catalogue the dispatcher writes to
func (d *Dispatcher) Catalogue() *transit.Catalogue { return d.cat }

// Run executes the batch. An ingest error aborts the batch with no answers;
// query errors are captured per answer and never stop sibling queries.
func (d *Dispatcher) Run(reqs []Request) (Result, error) {
	res := Result{BatchID: uuid.New().String()}

	for _, r := range reqs {
		if !IsMutation(r) {
			continue
		}
		if err := d.Apply(r); err != nil {
			return Result{}, fmt.Errorf("batch %s: %w", res.BatchID, err)
		}
		res.Mutations++
	}

	d.cat.Seal()
	d.hits = 0
	if d.opts.CacheStats {
		d.stats = cache.New(cache.NoExpiration, 0)
	}

	res.Answers = make([]Answer, 0, len(reqs)-res.Mutations)
	failed := 0
	for _, r := range reqs {
		if IsMutation(r) {
			continue
		}
		a, err := d.Answer(r)
		if err != nil {
			return Result{}, fmt.Errorf("batch %s: %w", res.BatchID, err)
		}
		if a.Failed() {
			failed++
		}
		res.Answers = append(res.Answers, a)
	}
	res.CacheHits = d.hits

	log.Printf("batch %s: %d mutations (%d stops, %d buses), %d queries, %d failed, %d cached",
		res.BatchID, res.Mutations, d.cat.Stops.Len(), d.cat.Buses.Len(), len(res.Answers), failed, res.CacheHits)
	return res, nil
}

// Apply executes one mutation against the catalogue.
func (d *Dispatcher) Apply(r Request) error {
	switch req := r.(type) {
	case AddStop:
		return d.cat.AddStop(req.Stop())
	case AddBus:
		return d.cat.AddBus(req.Number, req.Route())
	case StopQuery, BusQuery:
		return fmt.Errorf("%s is not a mutation", r.Kind())
	default:
		return fmt.Errorf("unknown request %T", r)
	}
}

// Answer evaluates one query. The returned error is reserved for requests that
// are not queries; lookup failures are carried in Answer.Err.
func (d *Dispatcher) Answer(r Request) (Answer, error) {
	switch req := r.(type) {
	case StopQuery:
		return d.stopAnswer(req), nil
	case BusQuery:
		return d.busAnswer(req), nil
	case AddStop, AddBus:
		return Answer{}, fmt.Errorf("%s is not a query", r.Kind())
	default:
		return Answer{}, fmt.Errorf("unknown request %T", r)
	}
}

func (d *Dispatcher) stopAnswer(q StopQuery) Answer {
	a := Answer{RequestID: q.ID, Kind: KindStopQuery, Name: q.Name}
	s, err := d.cat.Stops.Lookup(q.Name)
	if err != nil {
		a.Err = err
		return a
	}
	a.Buses = s.BusNumbers()
	return a
}

func (d *Dispatcher) busAnswer(q BusQuery) Answer {
	a := Answer{RequestID: q.ID, Kind: KindBusQuery, Name: q.Number}
	stats, err := d.routeStats(q.Number)
	if err != nil {
		a.Err = err
		return a
	}
	stats.Curvature = utils.RoundTo(stats.Curvature, d.opts.CurvatureDigits)
	a.Stats = &stats
	return a
}

func (d *Dispatcher) routeStats(number string) (transit.RouteStats, error) {
	key := statsKey(number)
	if d.stats != nil {
		if v, ok := d.stats.Get(key); ok {
			d.hits++
			return v.(transit.RouteStats), nil
		}
	}
	stats, err := d.cat.RouteStats(number)
	if err != nil {
		if !isNotFound(err) {
			log.Printf("Warning: bus %q: %v", number, err)
		}
		return transit.RouteStats{}, err
	}
	if !stats.CurvatureDefined && stats.StopCount > 1 {
		log.Printf("Warning: bus %q: zero geo length over %s of road, curvature undefined",
			number, utils.PresentableDistance(stats.RouteLength))
	}
	// road shorter than the great circle means bad distances or coordinates in the input
	if stats.CurvatureDefined && stats.Curvature < 1 {
		log.Printf("Warning: bus %q: curvature %f below 1, road length %s shorter than great-circle length",
			number, stats.Curvature, utils.PresentableDistance(stats.RouteLength))
	}
	if d.stats != nil {
		d.stats.Set(key, stats, cache.NoExpiration)
	}
	return stats, nil
}

func statsKey(number string) string { return "bus:" + number }

func isNotFound(err error) bool { return errors.Is(err, transit.ErrNotFound) }
