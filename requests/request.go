package requests

import "github.com/theoremus-urban-solutions/transitdb/transit"

// Kind identifies the variant of a Request
type Kind int

const (
	KindAddStop Kind = iota
	KindAddBus
	KindStopQuery
	KindBusQuery
)

func (k Kind) String() string {
	switch k {
	case KindAddStop:
		return "AddStop"
	case KindAddBus:
		return "AddBus"
	case KindStopQuery:
		return "StopQuery"
	case KindBusQuery:
		return "BusQuery"
	default:
		return "Unknown"
	}
}

// Request is the closed set of batch operations: AddStop, AddBus, StopQuery and
// BusQuery. The unexported method keeps other packages from adding variants.
type Request interface {
	Kind() Kind
	isRequest()
}

// AddStop defines or completes a stop.
type AddStop struct {
	Name          string
	Coordinates   *transit.Coordinates
	RoadDistances map[string]int
}

// AddBus defines a route. Stops is the list as declared; Route materializes it.
type AddBus struct {
	Number      string
	Stops       []string
	IsRoundTrip bool
}

// StopQuery asks for the buses serving a stop.
type StopQuery struct {
	Name string
	ID   int64
}

// BusQuery asks for the statistics of a route.
type BusQuery struct {
	Number string
	ID     int64
}

func (AddStop) Kind() Kind   { return KindAddStop }
func (AddBus) Kind() Kind    { return KindAddBus }
func (StopQuery) Kind() Kind { return KindStopQuery }
func (BusQuery) Kind() Kind  { return KindBusQuery }

func (AddStop) isRequest()   {}
func (AddBus) isRequest()    {}
func (StopQuery) isRequest() {}
func (BusQuery) isRequest()  {}

// IsMutation reports whether r belongs to the ingest phase
func IsMutation(r Request) bool {
	k := r.Kind()
	return k == KindAddStop || k == KindAddBus
}

// Stop converts the request into a transit stop record
func (r AddStop) Stop() transit.Stop {
	s := transit.NewStop(r.Name)
	if r.Coordinates != nil {
		c := *r.Coordinates
		s.Coordinates = &c
	}
	if len(r.RoadDistances) > 0 {
		s.Distances = make(map[string]int, len(r.RoadDistances))
		for n, d := range r.RoadDistances {
			s.Distances[n] = d
		}
	}
	return s
}

// Route returns the full traversal. A round trip is used as written; otherwise
// the stops are followed by the same stops in reverse, without repeating the last:
// [A B C] becomes [A B C B A].
func (r AddBus) Route() []string {
	route := make([]string, 0, 2*len(r.Stops))
	route = append(route, r.Stops...)
	if r.IsRoundTrip {
		return route
	}
	for i := len(r.Stops) - 2; i >= 0; i-- {
		route = append(route, r.Stops[i])
	}
	return route
}
