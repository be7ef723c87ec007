package transit

import (
	"fmt"
	"sort"
)

// barrier is the one-shot ingest/query switch shared by the registries of a catalogue.
type barrier struct {
	sealed bool
}

// StopRegistry owns the canonical Stop records, keyed by name.
type StopRegistry struct {
	stops map[string]*Stop
	gate  *barrier
}

// NewStopRegistry creates an empty registry
func NewStopRegistry() *StopRegistry {
	return newStopRegistry(&barrier{})
}

func newStopRegistry(gate *barrier) *StopRegistry {
	return &StopRegistry{stops: map[string]*Stop{}, gate: gate}
}

// AddStop inserts stop, or merges it into the existing record of the same name:
// coordinates are copied only if the existing record has none, and distances are
// added only for neighbors not yet present.
func (r *StopRegistry) AddStop(stop Stop) error {
	if r.gate.sealed {
		return ErrSealed
	}
	existing, ok := r.stops[stop.Name]
	if !ok {
		s := stop.clone()
		r.stops[stop.Name] = &s
		return nil
	}
	if existing.Coordinates == nil && stop.Coordinates != nil {
		coords := *stop.Coordinates
		existing.Coordinates = &coords
	}
	for neighbor, d := range stop.Distances {
		if _, dup := existing.Distances[neighbor]; dup {
			continue
		}
		if existing.Distances == nil {
			existing.Distances = map[string]int{}
		}
		existing.Distances[neighbor] = d
	}
	return nil
}

// RegisterBusAtStop records that busNumber serves stopName, creating a placeholder stop if needed.
func (r *StopRegistry) RegisterBusAtStop(stopName, busNumber string) error {
	if r.gate.sealed {
		return ErrSealed
	}
	s, ok := r.stops[stopName]
	if !ok {
		s = &Stop{Name: stopName}
		r.stops[stopName] = s
	}
	if s.Buses == nil {
		s.Buses = map[string]struct{}{}
	}
	s.Buses[busNumber] = struct{}{}
	return nil
}

// UnregisterBusAtStop drops busNumber from the stop's bus set. The stop itself is kept.
func (r *StopRegistry) UnregisterBusAtStop(stopName, busNumber string) error {
	if r.gate.sealed {
		return ErrSealed
	}
	if s, ok := r.stops[stopName]; ok {
		delete(s.Buses, busNumber)
	}
	return nil
}

// Lookup returns a copy of the named stop.
func (r *StopRegistry) Lookup(name string) (Stop, error) {
	s, ok := r.stops[name]
	if !ok {
		return Stop{}, fmt.Errorf("stop %q: %w", name, ErrNotFound)
	}
	return s.clone(), nil
}

func (r *StopRegistry) get(name string) (*Stop, bool) {
	s, ok := r.stops[name]
	return s, ok
}

// Len returns the number of registered stops
func (r *StopRegistry) Len() int { return len(r.stops) }

// Names returns all stop names in sorted order
func (r *StopRegistry) Names() []string {
	keys := make([]string, 0, len(r.stops))
	for k := range r.stops {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
