package transit

import (
	"fmt"
	"sort"
)

// BusRegistry owns the canonical Bus records, keyed by number.
// Routes hold stop names; every name is registered in the paired StopRegistry.
type BusRegistry struct {
	buses map[string]*Bus
	stops *StopRegistry
}

// NewBusRegistry creates an empty registry that registers route stops in stops.
func NewBusRegistry(stops *StopRegistry) *BusRegistry {
	return &BusRegistry{buses: map[string]*Bus{}, stops: stops}
}

// AddBus stores the route under number, replacing any previous bus with that
// number in full. Each route stop is created if unknown and attached to the bus.
func (r *BusRegistry) AddBus(number string, route []string) error {
	if len(route) == 0 {
		return fmt.Errorf("bus %q: %w", number, ErrEmptyRoute)
	}
	if r.stops.gate.sealed {
		return ErrSealed
	}
	if prev, ok := r.buses[number]; ok {
		for _, name := range prev.Route {
			if err := r.stops.UnregisterBusAtStop(name, number); err != nil {
				return err
			}
		}
	}
	for _, name := range route {
		if err := r.stops.AddStop(NewStop(name)); err != nil {
			return err
		}
		if err := r.stops.RegisterBusAtStop(name, number); err != nil {
			return err
		}
	}
	r.buses[number] = &Bus{Number: number, Route: append([]string(nil), route...)}
	return nil
}

// Lookup returns a copy of the bus with the given number.
func (r *BusRegistry) Lookup(number string) (Bus, error) {
	b, ok := r.buses[number]
	if !ok {
		return Bus{}, fmt.Errorf("bus %q: %w", number, ErrNotFound)
	}
	return b.clone(), nil
}

func (r *BusRegistry) get(number string) (*Bus, bool) {
	b, ok := r.buses[number]
	return b, ok
}

// Len returns the number of registered buses
func (r *BusRegistry) Len() int { return len(r.buses) }

// Numbers returns all bus numbers in sorted order
func (r *BusRegistry) Numbers() []string {
	keys := make([]string, 0, len(r.buses))
	for k := range r.buses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
