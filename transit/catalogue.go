package transit

import "fmt"

// Catalogue stores the transit network in memory: one stop registry and one bus
// registry sharing a single ingest barrier.
type Catalogue struct {
	Stops *StopRegistry
	Buses *BusRegistry
	gate  *barrier
}

// NewCatalogue creates an empty, unsealed catalogue
func NewCatalogue() *Catalogue {
	gate := &barrier{}
	stops := newStopRegistry(gate)
	return &Catalogue{Stops: stops, Buses: NewBusRegistry(stops), gate: gate}
}

// Seal ends the ingest phase. Every later mutation returns ErrSealed.
func (c *Catalogue) Seal() { c.gate.sealed = true }

// Sealed reports whether Seal has been called
func (c *Catalogue) Sealed() bool { return c.gate.sealed }

// AddStop merges a stop record into the stop registry.
func (c *Catalogue) AddStop(stop Stop) error { return c.Stops.AddStop(stop) }

// AddBus registers a route in the bus registry.
func (c *Catalogue) AddBus(number string, route []string) error {
	return c.Buses.AddBus(number, route)
}

// ResolveDistance returns the road distance from a to b, falling back to the
// distance declared from b to a.
func (c *Catalogue) ResolveDistance(a, b string) (int, error) {
	if s, ok := c.Stops.get(a); ok {
		if d, ok := s.DistanceTo(b); ok {
			return d, nil
		}
	}
	if s, ok := c.Stops.get(b); ok {
		if d, ok := s.DistanceTo(a); ok {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %s - %s", ErrMissingDistance, a, b)
}

// GeoDistanceBetween returns the great-circle distance in meters between two named stops.
func (c *Catalogue) GeoDistanceBetween(a, b string) (float64, error) {
	ca, err := c.coordinatesOf(a)
	if err != nil {
		return 0, err
	}
	cb, err := c.coordinatesOf(b)
	if err != nil {
		return 0, err
	}
	return GeoDistance(ca, cb), nil
}

func (c *Catalogue) coordinatesOf(name string) (Coordinates, error) {
	s, ok := c.Stops.get(name)
	if !ok {
		return Coordinates{}, fmt.Errorf("stop %q: %w", name, ErrNotFound)
	}
	if s.Coordinates == nil {
		return Coordinates{}, fmt.Errorf("%w: %s", ErrMissingCoordinates, name)
	}
	return *s.Coordinates, nil
}
