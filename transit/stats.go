package transit

import "fmt"

// RouteStats computes stop counts, road length and curvature for a bus.
// Coordinates of every route stop are checked before anything is summed, so a
// route with an unplaced stop fails with ErrMissingCoordinates and no partial result.
func (c *Catalogue) RouteStats(number string) (RouteStats, error) {
	bus, ok := c.Buses.get(number)
	if !ok {
		return RouteStats{}, fmt.Errorf("bus %q: %w", number, ErrNotFound)
	}
	route := bus.Route

	coords := make([]Coordinates, len(route))
	unique := make(map[string]struct{}, len(route))
	for i, name := range route {
		cc, err := c.coordinatesOf(name)
		if err != nil {
			return RouteStats{}, err
		}
		coords[i] = cc
		unique[name] = struct{}{}
	}

	stats := RouteStats{StopCount: len(route), UniqueStopCount: len(unique)}
	for i := 1; i < len(route); i++ {
		d, err := c.ResolveDistance(route[i-1], route[i])
		if err != nil {
			return RouteStats{}, err
		}
		stats.RouteLength += d
		stats.GeoLength += GeoDistance(coords[i-1], coords[i])
	}
	if stats.GeoLength > 0 {
		stats.Curvature = float64(stats.RouteLength) / stats.GeoLength
		stats.CurvatureDefined = true
	}
	return stats, nil
}
