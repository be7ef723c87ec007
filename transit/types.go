package transit

import "sort"

// Coordinates is a WGS 84 position in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Stop is a named waypoint. Coordinates stay nil until a defining record supplies them.
type Stop struct {
	Name        string
	Coordinates *Coordinates
	Buses       map[string]struct{} // bus numbers serving this stop
	Distances   map[string]int      // neighbor name -> directed road distance in meters
}

// NewStop creates a stop without coordinates, buses or distances.
func NewStop(name string) Stop {
	return Stop{Name: name}
}

// HasCoordinates reports whether both latitude and longitude are known.
func (s Stop) HasCoordinates() bool { return s.Coordinates != nil }

// DistanceTo returns the declared distance from s to neighbor.
func (s Stop) DistanceTo(neighbor string) (int, bool) {
	d, ok := s.Distances[neighbor]
	return d, ok
}

// BusNumbers returns the buses serving the stop in byte-wise order.
func (s Stop) BusNumbers() []string {
	out := make([]string, 0, len(s.Buses))
	for b := range s.Buses {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

func (s Stop) clone() Stop {
	c := Stop{Name: s.Name}
	if s.Coordinates != nil {
		coords := *s.Coordinates
		c.Coordinates = &coords
	}
	if len(s.Buses) > 0 {
		c.Buses = make(map[string]struct{}, len(s.Buses))
		for b := range s.Buses {
			c.Buses[b] = struct{}{}
		}
	}
	if len(s.Distances) > 0 {
		c.Distances = make(map[string]int, len(s.Distances))
		for n, d := range s.Distances {
			c.Distances[n] = d
		}
	}
	return c
}

// Bus is a route: the full traversal of stop names, materialized at ingestion.
type Bus struct {
	Number string
	Route  []string
}

func (b Bus) clone() Bus {
	return Bus{Number: b.Number, Route: append([]string(nil), b.Route...)}
}

// RouteStats summarizes one bus route.
type RouteStats struct {
	StopCount       int
	UniqueStopCount int
	RouteLength     int     // declared road meters
	GeoLength       float64 // great-circle meters
	// Curvature is RouteLength / GeoLength; 0 with CurvatureDefined false when GeoLength is 0.
	Curvature        float64
	CurvatureDefined bool
}
