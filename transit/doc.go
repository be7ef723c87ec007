/*
Package transit provides the in-memory transit network: stops, bus routes and
the statistics derived from them.

The package is codec agnostic - it accepts already decoded stop and route
definitions and answers lookups. It does NOT parse JSON or text.

# Basic Usage

	cat := transit.NewCatalogue()

	// Stops may arrive in any order relative to the routes that use them
	_ = cat.AddStop(transit.Stop{
	    Name:        "Tolstopaltsevo",
	    Coordinates: &transit.Coordinates{Latitude: 55.611087, Longitude: 37.20829},
	    Distances:   map[string]int{"Marushkino": 3900},
	})
	_ = cat.AddBus("256", []string{"Tolstopaltsevo", "Marushkino", "Tolstopaltsevo"})
	_ = cat.AddStop(transit.Stop{
	    Name:        "Marushkino",
	    Coordinates: &transit.Coordinates{Latitude: 55.595884, Longitude: 37.209755},
	})

	// End of ingest; queries only from here on
	cat.Seal()

	stats, err := cat.RouteStats("256")
	// stats.StopCount == 3, stats.RouteLength == 7800

# Merge Rules

  - Coordinates: first writer wins. A stop created as a route waypoint has none
    until a stop record supplies them; later records never overwrite them.
  - Distances: additive. A (stop, neighbor) entry is added once and never replaced.
  - Buses: last writer wins. Re-adding a bus number replaces its route in full and
    detaches it from stops that are no longer on the route.

# Distances

Road distances are directed and need not be symmetric. ResolveDistance(A, B)
uses A→B when declared and B→A otherwise; with neither it returns
ErrMissingDistance. Geo distances use the spherical law of cosines with an Earth
radius of 6 371 000 m and serve only as the curvature denominator.

# Lifecycle

A Catalogue is filled during the ingest phase and sealed before queries run.
After Seal every mutation returns ErrSealed, so readers never observe a
partially applied batch. A Catalogue is not safe for concurrent mutation.
*/
package transit
