package transit

import "errors"

var (
	// ErrNotFound is returned for unknown stop names and bus numbers.
	ErrNotFound = errors.New("not found")
	// ErrMissingDistance means two adjacent route stops declare no distance in either direction.
	ErrMissingDistance = errors.New("missing distance")
	// ErrMissingCoordinates means a route stop was never given coordinates.
	ErrMissingCoordinates = errors.New("missing coordinates")
	// ErrEmptyRoute rejects a bus without stops.
	ErrEmptyRoute = errors.New("empty route")
	// ErrSealed rejects mutations once the ingest phase has ended.
	ErrSealed = errors.New("catalogue is sealed")
)
