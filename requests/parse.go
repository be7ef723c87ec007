package requests

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/transitdb/transit"
)

// ErrMalformedInput wraps every record that cannot become a Request.
var ErrMalformedInput = errors.New("malformed input")

var validate = validator.New()

// ParseMutation converts a base_requests record into AddStop or AddBus.
func ParseMutation(rec Record) (Request, error) {
	if err := validate.Struct(rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	switch rec.Type {
	case TypeStop:
		req := AddStop{Name: rec.Name}
		switch {
		case rec.Latitude != nil && rec.Longitude != nil:
			req.Coordinates = &transit.Coordinates{Latitude: *rec.Latitude, Longitude: *rec.Longitude}
		case rec.Latitude != nil || rec.Longitude != nil:
			return nil, fmt.Errorf("%w: stop %q has only one coordinate", ErrMalformedInput, rec.Name)
		}
		if len(rec.RoadDistances) > 0 {
			req.RoadDistances = make(map[string]int, len(rec.RoadDistances))
			for n, d := range rec.RoadDistances {
				req.RoadDistances[n] = d
			}
		}
		return req, nil
	case TypeBus:
		if len(rec.Stops) == 0 {
			return nil, fmt.Errorf("%w: bus %q has no stops", ErrMalformedInput, rec.Name)
		}
		return AddBus{
			Number:      rec.Name,
			Stops:       append([]string(nil), rec.Stops...),
			IsRoundTrip: rec.IsRoundtrip,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrMalformedInput, rec.Type)
	}
}

// ParseQuery converts a stat_requests record into StopQuery or BusQuery.
func ParseQuery(rec Record) (Request, error) {
	if err := validate.Struct(rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if rec.ID == nil {
		return nil, fmt.Errorf("%w: %s query %q has no id", ErrMalformedInput, rec.Type, rec.Name)
	}
	switch rec.Type {
	case TypeStop:
		return StopQuery{Name: rec.Name, ID: *rec.ID}, nil
	case TypeBus:
		return BusQuery{Number: rec.Name, ID: *rec.ID}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrMalformedInput, rec.Type)
	}
}

// ParseBatch parses every record of b, mutations first. Any malformed record
// fails the whole batch before anything is applied.
func ParseBatch(b Batch) ([]Request, error) {
	out := make([]Request, 0, len(b.BaseRequests)+len(b.StatRequests))
	for i, rec := range b.BaseRequests {
		req, err := ParseMutation(rec)
		if err != nil {
			return nil, fmt.Errorf("base_requests[%d]: %w", i, err)
		}
		out = append(out, req)
	}
	for i, rec := range b.StatRequests {
		req, err := ParseQuery(rec)
		if err != nil {
			return nil, fmt.Errorf("stat_requests[%d]: %w", i, err)
		}
		out = append(out, req)
	}
	return out, nil
}
