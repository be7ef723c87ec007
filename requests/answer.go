package requests

import (
	"errors"

	"github.com/theoremus-urban-solutions/transitdb/transit"
)

// Answer is the result of one query. Exactly one of Buses/Stats/Err is meaningful:
// Err for failed queries, Stats for bus queries, Buses for stop queries.
type Answer struct {
	RequestID int64
	Kind      Kind
	Name      string
	Buses     []string
	Stats     *transit.RouteStats
	Err       error
}

// Failed reports whether the query produced an error answer
func (a Answer) Failed() bool { return a.Err != nil }

// ErrorMessage is the error_message of a failed answer: "not found" for unknown
// stops and buses, the diagnostic otherwise.
func (a Answer) ErrorMessage() string {
	if a.Err == nil {
		return ""
	}
	if errors.Is(a.Err, transit.ErrNotFound) {
		return transit.ErrNotFound.Error()
	}
	return a.Err.Error()
}
