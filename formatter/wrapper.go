package formatter

import (
	"github.com/theoremus-urban-solutions/transitdb/requests"
)

// Wire record keys
const (
	KeyRequestID       = "request_id"
	KeyBuses           = "buses"
	KeyRouteLength     = "route_length"
	KeyStopCount       = "stop_count"
	KeyUniqueStopCount = "unique_stop_count"
	KeyCurvature       = "curvature"
	KeyErrorMessage    = "error_message"
)

// WrapAnswer converts one answer into its wire record. Values are restricted to
// int64, float64, string and []any so every encoder, structpb included, accepts them.
func WrapAnswer(a requests.Answer) map[string]any {
	rec := map[string]any{KeyRequestID: a.RequestID}
	if a.Failed() {
		rec[KeyErrorMessage] = a.ErrorMessage()
		return rec
	}
	switch a.Kind {
	case requests.KindStopQuery:
		buses := make([]any, 0, len(a.Buses))
		for _, b := range a.Buses {
			buses = append(buses, b)
		}
		rec[KeyBuses] = buses
	case requests.KindBusQuery:
		if a.Stats == nil {
			break
		}
		rec[KeyRouteLength] = int64(a.Stats.RouteLength)
		rec[KeyStopCount] = int64(a.Stats.StopCount)
		rec[KeyUniqueStopCount] = int64(a.Stats.UniqueStopCount)
		rec[KeyCurvature] = a.Stats.Curvature
	}
	return rec
}

// WrapAnswers converts answers into wire records, keeping their order.
func WrapAnswers(answers []requests.Answer) []any {
	out := make([]any, 0, len(answers))
	for _, a := range answers {
		out = append(out, WrapAnswer(a))
	}
	return out
}
