package requests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transitdb/transit"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func TestParseMutation(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want Request
	}{
		{
			name: "stop with distances",
			rec: Record{
				Type:          TypeStop,
				Name:          "Tolstopaltsevo",
				Latitude:      f64(55.611087),
				Longitude:     f64(37.20829),
				RoadDistances: map[string]int{"Marushkino": 3900},
			},
			want: AddStop{
				Name:          "Tolstopaltsevo",
				Coordinates:   &transit.Coordinates{Latitude: 55.611087, Longitude: 37.20829},
				RoadDistances: map[string]int{"Marushkino": 3900},
			},
		},
		{
			name: "stop without coordinates",
			rec:  Record{Type: TypeStop, Name: "Marushkino"},
			want: AddStop{Name: "Marushkino"},
		},
		{
			name: "stop on the equator",
			rec:  Record{Type: TypeStop, Name: "Zero", Latitude: f64(0), Longitude: f64(0)},
			want: AddStop{Name: "Zero", Coordinates: &transit.Coordinates{}},
		},
		{
			name: "bus",
			rec:  Record{Type: TypeBus, Name: "256", Stops: []string{"A", "B"}, IsRoundtrip: false},
			want: AddBus{Number: "256", Stops: []string{"A", "B"}},
		},
		{
			name: "ring bus",
			rec:  Record{Type: TypeBus, Name: "750", Stops: []string{"A", "B", "A"}, IsRoundtrip: true},
			want: AddBus{Number: "750", Stops: []string{"A", "B", "A"}, IsRoundTrip: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMutation(tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMutation_Malformed(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{name: "missing type", rec: Record{Name: "A"}},
		{name: "unknown type", rec: Record{Type: "Tram", Name: "A"}},
		{name: "missing name", rec: Record{Type: TypeStop}},
		{name: "latitude out of range", rec: Record{Type: TypeStop, Name: "A", Latitude: f64(91), Longitude: f64(0)}},
		{name: "longitude out of range", rec: Record{Type: TypeStop, Name: "A", Latitude: f64(0), Longitude: f64(-181)}},
		{name: "only latitude", rec: Record{Type: TypeStop, Name: "A", Latitude: f64(55)}},
		{name: "negative distance", rec: Record{Type: TypeStop, Name: "A", RoadDistances: map[string]int{"B": -1}}},
		{name: "empty neighbor", rec: Record{Type: TypeStop, Name: "A", RoadDistances: map[string]int{"": 10}}},
		{name: "bus without stops", rec: Record{Type: TypeBus, Name: "1"}},
		{name: "bus with empty stop name", rec: Record{Type: TypeBus, Name: "1", Stops: []string{"A", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMutation(tt.rec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedInput), "got %v", err)
		})
	}
}

func TestParseQuery(t *testing.T) {
	got, err := ParseQuery(Record{Type: TypeStop, Name: "Marushkino", ID: i64(1042838872)})
	require.NoError(t, err)
	assert.Equal(t, StopQuery{Name: "Marushkino", ID: 1042838872}, got)

	got, err = ParseQuery(Record{Type: TypeBus, Name: "256", ID: i64(0)})
	require.NoError(t, err)
	assert.Equal(t, BusQuery{Number: "256", ID: 0}, got)

	_, err = ParseQuery(Record{Type: TypeBus, Name: "256"})
	assert.True(t, errors.Is(err, ErrMalformedInput))

	_, err = ParseQuery(Record{Type: "Train", Name: "256", ID: i64(1)})
	assert.True(t, errors.Is(err, ErrMalformedInput))
}

func TestParseBatch(t *testing.T) {
	b := Batch{
		BaseRequests: []Record{
			{Type: TypeStop, Name: "A", Latitude: f64(55.6), Longitude: f64(37.2)},
			{Type: TypeBus, Name: "1", Stops: []string{"A"}},
		},
		StatRequests: []Record{
			{Type: TypeBus, Name: "1", ID: i64(7)},
		},
	}

	reqs, err := ParseBatch(b)
	require.NoError(t, err)
	require.Len(t, reqs, 3)
	assert.Equal(t, KindAddStop, reqs[0].Kind())
	assert.Equal(t, KindAddBus, reqs[1].Kind())
	assert.Equal(t, BusQuery{Number: "1", ID: 7}, reqs[2])
}

func TestParseBatch_FailsAtomically(t *testing.T) {
	b := Batch{
		BaseRequests: []Record{{Type: TypeStop, Name: "A"}},
		StatRequests: []Record{{Type: TypeStop, Name: "A", ID: i64(1)}, {Type: TypeStop, Name: "B"}},
	}

	reqs, err := ParseBatch(b)
	assert.Nil(t, reqs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedInput))
	assert.Contains(t, err.Error(), "stat_requests[1]")
}
