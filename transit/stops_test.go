package transit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopRegistry_AddStopInsertsVerbatim(t *testing.T) {
	r := NewStopRegistry()
	require.NoError(t, r.AddStop(stopAt("Tolstopaltsevo", tolstopaltsevo, map[string]int{"Marushkino": 3900})))

	s, err := r.Lookup("Tolstopaltsevo")
	require.NoError(t, err)
	require.True(t, s.HasCoordinates())
	assert.Equal(t, tolstopaltsevo, *s.Coordinates)
	d, ok := s.DistanceTo("Marushkino")
	assert.True(t, ok)
	assert.Equal(t, 3900, d)
	assert.Empty(t, s.BusNumbers())
}

func TestStopRegistry_CoordinatesFirstWriterWins(t *testing.T) {
	r := NewStopRegistry()
	require.NoError(t, r.AddStop(stopAt("Marushkino", marushkino, nil)))
	require.NoError(t, r.AddStop(stopAt("Marushkino", rasskazovka, nil)))

	s, err := r.Lookup("Marushkino")
	require.NoError(t, err)
	assert.Equal(t, marushkino, *s.Coordinates)
}

func TestStopRegistry_PlaceholderReceivesCoordinates(t *testing.T) {
	r := NewStopRegistry()
	require.NoError(t, r.RegisterBusAtStop("Marushkino", "256"))

	s, err := r.Lookup("Marushkino")
	require.NoError(t, err)
	assert.False(t, s.HasCoordinates())

	require.NoError(t, r.AddStop(stopAt("Marushkino", marushkino, nil)))
	s, err = r.Lookup("Marushkino")
	require.NoError(t, err)
	require.True(t, s.HasCoordinates())
	assert.Equal(t, marushkino, *s.Coordinates)
	assert.Equal(t, []string{"256"}, s.BusNumbers())
}

func TestStopRegistry_DistancesAreAdditive(t *testing.T) {
	r := NewStopRegistry()
	require.NoError(t, r.AddStop(stopAt("A", tolstopaltsevo, map[string]int{"B": 100})))
	require.NoError(t, r.AddStop(Stop{Name: "A", Distances: map[string]int{"B": 999, "C": 200}}))

	s, err := r.Lookup("A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"B": 100, "C": 200}, s.Distances)
}

func TestStopRegistry_RegisterBusIsIdempotent(t *testing.T) {
	r := NewStopRegistry()
	for i := 0; i < 3; i++ {
		require.NoError(t, r.RegisterBusAtStop("A", "828"))
	}
	require.NoError(t, r.RegisterBusAtStop("A", "256"))

	s, err := r.Lookup("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"256", "828"}, s.BusNumbers())
	assert.Equal(t, 1, r.Len())
}

func TestStopRegistry_LookupUnknown(t *testing.T) {
	r := NewStopRegistry()
	require.NoError(t, r.AddStop(stopAt("A", tolstopaltsevo, map[string]int{"Neighbor": 10})))

	_, err := r.Lookup("Rasskazovka")
	assert.True(t, errors.Is(err, ErrNotFound))

	// a distance neighbor is not a stop
	_, err = r.Lookup("Neighbor")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStopRegistry_LookupReturnsCopy(t *testing.T) {
	r := NewStopRegistry()
	require.NoError(t, r.AddStop(stopAt("A", tolstopaltsevo, map[string]int{"B": 1})))
	require.NoError(t, r.RegisterBusAtStop("A", "1"))

	s, err := r.Lookup("A")
	require.NoError(t, err)
	s.Coordinates.Latitude = 0
	s.Distances["B"] = 42
	s.Buses["2"] = struct{}{}

	again, err := r.Lookup("A")
	require.NoError(t, err)
	assert.Equal(t, tolstopaltsevo, *again.Coordinates)
	assert.Equal(t, 1, again.Distances["B"])
	assert.Equal(t, []string{"1"}, again.BusNumbers())
}

func TestStopRegistry_AddStopDoesNotAliasInput(t *testing.T) {
	r := NewStopRegistry()
	in := stopAt("A", tolstopaltsevo, map[string]int{"B": 1})
	require.NoError(t, r.AddStop(in))
	in.Distances["B"] = 5
	in.Coordinates.Latitude = 1

	s, err := r.Lookup("A")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Distances["B"])
	assert.Equal(t, tolstopaltsevo, *s.Coordinates)
}

func TestStopRegistry_Names(t *testing.T) {
	r := NewStopRegistry()
	for _, n := range []string{"C", "A", "B"} {
		require.NoError(t, r.AddStop(NewStop(n)))
	}
	assert.Equal(t, []string{"A", "B", "C"}, r.Names())
}
