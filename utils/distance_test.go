package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		digits int
		want   float64
	}{
		{name: "six digits", v: 2.30360412345, digits: 6, want: 2.303604},
		{name: "rounds up", v: 4.0756068, digits: 6, want: 4.075607},
		{name: "zero digits", v: 1.5, digits: 0, want: 2},
		{name: "negative value", v: -1.25, digits: 1, want: -1.3},
		{name: "disabled", v: 1.23456789, digits: -1, want: 1.23456789},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundTo(tt.v, tt.digits), 1e-12)
		})
	}
}

func TestRoundTo_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(RoundTo(math.NaN(), 3)))
	assert.True(t, math.IsInf(RoundTo(math.Inf(1), 3), 1))
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "2.303604", FormatFixed(2.3036041, 6))
	assert.Equal(t, "1.000000", FormatFixed(1, 6))
	assert.Equal(t, "0.5", FormatFixed(0.5, -1))
}

func TestPresentableDistance(t *testing.T) {
	tests := []struct {
		meters int
		want   string
	}{
		{0, "0 m"},
		{999, "999 m"},
		{7800, "7.8 km"},
		{2760000, "2760.0 km"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, PresentableDistance(tt.meters))
		})
	}
}
