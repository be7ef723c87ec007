package utils

import (
	"math"
	"strconv"
)

// RoundTo rounds v half away from zero to the given number of decimal digits.
// Negative digits return v unchanged.
func RoundTo(v float64, digits int) float64 {
	if digits < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	pow := math.Pow10(digits)
	return math.Round(v*pow) / pow
}

// FormatFixed renders v with exactly digits decimals, as the text answers print curvature.
func FormatFixed(v float64, digits int) string {
	if digits < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// PresentableDistance formats a road length in meters for log lines.
func PresentableDistance(meters int) string {
	if meters < 1000 {
		return strconv.Itoa(meters) + " m"
	}
	return strconv.FormatFloat(float64(meters)/1000, 'f', 1, 64) + " km"
}
