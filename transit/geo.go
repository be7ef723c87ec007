package transit

import "math"

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371000.0

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

// GeoDistance returns the great-circle distance in meters using the spherical law of cosines.
func GeoDistance(a, b Coordinates) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLon := math.Abs(toRadians(a.Longitude) - toRadians(b.Longitude))
	cos := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLon)
	// rounding can push identical points just past 1
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * EarthRadius
}
