package util

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// MetersPerMile is the international mile.
	MetersPerMile = 1609.34

	// CoordinateScale is the rounding precision used for cache keys (4 decimals, about 11 m).
	CoordinateScale = 1e4
)

// MilesToMeters converts a radius in miles to whole meters.
func MilesToMeters(miles float64) int {
	return int(math.Round(miles * MetersPerMile))
}

// RoundCoordinate scales a coordinate to a fixed precision integer so that
// jitter beyond the fourth decimal maps to the same value.
func RoundCoordinate(v float64) int64 {
	return int64(math.Round(v * CoordinateScale))
}

// DistanceMeters returns the great-circle distance between two lat/lng pairs.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	return geo.Distance(orb.Point{lng1, lat1}, orb.Point{lng2, lat2})
}

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
