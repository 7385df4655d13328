package search

import (
	"math"
	"strconv"

	"achaperto/internal/domain/entity"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometres rounded to two decimals.
// ok is false when the target coordinate is unknown.
func HaversineKm(origin entity.Coordinate, target *entity.Coordinate) (km float64, ok bool) {
	if target == nil {
		return 0, false
	}

	return math.Round(haversineDistance(origin.Point(), target.Point())*100) / 100, true
}

// FormatKm renders a distance with two decimals, or the unavailable sentinel.
func FormatKm(km float64, ok bool) string {
	if !ok {
		return entity.DistanceUnavailable
	}

	return strconv.FormatFloat(km, 'f', 2, 64)
}

// haversineDistance calculates the great circle distance between two points in kilometres
func haversineDistance(p1, p2 orb.Point) float64 {
	lat1Rad := p1.Lat() * math.Pi / 180
	lng1Rad := p1.Lon() * math.Pi / 180
	lat2Rad := p2.Lat() * math.Pi / 180
	lng2Rad := p2.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
