// Package mapview — geo contains pure geographic computation helpers.
package mapview

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"taxifare/internal/types"
)

const (
	earthRadiusKm = 6371.0

	// cellPrecision gives cells of roughly 150m, enough to tell two markers apart.
	cellPrecision = 7
)

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(a, b types.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// cellOf labels a point with its geohash cell.
func cellOf(p types.Point) string {
	return geohash.EncodeWithPrecision(p.Lat, p.Lng, cellPrecision)
}
