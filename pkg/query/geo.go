package query

import (
	"math"

	"storefront-bot/internal/entity"
)

const (
	EarthRadiusKm = 6371.0
	KmPerMile     = 1.60934

	// DefaultRadiusKm is the nearby-shop threshold used when none is configured.
	DefaultRadiusKm = 2.0
)

type Point struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether p is a finite coordinate inside the WGS84 ranges.
func (p Point) Valid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) ||
		math.IsInf(p.Latitude, 0) || math.IsInf(p.Longitude, 0) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance between a and b in kilometers.
func Haversine(a, b Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func KmToMiles(km float64) float64 {
	return km / KmPerMile
}

// WithinRadius keeps the shops at most radiusKm from origin (inclusive), in snapshot order.
// Shops whose stored coordinates are not valid are skipped.
func WithinRadius(shops []*entity.Shop, origin Point, radiusKm float64) []*entity.Shop {
	result := make([]*entity.Shop, 0)
	for _, s := range shops {
		if s == nil {
			continue
		}
		loc := Point{Latitude: s.Latitude, Longitude: s.Longitude}
		if !loc.Valid() {
			continue
		}
		if Haversine(origin, loc) <= radiusKm {
			result = append(result, s)
		}
	}
	return result
}
