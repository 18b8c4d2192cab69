// Package geo provides the great-circle helpers every proximity check uses.
package geo

import (
	"math"

	"github.com/mr1hm/go-route-safety/internal/models"
)

// EarthRadiusKm is the mean Earth radius.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between a and b.
func DistanceKm(a, b models.Coordinates) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push h a hair outside [0,1] for antipodal points
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoundingBox returns the box spanning a and b, expanded by pad degrees on every side.
func BoundingBox(a, b models.Coordinates, pad float64) Bounds {
	return Bounds{
		MinLat: math.Min(a.Latitude, b.Latitude) - pad,
		MaxLat: math.Max(a.Latitude, b.Latitude) + pad,
		MinLon: math.Min(a.Longitude, b.Longitude) - pad,
		MaxLon: math.Max(a.Longitude, b.Longitude) + pad,
	}
}

func (b Bounds) Contains(c models.Coordinates) bool {
	return c.Latitude >= b.MinLat && c.Latitude <= b.MaxLat &&
		c.Longitude >= b.MinLon && c.Longitude <= b.MaxLon
}
