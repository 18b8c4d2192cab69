package ingestion

import (
	"fmt"

	"github.com/mr1hm/go-route-safety/internal/geo"
	"github.com/mr1hm/go-route-safety/internal/models"
)

// SimulateTraffic places one traffic point on every path coordinate, cycling
// HIGH, MEDIUM, LOW.
func SimulateTraffic(path []models.Coordinates) []models.TrafficPoint {
	points := make([]models.TrafficPoint, 0, len(path))
	for i, p := range path {
		severity := models.SeverityLow
		switch i % 3 {
		case 0:
			severity = models.SeverityHigh
		case 1:
			severity = models.SeverityMedium
		}
		points = append(points, models.TrafficPoint{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Severity:  severity,
			Label:     fmt.Sprintf("Traffic Point %d", i+1),
		})
	}
	return points
}

const (
	nearbyCities = 5
	nearbyExits  = 3
)

// NearbyPlaces lays out simulated cities and highway exits around origin,
// alternating sides of it.
func NearbyPlaces(origin models.Coordinates) []models.Place {
	places := make([]models.Place, 0, nearbyCities+nearbyExits)

	for i := range nearbyCities {
		s := alternate(i)
		p := origin.Offset(s*float64(i)*0.05, -s*float64(i)*0.05)
		places = append(places, newPlace(fmt.Sprintf("City %d", i+1), "city", origin, p))
	}
	for i := range nearbyExits {
		s := alternate(i)
		p := origin.Offset(s*float64(i)*0.03, -s*float64(i)*0.04)
		places = append(places, newPlace(fmt.Sprintf("Highway Exit %d", i+1), "highway_exit", origin, p))
	}
	return places
}

func alternate(i int) float64 {
	if i%2 == 0 {
		return 1
	}
	return -1
}

func newPlace(name, kind string, origin, p models.Coordinates) models.Place {
	return models.Place{
		Name:       name,
		Kind:       kind,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		DistanceKm: geo.DistanceKm(origin, p),
	}
}
