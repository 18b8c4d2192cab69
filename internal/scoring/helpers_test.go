package scoring

import (
	"math"

	"github.com/mr1hm/go-route-safety/internal/models"
)

var (
	losAngeles   = models.Coordinates{Latitude: 34.0522, Longitude: -118.2437}
	sanFrancisco = models.Coordinates{Latitude: 37.7749, Longitude: -122.4194}
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func zoneAt(c models.Category, p models.Coordinates, adjusted float64) models.HazardZone {
	return models.HazardZone{
		Category:          c,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		BaseIntensity:     adjusted,
		BaseRadius:        3000,
		AdjustedIntensity: adjusted,
		AdjustedRadius:    3000,
	}
}

// makeRoute builds a single-leg route whose steps start at every point but the
// last, which becomes the leg's end.
func makeRoute(durationSeconds float64, points ...models.Coordinates) models.Route {
	leg := models.Leg{
		StartLocation:   points[0],
		EndLocation:     points[len(points)-1],
		DurationSeconds: durationSeconds,
	}
	for i := 0; i < len(points)-1; i++ {
		leg.Steps = append(leg.Steps, models.Step{
			StartLocation: points[i],
			EndLocation:   points[i+1],
		})
	}
	return models.Route{
		Legs:            []models.Leg{leg},
		DurationSeconds: durationSeconds,
	}
}

type fixedSimulator struct {
	calls   int
	impacts []models.WeatherImpacts
}

func (s *fixedSimulator) ExitDetails(impacts models.WeatherImpacts) models.ExitDetails {
	s.calls++
	s.impacts = append(s.impacts, impacts)
	return models.ExitDetails{TerrainDifficulty: 25, CellCoverage: 80}
}

func (s *fixedSimulator) AnalyticsDetails() models.AnalyticsDetails {
	return models.AnalyticsDetails{
		TerrainAnalysis: models.TerrainAnalysis{Elevation: 500},
	}
}
