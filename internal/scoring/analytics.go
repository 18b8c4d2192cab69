package scoring

import (
	"math"

	"github.com/mr1hm/go-route-safety/internal/geo"
	"github.com/mr1hm/go-route-safety/internal/models"
)

const forecastHours = 24

// AnalyzeExit expands a suggested exit with hazard distances, a 24 hour
// safety forecast and the simulator's analytics.
func AnalyzeExit(exit models.ExitCandidate, zones models.Zones, sim Simulator) models.ExitAnalytics {
	point := exit.Coordinates()

	analytics := models.ExitAnalytics{
		Exit: exit,
		NearestHazards: models.NearestHazards{
			SnowKm: nearestZoneKm(point, zones.Snow),
			FireKm: nearestZoneKm(point, zones.Fire),
			RainKm: nearestZoneKm(point, zones.Rain),
		},
		SafetyForecast: safetyForecast(exit),
	}
	if sim != nil {
		analytics.AnalyticsDetails = sim.AnalyticsDetails()
	}
	return analytics
}

// nearestZoneKm returns nil when there are no zones of the category.
func nearestZoneKm(point models.Coordinates, zones []models.HazardZone) *float64 {
	if len(zones) == 0 {
		return nil
	}
	nearest := math.Inf(1)
	for i := range zones {
		nearest = math.Min(nearest, geo.DistanceKm(point, zones[i].Coordinates()))
	}
	return &nearest
}

func safetyForecast(exit models.ExitCandidate) []models.HourlySafety {
	forecast := make([]models.HourlySafety, 0, forecastHours)
	impacts := exit.WeatherImpacts

	for hour := range forecastHours {
		h := float64(hour)
		timeFactor := 1 + 0.2*math.Sin(h/24*2*math.Pi)

		forecast = append(forecast, models.HourlySafety{
			Hour:        hour,
			SafetyScore: clamp(exit.SafetyScore*timeFactor, 0, 100),
			SnowImpact:  impacts.Snow * (1 + 0.3*math.Sin(h/12*math.Pi)),
			FireImpact:  impacts.Fire * (1 - 0.2*math.Sin(h/8*math.Pi)),
			RainImpact:  impacts.Rain * (1 + 0.4*math.Sin(h/6*math.Pi)),
		})
	}
	return forecast
}
