package scoring

import (
	"cmp"
	"math"
	"slices"

	"github.com/mr1hm/go-route-safety/internal/geo"
	"github.com/mr1hm/go-route-safety/internal/models"
)

// MaxExits is how many candidates SuggestSafeExits returns.
const MaxExits = 3

type direction struct {
	name string
	dLat float64
	dLon float64
}

// Cardinals sit 0.1 degrees away, diagonals 0.07 on both axes.
var exitDirections = [...]direction{
	{"North", 0.1, 0},
	{"Northeast", 0.07, 0.07},
	{"East", 0, 0.1},
	{"Southeast", -0.07, 0.07},
	{"South", -0.1, 0},
	{"Southwest", -0.07, -0.07},
	{"West", 0, -0.1},
	{"Northwest", 0.07, -0.07},
}

// SuggestSafeExits returns the three safest exit candidates around origin,
// highest safety score first. Ties keep compass order.
func SuggestSafeExits(origin models.Coordinates, weather []models.WeatherSample, traffic []models.TrafficPoint, zones models.Zones, f models.Factors, sim Simulator) []models.ExitCandidate {
	exits := EvaluateExits(origin, weather, traffic, zones, f, sim)

	slices.SortStableFunc(exits, func(a, b models.ExitCandidate) int {
		return cmp.Compare(b.SafetyScore, a.SafetyScore)
	})

	if len(exits) > MaxExits {
		exits = exits[:MaxExits]
	}
	return exits
}

// EvaluateExits scores all eight compass exits in compass order.
func EvaluateExits(origin models.Coordinates, weather []models.WeatherSample, traffic []models.TrafficPoint, zones models.Zones, f models.Factors, sim Simulator) []models.ExitCandidate {
	var weatherPenalty float64
	if len(weather) > 0 {
		weatherPenalty = weather[0].SnowMm*10 + weather[0].RainMm*5
	}
	trafficPenalty := nearestTrafficPenalty(origin, traffic)

	exits := make([]models.ExitCandidate, 0, len(exitDirections))
	for i, d := range exitDirections {
		point := origin.Offset(d.dLat, d.dLon)

		// base score cycles 100, 90, 80, 70, 60 around the compass
		score := 100 - float64(i*10%50)
		score -= weatherPenalty
		score -= trafficPenalty

		impacts := models.WeatherImpacts{
			Snow: exitImpact(point, zones.Snow, hazardWeights[models.CategorySnow], f.Snow),
			Fire: exitImpact(point, zones.Fire, hazardWeights[models.CategoryFire], f.Fire),
			Rain: exitImpact(point, zones.Rain, hazardWeights[models.CategoryRain], f.Rain),
		}
		score -= impacts.Snow + impacts.Fire + impacts.Rain
		score = clamp(score, 0, 100)

		exit := models.ExitCandidate{
			Latitude:       point.Latitude,
			Longitude:      point.Longitude,
			Direction:      d.name,
			SafetyScore:    score,
			Recommendation: RecommendationFor(score),
			WeatherImpacts: impacts,
		}
		if sim != nil {
			exit.ExitDetails = sim.ExitDetails(impacts)
		}
		exits = append(exits, exit)
	}
	return exits
}

func RecommendationFor(score float64) models.Recommendation {
	switch {
	case score > 80:
		return models.RecommendationHighly
	case score > 60:
		return models.RecommendationDefault
	case score > 40:
		return models.RecommendationCaution
	default:
		return models.RecommendationAvoid
	}
}

// nearestTrafficPenalty looks at the traffic point closest to the origin, not the exit.
func nearestTrafficPenalty(origin models.Coordinates, traffic []models.TrafficPoint) float64 {
	if len(traffic) == 0 {
		return 0
	}

	nearest := math.Inf(1)
	severity := models.SeverityLow
	for i := range traffic {
		if d := geo.DistanceKm(origin, traffic[i].Coordinates()); d < nearest {
			nearest = d
			severity = traffic[i].Severity
		}
	}

	switch severity {
	case models.SeverityHigh:
		return 30
	case models.SeverityMedium:
		return 15
	default:
		return 0
	}
}

func exitImpact(point models.Coordinates, zones []models.HazardZone, w hazardWeight, factor float64) float64 {
	var impact float64
	for i := range zones {
		if w.reaches(&zones[i], point) {
			impact += w.exit * zones[i].AdjustedIntensity * factor
		}
	}
	return impact
}
