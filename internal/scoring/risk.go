package scoring

import (
	"math"

	"github.com/mr1hm/go-route-safety/internal/models"
)

const (
	snowWeight    = 0.2
	rainWeight    = 0.2
	fireWeight    = 0.3
	trafficWeight = 0.3
)

// CalculateRisk aggregates weather, traffic and hazard zones into an assessment.
// Weather and traffic sub-scores are capped at 100; zone averages are not
// re-capped, their range follows from intensity and factor both being in [0, 1].
func CalculateRisk(weather []models.WeatherSample, traffic []models.TrafficPoint, zones models.Zones, f models.Factors) models.RiskAssessment {
	var snowRisk, rainRisk, fireRisk, trafficRisk float64

	if len(weather) > 0 {
		var maxSnow, maxRain float64
		for _, w := range weather {
			maxSnow = math.Max(maxSnow, w.SnowMm)
			maxRain = math.Max(maxRain, w.RainMm)
		}
		snowRisk = math.Min(100, maxSnow*20)
		rainRisk = math.Min(100, maxRain*10)
	}

	if len(traffic) > 0 {
		var high, medium int
		for _, p := range traffic {
			switch p.Severity {
			case models.SeverityHigh:
				high++
			case models.SeverityMedium:
				medium++
			}
		}
		trafficRisk = float64(high*10+medium*5) / float64(max(1, len(traffic))) * 10
		trafficRisk = math.Min(100, trafficRisk)
	}

	if len(zones.Snow) > 0 {
		snowRisk = math.Max(snowRisk, averageIntensity(zones.Snow)*100*f.Snow)
	}
	// the weather feed carries no fire signal, so fire risk comes from zones only
	if len(zones.Fire) > 0 {
		fireRisk = averageIntensity(zones.Fire) * 100 * f.Fire
	}
	if len(zones.Rain) > 0 {
		rainRisk = math.Max(rainRisk, averageIntensity(zones.Rain)*100*f.Rain)
	}

	overall := snowRisk*snowWeight + rainRisk*rainWeight + fireRisk*fireWeight + trafficRisk*trafficWeight

	return models.RiskAssessment{
		OverallRisk: overall,
		SnowRisk:    snowRisk,
		RainRisk:    rainRisk,
		FireRisk:    fireRisk,
		TrafficRisk: trafficRisk,
		RiskLevel:   RiskLevelFor(overall),
	}
}

// RiskLevelFor buckets an overall score; both thresholds are strict.
func RiskLevelFor(overall float64) models.RiskLevel {
	switch {
	case overall > 70:
		return models.RiskLevelHigh
	case overall > 40:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}

func averageIntensity(zones []models.HazardZone) float64 {
	if len(zones) == 0 {
		return 0
	}
	var sum float64
	for _, z := range zones {
		sum += z.AdjustedIntensity
	}
	return sum / float64(len(zones))
}
