// Package scoring turns hazard zones, weather and traffic into risk scores,
// route rankings and exit recommendations. Every function here is pure apart
// from the injected Simulator.
package scoring

import (
	"math"

	"github.com/mr1hm/go-route-safety/internal/geo"
	"github.com/mr1hm/go-route-safety/internal/models"
)

type hazardWeight struct {
	thresholdKm float64 // a zone affects points closer than this
	route       float64
	exit        float64
}

var hazardWeights = map[models.Category]hazardWeight{
	models.CategorySnow: {thresholdKm: 20, route: 2, exit: 20},
	models.CategoryFire: {thresholdKm: 25, route: 3, exit: 30},
	models.CategoryRain: {thresholdKm: 15, route: 1.5, exit: 15},
}

// ThresholdKm returns the proximity threshold for a category.
func ThresholdKm(c models.Category) float64 {
	return hazardWeights[c].thresholdKm
}

func (w hazardWeight) reaches(z *models.HazardZone, p models.Coordinates) bool {
	return geo.DistanceKm(z.Coordinates(), p) < w.thresholdKm
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
