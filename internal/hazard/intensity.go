package hazard

import "github.com/mr1hm/go-route-safety/internal/models"

// ApplyIntensityFactor recomputes the derived fields of every zone in place.
// Base values are never modified, so repeated calls with the same factor are idempotent.
func ApplyIntensityFactor(zones []models.HazardZone, factor float64) []models.HazardZone {
	for i := range zones {
		zones[i].AdjustedIntensity = zones[i].BaseIntensity * factor
		zones[i].AdjustedRadius = zones[i].BaseRadius * (0.5 + factor*0.5)
	}
	return zones
}

func ApplyFactors(zones models.Zones, f models.Factors) models.Zones {
	zones.Snow = ApplyIntensityFactor(zones.Snow, f.Snow)
	zones.Fire = ApplyIntensityFactor(zones.Fire, f.Fire)
	zones.Rain = ApplyIntensityFactor(zones.Rain, f.Rain)
	return zones
}
