package api

import (
	"github.com/mr1hm/go-route-safety/internal/models"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// zonesToGeoJSON renders zones as points; radius_m carries the circle a map
// client should draw. With no categories given every category is included.
func zonesToGeoJSON(zones models.Zones, categories ...models.Category) FeatureCollection {
	if len(categories) == 0 {
		categories = models.Categories
	}

	features := make([]Feature, 0, zones.Count())
	for _, cat := range categories {
		for _, z := range zones.ByCategory(cat) {
			features = append(features, Feature{
				Type: "Feature",
				Geometry: Geometry{
					Type:        "Point",
					Coordinates: []float64{z.Longitude, z.Latitude},
				},
				Properties: map[string]any{
					"name":           z.Name,
					"category":       string(z.Category),
					"intensity":      z.AdjustedIntensity,
					"radius_m":       z.AdjustedRadius,
					"base_intensity": z.BaseIntensity,
					"base_radius_m":  z.BaseRadius,
				},
			})
		}
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
