package hazard

import "github.com/mr1hm/go-route-safety/internal/models"

// BoundsPadding expands the route bounding box on every side, in degrees.
const BoundsPadding = 0.5

// Profile describes how clusters of one hazard category are laid out.
type Profile struct {
	Category     models.Category
	Clusters     int
	MinPoints    int // per cluster, inclusive
	MaxPoints    int
	Jitter       float64 // +/- degrees around the cluster center
	MinIntensity float64
	MaxIntensity float64
	MinRadius    float64 // meters
	MaxRadius    float64
	LatBias      float64 // shifts cluster centers north
}

var (
	SnowProfile = Profile{
		Category:     models.CategorySnow,
		Clusters:     10,
		MinPoints:    3,
		MaxPoints:    8,
		Jitter:       0.2,
		MinIntensity: 0.4,
		MaxIntensity: 1.0,
		MinRadius:    2000,
		MaxRadius:    5000,
		LatBias:      0.1,
	}
	FireProfile = Profile{
		Category:     models.CategoryFire,
		Clusters:     8,
		MinPoints:    4,
		MaxPoints:    10,
		Jitter:       0.15,
		MinIntensity: 0.5,
		MaxIntensity: 1.0,
		MinRadius:    1500,
		MaxRadius:    4000,
	}
	RainProfile = Profile{
		Category:     models.CategoryRain,
		Clusters:     12,
		MinPoints:    5,
		MaxPoints:    12,
		Jitter:       0.25,
		MinIntensity: 0.3,
		MaxIntensity: 0.9,
		MinRadius:    3000,
		MaxRadius:    7000,
	}
)

func DefaultProfiles() []Profile {
	return []Profile{SnowProfile, FireProfile, RainProfile}
}
