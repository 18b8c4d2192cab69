package hazard

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mr1hm/go-route-safety/internal/geo"
	"github.com/mr1hm/go-route-safety/internal/models"
)

// Source produces hazard zones around a route. A real hazard feed can replace
// RandomSource without touching scoring.
type Source interface {
	Generate(start, end models.Coordinates) models.Zones
}

// RandomSource simulates clustered hazard zones. Safe for concurrent use.
type RandomSource struct {
	mu       sync.Mutex
	rng      *rand.Rand
	profiles []Profile
}

// NewRandomSource seeds the generator; seed 0 seeds from the clock.
func NewRandomSource(seed uint64, profiles ...Profile) *RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if len(profiles) == 0 {
		profiles = DefaultProfiles()
	}
	return &RandomSource{
		rng:      rand.New(rand.NewPCG(seed, seed>>1|1)),
		profiles: profiles,
	}
}

func (s *RandomSource) Generate(start, end models.Coordinates) models.Zones {
	bounds := geo.BoundingBox(start, end, BoundsPadding)

	s.mu.Lock()
	defer s.mu.Unlock()

	var zones models.Zones
	for _, p := range s.profiles {
		generated := s.generate(p, bounds)
		switch p.Category {
		case models.CategorySnow:
			zones.Snow = append(zones.Snow, generated...)
		case models.CategoryFire:
			zones.Fire = append(zones.Fire, generated...)
		case models.CategoryRain:
			zones.Rain = append(zones.Rain, generated...)
		}
	}
	return zones
}

func (s *RandomSource) generate(p Profile, bounds geo.Bounds) []models.HazardZone {
	zones := make([]models.HazardZone, 0, p.Clusters*p.MaxPoints)

	for range p.Clusters {
		centerLat := s.uniform(bounds.MinLat+p.LatBias, bounds.MaxLat+p.LatBias)
		centerLon := s.uniform(bounds.MinLon, bounds.MaxLon)

		size := p.MinPoints + s.rng.IntN(p.MaxPoints-p.MinPoints+1)
		for range size {
			intensity := s.uniform(p.MinIntensity, p.MaxIntensity)
			radius := s.uniform(p.MinRadius, p.MaxRadius)
			zones = append(zones, models.HazardZone{
				Name:              fmt.Sprintf("%s Zone %d", p.Category.Title(), len(zones)+1),
				Category:          p.Category,
				Latitude:          centerLat + s.uniform(-p.Jitter, p.Jitter),
				Longitude:         centerLon + s.uniform(-p.Jitter, p.Jitter),
				BaseIntensity:     intensity,
				BaseRadius:        radius,
				AdjustedIntensity: intensity,
				AdjustedRadius:    radius,
			})
		}
	}
	return zones
}

func (s *RandomSource) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}
