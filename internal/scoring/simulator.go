package scoring

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mr1hm/go-route-safety/internal/models"
)

// Simulator supplies the illustrative exit fields that have no real data feed yet.
type Simulator interface {
	ExitDetails(impacts models.WeatherImpacts) models.ExitDetails
	AnalyticsDetails() models.AnalyticsDetails
}

var emergencyServiceTypes = []string{"Hospital", "Police", "Fire Station"}

// RandomSimulator draws every field uniformly from a fixed range. Safe for concurrent use.
type RandomSimulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSimulator seeds the simulator; seed 0 seeds from the clock.
func NewRandomSimulator(seed uint64) *RandomSimulator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomSimulator{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

func (s *RandomSimulator) ExitDetails(impacts models.WeatherImpacts) models.ExitDetails {
	s.mu.Lock()
	defer s.mu.Unlock()

	services := make([]models.EmergencyService, 0, len(emergencyServiceTypes))
	for _, typ := range emergencyServiceTypes {
		distance := s.uniform(2, 15)
		services = append(services, models.EmergencyService{
			Type:            typ,
			DistanceKm:      distance,
			ResponseTimeMin: distance * 1.2,
		})
	}

	return models.ExitDetails{
		EmergencyServices: services,
		HistoricalSafety: models.HistoricalSafety{
			PastIncidents:         s.intn(0, 20),
			AvgResponseTimeMin:    s.uniform(5, 15),
			EvacuationSuccessRate: s.uniform(70, 98),
		},
		RoadConditions: models.RoadConditions{
			RoadQuality: s.uniform(50, 100),
			TrafficFlow: s.uniform(40, 100),
			Visibility:  s.uniform(60, 100) - impacts.Snow*0.5 - impacts.Rain*0.3,
		},
		TerrainDifficulty: s.uniform(10, 50),
		CellCoverage:      s.uniform(60, 100),
	}
}

func (s *RandomSimulator) AnalyticsDetails() models.AnalyticsDetails {
	s.mu.Lock()
	defer s.mu.Unlock()

	resources := []models.Resource{
		{Name: "Fuel Stations", Availability: s.uniform(50, 100)},
		{Name: "Medical Facilities", Availability: s.uniform(40, 90)},
		{Name: "Food & Water", Availability: s.uniform(60, 95)},
		{Name: "Shelter", Availability: s.uniform(55, 85)},
		{Name: "Communication", Availability: s.uniform(70, 100)},
	}

	history := make([]models.EvacuationYear, 0, 10)
	for year := 2015; year < 2025; year++ {
		history = append(history, models.EvacuationYear{
			Year:                 year,
			SuccessRate:          s.uniform(70, 95),
			AvgEvacuationTimeMin: s.uniform(20, 60),
			Incidents:            s.intn(1, 8),
		})
	}

	return models.AnalyticsDetails{
		ComparativeMetrics: models.ComparativeMetrics{
			EmergencyServiceProximity: s.uniform(60, 95),
			RoadAccessibility:         s.uniform(70, 98),
			EvacuationSpeed:           s.uniform(65, 90),
			ShelterAvailability:       s.uniform(50, 85),
			CommunicationReliability:  s.uniform(75, 95),
		},
		ResourceAvailability: resources,
		HistoricalEvacuation: history,
		TerrainAnalysis: models.TerrainAnalysis{
			Elevation:         s.uniform(100, 1000),
			Slope:             s.uniform(1, 15),
			VegetationDensity: s.uniform(10, 80),
			WaterBodies:       s.intn(0, 5),
		},
	}
}

func (s *RandomSimulator) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// intn is inclusive on both ends.
func (s *RandomSimulator) intn(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}
