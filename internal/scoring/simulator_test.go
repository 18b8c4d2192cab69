package scoring

import (
	"sync"
	"testing"

	"github.com/mr1hm/go-route-safety/internal/models"
)

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

func TestRandomSimulator_ExitDetailsRanges(t *testing.T) {
	sim := NewRandomSimulator(17)
	impacts := models.WeatherImpacts{Snow: 10, Rain: 20}

	for i := 0; i < 200; i++ {
		d := sim.ExitDetails(impacts)

		if len(d.EmergencyServices) != 3 {
			t.Fatalf("expected 3 emergency services, got %d", len(d.EmergencyServices))
		}
		for _, s := range d.EmergencyServices {
			if !inRange(s.DistanceKm, 2, 15) {
				t.Errorf("%s distance %v outside [2, 15]", s.Type, s.DistanceKm)
			}
			if !approxEqual(s.ResponseTimeMin, s.DistanceKm*1.2) {
				t.Errorf("%s response time %v is not 1.2 x distance", s.Type, s.ResponseTimeMin)
			}
		}

		h := d.HistoricalSafety
		if h.PastIncidents < 0 || h.PastIncidents > 20 {
			t.Errorf("past incidents %d outside [0, 20]", h.PastIncidents)
		}
		if !inRange(h.AvgResponseTimeMin, 5, 15) || !inRange(h.EvacuationSuccessRate, 70, 98) {
			t.Errorf("historical safety out of range: %+v", h)
		}

		r := d.RoadConditions
		if !inRange(r.RoadQuality, 50, 100) || !inRange(r.TrafficFlow, 40, 100) {
			t.Errorf("road conditions out of range: %+v", r)
		}
		// visibility base in [60, 100] minus 0.5*10 + 0.3*20 = 11
		if !inRange(r.Visibility, 49, 89) {
			t.Errorf("visibility %v outside [49, 89]", r.Visibility)
		}

		if !inRange(d.TerrainDifficulty, 10, 50) || !inRange(d.CellCoverage, 60, 100) {
			t.Errorf("terrain/coverage out of range: %v, %v", d.TerrainDifficulty, d.CellCoverage)
		}
	}
}

func TestRandomSimulator_AnalyticsDetails(t *testing.T) {
	d := NewRandomSimulator(3).AnalyticsDetails()

	if len(d.ResourceAvailability) != 5 {
		t.Errorf("expected 5 resources, got %d", len(d.ResourceAvailability))
	}
	if len(d.HistoricalEvacuation) != 10 {
		t.Fatalf("expected 10 years of history, got %d", len(d.HistoricalEvacuation))
	}
	if d.HistoricalEvacuation[0].Year != 2015 || d.HistoricalEvacuation[9].Year != 2024 {
		t.Errorf("expected years 2015..2024, got %d..%d", d.HistoricalEvacuation[0].Year, d.HistoricalEvacuation[9].Year)
	}
	for _, y := range d.HistoricalEvacuation {
		if y.Incidents < 1 || y.Incidents > 8 {
			t.Errorf("%d incidents %d outside [1, 8]", y.Year, y.Incidents)
		}
	}
	if w := d.TerrainAnalysis.WaterBodies; w < 0 || w > 5 {
		t.Errorf("water bodies %d outside [0, 5]", w)
	}
}

func TestRandomSimulator_Concurrent(t *testing.T) {
	sim := NewRandomSimulator(0)
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sim.ExitDetails(models.WeatherImpacts{})
			sim.AnalyticsDetails()
		}()
	}
	wg.Wait()
}
