// Command hazard-sim generates hazard zones between two coordinates and
// prints the resulting risk assessment and safest exits as JSON. It makes no
// network calls.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mr1hm/go-route-safety/internal/config"
	"github.com/mr1hm/go-route-safety/internal/hazard"
	"github.com/mr1hm/go-route-safety/internal/ingestion"
	"github.com/mr1hm/go-route-safety/internal/logging"
	"github.com/mr1hm/go-route-safety/internal/models"
	"github.com/mr1hm/go-route-safety/internal/scoring"
)

type zoneCounts struct {
	Snow int `json:"snow"`
	Fire int `json:"fire"`
	Rain int `json:"rain"`
}

type report struct {
	From       models.Coordinates     `json:"from"`
	To         models.Coordinates     `json:"to"`
	Factors    models.Factors         `json:"factors"`
	Zones      zoneCounts             `json:"zones"`
	Assessment models.RiskAssessment  `json:"assessment"`
	Exits      []models.ExitCandidate `json:"exits"`
	Places     []models.Place         `json:"places,omitempty"`
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	from := flag.String("from", "34.0522,-118.2437", "start coordinate as lat,lon")
	to := flag.String("to", "37.7749,-122.4194", "end coordinate as lat,lon")
	snow := flag.Float64("snow", cfg.Hazards.Factors.Snow, "snow intensity factor in [0, 1]")
	fire := flag.Float64("fire", cfg.Hazards.Factors.Fire, "fire intensity factor in [0, 1]")
	rain := flag.Float64("rain", cfg.Hazards.Factors.Rain, "rain intensity factor in [0, 1]")
	seed := flag.Uint64("seed", cfg.Hazards.Seed, "random seed, 0 for time based")
	places := flag.Bool("places", false, "include simulated nearby places")
	flag.Parse()

	start, err := parseCoordinates(*from)
	if err != nil {
		logging.Fatalf("invalid -from: %v", err)
	}
	end, err := parseCoordinates(*to)
	if err != nil {
		logging.Fatalf("invalid -to: %v", err)
	}

	factors := models.Factors{Snow: *snow, Fire: *fire, Rain: *rain}
	if err := factors.Validate(); err != nil {
		logging.Fatalf("invalid factors: %v", err)
	}

	slog.Debug("simulating", "from", start, "to", end, "seed", *seed)

	zones := hazard.NewRandomSource(*seed).Generate(start, end)
	zones = hazard.ApplyFactors(zones, factors)

	// a straight line stands in for a route: traffic at both ends
	traffic := ingestion.SimulateTraffic([]models.Coordinates{start, end})

	out := report{
		From:       start,
		To:         end,
		Factors:    factors,
		Zones:      zoneCounts{Snow: len(zones.Snow), Fire: len(zones.Fire), Rain: len(zones.Rain)},
		Assessment: scoring.CalculateRisk(nil, traffic, zones, factors),
		Exits:      scoring.SuggestSafeExits(start, nil, traffic, zones, factors, scoring.NewRandomSimulator(*seed)),
	}
	if *places {
		out.Places = ingestion.NearbyPlaces(start)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logging.Fatalf("error encoding report: %v", err)
	}
}

func parseCoordinates(s string) (models.Coordinates, error) {
	lat, lon, ok := strings.Cut(s, ",")
	if !ok {
		return models.Coordinates{}, errors.New("expected lat,lon")
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("latitude: %w", err)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("longitude: %w", err)
	}
	c := models.Coordinates{Latitude: la, Longitude: lo}
	if !c.Valid() {
		return models.Coordinates{}, fmt.Errorf("coordinate out of range: %v,%v", la, lo)
	}
	return c, nil
}
