package ingestion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"googlemaps.github.io/maps"

	"github.com/mr1hm/go-route-safety/internal/models"
)

// MaxRoutes caps how many alternatives are kept from a directions response.
const MaxRoutes = 3

var (
	ErrDirectionsUnavailable = errors.New("directions provider not configured")
	ErrNoRoutes              = errors.New("no routes found")
)

type DirectionsSource interface {
	Routes(ctx context.Context, origin, destination string, alternatives bool) ([]models.Route, error)
}

// GoogleDirections fetches driving routes from the Google Directions API.
type GoogleDirections struct {
	client *maps.Client
}

// NewGoogleDirections returns ErrDirectionsUnavailable when no API key is set.
// baseURL is optional and only overridden for tests or proxies.
func NewGoogleDirections(apiKey, baseURL string, timeout time.Duration) (*GoogleDirections, error) {
	if apiKey == "" {
		return nil, ErrDirectionsUnavailable
	}

	opts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating maps client: %w", err)
	}
	return &GoogleDirections{client: client}, nil
}

func (g *GoogleDirections) Routes(ctx context.Context, origin, destination string, alternatives bool) ([]models.Route, error) {
	req := &maps.DirectionsRequest{
		Origin:        origin,
		Destination:   destination,
		Mode:          maps.TravelModeDriving,
		Alternatives:  alternatives,
		DepartureTime: "now",
		TrafficModel:  maps.TrafficModelBestGuess,
	}

	resp, _, err := g.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error fetching directions: %w", err)
	}
	if len(resp) == 0 {
		return nil, ErrNoRoutes
	}
	if len(resp) > MaxRoutes {
		resp = resp[:MaxRoutes]
	}

	routes := make([]models.Route, 0, len(resp))
	for i := range resp {
		routes = append(routes, convertRoute(&resp[i]))
	}
	return routes, nil
}

func convertRoute(r *maps.Route) models.Route {
	route := models.Route{
		Summary: r.Summary,
		Legs:    make([]models.Leg, 0, len(r.Legs)),
	}

	for _, l := range r.Legs {
		if l == nil {
			continue
		}
		leg := models.Leg{
			StartAddress:    l.StartAddress,
			EndAddress:      l.EndAddress,
			StartLocation:   fromLatLng(l.StartLocation),
			EndLocation:     fromLatLng(l.EndLocation),
			DistanceMeters:  l.Distance.Meters,
			DurationSeconds: l.Duration.Seconds(),
			Steps:           make([]models.Step, 0, len(l.Steps)),
		}
		for _, s := range l.Steps {
			if s == nil {
				continue
			}
			leg.Steps = append(leg.Steps, models.Step{
				StartLocation:   fromLatLng(s.StartLocation),
				EndLocation:     fromLatLng(s.EndLocation),
				DistanceMeters:  s.Distance.Meters,
				DurationSeconds: s.Duration.Seconds(),
				Instructions:    s.HTMLInstructions,
			})
		}

		route.DistanceMeters += leg.DistanceMeters
		route.DurationSeconds += leg.DurationSeconds
		route.Legs = append(route.Legs, leg)
	}
	return route
}

func fromLatLng(ll maps.LatLng) models.Coordinates {
	return models.Coordinates{Latitude: ll.Lat, Longitude: ll.Lng}
}
