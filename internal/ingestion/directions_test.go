package ingestion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func directionsRoute(summary string, seconds int) string {
	return fmt.Sprintf(`{
		"summary": %q,
		"legs": [{
			"start_address": "Los Angeles, CA",
			"end_address": "San Francisco, CA",
			"start_location": {"lat": 34.05, "lng": -118.24},
			"end_location": {"lat": 37.77, "lng": -122.42},
			"distance": {"text": "616 km", "value": 616000},
			"duration": {"text": "6 hours", "value": %d},
			"steps": [
				{
					"html_instructions": "Head north",
					"start_location": {"lat": 34.05, "lng": -118.24},
					"end_location": {"lat": 35.0, "lng": -119.0},
					"distance": {"text": "150 km", "value": 150000},
					"duration": {"text": "1 hour", "value": 3600}
				},
				{
					"html_instructions": "Continue on I-5",
					"start_location": {"lat": 35.0, "lng": -119.0},
					"end_location": {"lat": 37.77, "lng": -122.42},
					"distance": {"text": "466 km", "value": 466000},
					"duration": {"text": "5 hours", "value": 18000}
				}
			]
		}]
	}`, summary, seconds)
}

func newDirectionsServer(t *testing.T, body string, gotQuery *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.RawQuery
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewGoogleDirections_NoKey(t *testing.T) {
	_, err := NewGoogleDirections("", "", time.Second)
	if !errors.Is(err, ErrDirectionsUnavailable) {
		t.Errorf("expected ErrDirectionsUnavailable, got %v", err)
	}
}

func TestGoogleDirections_Routes(t *testing.T) {
	body := `{"status": "OK", "routes": [` + directionsRoute("I-5 N", 21600) + `]}`
	var query string
	srv := newDirectionsServer(t, body, &query)

	g, err := NewGoogleDirections("test-key", srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewGoogleDirections failed: %v", err)
	}

	routes, err := g.Routes(context.Background(), "Los Angeles", "San Francisco", true)
	if err != nil {
		t.Fatalf("Routes failed: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}

	r := routes[0]
	if r.Summary != "I-5 N" {
		t.Errorf("expected summary I-5 N, got %s", r.Summary)
	}
	if r.DurationSeconds != 21600 {
		t.Errorf("expected duration 21600s, got %v", r.DurationSeconds)
	}
	if r.DistanceMeters != 616000 {
		t.Errorf("expected distance 616000m, got %d", r.DistanceMeters)
	}
	if len(r.Legs) != 1 || len(r.Legs[0].Steps) != 2 {
		t.Fatalf("expected 1 leg with 2 steps, got %+v", r.Legs)
	}
	if got := r.Legs[0].Steps[1].StartLocation; got.Latitude != 35.0 || got.Longitude != -119.0 {
		t.Errorf("unexpected step start %+v", got)
	}
	if got := r.Path(); len(got) != 3 || got[2].Latitude != 37.77 {
		t.Errorf("unexpected path %+v", got)
	}

	for _, want := range []string{"alternatives=true", "departure_time=now", "traffic_model=best_guess", "key=test-key"} {
		if !strings.Contains(query, want) {
			t.Errorf("expected query to contain %s, got %s", want, query)
		}
	}
}

func TestGoogleDirections_CapsRoutes(t *testing.T) {
	var parts []string
	for i := range 5 {
		parts = append(parts, directionsRoute(fmt.Sprintf("Route %d", i), 3600*(i+1)))
	}
	body := `{"status": "OK", "routes": [` + strings.Join(parts, ",") + `]}`
	srv := newDirectionsServer(t, body, nil)

	g, err := NewGoogleDirections("test-key", srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewGoogleDirections failed: %v", err)
	}

	routes, err := g.Routes(context.Background(), "a", "b", true)
	if err != nil {
		t.Fatalf("Routes failed: %v", err)
	}
	if len(routes) != MaxRoutes {
		t.Fatalf("expected %d routes, got %d", MaxRoutes, len(routes))
	}
	if routes[2].Summary != "Route 2" {
		t.Errorf("expected the first routes to be kept in order, got %s", routes[2].Summary)
	}
}

func TestGoogleDirections_NoRoutes(t *testing.T) {
	srv := newDirectionsServer(t, `{"status": "OK", "routes": []}`, nil)

	g, err := NewGoogleDirections("test-key", srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewGoogleDirections failed: %v", err)
	}

	_, err = g.Routes(context.Background(), "a", "b", false)
	if !errors.Is(err, ErrNoRoutes) {
		t.Errorf("expected ErrNoRoutes, got %v", err)
	}
}

func TestGoogleDirections_UpstreamError(t *testing.T) {
	srv := newDirectionsServer(t, `{"status": "REQUEST_DENIED", "error_message": "invalid key", "routes": []}`, nil)

	g, err := NewGoogleDirections("bad-key", srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewGoogleDirections failed: %v", err)
	}

	_, err = g.Routes(context.Background(), "a", "b", false)
	if err == nil {
		t.Fatal("expected error for denied request")
	}
	if errors.Is(err, ErrNoRoutes) {
		t.Errorf("expected upstream error, not ErrNoRoutes")
	}
}
