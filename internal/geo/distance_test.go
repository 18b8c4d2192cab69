package geo

import (
	"math"
	"testing"

	"github.com/mr1hm/go-route-safety/internal/models"
)

var (
	losAngeles   = models.Coordinates{Latitude: 34.0522, Longitude: -118.2437}
	sanFrancisco = models.Coordinates{Latitude: 37.7749, Longitude: -122.4194}
)

func TestDistanceKm_KnownPair(t *testing.T) {
	got := DistanceKm(losAngeles, sanFrancisco)
	// LA to SF is roughly 559 km great-circle
	if got < 550 || got > 570 {
		t.Errorf("expected ~559 km, got %.2f", got)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	pairs := [][2]models.Coordinates{
		{losAngeles, sanFrancisco},
		{{Latitude: 0, Longitude: 0}, {Latitude: 0, Longitude: 180}},
		{{Latitude: -33.86, Longitude: 151.2}, {Latitude: 51.5, Longitude: -0.12}},
		{{Latitude: 89.9, Longitude: 10}, {Latitude: -89.9, Longitude: -170}},
	}

	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1])
		ba := DistanceKm(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("distance not symmetric for %v: %f vs %f", p, ab, ba)
		}
	}
}

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	for _, c := range []models.Coordinates{losAngeles, sanFrancisco, {Latitude: 90, Longitude: 0}} {
		if d := DistanceKm(c, c); d > 1e-9 {
			t.Errorf("expected 0 for identical points, got %f", d)
		}
	}
}

func TestDistanceKm_TriangleInequality(t *testing.T) {
	c := models.Coordinates{Latitude: 36.7783, Longitude: -119.4179}

	ab := DistanceKm(losAngeles, sanFrancisco)
	ac := DistanceKm(losAngeles, c)
	cb := DistanceKm(c, sanFrancisco)

	if ab > ac+cb+1e-9 {
		t.Errorf("triangle inequality violated: %f > %f + %f", ab, ac, cb)
	}
}

func TestDistanceKm_Antipodal(t *testing.T) {
	d := DistanceKm(models.Coordinates{Latitude: 0, Longitude: 0}, models.Coordinates{Latitude: 0, Longitude: 180})
	want := math.Pi * EarthRadiusKm
	if math.Abs(d-want) > 1e-6 {
		t.Errorf("expected %f, got %f", want, d)
	}
}

func TestBoundingBox(t *testing.T) {
	b := BoundingBox(sanFrancisco, losAngeles, 0.5)

	if b.MinLat != losAngeles.Latitude-0.5 || b.MaxLat != sanFrancisco.Latitude+0.5 {
		t.Errorf("unexpected latitude bounds: %+v", b)
	}
	if b.MinLon != sanFrancisco.Longitude-0.5 || b.MaxLon != losAngeles.Longitude+0.5 {
		t.Errorf("unexpected longitude bounds: %+v", b)
	}
	if !b.Contains(losAngeles) || !b.Contains(sanFrancisco) {
		t.Error("expected bounds to contain both endpoints")
	}
	if b.Contains(models.Coordinates{Latitude: 40, Longitude: -118}) {
		t.Error("expected point outside latitude range to be excluded")
	}
}
