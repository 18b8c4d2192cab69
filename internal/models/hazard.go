package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidFactor = errors.New("intensity factor must be within [0, 1]")

type Category string

const (
	CategorySnow Category = "snow"
	CategoryFire Category = "fire"
	CategoryRain Category = "rain"
)

// Categories lists every hazard category in display order.
var Categories = []Category{CategorySnow, CategoryFire, CategoryRain}

func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(s) {
	case "snow":
		return CategorySnow, true
	case "fire":
		return CategoryFire, true
	case "rain":
		return CategoryRain, true
	default:
		return "", false
	}
}

// Title is the capitalised label used in zone names ("Snow Zone 3").
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

type HazardZone struct {
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Latitude      float64  `json:"lat"`
	Longitude     float64  `json:"lon"`
	BaseIntensity float64  `json:"intensity"`
	BaseRadius    float64  `json:"radius_m"`
	// Derived from the base values and the category factor.
	AdjustedIntensity float64 `json:"adjusted_intensity"`
	AdjustedRadius    float64 `json:"adjusted_radius_m"`
}

func (z *HazardZone) Coordinates() Coordinates {
	return Coordinates{
		Latitude:  z.Latitude,
		Longitude: z.Longitude,
	}
}

// Zones groups the hazard zones generated for one route fetch.
type Zones struct {
	Snow []HazardZone `json:"snow"`
	Fire []HazardZone `json:"fire"`
	Rain []HazardZone `json:"rain"`
}

func (z Zones) ByCategory(c Category) []HazardZone {
	switch c {
	case CategorySnow:
		return z.Snow
	case CategoryFire:
		return z.Fire
	case CategoryRain:
		return z.Rain
	default:
		return nil
	}
}

func (z Zones) Count() int {
	return len(z.Snow) + len(z.Fire) + len(z.Rain)
}

// Clone deep-copies the zone slices so callers can mutate them independently.
func (z Zones) Clone() Zones {
	return Zones{
		Snow: append([]HazardZone(nil), z.Snow...),
		Fire: append([]HazardZone(nil), z.Fire...),
		Rain: append([]HazardZone(nil), z.Rain...),
	}
}

// Factors are the user controlled per-category intensity multipliers.
type Factors struct {
	Snow float64 `json:"snow" yaml:"snow"`
	Fire float64 `json:"fire" yaml:"fire"`
	Rain float64 `json:"rain" yaml:"rain"`
}

const DefaultFactor = 0.5

func DefaultFactors() Factors {
	return Factors{Snow: DefaultFactor, Fire: DefaultFactor, Rain: DefaultFactor}
}

func (f Factors) For(c Category) float64 {
	switch c {
	case CategorySnow:
		return f.Snow
	case CategoryFire:
		return f.Fire
	case CategoryRain:
		return f.Rain
	default:
		return 0
	}
}

func (f Factors) Validate() error {
	for _, c := range Categories {
		v := f.For(c)
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%s factor %.3f: %w", c, v, ErrInvalidFactor)
		}
	}
	return nil
}
