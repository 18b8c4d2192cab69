package models

type Step struct {
	StartLocation   Coordinates `json:"start_location"`
	EndLocation     Coordinates `json:"end_location"`
	DistanceMeters  int         `json:"distance_m"`
	DurationSeconds float64     `json:"duration_s"`
	Instructions    string      `json:"instructions"` // HTML, as returned by the directions source
}

type Leg struct {
	StartAddress    string      `json:"start_address"`
	EndAddress      string      `json:"end_address"`
	StartLocation   Coordinates `json:"start_location"`
	EndLocation     Coordinates `json:"end_location"`
	DistanceMeters  int         `json:"distance_m"`
	DurationSeconds float64     `json:"duration_s"`
	Steps           []Step      `json:"steps"`
}

// Route is read-only input from the directions source.
type Route struct {
	Summary         string  `json:"summary"`
	Legs            []Leg   `json:"legs"`
	DistanceMeters  int     `json:"distance_m"`
	DurationSeconds float64 `json:"duration_s"`
}

// Path returns every step start followed by the final leg's end location.
func (r *Route) Path() []Coordinates {
	var path []Coordinates
	for _, leg := range r.Legs {
		for _, step := range leg.Steps {
			path = append(path, step.StartLocation)
		}
	}
	if n := len(r.Legs); n > 0 {
		path = append(path, r.Legs[n-1].EndLocation)
	}
	return path
}

// StepStarts returns the start of every step, without the final end location.
func (r *Route) StepStarts() []Coordinates {
	var starts []Coordinates
	for _, leg := range r.Legs {
		for _, step := range leg.Steps {
			starts = append(starts, step.StartLocation)
		}
	}
	return starts
}

// Start is the first leg's start location; ok is false for a route without legs.
func (r *Route) Start() (Coordinates, bool) {
	if len(r.Legs) == 0 {
		return Coordinates{}, false
	}
	return r.Legs[0].StartLocation, true
}

func (r *Route) End() (Coordinates, bool) {
	if len(r.Legs) == 0 {
		return Coordinates{}, false
	}
	return r.Legs[len(r.Legs)-1].EndLocation, true
}

// Place is a simulated nearby city or highway exit.
type Place struct {
	Name       string  `json:"name"`
	Kind       string  `json:"kind"` // "city" or "highway_exit"
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lon"`
	DistanceKm float64 `json:"distance_km"`
}
