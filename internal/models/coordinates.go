package models

type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Offset returns the coordinate shifted by the given degrees.
func (c Coordinates) Offset(dLat, dLon float64) Coordinates {
	return Coordinates{
		Latitude:  c.Latitude + dLat,
		Longitude: c.Longitude + dLon,
	}
}

// Valid reports whether c is a finite point on the globe. NaN fails every
// comparison, so it is rejected along with infinities.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
