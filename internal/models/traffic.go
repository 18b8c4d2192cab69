package models

type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

type TrafficPoint struct {
	Latitude  float64  `json:"lat"`
	Longitude float64  `json:"lon"`
	Severity  Severity `json:"severity"`
	Label     string   `json:"label"`
}

func (p *TrafficPoint) Coordinates() Coordinates {
	return Coordinates{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}
