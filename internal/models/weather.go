package models

import "time"

// WeatherSample is one 3-hour forecast entry.
type WeatherSample struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	RainMm      float64   `json:"rain_mm"` // 3h accumulation
	SnowMm      float64   `json:"snow_mm"` // 3h accumulation
}
