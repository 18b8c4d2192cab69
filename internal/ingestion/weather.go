package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mr1hm/go-route-safety/internal/models"
)

const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/forecast"

type WeatherSource interface {
	Forecast(ctx context.Context, at models.Coordinates) ([]models.WeatherSample, error)
}

type owmResponse struct {
	List []owmEntry `json:"list"`
}

type owmEntry struct {
	Dt   int64 `json:"dt"` // unix seconds
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Rain owmPrecipitation `json:"rain"`
	Snow owmPrecipitation `json:"snow"`
}

type owmPrecipitation struct {
	ThreeHour float64 `json:"3h"`
}

// OpenWeather reads the 5 day / 3 hour forecast from OpenWeatherMap.
type OpenWeather struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenWeather(apiKey, baseURL string, timeout time.Duration) *OpenWeather {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}
	return &OpenWeather{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Forecast returns an empty forecast without error when no API key is configured.
func (w *OpenWeather) Forecast(ctx context.Context, at models.Coordinates) ([]models.WeatherSample, error) {
	if w.apiKey == "" {
		slog.Debug("weather provider not configured, skipping forecast")
		return []models.WeatherSample{}, nil
	}

	u, err := url.Parse(w.baseURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing weather url: %w", err)
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(at.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Longitude, 'f', -1, 64))
	q.Set("appid", w.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	var data owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding resp.Body: %w", err)
	}

	samples := make([]models.WeatherSample, 0, len(data.List))
	for _, e := range data.List {
		samples = append(samples, models.WeatherSample{
			Timestamp:   time.Unix(e.Dt, 0).UTC(),
			Temperature: e.Main.Temp,
			Humidity:    e.Main.Humidity,
			RainMm:      e.Rain.ThreeHour,
			SnowMm:      e.Snow.ThreeHour,
		})
	}
	return samples, nil
}
