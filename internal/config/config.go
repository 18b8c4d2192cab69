package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mr1hm/go-route-safety/internal/models"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Providers ProvidersConfig `yaml:"providers"`
	Hazards   HazardsConfig   `yaml:"hazards"`
	Sessions  SessionsConfig  `yaml:"sessions"`
	Worker    WorkerConfig    `yaml:"worker"`
	DB        DatabaseConfig  `yaml:"db"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Host         string  `yaml:"host"`
	Port         int     `yaml:"port"`
	RateLimitRPS float64 `yaml:"rate_limit_rps"`
}

type ProvidersConfig struct {
	GoogleMapsAPIKey  string        `yaml:"google_maps_api_key"`
	DirectionsBaseURL string        `yaml:"directions_base_url"`
	OpenWeatherAPIKey string        `yaml:"openweather_api_key"`
	OpenWeatherURL    string        `yaml:"openweather_url"`
	FetchTimeout      time.Duration `yaml:"fetch_timeout"`
}

type HazardsConfig struct {
	Factors models.Factors `yaml:"factors"`
	Seed    uint64         `yaml:"seed"` // 0 seeds from the clock
}

type SessionsConfig struct {
	MaxIdle       time.Duration `yaml:"max_idle"`
	SweepSchedule string        `yaml:"sweep_schedule"`
}

type WorkerConfig struct {
	Count      int `yaml:"count"`
	BufferSize int `yaml:"buffer_size"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const maxFetchTimeout = time.Minute

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "localhost",
			Port:         8080,
			RateLimitRPS: 5,
		},
		Providers: ProvidersConfig{
			OpenWeatherURL: "https://api.openweathermap.org/data/2.5/forecast",
			FetchTimeout:   10 * time.Second,
		},
		Hazards: HazardsConfig{
			Factors: models.DefaultFactors(),
		},
		Sessions: SessionsConfig{
			MaxIdle:       30 * time.Minute,
			SweepSchedule: "@every 5m",
		},
		Worker: WorkerConfig{
			Count:      2,
			BufferSize: 20,
		},
		DB: DatabaseConfig{
			Path: "./data/route-safety.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load applies, in order: defaults, the YAML file named by CONFIG_FILE (if
// any), then environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Host = getEnv("SERVER_HOST", c.Server.Host)
	c.Server.Port = getEnvInt("SERVER_PORT", c.Server.Port)
	c.Server.RateLimitRPS = getEnvFloat("RATE_LIMIT_RPS", c.Server.RateLimitRPS)

	c.Providers.GoogleMapsAPIKey = getEnv("GOOGLE_MAPS_API_KEY", c.Providers.GoogleMapsAPIKey)
	c.Providers.DirectionsBaseURL = getEnv("DIRECTIONS_BASE_URL", c.Providers.DirectionsBaseURL)
	c.Providers.OpenWeatherAPIKey = getEnv("OPENWEATHER_API_KEY", c.Providers.OpenWeatherAPIKey)
	c.Providers.OpenWeatherURL = getEnv("OPENWEATHER_URL", c.Providers.OpenWeatherURL)
	c.Providers.FetchTimeout = getEnvDuration("FETCH_TIMEOUT", c.Providers.FetchTimeout)

	c.Hazards.Factors.Snow = getEnvFloat("SNOW_FACTOR", c.Hazards.Factors.Snow)
	c.Hazards.Factors.Fire = getEnvFloat("FIRE_FACTOR", c.Hazards.Factors.Fire)
	c.Hazards.Factors.Rain = getEnvFloat("RAIN_FACTOR", c.Hazards.Factors.Rain)
	c.Hazards.Seed = getEnvUint("HAZARD_SEED", c.Hazards.Seed)

	c.Sessions.MaxIdle = getEnvDuration("SESSION_MAX_IDLE", c.Sessions.MaxIdle)
	c.Sessions.SweepSchedule = getEnv("SESSION_SWEEP_SCHEDULE", c.Sessions.SweepSchedule)

	c.Worker.Count = getEnvInt("WORKER_COUNT", c.Worker.Count)
	c.Worker.BufferSize = getEnvInt("WORKER_BUFFER_SIZE", c.Worker.BufferSize)

	c.DB.Path = getEnv("DB_PATH", c.DB.Path)

	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("LOG_FORMAT", c.Logging.Format)
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit must be positive: %v", c.Server.RateLimitRPS)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if err := c.Hazards.Factors.Validate(); err != nil {
		return err
	}

	if c.Providers.FetchTimeout <= 0 || c.Providers.FetchTimeout > maxFetchTimeout {
		return fmt.Errorf("fetch timeout must be in (0, %s]: %s", maxFetchTimeout, c.Providers.FetchTimeout)
	}

	if c.Sessions.MaxIdle <= 0 {
		return fmt.Errorf("session max idle must be positive")
	}
	if c.Sessions.SweepSchedule == "" {
		return fmt.Errorf("session sweep schedule is required")
	}

	if c.Worker.Count < 1 {
		return fmt.Errorf("worker count must be at least 1: %d", c.Worker.Count)
	}
	if c.Worker.BufferSize < 0 {
		return fmt.Errorf("worker buffer size must not be negative: %d", c.Worker.BufferSize)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvUint(key string, fallback uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
