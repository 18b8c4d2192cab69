package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mr1hm/go-route-safety/internal/hazard"
	"github.com/mr1hm/go-route-safety/internal/ingestion"
	"github.com/mr1hm/go-route-safety/internal/models"
	"github.com/mr1hm/go-route-safety/internal/scoring"
)

var (
	ErrNoRoutes        = errors.New("no routes loaded for session")
	ErrNoExits         = errors.New("no exits suggested for session")
	ErrExitNotFound    = errors.New("exit rank out of range")
	ErrInvalidLocation = errors.New("origin and destination are required")
	ErrUpstream        = errors.New("upstream provider failed")
)

// AssessmentRecorder receives a history record every time a session is re-assessed.
type AssessmentRecorder interface {
	Record(record *models.AssessmentRecord) bool
}

// Dependencies wires the providers a Service uses. Directions may be nil,
// in which case fetching routes fails with ingestion.ErrDirectionsUnavailable.
// Recorder may be nil.
type Dependencies struct {
	Directions ingestion.DirectionsSource
	Weather    ingestion.WeatherSource
	Hazards    hazard.Source
	Simulator  scoring.Simulator
	Recorder   AssessmentRecorder
}

type Service struct {
	store    *Store
	defaults models.Factors
	deps     Dependencies
}

// NewService starts new sessions from defaults. It falls back to a clock
// seeded hazard source when deps.Hazards is nil.
func NewService(store *Store, defaults models.Factors, deps Dependencies) *Service {
	if deps.Hazards == nil {
		deps.Hazards = hazard.NewRandomSource(0)
	}
	return &Service{
		store:    store,
		defaults: defaults,
		deps:     deps,
	}
}

// DefaultFactors are the configured factors a new session starts with.
func (svc *Service) DefaultFactors() models.Factors {
	return svc.defaults
}

// RoutesView lists routes in directions order alongside their scores, best first.
type RoutesView struct {
	Routes           []models.Route        `json:"routes"`
	Scores           []scoring.RouteScore  `json:"scores"`
	RecommendedRoute int                   `json:"recommended_route"`
	Assessment       models.RiskAssessment `json:"assessment"`
}

// FactorUpdate changes only the categories that are set.
type FactorUpdate struct {
	Snow *float64 `json:"snow"`
	Fire *float64 `json:"fire"`
	Rain *float64 `json:"rain"`
}

// Apply returns f with the set categories replaced.
func (u FactorUpdate) Apply(f models.Factors) models.Factors {
	if u.Snow != nil {
		f.Snow = *u.Snow
	}
	if u.Fire != nil {
		f.Fire = *u.Fire
	}
	if u.Rain != nil {
		f.Rain = *u.Rain
	}
	return f
}

func (svc *Service) Create(factors models.Factors) (Summary, error) {
	if err := factors.Validate(); err != nil {
		return Summary{}, err
	}
	s := svc.store.Create(factors)
	slog.Info("session created", "session_id", s.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary(), nil
}

func (svc *Service) Summary(id string) (Summary, error) {
	s, err := svc.store.Get(id)
	if err != nil {
		return Summary{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary(), nil
}

func (svc *Service) Delete(id string) error {
	if err := svc.store.Delete(id); err != nil {
		return err
	}
	slog.Info("session deleted", "session_id", id)
	return nil
}

// FetchRoutes loads routes, weather, traffic and fresh hazard zones for the
// session and re-assesses it. Provider calls run without holding the session
// lock; the session is only written once every call has succeeded.
func (svc *Service) FetchRoutes(ctx context.Context, id, origin, destination string, alternatives bool) (RoutesView, error) {
	origin, destination = strings.TrimSpace(origin), strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return RoutesView{}, ErrInvalidLocation
	}

	s, err := svc.store.Get(id)
	if err != nil {
		return RoutesView{}, err
	}
	if svc.deps.Directions == nil {
		return RoutesView{}, ingestion.ErrDirectionsUnavailable
	}

	routes, err := svc.deps.Directions.Routes(ctx, origin, destination, alternatives)
	if err != nil {
		if errors.Is(err, ingestion.ErrNoRoutes) || errors.Is(err, ingestion.ErrDirectionsUnavailable) {
			return RoutesView{}, err
		}
		return RoutesView{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if len(routes) == 0 {
		return RoutesView{}, ingestion.ErrNoRoutes
	}

	primary := routes[0]
	start, ok := primary.Start()
	if !ok {
		return RoutesView{}, ingestion.ErrNoRoutes
	}
	end, _ := primary.End()

	var weather []models.WeatherSample
	if svc.deps.Weather != nil {
		weather, err = svc.deps.Weather.Forecast(ctx, start)
		if err != nil {
			return RoutesView{}, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
	}

	traffic := ingestion.SimulateTraffic(primary.StepStarts())
	zones := svc.deps.Hazards.Generate(start, end)
	places := ingestion.NearbyPlaces(start)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.origin = origin
	s.destination = destination
	s.routes = routes
	s.weather = weather
	s.traffic = traffic
	s.zones = zones
	s.places = places
	s.exits = nil
	svc.reassess(s)

	slog.Info("routes fetched",
		"session_id", s.ID,
		"count", len(routes),
		"zones", zones.Count(),
		"weather_samples", len(weather),
		"risk_level", s.assessment.RiskLevel,
	)

	return s.routesView(), nil
}

// SetFactors stores the factors even when the session has no routes yet.
func (svc *Service) SetFactors(id string, update FactorUpdate) (Summary, error) {
	s, err := svc.store.Get(id)
	if err != nil {
		return Summary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	factors := update.Apply(s.factors)
	if err := factors.Validate(); err != nil {
		return Summary{}, err
	}

	s.factors = factors
	if s.hasRoutes() {
		s.exits = nil
		svc.reassess(s)
	} else {
		s.updatedAt = time.Now()
	}

	slog.Info("factors updated", "session_id", s.ID, "snow", factors.Snow, "fire", factors.Fire, "rain", factors.Rain)
	return s.summary(), nil
}

// reassess applies the current factors to the zones, re-ranks the routes and
// recomputes the risk. Caller holds s.mu and has checked hasRoutes.
func (svc *Service) reassess(s *Session) {
	s.zones = hazard.ApplyFactors(s.zones, s.factors)
	s.scores = scoring.ScoreRoutes(s.routes, s.zones, s.factors)

	risk := scoring.CalculateRisk(s.weather, s.traffic, s.zones, s.factors)
	s.assessment = &risk
	s.updatedAt = time.Now()

	if svc.deps.Recorder != nil {
		svc.deps.Recorder.Record(&models.AssessmentRecord{
			SessionID:        s.ID,
			Origin:           s.origin,
			Destination:      s.destination,
			Factors:          s.factors,
			Assessment:       risk,
			RecommendedRoute: s.recommended(),
			RouteCount:       len(s.routes),
		})
	}
}

func (s *Session) routesView() RoutesView {
	return RoutesView{
		Routes:           append([]models.Route(nil), s.routes...),
		Scores:           append([]scoring.RouteScore(nil), s.scores...),
		RecommendedRoute: s.recommended(),
		Assessment:       *s.assessment,
	}
}

func (svc *Service) Routes(id string) (RoutesView, error) {
	s, err := svc.store.Get(id)
	if err != nil {
		return RoutesView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasRoutes() {
		return RoutesView{}, ErrNoRoutes
	}
	return s.routesView(), nil
}

func (svc *Service) Risk(id string) (models.RiskAssessment, error) {
	s, err := svc.store.Get(id)
	if err != nil {
		return models.RiskAssessment{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.assessment == nil {
		return models.RiskAssessment{}, ErrNoRoutes
	}
	return *s.assessment, nil
}

// Zones returns a copy of the session's adjusted hazard zones.
func (svc *Service) Zones(id string) (models.Zones, error) {
	s, err := svc.store.Get(id)
	if err != nil {
		return models.Zones{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasRoutes() {
		return models.Zones{}, ErrNoRoutes
	}
	return s.zones.Clone(), nil
}

func (svc *Service) Weather(id string) ([]models.WeatherSample, error) {
	s, err := svc.store.Get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasRoutes() {
		return nil, ErrNoRoutes
	}
	return append([]models.WeatherSample{}, s.weather...), nil
}

func (svc *Service) Traffic(id string) ([]models.TrafficPoint, error) {
	s, err := svc.store.Get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasRoutes() {
		return nil, ErrNoRoutes
	}
	return append([]models.TrafficPoint{}, s.traffic...), nil
}

func (svc *Service) Places(id string) ([]models.Place, error) {
	s, err := svc.store.Get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasRoutes() {
		return nil, ErrNoRoutes
	}
	return append([]models.Place{}, s.places...), nil
}

// SuggestExits scores escape directions from origin, or from the first
// route's start when origin is nil. The result is kept for AnalyzeExit.
func (svc *Service) SuggestExits(id string, origin *models.Coordinates) ([]models.ExitCandidate, error) {
	s, err := svc.store.Get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasRoutes() {
		return nil, ErrNoRoutes
	}

	from, _ := s.routes[0].Start()
	if origin != nil {
		from = *origin
	}

	exits := scoring.SuggestSafeExits(from, s.weather, s.traffic, s.zones, s.factors, svc.deps.Simulator)
	s.exits = exits

	return append([]models.ExitCandidate(nil), exits...), nil
}

// AnalyzeExit expands the exit at rank (1 is the best) from the last suggestion.
func (svc *Service) AnalyzeExit(id string, rank int) (models.ExitAnalytics, error) {
	s, err := svc.store.Get(id)
	if err != nil {
		return models.ExitAnalytics{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.exits) == 0 {
		return models.ExitAnalytics{}, ErrNoExits
	}
	if rank < 1 || rank > len(s.exits) {
		return models.ExitAnalytics{}, fmt.Errorf("rank %d of %d: %w", rank, len(s.exits), ErrExitNotFound)
	}

	return scoring.AnalyzeExit(s.exits[rank-1], s.zones, svc.deps.Simulator), nil
}
