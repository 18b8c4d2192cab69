package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/mr1hm/go-route-safety/internal/models"
	"github.com/mr1hm/go-route-safety/internal/scoring"
)

// Session is one user's working state. Fields are guarded by mu; sessions
// never share state with each other.
type Session struct {
	ID        string
	CreatedAt time.Time

	lastAccess atomic.Int64 // unix nanos

	mu          sync.Mutex
	factors     models.Factors
	origin      string
	destination string
	routes      []models.Route
	scores      []scoring.RouteScore
	weather     []models.WeatherSample
	traffic     []models.TrafficPoint
	zones       models.Zones
	places      []models.Place
	assessment  *models.RiskAssessment
	exits       []models.ExitCandidate
	updatedAt   time.Time
}

func newSession(id string, factors models.Factors, now time.Time) *Session {
	s := &Session{
		ID:        id,
		CreatedAt: now,
		factors:   factors,
		updatedAt: now,
	}
	s.touch(now)
	return s
}

func (s *Session) touch(now time.Time) {
	s.lastAccess.Store(now.UnixNano())
}

func (s *Session) LastAccess() time.Time {
	return time.Unix(0, s.lastAccess.Load())
}

func (s *Session) hasRoutes() bool {
	return len(s.routes) > 0
}

// recommended is the index of the best ranked route; callers check hasRoutes.
func (s *Session) recommended() int {
	return s.scores[0].Index
}

// Summary is a point-in-time view of a session.
type Summary struct {
	ID               string                 `json:"id"`
	Factors          models.Factors         `json:"factors"`
	Origin           string                 `json:"origin,omitempty"`
	Destination      string                 `json:"destination,omitempty"`
	RouteCount       int                    `json:"route_count"`
	RecommendedRoute *int                   `json:"recommended_route,omitempty"`
	ZoneCount        int                    `json:"zone_count"`
	WeatherSamples   int                    `json:"weather_samples"`
	Assessment       *models.RiskAssessment `json:"assessment,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	LastAccess       time.Time              `json:"last_access"`
}

func (s *Session) summary() Summary {
	sum := Summary{
		ID:             s.ID,
		Factors:        s.factors,
		Origin:         s.origin,
		Destination:    s.destination,
		RouteCount:     len(s.routes),
		ZoneCount:      s.zones.Count(),
		WeatherSamples: len(s.weather),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.updatedAt,
		LastAccess:     s.LastAccess(),
	}
	if s.hasRoutes() {
		rec := s.recommended()
		sum.RecommendedRoute = &rec
	}
	if s.assessment != nil {
		a := *s.assessment
		sum.Assessment = &a
	}
	return sum
}
