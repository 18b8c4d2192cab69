package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mr1hm/go-route-safety/internal/broadcast"
	"github.com/mr1hm/go-route-safety/internal/ingestion"
	"github.com/mr1hm/go-route-safety/internal/models"
	"github.com/mr1hm/go-route-safety/internal/repository"
	"github.com/mr1hm/go-route-safety/internal/session"
)

type Handler struct {
	sessions    *session.Service
	repo        repository.AssessmentRepository
	broadcaster *broadcast.Broadcaster
}

// NewHandler accepts a nil repo or broadcaster; the history endpoints then
// answer 503.
func NewHandler(sessions *session.Service, repo repository.AssessmentRepository, broadcaster *broadcast.Broadcaster) *Handler {
	return &Handler{
		sessions:    sessions,
		repo:        repo,
		broadcaster: broadcaster,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)

	api := r.Group("/api")

	s := api.Group("/sessions")
	s.POST("", h.createSession)
	s.GET("/:id", h.getSession)
	s.DELETE("/:id", h.deleteSession)
	s.POST("/:id/routes", h.fetchRoutes)
	s.GET("/:id/routes", h.getRoutes)
	s.PUT("/:id/factors", h.setFactors)
	s.GET("/:id/risk", h.getRisk)
	s.GET("/:id/zones", h.getZones)
	s.GET("/:id/weather", h.getWeather)
	s.GET("/:id/traffic", h.getTraffic)
	s.GET("/:id/places", h.getPlaces)
	s.GET("/:id/exits", h.getExits)
	s.GET("/:id/exits/:rank/analytics", h.getExitAnalytics)

	api.GET("/assessments", h.getAssessments)
	api.GET("/assessments/stream", h.streamAssessments)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// abortWithError maps service errors onto status codes. Unknown errors are
// logged and hidden behind a generic message.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, session.ErrExitNotFound),
		errors.Is(err, ingestion.ErrNoRoutes):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidFactor),
		errors.Is(err, session.ErrInvalidLocation):
		status = http.StatusBadRequest
	case errors.Is(err, session.ErrNoRoutes),
		errors.Is(err, session.ErrNoExits):
		status = http.StatusConflict
	case errors.Is(err, session.ErrUpstream):
		status = http.StatusBadGateway
	case errors.Is(err, ingestion.ErrDirectionsUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		c.AbortWithStatusJSON(status, gin.H{"error": "internal error"})
		return
	}
	if status == http.StatusBadGateway {
		slog.Warn("upstream provider failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
