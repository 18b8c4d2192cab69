package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mr1hm/go-route-safety/internal/models"
	"github.com/mr1hm/go-route-safety/internal/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 500
)

func (h *Handler) getAssessments(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assessment history disabled"})
		return
	}

	filter := repository.Filter{
		Limit:     defaultListLimit,
		SessionID: c.Query("session_id"),
	}

	if l := c.Query("risk_level"); l != "" {
		level, ok := models.ParseRiskLevel(l)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "risk_level must be one of low, medium, high"})
			return
		}
		filter.RiskLevel = &level
	}
	if m := c.Query("min_risk"); m != "" {
		if risk, err := strconv.ParseFloat(m, 64); err == nil {
			filter.MinOverallRisk = &risk
		}
	}
	if s := c.Query("since"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			filter.Since = &t
		} else if t, err := time.Parse("2006-01-02", s); err == nil {
			filter.Since = &t
		}
	}
	if l := c.Query("limit"); l != "" {
		if lim, err := strconv.Atoi(l); err == nil && lim > 0 && lim <= maxListLimit {
			filter.Limit = lim
		}
	}
	if o := c.Query("offset"); o != "" {
		if off, err := strconv.Atoi(o); err == nil && off > 0 {
			filter.Offset = off
		}
	}

	records, err := h.repo.ListAssessments(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if records == nil {
		records = []models.AssessmentRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"assessments": records})
}

// streamAssessments pushes every newly recorded assessment as a server-sent
// event until the client disconnects or the broadcaster closes.
func (h *Handler) streamAssessments(c *gin.Context) {
	if h.broadcaster == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assessment stream disabled"})
		return
	}

	id, ch := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case record, ok := <-ch:
			if !ok {
				return
			}
			c.SSEvent("assessment", record)
			c.Writer.Flush()
		}
	}
}
