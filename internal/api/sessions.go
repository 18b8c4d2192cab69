package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mr1hm/go-route-safety/internal/models"
	"github.com/mr1hm/go-route-safety/internal/session"
)

type createSessionRequest struct {
	Factors *session.FactorUpdate `json:"factors"`
}

type fetchRoutesRequest struct {
	Origin       string `json:"origin" binding:"required"`
	Destination  string `json:"destination" binding:"required"`
	Alternatives *bool  `json:"alternatives"`
}

func (h *Handler) createSession(c *gin.Context) {
	var req createSessionRequest
	// an empty body is allowed
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	factors := h.sessions.DefaultFactors()
	if req.Factors != nil {
		factors = req.Factors.Apply(factors)
	}

	sum, err := h.sessions.Create(factors)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sum)
}

func (h *Handler) getSession(c *gin.Context) {
	sum, err := h.sessions.Summary(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) deleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fetchRoutes(c *gin.Context) {
	var req fetchRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination are required"})
		return
	}

	alternatives := true
	if req.Alternatives != nil {
		alternatives = *req.Alternatives
	}

	view, err := h.sessions.FetchRoutes(c.Request.Context(), c.Param("id"), req.Origin, req.Destination, alternatives)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) getRoutes(c *gin.Context) {
	view, err := h.sessions.Routes(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) setFactors(c *gin.Context) {
	var update session.FactorUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sum, err := h.sessions.SetFactors(c.Param("id"), update)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) getRisk(c *gin.Context) {
	risk, err := h.sessions.Risk(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, risk)
}

func (h *Handler) getZones(c *gin.Context) {
	var categories []models.Category
	if q := c.Query("category"); q != "" {
		cat, ok := models.ParseCategory(q)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category must be one of snow, fire, rain"})
			return
		}
		categories = []models.Category{cat}
	}

	zones, err := h.sessions.Zones(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	fc := zonesToGeoJSON(zones, categories...)
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, fc)
}

func (h *Handler) getWeather(c *gin.Context) {
	samples, err := h.sessions.Weather(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"forecast": samples})
}

func (h *Handler) getTraffic(c *gin.Context) {
	points, err := h.sessions.Traffic(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"traffic": points})
}

func (h *Handler) getPlaces(c *gin.Context) {
	places, err := h.sessions.Places(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": places})
}

func (h *Handler) getExits(c *gin.Context) {
	var origin *models.Coordinates

	lat, lon := c.Query("lat"), c.Query("lon")
	if lat != "" || lon != "" {
		la, errLat := strconv.ParseFloat(lat, 64)
		lo, errLon := strconv.ParseFloat(lon, 64)
		point := models.Coordinates{Latitude: la, Longitude: lo}
		if errLat != nil || errLon != nil || !point.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must both be valid coordinates"})
			return
		}
		origin = &point
	}

	exits, err := h.sessions.SuggestExits(c.Param("id"), origin)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exits": exits})
}

func (h *Handler) getExitAnalytics(c *gin.Context) {
	rank, err := strconv.Atoi(c.Param("rank"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rank must be a number"})
		return
	}

	analytics, err := h.sessions.AnalyzeExit(c.Param("id"), rank)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
