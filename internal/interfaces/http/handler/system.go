package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/honoraria/backend/internal/infrastructure/persistence"
	"github.com/honoraria/backend/internal/interfaces/http/dto"
)

// SystemHandler handles the unauthenticated liveness and readiness probes
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// RegisterRoutes mounts the probe routes on the given group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ready", h.Ready)
}

// HealthResponse represents the liveness probe response
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// ReadyResponse represents the readiness probe response
type ReadyResponse struct {
	Status   string        `json:"status"`
	Uptime   string        `json:"uptime"`
	Database DatabaseStats `json:"database"`
}

// DatabaseStats summarizes the connection pool state
type DatabaseStats struct {
	OpenConnections int `json:"open_connections"`
	InUse           int `json:"in_use"`
	Idle            int `json:"idle"`
}

// Health reports process liveness
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Ready reports readiness, including a database ping
func (h *SystemHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("Database unavailable"))
		return
	}

	stats, err := h.db.Stats()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("Database unavailable"))
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{
		Status: "ready",
		Uptime: time.Since(h.startTime).Round(time.Second).String(),
		Database: DatabaseStats{
			OpenConnections: stats.OpenConnections,
			InUse:           stats.InUse,
			Idle:            stats.Idle,
		},
	})
}
