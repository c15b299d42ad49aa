package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	reportapp "github.com/honoraria/backend/internal/application/report"
)

// DashboardHandler handles the dashboard read endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes mounts the dashboard routes on the given group
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.GET("/stats", h.Stats)
	dashboard.GET("/revenue", h.Revenue)
	dashboard.GET("/clients", h.Clients)
	dashboard.GET("/recent-honorarios", h.RecentFees)
}

// Stats returns the headline dashboard figures
func (h *DashboardHandler) Stats(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), ownerID, time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}

// Revenue returns the trailing six months of collected totals
func (h *DashboardHandler) Revenue(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	points, err := h.dashboardService.Revenue(c.Request.Context(), ownerID, time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, points)
}

// Clients returns the trailing six months of client activity
func (h *DashboardHandler) Clients(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	points, err := h.dashboardService.Clients(c.Request.Context(), ownerID, time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, points)
}

// RecentFees returns the owner's most urgent open fees
func (h *DashboardHandler) RecentFees(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	fees, err := h.dashboardService.RecentFees(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, fees)
}
