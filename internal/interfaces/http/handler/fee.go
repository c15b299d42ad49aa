package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	billingapp "github.com/honoraria/backend/internal/application/billing"
	"github.com/honoraria/backend/internal/domain/billing"
)

// FeeHandler handles fee-related API endpoints
type FeeHandler struct {
	BaseHandler
	feeService *billingapp.FeeService
}

// NewFeeHandler creates a new FeeHandler
func NewFeeHandler(feeService *billingapp.FeeService) *FeeHandler {
	return &FeeHandler{feeService: feeService}
}

// RegisterRoutes mounts the fee routes on the given group. The sweep
// route is registered before the parameterized ones so "check-overdue"
// never parses as an id.
func (h *FeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	fees := rg.Group("/honorarios")
	fees.POST("", h.Create)
	fees.GET("", h.List)
	fees.POST("/check-overdue", h.CheckOverdue)
	fees.GET("/:id", h.GetByID)
	fees.PUT("/:id", h.Update)
	fees.DELETE("/:id", h.Delete)
	fees.POST("/:id/restore", h.Restore)
}

// Create creates a new fee
func (h *FeeHandler) Create(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req billingapp.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	fee, err := h.feeService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, fee)
}

// GetByID retrieves a fee by its id
func (h *FeeHandler) GetByID(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	feeID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid fee ID format")
		return
	}

	fee, err := h.feeService.GetByID(c.Request.Context(), ownerID, feeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, fee)
}

// List retrieves the owner's fees, optionally filtered by client and status
func (h *FeeHandler) List(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var filter billing.FeeFilter
	if filter.ClientID, err = parseOptionalUUIDQuery(c, "cliente_id"); err != nil {
		h.BadRequest(c, "Invalid cliente_id filter")
		return
	}
	if filter.StatusID, err = parseOptionalUintQuery(c, "status_id"); err != nil {
		h.BadRequest(c, "Invalid status_id filter")
		return
	}

	fees, err := h.feeService.List(c.Request.Context(), ownerID, filter, parsePage(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, fees)
}

// Update applies a partial update to a fee
func (h *FeeHandler) Update(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	feeID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid fee ID format")
		return
	}

	var req billingapp.UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	fee, err := h.feeService.Update(c.Request.Context(), ownerID, feeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, fee)
}

// Delete soft-deletes a fee
func (h *FeeHandler) Delete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	feeID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid fee ID format")
		return
	}

	if err := h.feeService.Delete(c.Request.Context(), ownerID, feeID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Restore brings a soft-deleted fee back
func (h *FeeHandler) Restore(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	feeID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid fee ID format")
		return
	}

	fee, err := h.feeService.Restore(c.Request.Context(), ownerID, feeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, fee)
}

// CheckOverdue sweeps the owner's past-due pending fees into overdue
func (h *FeeHandler) CheckOverdue(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	result, err := h.feeService.CheckOverdue(c.Request.Context(), ownerID, time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
