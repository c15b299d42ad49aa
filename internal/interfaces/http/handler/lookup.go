package handler

import (
	"github.com/gin-gonic/gin"
	billingapp "github.com/honoraria/backend/internal/application/billing"
)

// LookupHandler handles the status and payment type lookup endpoints.
// The tables are global; routes still sit behind authentication.
type LookupHandler struct {
	BaseHandler
	lookupService *billingapp.LookupService
}

// NewLookupHandler creates a new LookupHandler
func NewLookupHandler(lookupService *billingapp.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

// RegisterRoutes mounts the lookup routes on the given group
func (h *LookupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	statuses := rg.Group("/status")
	statuses.GET("", h.ListStatuses)
	statuses.GET("/:id", h.GetStatus)
	statuses.POST("", h.CreateStatus)
	statuses.PUT("/:id", h.UpdateStatus)

	paymentTypes := rg.Group("/tipos-pagamento")
	paymentTypes.GET("", h.ListPaymentTypes)
	paymentTypes.GET("/:id", h.GetPaymentType)
	paymentTypes.POST("", h.CreatePaymentType)
	paymentTypes.PUT("/:id", h.UpdatePaymentType)
}

// ListStatuses lists all statuses
func (h *LookupHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.lookupService.ListStatuses(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, statuses)
}

// GetStatus retrieves a status by id
func (h *LookupHandler) GetStatus(c *gin.Context) {
	id, err := parseUintParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid status ID format")
		return
	}

	status, err := h.lookupService.GetStatus(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, status)
}

// CreateStatus creates a new status
func (h *LookupHandler) CreateStatus(c *gin.Context) {
	var req billingapp.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status, err := h.lookupService.CreateStatus(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, status)
}

// UpdateStatus renames a status
func (h *LookupHandler) UpdateStatus(c *gin.Context) {
	id, err := parseUintParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid status ID format")
		return
	}

	var req billingapp.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status, err := h.lookupService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, status)
}

// ListPaymentTypes lists all payment types
func (h *LookupHandler) ListPaymentTypes(c *gin.Context) {
	types, err := h.lookupService.ListPaymentTypes(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, types)
}

// GetPaymentType retrieves a payment type by id
func (h *LookupHandler) GetPaymentType(c *gin.Context) {
	id, err := parseUintParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment type ID format")
		return
	}

	paymentType, err := h.lookupService.GetPaymentType(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, paymentType)
}

// CreatePaymentType creates a new payment type
func (h *LookupHandler) CreatePaymentType(c *gin.Context) {
	var req billingapp.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	paymentType, err := h.lookupService.CreatePaymentType(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, paymentType)
}

// UpdatePaymentType renames a payment type
func (h *LookupHandler) UpdatePaymentType(c *gin.Context) {
	id, err := parseUintParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment type ID format")
		return
	}

	var req billingapp.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	paymentType, err := h.lookupService.UpdatePaymentType(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, paymentType)
}
