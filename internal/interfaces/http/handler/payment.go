package handler

import (
	"github.com/gin-gonic/gin"
	billingapp "github.com/honoraria/backend/internal/application/billing"
	"github.com/honoraria/backend/internal/domain/billing"
)

// PaymentHandler handles payment-related API endpoints. DELETE removes
// the row permanently; the soft-delete/restore pair lives on PATCH
// subroutes.
type PaymentHandler struct {
	BaseHandler
	paymentService *billingapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *billingapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RegisterRoutes mounts the payment routes on the given group
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/pagamentos")
	payments.POST("", h.Create)
	payments.GET("", h.List)
	payments.GET("/:id", h.GetByID)
	payments.PUT("/:id", h.Update)
	payments.DELETE("/:id", h.HardDelete)
	payments.PATCH("/:id/soft-delete", h.SoftDelete)
	payments.PATCH("/:id/restore", h.Restore)
}

// Create records a payment against a fee
func (h *PaymentHandler) Create(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req billingapp.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payment)
}

// GetByID retrieves a payment by its id
func (h *PaymentHandler) GetByID(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	paymentID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), ownerID, paymentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payment)
}

// List retrieves the owner's payments, optionally filtered by fee
func (h *PaymentHandler) List(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var filter billing.PaymentFilter
	if filter.FeeID, err = parseOptionalUUIDQuery(c, "honorario_id"); err != nil {
		h.BadRequest(c, "Invalid honorario_id filter")
		return
	}

	payments, err := h.paymentService.List(c.Request.Context(), ownerID, filter, parsePage(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payments)
}

// Update applies a partial update to a payment
func (h *PaymentHandler) Update(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	paymentID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	var req billingapp.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.Update(c.Request.Context(), ownerID, paymentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payment)
}

// SoftDelete marks a payment as deleted
func (h *PaymentHandler) SoftDelete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	paymentID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	if err := h.paymentService.SoftDelete(c.Request.Context(), ownerID, paymentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Restore brings a soft-deleted payment back
func (h *PaymentHandler) Restore(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	paymentID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	payment, err := h.paymentService.Restore(c.Request.Context(), ownerID, paymentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payment)
}

// HardDelete removes a payment permanently
func (h *PaymentHandler) HardDelete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	paymentID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	if err := h.paymentService.HardDelete(c.Request.Context(), ownerID, paymentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
