package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/shared"
	"github.com/honoraria/backend/internal/interfaces/http/dto"
	"github.com/honoraria/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getOwnerID extracts the authenticated owner id set by the auth middleware
func getOwnerID(c *gin.Context) (uuid.UUID, error) {
	if ownerID, ok := middleware.GetOwnerID(c); ok {
		return ownerID, nil
	}
	return uuid.Nil, errors.New("owner id not found in context")
}

// Success sends a 200 response with the given payload
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, detail string) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, detail string) {
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
}

// HandleDomainError converts domain errors to HTTP responses. Unknown
// error types become opaque 500s so repository internals never leak.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		statusCode := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(statusCode, dto.NewErrorResponse(domainErr.Message))
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
