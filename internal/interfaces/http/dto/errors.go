// Package dto holds the wire-level response shapes of the HTTP surface.
package dto

import "net/http"

// ErrorResponse is the error payload of every failing endpoint. The
// single detail field is the established contract of this API; clients
// parse nothing else.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// Domain error codes recognized by the status mapping. Codes emitted by
// the domain layer that are not listed here fall back to 400: domain
// errors are caller faults unless stated otherwise.
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeAlreadyExists   = "ALREADY_EXISTS"
	ErrCodeUnauthenticated = "UNAUTHENTICATED"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

var statusByCode = map[string]int{
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeAlreadyExists:   http.StatusBadRequest,
	ErrCodeUnauthenticated: http.StatusUnauthorized,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeInternal:        http.StatusInternalServerError,
}

// GetHTTPStatus maps a domain error code to its HTTP status
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
