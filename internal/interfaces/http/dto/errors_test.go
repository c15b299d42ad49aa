package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponseWireFormat(t *testing.T) {
	payload, err := json.Marshal(NewErrorResponse("Resource not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"detail": "Resource not found"}`, string(payload))
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeUnauthenticated, http.StatusUnauthorized},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeAlreadyExists, http.StatusBadRequest},
		{ErrCodeInternal, http.StatusInternalServerError},
		{"INVALID_REFERENCE_MONTH", http.StatusBadRequest},
		{"SOMETHING_ELSE", http.StatusBadRequest},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, GetHTTPStatus(tt.code), tt.code)
	}
}
