package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/domain/shared"
)

// parsePage reads the skip/limit query parameters. Values that fail to
// parse fall back to the defaults; Normalize clamps the bounds.
func parsePage(c *gin.Context) shared.Page {
	page := shared.Page{Limit: shared.MaxPageSize}
	if skip, err := strconv.Atoi(c.DefaultQuery("skip", "0")); err == nil {
		page.Skip = skip
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "100")); err == nil {
		page.Limit = limit
	}
	return page.Normalize()
}

// parseIDParam parses the :id path parameter as a uuid
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// parseUintParam parses the :id path parameter as an unsigned integer,
// for the lookup tables keyed by small serial ids
func parseUintParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseOptionalUUIDQuery parses an optional uuid query parameter
func parseOptionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseOptionalUintQuery parses an optional unsigned integer query parameter
func parseOptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	id := uint(parsed)
	return &id, nil
}
