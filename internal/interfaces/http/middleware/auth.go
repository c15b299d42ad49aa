package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/honoraria/backend/internal/infrastructure/auth"
	"github.com/honoraria/backend/internal/infrastructure/logger"
	"github.com/honoraria/backend/internal/infrastructure/persistence/owner"
	"github.com/honoraria/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Auth context keys
const (
	ClaimsKey     = "auth_claims"
	OwnerIDKey    = "auth_owner_id"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// AuthConfig holds configuration for the bearer token middleware
type AuthConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultAuthConfig returns the default middleware configuration
func DefaultAuthConfig(jwtService *auth.JWTService) AuthConfig {
	return AuthConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/ready",
		},
	}
}

// AuthMiddleware creates bearer token authentication middleware
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return AuthMiddlewareWithConfig(DefaultAuthConfig(jwtService))
}

// AuthMiddlewareWithConfig creates bearer token authentication middleware
// with custom config. On success the owner id is stored both in the gin
// context and in the request context, where the persistence scope reads it.
func AuthMiddlewareWithConfig(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthenticated(c, cfg, nil, "Not authenticated")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthenticated(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthenticated(c, cfg, auth.ErrInvalidToken, "Not authenticated")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			abortUnauthenticated(c, cfg, err, authFailureDetail(err))
			return
		}

		ownerID, err := claims.OwnerUUID()
		if err != nil {
			abortUnauthenticated(c, cfg, err, "Invalid token")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(OwnerIDKey, ownerID)
		c.Request = c.Request.WithContext(owner.WithContext(c.Request.Context(), ownerID))

		if cfg.Logger != nil {
			logger.WithOwner(cfg.Logger, ownerID).Debug("authenticated request",
				zap.String("path", path),
			)
		}

		c.Next()
	}
}

// authFailureDetail maps a validation error to the wire detail message
func authFailureDetail(err error) string {
	switch err {
	case auth.ErrExpiredToken:
		return "Token has expired"
	case auth.ErrTokenNotYetValid:
		return "Token is not yet valid"
	default:
		return "Invalid token"
	}
}

func abortUnauthenticated(c *gin.Context, cfg AuthConfig, err error, detail string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("authentication failed",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
}

// GetClaims retrieves the token claims from gin.Context
func GetClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(ClaimsKey); exists {
		if tokenClaims, ok := claims.(*auth.Claims); ok {
			return tokenClaims
		}
	}
	return nil
}

// GetOwnerID retrieves the authenticated owner id from gin.Context
func GetOwnerID(c *gin.Context) (uuid.UUID, bool) {
	if ownerID, exists := c.Get(OwnerIDKey); exists {
		if id, ok := ownerID.(uuid.UUID); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}
