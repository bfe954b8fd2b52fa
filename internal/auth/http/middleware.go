package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/bitesapp/security/internal/auth/service"
	apperrors "github.com/bitesapp/security/internal/errors"
	"github.com/bitesapp/security/internal/httputil"
)

// AuthenticationMiddleware provides authentication via a Bearer JWT in the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Verifies signature, algorithm and expiry with jwtService.Verify()
// 3. Stores the verified claims in the request context
// 4. Allows downstream handlers to access them via GetClaims() and GetSubject()
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized
//   - Invalid or expired token → 401 Unauthorized (one response for every cause)
//   - JWT secret not configured → 500 Internal Server Error
func AuthenticationMiddleware(jwtService authService.JWTService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		token := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		claims, err := jwtService.Verify(token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))

		if sub, ok := GetSubject(c.Request.Context()); ok {
			logger.Debug("authentication successful", slog.String("subject", sub))
		}

		c.Next()
	}
}
