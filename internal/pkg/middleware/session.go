package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/sewago/sewago/internal/pkg/jwt"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/internal/utils"
)

// RevocationChecker reports whether a session or its user has been revoked
// (logout, admin deactivation). Backed by Redis in production.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, sessionID string, userID uuid.UUID) (bool, error)
}

// SessionAuthMiddleware validates the bearer session token on every
// protected route. Any failure, including a revoked session, produces a
// uniform 401: the client treats that status as the single signal that its
// session is gone.
func SessionAuthMiddleware(config models.JWTConfig, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}
			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}
			sessionID, ok := (*claims)["jti"].(string)
			if !ok || sessionID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing session id")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(c.Request().Context(), sessionID, userID)
				if err != nil || revoked {
					return utils.UnauthorizedResponse(c, "Session is no longer valid")
				}
			}

			c.Set("user_id", userID)
			c.Set("user_role", fmt.Sprintf("%v", role))
			c.Set("session_id", sessionID)

			return next(c)
		}
	}
}
