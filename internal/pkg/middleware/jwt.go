package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/wheelshare/internal/pkg/constants"
	jwtpkg "github.com/piresc/wheelshare/internal/pkg/jwt"
	"github.com/piresc/wheelshare/internal/pkg/models"
	"github.com/piresc/wheelshare/internal/pkg/requestcontext"
	"github.com/piresc/wheelshare/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(constants.CtxKeyUserID, claims.UserID)
			c.Set(constants.CtxKeyUserRole, claims.Role)
			c.SetRequest(c.Request().WithContext(requestcontext.WithUserID(c.Request().Context(), claims.UserID)))

			return next(c)
		}
	}
}

// RequireRole rejects callers whose role is not one of roles
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := CallerFrom(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}
			for _, role := range roles {
				if caller.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role for this operation")
		}
	}
}

// CallerFrom returns the principal stored by JWTAuthMiddleware
func CallerFrom(c echo.Context) (models.Caller, bool) {
	userID, ok := c.Get(constants.CtxKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return models.Caller{}, false
	}
	role, ok := c.Get(constants.CtxKeyUserRole).(models.Role)
	if !ok {
		return models.Caller{}, false
	}
	return models.Caller{UserID: userID, Role: role}, true
}
