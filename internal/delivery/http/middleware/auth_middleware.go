// Package middleware contains the echo middleware of the HTTP delivery.
package middleware

import (
	"slices"
	"strings"

	deliverycontext "alerty/internal/delivery/context"
	"alerty/internal/delivery/http/response"
	"alerty/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims for the handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := deliverycontext.GetClaims(c)
			if claims == nil {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, claims.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require one of "+strings.Join(roles, ", "))
			}

			return next(c)
		}
	}
}
