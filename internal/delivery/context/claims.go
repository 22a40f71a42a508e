package context

import (
	"alerty/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyClaims is the key for storing the verified token claims in echo.Context.
const KeyClaims ContextKey = "alerty.claims"

// SetClaims stores the claims of the authenticated caller.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyClaims), claims)
}

// GetClaims returns the claims of the authenticated caller, or nil on
// unauthenticated routes.
func GetClaims(c echo.Context) *service.Claims {
	claims, _ := c.Get(string(KeyClaims)).(*service.Claims)

	return claims
}
