package service

import (
	"alerty/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the tokens issued by the development backend.
type Claims struct {
	UserID    int64  `json:"userId"`
	CompanyID int64  `json:"companyId,omitempty"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates bearer tokens.
type TokenService interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks the signature and expiry of a token.
	ValidateToken(tokenString string) (*Claims, error)
}
