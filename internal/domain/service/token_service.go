package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims of a session token issued by the auth provider.
type SessionClaims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService validates session tokens presented by browsers.
// Issuing sessions belongs to the external auth provider.
type TokenService interface {
	// ValidateSessionToken checks the signature and expiry of tokenString.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}
