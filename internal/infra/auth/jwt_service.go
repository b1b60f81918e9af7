// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"ignite/config"
	"ignite/internal/domain/service"
	"ignite/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionClockSkew = 30 * time.Second

// jwtService validates HS256 session tokens signed with the auth provider's shared secret.
type jwtService struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.SessionSecret == "" {
		return nil, errors.New("auth.sessionSecret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.SessionSecret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(sessionClockSkew),
		),
	}, nil
}

// sessionClaims mirrors the token body; sub carries the user uuid.
type sessionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ValidateSessionToken checks the signature and expiry and resolves the user id from "sub".
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	claims := &sessionClaims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("session token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "session subject is not a user id")
	}

	return &service.SessionClaims{
		UserID:           userID,
		Email:            claims.Email,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
