package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "ignite/internal/delivery/context"
	domainerrors "ignite/internal/domain/errors"
	"ignite/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyEmail  = "email"

	bearerPrefix = "Bearer "
)

// AuthMiddleware validates session tokens issued by the external auth provider.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate requires a valid "Authorization: Bearer <session token>" header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := BearerToken(c)
		if !ok {
			return domainerrors.ErrSessionRequired
		}

		claims, err := m.tokenSvc.ValidateSessionToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("error", err))

			return domainerrors.ErrSessionInvalid
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyEmail, claims.Email)

		return next(c)
	}
}

// BearerToken extracts the credential from the Authorization header.
func BearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if token == "" {
		return "", false
	}

	return token, true
}

// GetUserID returns the authenticated user id set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
