package auth

import (
	"testing"
	"time"

	"ignite/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

func signSession(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{SessionSecret: testSecret}})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_ValidSession(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token := signSession(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "aluno@gymignite.app",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "aluno@gymignite.app", claims.Email)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New().String()
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: signSession(t, jwt.SigningMethodHS256, "other-secret", jwt.MapClaims{"sub": userID, "exp": future})},
		{name: "wrong algorithm", token: signSession(t, jwt.SigningMethodHS512, testSecret, jwt.MapClaims{"sub": userID, "exp": future})},
		{name: "expired", token: signSession(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": userID, "exp": time.Now().Add(-time.Hour).Unix()})},
		{name: "no expiry", token: signSession(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": userID})},
		{name: "subject not uuid", token: signSession(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "42", "exp": future})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateSessionToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
