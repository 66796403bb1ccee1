package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueAndVerifyToken(t *testing.T) {
	signed, err := IssueToken(testSecret, "user-123", "a@b.com", 7)
	require.NoError(t, err)
	assert.NotEmpty(t, signed.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), signed.Exp, time.Minute)

	claims, err := VerifyToken(testSecret, signed.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	signed, err := IssueToken(testSecret, "user-123", "a@b.com", 7)
	require.NoError(t, err)

	_, err = VerifyToken("other-secret", signed.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenExpired(t *testing.T) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   "user-123",
		"email": "a@b.com",
		"exp":   now.Add(-time.Hour).Unix(),
		"iat":   now.Add(-2 * time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenMissingClaims(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().UTC().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := VerifyToken(testSecret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
