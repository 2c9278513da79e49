package utils

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashToken(t *testing.T) {
	h := HashToken("eb_secret")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashToken("eb_secret"))
	assert.NotEqual(t, h, HashToken("eb_other"))
	assert.True(t, CompareTokenHash("eb_secret", h))
	assert.False(t, CompareTokenHash("eb_secret2", h))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))

	_, err = HashPassword(strings.Repeat("é", 40))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken("eb_", 32)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(a, "eb_"))
	// 32 bytes of unpadded base64url
	assert.Len(t, a, 3+43)
	assert.NotContains(t, a, "=")

	b, err := GenerateSecureToken("eb_", 32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = GenerateSecureToken("eb_", 0)
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "ecobudget")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ecobudget", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "wrong")
	assert.Error(t, err)

	expired, err := GenerateJWT("user-1", "secret", -time.Minute, "ecobudget")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.Error(t, err)
}

func TestPosthogWrapperDisabled(t *testing.T) {
	w := InitializePosthogClient("", "", slog.Default())
	assert.False(t, w.IsInitialized())
	// no-ops must not panic
	w.Enqueue("user-1", "event", nil)
	w.Close()
}

func TestParseAndValidateJWT_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(signed, "secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_MissingSubject(t *testing.T) {
	signed, err := GenerateJWT("", "secret", time.Hour, "ecobudget")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(signed, "secret")
	assert.ErrorIs(t, err, ErrMissingSubject)
}
