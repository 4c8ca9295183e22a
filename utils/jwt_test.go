package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateTokenSubject(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "shopper-1", "exp": time.Now().Add(time.Hour).Unix()}, "s3cret")

	sub, err := ValidateToken(token, "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "shopper-1", sub)
}

func TestValidateTokenNumericUserID(t *testing.T) {
	token := sign(t, jwt.MapClaims{"user_id": 42, "exp": time.Now().Add(time.Hour).Unix()}, "s3cret")

	sub, err := ValidateToken(token, "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
}

func TestValidateTokenRejects(t *testing.T) {
	expired := sign(t, jwt.MapClaims{"sub": "x", "exp": time.Now().Add(-time.Hour).Unix()}, "s3cret")
	wrongKey := sign(t, jwt.MapClaims{"sub": "x"}, "other")
	noSubject := sign(t, jwt.MapClaims{"role": "customer"}, "s3cret")

	for _, token := range []string{expired, wrongKey, noSubject, "garbage"} {
		_, err := ValidateToken(token, "s3cret")
		assert.Error(t, err)
	}
}
