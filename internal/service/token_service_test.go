package service

import (
	"errors"
	"testing"
	"time"

	"crypto-wallet-client/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signToken builds an HS256 token with the given claims. The decoder never
// verifies signatures, so any secret works.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenDecoder_Decode_Success(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":        "user1",
		"id":         7,
		"role":       "user",
		"public_key": "0xabc",
		"exp":        time.Now().Add(20 * time.Minute).Unix(),
	})

	identity, err := NewTokenDecoder().Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user1", identity.Username)
	assert.Equal(t, int64(7), identity.ID)
	assert.Equal(t, "user", identity.Role)
	require.NotNil(t, identity.PublicKey)
	assert.Equal(t, "0xabc", *identity.PublicKey)
}

func TestTokenDecoder_Decode_NilPublicKey(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":        "user1",
		"id":         7,
		"role":       "user",
		"public_key": nil,
		"exp":        time.Now().Add(20 * time.Minute).Unix(),
	})

	identity, err := NewTokenDecoder().Decode(token)
	require.NoError(t, err)
	assert.Nil(t, identity.PublicKey)
	assert.False(t, identity.HasLinkedKey())
}

func TestTokenDecoder_Decode_Deterministic(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":  "user1",
		"id":   7,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	decoder := NewTokenDecoder()
	first, err := decoder.Decode(token)
	require.NoError(t, err)
	second, err := decoder.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, second.IsAdmin())
}

func TestTokenDecoder_Decode_Expired(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "user1",
		"id":  7,
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := NewTokenDecoder().Decode(token)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_002", appErr.Code)
}

func TestTokenDecoder_Decode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"missing subject", signToken(t, jwt.MapClaims{"id": 7})},
		{"missing id", signToken(t, jwt.MapClaims{"sub": "user1"})},
		{"non-numeric id", signToken(t, jwt.MapClaims{"sub": "user1", "id": "seven"})},
	}

	decoder := NewTokenDecoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decoder.Decode(tt.token)
			require.Error(t, err)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "AUTH_002", appErr.Code)
		})
	}
}
