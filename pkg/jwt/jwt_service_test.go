package jwt

import (
	"ShareBite-Backend/domain"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateTokenUser("a@x.com", "Alice", time.Hour)
	require.NoError(t, err)

	email, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("secret")
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.VerifyToken(ctx, "")
		assert.ErrorIs(t, err, domain.ErrMissingToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.VerifyToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := NewJWTService("other").GenerateTokenUser("a@x.com", "", time.Hour)
		require.NoError(t, err)
		_, err = svc.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateTokenUser("a@x.com", "", -time.Minute)
		require.NoError(t, err)
		_, err = svc.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("missing email claim", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = svc.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		claims := jwtUserClaim{Email: "a@x.com", RegisteredClaims: jwt.RegisteredClaims{Issuer: Issuer}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
