package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("secretKey")

	token, err := GenerateToken("presidente", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := IdentityFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "presidente", identity)
}

func TestIdentityFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("admin", []byte("secretKey"), time.Hour)
	require.NoError(t, err)

	_, err = IdentityFromToken(token, []byte("otherKey"))
	assert.Error(t, err)
}

func TestIdentityFromToken_Expired(t *testing.T) {
	secret := []byte("secretKey")
	token, err := GenerateToken("admin", secret, -time.Minute)
	require.NoError(t, err)

	_, err = IdentityFromToken(token, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestIdentityFromToken_Garbage(t *testing.T) {
	_, err := IdentityFromToken("not.a.token", []byte("secretKey"))
	assert.Error(t, err)
}
