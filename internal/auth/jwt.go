// Package auth mints and verifies the signed token that represents an
// authenticated admin session.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gremioaf/portal/internal/common"
)

// Claims carries the standard claims plus the identity of the allow-list
// member the token was minted for.
type Claims struct {
	jwt.RegisteredClaims
	Identity string
}

// GenerateToken signs a session token for identity, valid for validityDuration.
func GenerateToken(identity string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Identity: identity,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// IdentityFromToken verifies tokenString and returns the identity it was
// minted for.
func IdentityFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Identity, nil
}
