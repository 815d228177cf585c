// Package auth implements session tokens and password digests for the
// TaskChat server. Tokens are HS256-signed JWTs binding a username; any
// validly signed token is accepted regardless of later logins.
package auth

import (
	"errors"
	"time"

	"github.com/duongnt/taskchat/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the username the token binds.
type Claims struct {
	jwt.RegisteredClaims
	Username string
}

// GenerateToken signs a token for username. A zero validityDuration produces
// a token without an expiry claim, which never expires.
func GenerateToken(username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	claims := Claims{Username: username}
	if validityDuration > 0 {
		claims.RegisteredClaims = jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken verifies the signature and returns the embedded
// username. Any parse or signature failure maps to common.ErrInvalidToken.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Username == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}
