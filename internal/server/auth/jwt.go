// Package auth issues and verifies the session tokens and password hashes
// used by the PrivaChat server.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Principal is the identity a session token speaks for.
type Principal struct {
	UserID   string
	Username string
}

// Claims are the registered JWT claims plus the principal.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Username string `json:"usr"`
}

// GenerateToken signs an HS256 access token for p that expires after validity.
func GenerateToken(p Principal, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID:   p.UserID,
		Username: p.Username,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies tokenString and returns its principal.
// An expired token yields common.ErrTokenExpired; anything else that fails
// verification wraps common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, common.ErrTokenExpired
		}
		return Principal{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return Principal{}, common.ErrInvalidToken
	}

	return Principal{UserID: claims.UserID, Username: claims.Username}, nil
}
