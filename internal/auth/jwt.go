// Package auth verifies the bearer tokens issued by the platform's identity
// provider. The interaction engine consumes an authenticated actor id; it
// never issues sessions itself (Issue exists for tests and dev tooling only).
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers malformed, unsigned, expired, or
	// wrongly-signed tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingSubject indicates a valid token with no actor id in it.
	ErrMissingSubject = errors.New("token has no subject")
)

// Claims are the registered claims plus nothing: the actor id travels in sub.
type Claims struct {
	jwt.RegisteredClaims
}

// ParseAndVerify validates an HS256 token against the shared secret and
// returns its claims. Any token signed with another method is rejected
// outright, including alg=none.
func ParseAndVerify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}

// Issue mints an HS256 token carrying the actor id. Used by tests and the
// dev seed tooling; production tokens come from the identity provider.
func Issue(actorID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
