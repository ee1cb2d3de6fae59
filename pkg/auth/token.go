package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo summarizes the claims of a configured API bearer token.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// Inspect decodes a token's claims without verifying the signature. The
// console is a client and never holds the signing key; it only wants to tell
// the operator who the token identifies and whether it has already expired.
func Inspect(tokenStr string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, err
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}

// Expired reports whether the token carries an expiry in the past. Tokens
// without an exp claim never expire.
func (t *TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && t.ExpiresAt.Before(now)
}
