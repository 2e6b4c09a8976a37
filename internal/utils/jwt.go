package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry returns the moment a bearer token issued by an upstream
// service stops being usable.
//
// The token signature is not verified: the upstream owns the signing key and
// the value is only used to avoid replaying a token past its "exp" claim.
// When the token is not a JWT, has no "exp" claim, or expires after fallback,
// fallback is returned.
//
// Example usage:
//
//	expiresAt := utils.TokenExpiry(token, time.Now().Add(4*time.Hour))
func TokenExpiry(raw string, fallback time.Time) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return fallback
	}
	if claims.ExpiresAt == nil {
		return fallback
	}

	if exp := claims.ExpiresAt.Time; exp.Before(fallback) {
		return exp
	}
	return fallback
}
