package usecase

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims reads exp and sub from an access token without verifying it.
// The token was issued to this device by the auth service; only the service
// verifies signatures.
func tokenClaims(accessToken string) (expiresAt time.Time, subject string, ok bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		return time.Time{}, "", false
	}
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return expiresAt, claims.Subject, true
}
