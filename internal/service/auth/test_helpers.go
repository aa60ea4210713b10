package auth

import (
	"time"
)

// NewTestJWTService creates a JWT service with an injectable clock, so
// expiry boundaries are exact and deterministic. Intended for tests only.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}
}
