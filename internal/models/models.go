// package models defines the data model for the now playing relay
package models

import (
	"time"
)

// AuthState is the authentication state derived from a [TokenRecord] at a given instant.
type AuthState int

const (
	StateUnauthenticated AuthState = iota
	StateAuthenticated
	StateExpired
)

func (s AuthState) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateExpired:
		return "expired"
	default:
		return "unauthenticated"
	}
}

// TokenRecord holds the tokens returned by the provider's token endpoint.
//
// An empty AccessToken means absent. Expiry is only meaningful when AccessToken is present;
// the zero value is treated as a past instant.
type TokenRecord struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// NewTokenRecord builds a record expiring expiresIn seconds after now.
func NewTokenRecord(accessToken, refreshToken string, expiresIn int64, now time.Time) TokenRecord {
	return TokenRecord{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Expiry:       now.Add(time.Duration(expiresIn) * time.Second),
	}
}

// State reports the authentication state at now.
func (t TokenRecord) State(now time.Time) AuthState {
	if t.AccessToken == "" {
		return StateUnauthenticated
	}
	if !now.Before(t.Expiry) {
		return StateExpired
	}
	return StateAuthenticated
}

// Valid reports whether the access token is present and unexpired at now.
//
// Expired and absent tokens are indistinguishable here.
func (t TokenRecord) Valid(now time.Time) bool {
	return t.State(now) == StateAuthenticated
}

// ExpiryMillis returns the expiry instant as milliseconds since the Unix epoch, or 0 when unset.
func (t TokenRecord) ExpiryMillis() int64 {
	if t.Expiry.IsZero() {
		return 0
	}
	return t.Expiry.UnixMilli()
}
