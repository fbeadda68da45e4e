// package services defines interface Provider for interacting with the OAuth provider's HTTP APIs
package services

import (
	"context"
)

// Provider defines the calls the relay makes against an OAuth music provider.
type Provider interface {
	// AuthURL returns the authorization-request URL the user is redirected to.
	AuthURL() string

	// Exchange trades an authorization code for a token grant.
	// Returns an error wrapping [shared.ErrTokenExchange] on any failure.
	Exchange(ctx context.Context, code string) (*TokenGrant, error)

	// CurrentlyPlaying fetches the user's playback state with the given access token.
	// Non-2xx statuses are returned in the response, not as errors.
	CurrentlyPlaying(ctx context.Context, accessToken string) (*APIResponse, error)

	// Name returns the name of the provider (e.g., "Spotify")
	Name() string
}

// TokenGrant is the token endpoint's answer to a successful code exchange.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // Lifetime in seconds, 0 when the provider omitted it
}
