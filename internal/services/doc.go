// Package services defines the [Provider] interface for OAuth music providers and implements it for Spotify.
//
// # Spotify Implementation
//
// [SpotifyService] wraps an [oauth2.Config] for the authorization URL and code exchange, and issues the
// single resource call the relay needs (GET /me/player/currently-playing) with a bearer token.
//
// Tokens are never refreshed here. An expired token is the caller's problem.
//
// # Relay Client
//
// [RelayClient] is the CLI side: a thin HTTP client for a running relay, returning raw [APIResponse] values.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrTokenExchange] : code exchange failed (transport, non-2xx, or missing access_token)
//   - [shared.ErrAPIRequest] : HTTP request failed before a response was received
//   - [shared.ErrInvalidResponse] : response body could not be decoded
package services
