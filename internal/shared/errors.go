package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrMissingCode      = fmt.Errorf("no authorization code provided")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTokenExpired     = fmt.Errorf("access token expired")
	ErrTokenExchange    = fmt.Errorf("token exchange failed")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrInvalidResponse    = fmt.Errorf("invalid API response")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
