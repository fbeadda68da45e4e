// Spotify API implementation of [Provider]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/desertthunder/nowplaying/internal/shared"
	"golang.org/x/oauth2"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	// ScopeCurrentlyPlaying is the only scope the relay requests.
	ScopeCurrentlyPlaying = "user-read-currently-playing"

	currentlyPlayingPath = "/me/player/currently-playing"
)

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// SpotifyArtist represents a simplified Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// SpotifyAlbum represents a simplified Spotify album.
type SpotifyAlbum struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artists     []SpotifyArtist `json:"artists"`
	ReleaseDate string          `json:"release_date"`
	Images      []SpotifyImage  `json:"images"`
	URI         string          `json:"uri"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Artists    []SpotifyArtist `json:"artists"`
	Album      SpotifyAlbum    `json:"album"`
	DurationMS int             `json:"duration_ms"`
	Explicit   bool            `json:"explicit"`
	URI        string          `json:"uri"`
}

// ArtistNames joins the track's artist names with commas.
func (t SpotifyTrack) ArtistNames() string {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

type playbackContext struct {
	Type string `json:"type"`
	URI  string `json:"uri"`
}

// SpotifyCurrentlyPlaying represents the playback state returned by /me/player/currently-playing.
//
// Item is nil when an ad or an unsupported item type is playing.
type SpotifyCurrentlyPlaying struct {
	Timestamp            int64            `json:"timestamp"`
	ProgressMS           int              `json:"progress_ms"`
	IsPlaying            bool             `json:"is_playing"`
	CurrentlyPlayingType string           `json:"currently_playing_type"`
	Context              *playbackContext `json:"context"`
	Item                 *SpotifyTrack    `json:"item"`
}

// DecodeCurrentlyPlaying parses a currently-playing response body.
func DecodeCurrentlyPlaying(body []byte) (*SpotifyCurrentlyPlaying, error) {
	var cp SpotifyCurrentlyPlaying
	if err := json.Unmarshal(body, &cp); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidResponse, err)
	}
	return &cp, nil
}

// SpotifyService implements the [Provider] interface for Spotify.
// Uses [oauth2] for the authorization URL and code exchange.
type SpotifyService struct {
	config      *oauth2.Config
	apiURL      string
	httpClient  *http.Client
	tokenClient *http.Client
}

// clientCredentials sets Basic auth from the raw client id and secret on every request.
//
// x/oauth2 form-escapes both before base64 encoding; the token endpoint expects base64(client_id:client_secret).
type clientCredentials struct {
	id, secret string
	base       http.RoundTripper
}

func (c *clientCredentials) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.SetBasicAuth(c.id, c.secret)
	return c.base.RoundTrip(req)
}

// withClientCredentials copies client with a transport that overwrites the Authorization header.
func withClientCredentials(client *http.Client, id, secret string) *http.Client {
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *client
	wrapped.Transport = &clientCredentials{id: id, secret: secret, base: base}
	return &wrapped
}

// NewSpotifyService creates a new Spotify service with the given OAuth2 credentials and provider endpoints.
//
// Credentials are not validated: an empty client_id or redirect_uri produces an unusable authorization URL,
// which the provider rejects. Empty endpoints fall back to Spotify's public URLs.
func NewSpotifyService(credentials map[string]string, provider shared.ProviderConfig, client *http.Client) *SpotifyService {
	if provider.AuthURL == "" {
		provider.AuthURL = spotifyAuthURL
	}
	if provider.TokenURL == "" {
		provider.TokenURL = spotifyTokenURL
	}
	if provider.APIURL == "" {
		provider.APIURL = spotifyBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	config := &oauth2.Config{
		ClientID:     credentials["client_id"],
		ClientSecret: credentials["client_secret"],
		RedirectURL:  credentials["redirect_uri"],
		Scopes:       []string{ScopeCurrentlyPlaying},
		Endpoint: oauth2.Endpoint{
			AuthURL:   provider.AuthURL,
			TokenURL:  provider.TokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	return &SpotifyService{
		config:      config,
		apiURL:      strings.TrimSuffix(provider.APIURL, "/"),
		httpClient:  client,
		tokenClient: withClientCredentials(client, config.ClientID, config.ClientSecret),
	}
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// AuthURL returns the OAuth2 authorization URL for user login.
//
// No state parameter is sent.
func (s *SpotifyService) AuthURL() string {
	return s.config.AuthCodeURL("")
}

// Exchange trades an authorization code for tokens at the token endpoint.
//
// The request carries HTTP Basic auth of the unescaped client_id:client_secret and a form body of
// grant_type, code and redirect_uri.
// A non-2xx status or a body without access_token is reported as [shared.ErrTokenExchange].
func (s *SpotifyService) Exchange(ctx context.Context, code string) (*TokenGrant, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: %w", shared.ErrTokenExchange, shared.ErrMissingCode)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.tokenClient)
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return nil, fmt.Errorf("%w: status %d", shared.ErrTokenExchange, retrieveErr.Response.StatusCode)
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrTokenExchange, err)
	}

	return &TokenGrant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn(token),
	}, nil
}

// CurrentlyPlaying performs GET /me/player/currently-playing with a bearer token.
func (s *SpotifyService) CurrentlyPlaying(ctx context.Context, accessToken string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+currentlyPlayingPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	return readAPIResponse(resp)
}

// expiresIn recovers the raw expires_in value.
//
// [oauth2.Token.Expiry] is computed against the library's own clock, so the relay reads the raw field and
// applies its own. JSON responses decode numbers as float64; form-encoded responses yield int64 or strings.
func expiresIn(token *oauth2.Token) int64 {
	switch v := token.Extra("expires_in").(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}
