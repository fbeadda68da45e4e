package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/nowplaying/internal/models"
	"github.com/desertthunder/nowplaying/internal/repositories"
	"github.com/desertthunder/nowplaying/internal/services"
	"github.com/desertthunder/nowplaying/internal/shared"
)

const (
	msgUnauthorized   = "Access token missing or expired. Go to /login"
	msgNothingPlaying = "Nothing is currently playing"
	msgFetchError     = "Error fetching currently playing"
	msgParseError     = "Error parsing currently playing response"
)

// NowPlayingHandler proxies the provider's currently-playing endpoint using the stored access token.
//
// It only reads the token store. The refresh token is never used.
type NowPlayingHandler struct {
	provider services.Provider
	store    repositories.TokenStore
	now      func() time.Time
	logger   *log.Logger
}

// NewNowPlayingHandler creates a new handler reading tokens from store.
func NewNowPlayingHandler(provider services.Provider, store repositories.TokenStore, now func() time.Time, logger *log.Logger) *NowPlayingHandler {
	return &NowPlayingHandler{
		provider: provider,
		store:    store,
		now:      now,
		logger:   logger,
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *NowPlayingHandler) Routes() []string {
	return []string{"/currently-playing"}
}

// ServeHTTP handles GET /currently-playing.
//
// Responses:
//   - 401 when the token is absent or expired (no provider call)
//   - 200 plain text when the provider answers 204
//   - the provider's status with a generic body for any other non-2xx
//   - 200 application/json with the provider's body, compacted, otherwise
//   - 502 when the provider is unreachable or its body is not JSON
func (h *NowPlayingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := LoggerFrom(r.Context(), h.logger)

	now := h.now()
	record := h.store.Read()
	if err := authError(record, now); err != nil {
		logger.Warn("rejecting request", "state", record.State(now), "error", err)
		writePlain(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	resp, err := h.provider.CurrentlyPlaying(r.Context(), record.AccessToken)
	if err != nil {
		logger.Error("currently playing request failed", "provider", h.provider.Name(), "error", err)
		writePlain(w, http.StatusBadGateway, msgFetchError)
		return
	}

	switch {
	case resp.StatusCode == http.StatusNoContent:
		writePlain(w, http.StatusOK, msgNothingPlaying)
		return
	case !resp.OK():
		logger.Warn("provider returned error status", "provider", h.provider.Name(), "status", resp.StatusCode)
		writePlain(w, resp.StatusCode, msgFetchError)
		return
	}

	body, err := compactJSON(resp.Body)
	if err != nil {
		logger.Error("provider returned non-JSON body", "provider", h.provider.Name(), "status", resp.StatusCode, "error", err)
		writePlain(w, http.StatusBadGateway, msgParseError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// authError reports why record cannot be used at now, or nil when it can.
func authError(record models.TokenRecord, now time.Time) error {
	switch record.State(now) {
	case models.StateAuthenticated:
		return nil
	case models.StateExpired:
		return shared.ErrTokenExpired
	default:
		return shared.ErrNotAuthenticated
	}
}

// compactJSON strips insignificant whitespace from body, keeping key order and escaping as sent.
func compactJSON(body []byte) ([]byte, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not JSON", shared.ErrInvalidResponse)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidResponse, err)
	}
	return buf.Bytes(), nil
}
