package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/nowplaying/internal/models"
	"github.com/desertthunder/nowplaying/internal/repositories"
	"github.com/desertthunder/nowplaying/internal/services"
)

// LoginHandler redirects the user to the provider's authorization page.
type LoginHandler struct {
	provider services.Provider
}

// NewLoginHandler creates a new login handler for the given provider.
func NewLoginHandler(provider services.Provider) *LoginHandler {
	return &LoginHandler{provider: provider}
}

// Routes returns the HTTP routes this handler serves.
func (h *LoginHandler) Routes() []string {
	return []string{"/login"}
}

// ServeHTTP responds 302 to the authorization URL. It never fails.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.provider.AuthURL(), http.StatusFound)
}

// CallbackHandler handles OAuth2 callback requests for the authorization code flow.
//
// Every successful exchange overwrites the stored [models.TokenRecord]. No state parameter is checked.
type CallbackHandler struct {
	provider services.Provider
	store    repositories.TokenStore
	now      func() time.Time
	logger   *log.Logger
}

// NewCallbackHandler creates a new callback handler writing into store.
func NewCallbackHandler(provider services.Provider, store repositories.TokenStore, now func() time.Time, logger *log.Logger) *CallbackHandler {
	return &CallbackHandler{
		provider: provider,
		store:    store,
		now:      now,
		logger:   logger,
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *CallbackHandler) Routes() []string {
	return []string{"/callback"}
}

// ServeHTTP handles the OAuth callback request.
//
// A missing code is rejected with 400 before any provider call. A failed exchange responds 502 and leaves
// the stored record untouched.
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := LoggerFrom(r.Context(), h.logger)

	code := r.URL.Query().Get("code")
	if code == "" {
		if errParam := r.URL.Query().Get("error"); errParam != "" {
			logger.Warn("authorization denied", "error", errParam)
		}
		writePlain(w, http.StatusBadRequest, "No code provided")
		return
	}

	grant, err := h.provider.Exchange(r.Context(), code)
	if err != nil {
		logger.Error("token exchange failed", "provider", h.provider.Name(), "error", err)
		writePlain(w, http.StatusBadGateway, "Token exchange failed")
		return
	}

	record := models.NewTokenRecord(grant.AccessToken, grant.RefreshToken, grant.ExpiresIn, h.now())
	h.store.Write(record)
	logger.Info("token stored", "expires_at", record.Expiry.Format(time.RFC3339))

	writePlain(w, http.StatusOK, fmt.Sprintf("%s login successful! You can now visit /currently-playing", h.provider.Name()))
}
