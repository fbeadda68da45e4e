package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/nowplaying/internal/repositories"
	"github.com/desertthunder/nowplaying/internal/server"
	"github.com/desertthunder/nowplaying/internal/services"
	"github.com/desertthunder/nowplaying/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the relay until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.serveConfig(cmd)
	if err != nil {
		return err
	}

	shared.ApplyLogConfig(r.logger, config.Log)

	r.warnIncomplete(config)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := config.Server.Addr()
	r.logger.Info("login at", "url", config.Server.BaseURL()+"/login", "redirect_uri", config.Credentials.Spotify.RedirectURI)

	return server.ListenAndServe(ctx, addr, r.relayHandler(config), r.logger)
}

// warnIncomplete logs unset or placeholder credentials. The relay still starts.
func (r *Runner) warnIncomplete(config *shared.Config) bool {
	if err := config.Validate(); err != nil {
		r.logger.Warn("relay starting with incomplete credentials, /callback will fail until they are set", "error", err)
		return true
	}
	return false
}

// serveConfig loads the config file and applies flag and environment overrides.
func (r *Runner) serveConfig(cmd *cli.Command) (*shared.Config, error) {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if v := cmd.String("host"); v != "" {
		config.Server.Host = v
	}
	if v := cmd.Int("port"); v != 0 {
		config.Server.Port = v
	}
	if v := cmd.String("client-id"); v != "" {
		config.Credentials.Spotify.ClientID = v
	}
	if v := cmd.String("client-secret"); v != "" {
		config.Credentials.Spotify.ClientSecret = v
	}
	if v := cmd.String("redirect-uri"); v != "" {
		config.Credentials.Spotify.RedirectURI = v
	}
	if v := cmd.String("log-level"); v != "" {
		if _, err := log.ParseLevel(v); err != nil {
			return nil, fmt.Errorf("%w: log-level %q", shared.ErrInvalidArgument, v)
		}
		config.Log.Level = v
	}

	return config, nil
}

// relayHandler builds the relay's router with a fresh in-memory token store.
func (r *Runner) relayHandler(config *shared.Config) *server.BasicRouter {
	provider := services.NewSpotifyService(config.Credentials.Spotify.Map(), config.Provider, r.httpClient)

	return server.NewRelayRouter(server.RelayOpts{
		Provider: provider,
		Store:    repositories.NewMemoryTokenRepository(),
		Logger:   r.logger,
	})
}
