package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Login opens the relay's /login page, which redirects to Spotify's consent screen.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	loginURL := r.relayURL(cmd, config) + "/login"

	r.writePlain("→ Opening browser for Spotify authorization...\n")
	if err := r.openBrowser(loginURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlain("⚠ Could not open browser automatically.\n")
		r.writePlain("Please open this URL in your browser:\n%s\n", loginURL)
	}

	return nil
}
