package main

import (
	"context"

	"github.com/desertthunder/nowplaying/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the embedded example config.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config created", "path", path)
	return r.writePlain("✓ Config written to %s\nFill in client_id and client_secret from https://developer.spotify.com/dashboard\n", path)
}
