package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/nowplaying/internal/services"
	"github.com/desertthunder/nowplaying/internal/shared"
	"github.com/desertthunder/nowplaying/internal/ui"
	"github.com/urfave/cli/v3"
)

// Status asks a running relay what is currently playing.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	relayURL := r.relayURL(cmd, config)
	client := services.NewRelayClient(relayURL, r.httpClient)

	r.logger.Debug("querying relay", "url", client.BaseURL())

	resp, err := client.NowPlaying(ctx)
	if err != nil {
		return fmt.Errorf("%w: is the relay running at %s? %v", shared.ErrServiceUnavailable, relayURL, err)
	}

	if cmd.Bool("json") {
		if resp.IsJSON {
			return r.writeJSON(resp.JSONData, cmd.Bool("pretty"))
		}
		return r.writeJSON(map[string]any{"status": resp.StatusCode, "message": string(resp.Body)}, cmd.Bool("pretty"))
	}

	return r.writePlain("%s\n", ui.RenderNowPlaying(resp, relayURL))
}
