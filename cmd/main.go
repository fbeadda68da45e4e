package main

import (
	"context"
	"os"

	"github.com/desertthunder/nowplaying/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil, shared.LogConfig{})

	runner := NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "nowplaying",
		Usage:    "Relay Spotify's currently playing track through a single-user OAuth flow",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
