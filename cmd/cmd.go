// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

const defaultConfigPath = "config.toml"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   defaultConfigPath,
		Sources: cli.EnvVars("NOWPLAYING_CONFIG"),
	}
}

func urlFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "url",
		Aliases: []string{"u"},
		Usage:   "Base URL of a running relay (defaults to the configured server address)",
		Sources: cli.EnvVars("NOWPLAYING_URL"),
	}
}

// serveCommand runs the relay
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the OAuth relay HTTP server",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "host",
				Usage: "Interface to listen on (overrides config)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides config)",
			},
			&cli.StringFlag{
				Name:    "client-id",
				Usage:   "Spotify client ID (overrides config)",
				Sources: cli.EnvVars("SPOTIFY_CLIENT_ID"),
			},
			&cli.StringFlag{
				Name:    "client-secret",
				Usage:   "Spotify client secret (overrides config)",
				Sources: cli.EnvVars("SPOTIFY_CLIENT_SECRET"),
			},
			&cli.StringFlag{
				Name:    "redirect-uri",
				Usage:   "OAuth redirect URI registered with Spotify (overrides config)",
				Sources: cli.EnvVars("SPOTIFY_REDIRECT_URI"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error (overrides config)",
			},
		},
		Action: r.Serve,
	}
}

// loginCommand opens the relay's login page
func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Open the relay's /login page in the default browser",
		Flags: []cli.Flag{
			configFlag(),
			urlFlag(),
		},
		Action: r.Login,
	}
}

// statusCommand queries the relay
func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show what is currently playing, via a running relay",
		Flags: []cli.Flag{
			configFlag(),
			urlFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
		},
		Action: r.Status,
	}
}

// configCommand handles configuration files
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write an example config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"o"},
						Usage:   "Output path",
						Value:   defaultConfigPath,
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}
