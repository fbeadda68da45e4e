package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/nowplaying/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config      *shared.Config
	httpClient  *http.Client
	logger      *log.Logger
	output      io.Writer
	openBrowser func(string) error
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config      *shared.Config
	HTTPClient  *http.Client
	Logger      *log.Logger
	Output      io.Writer
	OpenBrowser func(string) error
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil, shared.LogConfig{})
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.OpenBrowser == nil {
		opts.OpenBrowser = shared.OpenBrowser
	}

	return &Runner{
		config:      opts.Config,
		httpClient:  opts.HTTPClient,
		logger:      opts.Logger,
		output:      opts.Output,
		openBrowser: opts.OpenBrowser,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, loginCommand, statusCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig resolves the --config flag and applies its [log] table to the runner's logger.
//
// This is the only place a config file is read. An explicitly passed path must exist; the default
// path is optional and falls back to the runner's config.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err != nil {
		if cmd.IsSet("config") {
			return nil, fmt.Errorf("%w: %s", shared.ErrMissingConfig, configPath)
		}
		copied := *r.config
		shared.ApplyLogConfig(r.logger, copied.Log)
		return &copied, nil
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	shared.ApplyLogConfig(r.logger, config.Log)
	r.logger.Debug("loaded config", "path", configPath)
	return config, nil
}

// relayURL returns --url, or the configured server's base URL.
func (r *Runner) relayURL(cmd *cli.Command, config *shared.Config) string {
	if u := cmd.String("url"); u != "" {
		return u
	}
	return config.Server.BaseURL()
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
