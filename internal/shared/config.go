package shared

import (
	_ "embed"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Server      ServerConfig      `toml:"server"`
	Provider    ProviderConfig    `toml:"provider"`
	Log         LogConfig         `toml:"log"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Spotify SpotifyConfig `toml:"spotify"`
}

// SpotifyConfig contains Spotify API credentials.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
}

// Map returns the credentials keyed the way [services.NewSpotifyService] expects them.
func (s SpotifyConfig) Map() map[string]string {
	return map[string]string{
		"client_id":     s.ClientID,
		"client_secret": s.ClientSecret,
		"redirect_uri":  s.RedirectURI,
	}
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr joins host and port into a listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// BaseURL is the http URL clients use to reach a relay listening on [ServerConfig.Addr].
func (s ServerConfig) BaseURL() string {
	host := s.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(s.Port))
}

// ProviderConfig contains the OAuth provider endpoints.
type ProviderConfig struct {
	AuthURL  string `toml:"auth_url"`
	TokenURL string `toml:"token_url"`
	APIURL   string `toml:"api_url"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text, json or logfmt
}

// LogLevel parses the configured level, falling back to [log.InfoLevel].
func (l LogConfig) LogLevel() log.Level {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Formatter maps Format onto a [log.Formatter], falling back to [log.TextFormatter].
func (l LogConfig) Formatter() log.Formatter {
	switch strings.ToLower(l.Format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Unset server and provider fields are filled from [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	config.withDefaults(DefaultConfig())
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// placeholderPrefix marks the unfilled values shipped in config.example.toml.
const placeholderPrefix = "your_"

func unset(v string) bool {
	return v == "" || strings.HasPrefix(v, placeholderPrefix)
}

// Validate reports missing Spotify credentials, counting the example file's placeholders as missing.
//
// The relay still starts without them; callers decide whether this is fatal.
func (c *Config) Validate() error {
	s := c.Credentials.Spotify
	switch {
	case unset(s.ClientID):
		return fmt.Errorf("%w: client_id", ErrMissingCredentials)
	case unset(s.ClientSecret):
		return fmt.Errorf("%w: client_secret", ErrMissingCredentials)
	case unset(s.RedirectURI):
		return fmt.Errorf("%w: redirect_uri", ErrMissingCredentials)
	}
	return nil
}

func (c *Config) withDefaults(d *Config) {
	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Provider.AuthURL == "" {
		c.Provider.AuthURL = d.Provider.AuthURL
	}
	if c.Provider.TokenURL == "" {
		c.Provider.TokenURL = d.Provider.TokenURL
	}
	if c.Provider.APIURL == "" {
		c.Provider.APIURL = d.Provider.APIURL
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}
