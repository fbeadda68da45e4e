package shared

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}

		if config.Credentials.Spotify.ClientID != "your_spotify_client_id" {
			t.Errorf("expected spotify client_id your_spotify_client_id, got %s", config.Credentials.Spotify.ClientID)
		}

		if config.Credentials.Spotify.RedirectURI != "http://127.0.0.1:3000/callback" {
			t.Errorf("unexpected redirect_uri %s", config.Credentials.Spotify.RedirectURI)
		}

		if config.Provider.TokenURL != "https://accounts.spotify.com/api/token" {
			t.Errorf("unexpected token_url %s", config.Provider.TokenURL)
		}

		if config.Provider.APIURL != "https://api.spotify.com/v1" {
			t.Errorf("unexpected api_url %s", config.Provider.APIURL)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Provider.AuthURL != defaultConfig.Provider.AuthURL {
			t.Errorf("created config auth_url doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[server]
host = "0.0.0.0"
port = 8080

[credentials.spotify]
client_id = "test_client_id"
client_secret = "test_secret"
redirect_uri = "https://relay.example.com/callback"

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Credentials.Spotify.ClientID != "test_client_id" {
			t.Errorf("expected spotify client_id test_client_id, got %s", config.Credentials.Spotify.ClientID)
		}

		if config.Credentials.Spotify.RedirectURI != "https://relay.example.com/callback" {
			t.Errorf("expected configured redirect_uri, got %s", config.Credentials.Spotify.RedirectURI)
		}

		t.Run("Fills Provider Defaults", func(t *testing.T) {
			if config.Provider.AuthURL != "https://accounts.spotify.com/authorize" {
				t.Errorf("expected default auth_url, got %s", config.Provider.AuthURL)
			}
			if config.Provider.TokenURL != "https://accounts.spotify.com/api/token" {
				t.Errorf("expected default token_url, got %s", config.Provider.TokenURL)
			}
		})

		t.Run("Log Level", func(t *testing.T) {
			if config.Log.LogLevel() != log.DebugLevel {
				t.Errorf("expected debug level, got %v", config.Log.LogLevel())
			}
		})
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("LoadConfig Invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[server\nport = "), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		complete := func() *Config {
			config := DefaultConfig()
			config.Credentials.Spotify.ClientID = "0123456789abcdef"
			config.Credentials.Spotify.ClientSecret = "fedcba9876543210"
			return config
		}

		t.Run("Complete Credentials", func(t *testing.T) {
			if err := complete().Validate(); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})

		t.Run("Example Placeholders", func(t *testing.T) {
			err := DefaultConfig().Validate()
			if !errors.Is(err, ErrMissingCredentials) {
				t.Fatalf("expected ErrMissingCredentials, got %v", err)
			}
			if !strings.Contains(err.Error(), "client_id") {
				t.Errorf("expected client_id to be reported, got %v", err)
			}
		})

		t.Run("Placeholder Secret", func(t *testing.T) {
			config := complete()
			config.Credentials.Spotify.ClientSecret = "your_spotify_client_secret"

			if err := config.Validate(); !errors.Is(err, ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
		})

		t.Run("Missing Client Secret", func(t *testing.T) {
			config := complete()
			config.Credentials.Spotify.ClientSecret = ""

			if err := config.Validate(); !errors.Is(err, ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
		})

		t.Run("Missing Redirect URI", func(t *testing.T) {
			config := complete()
			config.Credentials.Spotify.RedirectURI = ""

			if err := config.Validate(); !errors.Is(err, ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
		})
	})

	t.Run("Server Addresses", func(t *testing.T) {
		s := ServerConfig{Host: "0.0.0.0", Port: 8080}

		if s.Addr() != "0.0.0.0:8080" {
			t.Errorf("expected 0.0.0.0:8080, got %s", s.Addr())
		}
		if s.BaseURL() != "http://127.0.0.1:8080" {
			t.Errorf("expected http://127.0.0.1:8080, got %s", s.BaseURL())
		}
	})

	t.Run("Invalid Log Level Falls Back To Info", func(t *testing.T) {
		if got := (LogConfig{Level: "loud"}).LogLevel(); got != log.InfoLevel {
			t.Errorf("expected info level, got %v", got)
		}
	})

	t.Run("Log Formatter", func(t *testing.T) {
		for format, want := range map[string]log.Formatter{
			"":       log.TextFormatter,
			"text":   log.TextFormatter,
			"JSON":   log.JSONFormatter,
			"logfmt": log.LogfmtFormatter,
			"yaml":   log.TextFormatter,
		} {
			if got := (LogConfig{Format: format}).Formatter(); got != want {
				t.Errorf("format %q: expected %v, got %v", format, want, got)
			}
		}
		if DefaultConfig().Log.Format != "text" {
			t.Errorf("expected default format text, got %q", DefaultConfig().Log.Format)
		}
	})

	t.Run("Spotify Map", func(t *testing.T) {
		m := DefaultConfig().Credentials.Spotify.Map()
		for _, key := range []string{"client_id", "client_secret", "redirect_uri"} {
			if m[key] == "" {
				t.Errorf("expected %s to be set", key)
			}
		}
	})
}
