// Package config defines the configuration for the polytui client and
// provides loading and validation helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/alanyoungcy/polytui/internal/domain"
)

// Config is the root configuration structure. Fields are populated from an
// optional TOML file and then overridden by environment variables.
type Config struct {
	Polymarket  PolymarketConfig  `toml:"polymarket"`
	Credentials CredentialsConfig `toml:"credentials"`
	UI          UIConfig          `toml:"ui"`
	LogLevel    string            `toml:"log_level"`
}

// PolymarketConfig holds the upstream API endpoints and the fixed request
// timeout applied to every gateway call.
type PolymarketConfig struct {
	GammaHost      string   `toml:"gamma_host"`
	ClobHost       string   `toml:"clob_host"`
	DataHost       string   `toml:"data_host"`
	RequestTimeout duration `toml:"request_timeout"`
}

// CredentialsConfig holds the optional authentication capability. Presence
// of api_key and private_key together toggles the authenticated surface.
type CredentialsConfig struct {
	APIKey     string `toml:"api_key"`
	APISecret  string `toml:"api_secret"`
	PrivateKey string `toml:"private_key"`
}

// Domain converts the credential fields into the domain value passed to the
// gateway constructor.
func (c CredentialsConfig) Domain() domain.Credentials {
	return domain.Credentials{
		APIKey:     c.APIKey,
		APISecret:  c.APISecret,
		PrivateKey: c.PrivateKey,
	}
}

// UIConfig holds interactive-mode parameters.
type UIConfig struct {
	ListLimit int `toml:"list_limit"`
}

// duration is a wrapper around time.Duration that supports TOML string
// decoding (e.g. "10s", "1m").
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler so the TOML decoder can
// parse duration strings like "10s".
func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler for round-trip encoding.
func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults returns a Config populated with the public Polymarket endpoints
// and reasonable defaults.
func Defaults() Config {
	return Config{
		Polymarket: PolymarketConfig{
			GammaHost:      "https://gamma-api.polymarket.com",
			ClobHost:       "https://clob.polymarket.com",
			DataHost:       "https://data-api.polymarket.com",
			RequestTimeout: duration{10 * time.Second},
		},
		UI: UIConfig{
			ListLimit: 50,
		},
		LogLevel: "info",
	}
}

// validLogLevels enumerates the accepted values for Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks Config for obviously invalid or missing values and returns
// a combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}

	if c.Polymarket.GammaHost == "" {
		errs = append(errs, "polymarket: gamma_host must not be empty")
	}
	if c.Polymarket.ClobHost == "" {
		errs = append(errs, "polymarket: clob_host must not be empty")
	}
	if c.Polymarket.DataHost == "" {
		errs = append(errs, "polymarket: data_host must not be empty")
	}
	if c.Polymarket.RequestTimeout.Duration <= 0 {
		errs = append(errs, "polymarket: request_timeout must be positive")
	}

	if c.UI.ListLimit < 1 {
		errs = append(errs, "ui: list_limit must be >= 1")
	}

	// Credentials are optional, but a secret or signing key without the API
	// key is a misconfiguration worth failing loudly on.
	hasKey := c.Credentials.APIKey != ""
	if (c.Credentials.APISecret != "" || c.Credentials.PrivateKey != "") && !hasKey {
		errs = append(errs, "credentials: api_key is required when api_secret or private_key is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
