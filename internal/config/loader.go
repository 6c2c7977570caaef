package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads an optional TOML configuration file at path, merges it on top
// of the built-in defaults, applies environment variable overrides, and
// returns the final Config. A missing file is not an error: the client runs
// fine on defaults plus environment. The returned Config has NOT been
// validated; the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known environment variables and overwrites
// the corresponding Config fields when a variable is set. The POLY_API_KEY /
// POLY_API_SECRET / ETHEREUM_PRIVATE_KEY names are the credential variables
// operators already export for other Polymarket tooling; POLYTUI_* covers
// the rest.
func applyEnvOverrides(cfg *Config) {
	// ── Endpoints ──
	setStr(&cfg.Polymarket.GammaHost, "POLYTUI_GAMMA_HOST")
	setStr(&cfg.Polymarket.ClobHost, "POLYTUI_CLOB_HOST")
	setStr(&cfg.Polymarket.DataHost, "POLYTUI_DATA_HOST")
	setDuration(&cfg.Polymarket.RequestTimeout, "POLYTUI_REQUEST_TIMEOUT")

	// ── Credentials ──
	setStr(&cfg.Credentials.APIKey, "POLY_API_KEY")
	setStr(&cfg.Credentials.APISecret, "POLY_API_SECRET")
	setStr(&cfg.Credentials.PrivateKey, "ETHEREUM_PRIVATE_KEY")

	// ── UI ──
	setInt(&cfg.UI.ListLimit, "POLYTUI_LIST_LIMIT")

	// ── Top-level ──
	setStr(&cfg.LogLevel, "POLYTUI_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}
