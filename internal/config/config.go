// Package config holds runtime settings for the tutor CLI and loads them
// from defaults, an optional JSON file, and command-line flags, in that
// order of precedence.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DataDir: directory for the key file, record files, and certificates.
//   - SessionTimeout: idle time after which a logged-in session is closed.
//   - MaxLoginAttempts: password attempts allowed per sign-in.
type Config struct {
	DataDir          string
	SessionTimeout   time.Duration
	MaxLoginAttempts int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.SessionTimeout = 15 * time.Minute
	c.MaxLoginAttempts = 3
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
