package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, configured per build/deployment.
//   - RequestTimeout: per-request HTTP timeout.
//   - FeedPageSize: page size for feed loads.
//   - StateDBPath: path of the local sqlite state database.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	FeedPageSize   int
	StateDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.FeedPageSize = 20
	c.StateDBPath = "zoura.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
