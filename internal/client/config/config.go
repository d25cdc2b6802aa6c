package config

import "time"

// Config holds runtime settings for the companion CLI.
//
// Fields:
//   - APIBaseURL: the REST API root, including the /api prefix.
//   - DatabasePath: SQLite file holding session and draft state.
//   - RequestTimeout: overall per-request HTTP timeout.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.bemgestar.com.br/api"
	c.DatabasePath = "bemgestar.db"
	c.RequestTimeout = 15 * time.Second
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
