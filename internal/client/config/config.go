package config

import "time"

// Config holds runtime settings for the superheroes CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend (scheme included).
//   - RequestTimeout: end-to-end bound for a single HTTP request.
//   - DatabasePath: location of the local SQLite database holding the
//     durable session marker.
//   - Debug: enables debug-level diagnostics.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	DatabasePath       string
	Debug              bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "superheroes.db"
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON file, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
