package config

import "time"

// Config holds runtime settings for the Sport Together CLI.
//
// Units: RequestTimeout and OnlineCheckInterval are time.Duration values.
type Config struct {
	ServerURL           string
	CacheDSN            string
	OutputPath          string
	IconBaseURL         string
	LogLevel            string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.CacheDSN = "sporttogether.db"
	c.OutputPath = "sporttogether.html"
	c.IconBaseURL = ""
	c.LogLevel = "warn"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
