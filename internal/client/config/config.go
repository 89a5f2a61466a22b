package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultAPIBaseURL         = "http://localhost:8000"
	DefaultMarketPollInterval = 60 * time.Second
	DefaultRequestTimeout     = 15 * time.Second
	DefaultDataDir            = "data"
	DefaultLogLevel           = "info"
)

// Config holds runtime settings for the tradedash CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the trading backend, no trailing slash.
//   - MarketPollInterval: how often the price snapshot is refreshed.
//   - RequestTimeout: per-request HTTP timeout.
//   - DataDir: directory holding the client-local SQLite database.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL         string
	MarketPollInterval time.Duration
	RequestTimeout     time.Duration
	DataDir            string
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.MarketPollInterval = DefaultMarketPollInterval
	c.RequestTimeout = DefaultRequestTimeout
	c.DataDir = DefaultDataDir
	c.LogLevel = DefaultLogLevel
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api base url %q: must be an absolute http(s) URL", c.APIBaseURL)
	}
	if c.MarketPollInterval <= 0 {
		return fmt.Errorf("market poll interval must be positive, got %s", c.MarketPollInterval)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file, the environment and command-line flags, in that order.
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}

	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
