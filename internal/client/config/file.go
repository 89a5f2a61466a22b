package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/tradedash/internal/flagx"
	"github.com/dmitrijs2005/tradedash/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used only for unmarshalling config files. Pointer
// fields tell "absent" apart from "zero".
type fileConfig struct {
	APIBaseURL         *string         `json:"api_base_url" yaml:"api_base_url"`
	MarketPollInterval *timex.Duration `json:"market_poll_interval" yaml:"market_poll_interval"`
	RequestTimeout     *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	DataDir            *string         `json:"data_dir" yaml:"data_dir"`
	LogLevel           *string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config. Without the flag
// nothing happens.
func parseFile(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc fileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.MarketPollInterval != nil {
		cfg.MarketPollInterval = fc.MarketPollInterval.Duration
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.DataDir != nil {
		cfg.DataDir = *fc.DataDir
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
}
