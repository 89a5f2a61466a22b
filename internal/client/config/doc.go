// Package config loads runtime configuration for the tradedash CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment: TRADEDASH_API_URL overrides the backend base URL.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the trading backend
//	-i int      market price poll interval (seconds)
//	-t int      HTTP request timeout (seconds)
//	-d string   data directory for the local database
//	-l string   log level (debug, info, warn, error)
//
// # File schema
//
// Intervals use timex.Duration, so values can be either strings like "60s"
// or integer nanoseconds. Keys left out keep their previous value:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "market_poll_interval": "60s",
//	  "request_timeout": "15s",
//	  "data_dir": "data",
//	  "log_level": "info"
//	}
package config
