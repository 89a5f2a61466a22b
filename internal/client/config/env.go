package config

import "os"

// EnvAPIBaseURL overrides the backend base URL.
const EnvAPIBaseURL = "TRADEDASH_API_URL"

func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
}
