package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseFile(t *testing.T) {
	jsonPath := writeTemp(t, "cfg.json", `{
		"api_base_url": "http://json:9000",
		"market_poll_interval": "10s",
		"request_timeout": 2000000000
	}`)
	yamlPath := writeTemp(t, "cfg.yml", "request_timeout: 5s\nlog_level: error\n")

	tests := []struct {
		name string
		args []string
		want func(c *Config)
	}{
		{
			name: "json overrides listed keys only",
			args: []string{"-config", jsonPath},
			want: func(c *Config) {
				c.APIBaseURL = "http://json:9000"
				c.MarketPollInterval = 10 * time.Second
				c.RequestTimeout = 2 * time.Second
			},
		},
		{
			name: "yaml by extension",
			args: []string{"-c", yamlPath},
			want: func(c *Config) {
				c.RequestTimeout = 5 * time.Second
				c.LogLevel = "error"
			},
		},
		{
			name: "no flag, no changes",
			args: nil,
			want: func(*Config) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args...)

			got := defaults()
			require.NoError(t, parseFile(got))

			want := defaults()
			tt.want(want)
			assert.Empty(t, cmp.Diff(want, got))
		})
	}
}

func TestParseFile_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"bad.json": `{ this is not valid json`,
		"bad.yaml": "market_poll_interval: [1, 2]\n",
		"dur.json": `{"request_timeout": "soon"}`,
	} {
		t.Run(name, func(t *testing.T) {
			setArgs(t, "-c", writeTemp(t, name, body))
			err := parseFile(defaults())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parse config file")
		})
	}
}
