package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *Config
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:9090", "-i", "10", "-t", "3", "-d", "/var/lib/td", "-l", "debug"},
			want: &Config{
				APIBaseURL:         "http://127.0.0.1:9090",
				MarketPollInterval: 10 * time.Second,
				RequestTimeout:     3 * time.Second,
				DataDir:            "/var/lib/td",
				LogLevel:           "debug",
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-x", "-i", "5"},
			want: func() *Config { c := defaults(); c.MarketPollInterval = 5 * time.Second; return c }(),
		},
		{
			name:    "non-numeric interval",
			args:    []string{"-i", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args...)

			got := defaults()
			err := parseFlags(got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "http://env:1")
	c := defaults()
	parseEnv(c)
	assert.Equal(t, "http://env:1", c.APIBaseURL)

	t.Setenv(EnvAPIBaseURL, "")
	c = defaults()
	parseEnv(c)
	assert.Equal(t, DefaultAPIBaseURL, c.APIBaseURL)
}
