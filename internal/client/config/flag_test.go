package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/trainerhub/internal/client/securestore"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "https://api.example.com/v1", "-t", "2s", "-s", "redis", "-d", "/tmp/th", "-l", "debug"},
			mutate: func(c *Config) {
				c.APIBaseURL = "https://api.example.com/v1"
				c.RequestTimeout = 2 * time.Second
				c.StoreBackend = securestore.BackendRedis
				c.DataDir = "/tmp/th"
				c.LogLevel = "debug"
			},
		},
		{
			name:   "ephemeral switches to memory",
			args:   []string{"-s", "sqlite", "-ephemeral"},
			mutate: func(c *Config) { c.StoreBackend = securestore.BackendMemory },
		},
		{
			name:   "foreign flags ignored",
			args:   []string{"-x", "1", "--a=http://other/api", "positional"},
			mutate: func(c *Config) { c.APIBaseURL = "http://other/api" },
		},
		{
			name:    "incorrect timeout",
			args:    []string{"-t", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.mutate(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}
