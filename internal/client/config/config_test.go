package config

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/trainerhub/internal/client/securestore"
	"github.com/dmitrijs2005/trainerhub/internal/common"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:3000/api", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, securestore.BackendSQLite, c.StoreBackend)
	assert.NotEmpty(t, c.DataDir)
	assert.Equal(t, securestore.DefaultRedisPrefix, c.RedisPrefix)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "us-east-1", c.S3Region)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	isolate(t)
	path := writeTemp(t, "cfg.json", `{
		"api_base_url": "http://file:1/api",
		"request_timeout": "3s",
		"log_level": "debug"
	}`)
	t.Setenv("TRAINERHUB_REQUEST_TIMEOUT", "4s")
	t.Setenv("TRAINERHUB_LOG_LEVEL", "warn")

	cfg, err := LoadConfig([]string{"-c", path, "-l", "error"})
	require.NoError(t, err)

	want := defaults()
	want.APIBaseURL = "http://file:1/api"
	want.RequestTimeout = 4 * time.Second
	want.LogLevel = "error"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_Errors(t *testing.T) {
	isolate(t)

	_, err := LoadConfig([]string{"-c", "/does/not/exist.json"})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-t", "soon"})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-s", "floppy"})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "relative url", mutate: func(c *Config) { c.APIBaseURL = "/api" }},
		{name: "ftp url", mutate: func(c *Config) { c.APIBaseURL = "ftp://host/api" }},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }},
		{name: "sqlite without dir", mutate: func(c *Config) { c.DataDir = "" }},
		{name: "redis without addr", mutate: func(c *Config) { c.StoreBackend = securestore.BackendRedis }},
		{name: "redis with addr", mutate: func(c *Config) {
			c.StoreBackend = securestore.BackendRedis
			c.RedisAddr = "localhost:6379"
		}, ok: true},
		{name: "memory", mutate: func(c *Config) {
			c.StoreBackend = securestore.BackendMemory
			c.DataDir = ""
		}, ok: true},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "json format", mutate: func(c *Config) { c.LogFormat = "JSON" }, ok: true},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, common.ErrorValidation), "got %v", err)
		})
	}
}

func TestStoreOptions(t *testing.T) {
	c := defaults()
	c.StoreBackend = securestore.BackendRedis
	c.RedisAddr = "r:6379"
	c.RedisDB = 2

	opts := c.StoreOptions()
	assert.Equal(t, securestore.BackendRedis, opts.Backend)
	assert.Equal(t, "r:6379", opts.RedisAddr)
	assert.Equal(t, 2, opts.RedisDB)
	assert.Equal(t, c.DataDir, opts.DataDir)
	assert.Equal(t, securestore.DefaultRedisPrefix, opts.RedisPrefix)

	assert.False(t, c.MediaEnabled())
	c.S3Bucket = "videos"
	assert.True(t, c.MediaEnabled())
}
