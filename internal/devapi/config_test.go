package devapi

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("TRAINERHUB_DEVAPI_SECRET", "from-env")
	t.Setenv("TRAINERHUB_DEVAPI_TOKEN_TTL", "1h")

	cfg, err := LoadConfig([]string{"-a", "127.0.0.1:4000", "-seed", "-x", "ignored"})
	require.NoError(t, err)

	want := &Config{
		Addr:     "127.0.0.1:4000",
		Secret:   "from-env",
		TokenTTL: time.Hour,
		Seed:     true,
		LogLevel: "info",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]string{"-ttl", "0s"})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-ttl", "soon"})
	require.Error(t, err)

	t.Setenv("TRAINERHUB_DEVAPI_SEED", "maybe")
	_, err = LoadConfig(nil)
	require.Error(t, err)
}
