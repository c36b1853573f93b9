package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points the .env lookup at an empty temp dir so the developer's
// working directory does not leak into tests.
func isolate(t *testing.T) {
	t.Helper()
	old := dotenvPath
	dotenvPath = filepath.Join(t.TempDir(), ".env")
	t.Cleanup(func() { dotenvPath = old })
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}
