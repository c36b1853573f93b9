package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/trainerhub/internal/client/securestore"
	"github.com/dmitrijs2005/trainerhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// args are filtered with flagx.FilterFor first so flags owned by other
// components do not cause parse errors.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("trainerhub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the remote API")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.StoreBackend, "s", cfg.StoreBackend, "credential store backend (sqlite, redis, memory)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	ephemeral := fs.Bool("ephemeral", false, "keep credentials in memory only")

	if err := fs.Parse(flagx.FilterFor(fs, args)); err != nil {
		return err
	}

	if *ephemeral {
		cfg.StoreBackend = securestore.BackendMemory
	}
	return nil
}
