package devapi

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrijs2005/trainerhub/internal/flagx"
)

// EnvPrefix is prepended to the dev API's environment variables.
const EnvPrefix = "TRAINERHUB_DEVAPI_"

// Config holds the dev API's runtime settings.
//
// Fields:
//   - Addr: host:port to listen on.
//   - Secret: HS256 signing key. A random one is generated when empty,
//     which invalidates issued tokens on every restart.
//   - TokenTTL: lifetime of issued tokens.
//   - Seed: create demo accounts and exercises at start.
type Config struct {
	Addr     string        `env:"ADDR"`
	Secret   string        `env:"SECRET"`
	TokenTTL time.Duration `env:"TOKEN_TTL"`
	Seed     bool          `env:"SEED"`
	LogLevel string        `env:"LOG_LEVEL"`
}

func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:3000"
	c.TokenTTL = DefaultTokenTTL
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the environment, then args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	fs := flag.NewFlagSet("devapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address to listen on")
	fs.StringVar(&cfg.Secret, "k", cfg.Secret, "token signing key")
	fs.DurationVar(&cfg.TokenTTL, "ttl", cfg.TokenTTL, "token lifetime")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "create demo data")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterFor(fs, args)); err != nil {
		return nil, err
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", cfg.TokenTTL)
	}
	return cfg, nil
}
