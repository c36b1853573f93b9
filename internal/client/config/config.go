package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/trainerhub/internal/client/securestore"
	"github.com/dmitrijs2005/trainerhub/internal/common"
)

// Config holds runtime settings for the trainerhub CLI.
type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	StoreBackend  string `env:"STORE_BACKEND"`
	DataDir       string `env:"DATA_DIR"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
	RedisPrefix   string `env:"REDIS_PREFIX"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	S3Bucket        string `env:"S3_BUCKET"`
	S3Region        string `env:"S3_REGION"`
	S3Endpoint      string `env:"S3_ENDPOINT"`
	S3AccessKey     string `env:"S3_ACCESS_KEY"`
	S3SecretKey     string `env:"S3_SECRET_KEY"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
	S3UsePathStyle  bool   `env:"S3_USE_PATH_STYLE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000/api"
	c.RequestTimeout = 10 * time.Second
	c.StoreBackend = securestore.BackendSQLite
	c.DataDir = defaultDataDir()
	c.RedisPrefix = securestore.DefaultRedisPrefix
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.S3Region = "us-east-1"
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".trainerhub"
	}
	return filepath.Join(dir, "trainerhub")
}

// LoadConfig builds a Config from defaults, the config file, the environment
// and finally args (typically os.Args[1:]). Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api base url %q must be an absolute http(s) URL", common.ErrorValidation, c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", common.ErrorValidation)
	}

	switch c.StoreBackend {
	case securestore.BackendSQLite:
		if c.DataDir == "" {
			return fmt.Errorf("%w: data dir is required for the sqlite store", common.ErrorValidation)
		}
	case securestore.BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("%w: redis address is required for the redis store", common.ErrorValidation)
		}
	case securestore.BackendMemory:
	default:
		return fmt.Errorf("%w: unknown store backend %q", common.ErrorValidation, c.StoreBackend)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", common.ErrorValidation, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", common.ErrorValidation, c.LogFormat)
	}

	return nil
}

// StoreOptions maps the storage settings onto securestore.Options.
func (c *Config) StoreOptions() securestore.Options {
	return securestore.Options{
		Backend:       c.StoreBackend,
		DataDir:       c.DataDir,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
		RedisPrefix:   c.RedisPrefix,
	}
}

// MediaEnabled reports whether enough S3 settings are present to upload.
func (c *Config) MediaEnabled() bool {
	return c.S3Bucket != ""
}
