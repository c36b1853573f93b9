package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/trainerhub/internal/flagx"
)

// FileConfig is a DTO used exclusively for decoding config files. Durations
// are kept as strings so both JSON and YAML can spell them as "10s".
// Empty values leave the corresponding Config field untouched.
type FileConfig struct {
	APIBaseURL     string `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout string `json:"request_timeout" yaml:"request_timeout"`

	StoreBackend  string `json:"store_backend" yaml:"store_backend"`
	DataDir       string `json:"data_dir" yaml:"data_dir"`
	RedisAddr     string `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword string `json:"redis_password" yaml:"redis_password"`
	RedisDB       *int   `json:"redis_db" yaml:"redis_db"`
	RedisPrefix   string `json:"redis_prefix" yaml:"redis_prefix"`

	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`

	S3Bucket        string `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region        string `json:"s3_region" yaml:"s3_region"`
	S3Endpoint      string `json:"s3_endpoint" yaml:"s3_endpoint"`
	S3AccessKey     string `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey     string `json:"s3_secret_key" yaml:"s3_secret_key"`
	S3PublicBaseURL string `json:"s3_public_base_url" yaml:"s3_public_base_url"`
	S3UsePathStyle  *bool  `json:"s3_use_path_style" yaml:"s3_use_path_style"`
}

// parseFile overlays cfg with the file named by -c/-config in args. No flag
// means no file.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	fc, err := readFile(path)
	if err != nil {
		return err
	}
	return fc.apply(cfg)
}

func readFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) error {
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}

	setString(&cfg.StoreBackend, fc.StoreBackend)
	setString(&cfg.DataDir, fc.DataDir)
	setString(&cfg.RedisAddr, fc.RedisAddr)
	setString(&cfg.RedisPassword, fc.RedisPassword)
	if fc.RedisDB != nil {
		cfg.RedisDB = *fc.RedisDB
	}
	setString(&cfg.RedisPrefix, fc.RedisPrefix)

	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)

	setString(&cfg.S3Bucket, fc.S3Bucket)
	setString(&cfg.S3Region, fc.S3Region)
	setString(&cfg.S3Endpoint, fc.S3Endpoint)
	setString(&cfg.S3AccessKey, fc.S3AccessKey)
	setString(&cfg.S3SecretKey, fc.S3SecretKey)
	setString(&cfg.S3PublicBaseURL, fc.S3PublicBaseURL)
	if fc.S3UsePathStyle != nil {
		cfg.S3UsePathStyle = *fc.S3UsePathStyle
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
