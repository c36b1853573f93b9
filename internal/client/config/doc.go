// Package config loads runtime configuration for the trainerhub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment variables prefixed with TRAINERHUB_. A .env file in the
//     working directory is loaded first when present.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     base URL of the remote API
//	-t duration   per-request timeout
//	-s string     credential store backend (sqlite, redis, memory)
//	-d string     data directory for the credential store
//	-l string     log level (debug, info, warn, error)
//	-ephemeral    keep credentials in memory only
//
// # File schema
//
// Durations are strings accepted by time.ParseDuration:
//
//	{
//	  "api_base_url": "http://127.0.0.1:3000/api",
//	  "request_timeout": "10s",
//	  "store_backend": "sqlite"
//	}
package config
