// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-attendance clients. It is populated by merging values from a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the parameter codec secrets.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote Attendance API location and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local session store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded into the process environment before
	// environment variables are parsed. Env: DOTENV
	DotEnvPath string `env:"DOTENV"`
}

// App holds the secrets of the symmetric parameter codec.
type App struct {
	// AESSecretKey is the 16-byte AES-128 key shared with the backend.
	// Env: APP_AES_SECRET_KEY (legacy NEXT_PUBLIC_AES_SECRET_KEY)
	AESSecretKey string `env:"AES_SECRET_KEY"`

	// AESIV is the fixed 16-byte CBC initialisation vector.
	// Env: APP_AES_IV (legacy NEXT_PUBLIC_AES_IV)
	AESIV string `env:"AES_IV"`

	// AllowDevKeys permits falling back to the development key pair when no
	// key or IV is configured. Never set it in production.
	// Env: APP_ALLOW_DEV_KEYS
	AllowDevKeys bool `env:"ALLOW_DEV_KEYS"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// BaseAPI is the base URL of the remote Attendance API
	// (e.g. "https://attendance.example.com/api").
	// Env: ADAPTER_BASE_API (legacy NEXT_PUBLIC_BASE_API)
	BaseAPI string `env:"BASE_API"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the SQLite key/value store settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session store.
type DB struct {
	// DSN is the SQLite database file. The value "memory" selects a
	// process-local in-memory store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// StatusRefreshInterval is how often the check-in status is re-fetched
	// while the interactive client is open.
	// Env: WORKERS_STATUS_REFRESH_INTERVAL
	StatusRefreshInterval time.Duration `env:"STATUS_REFRESH_INTERVAL"`
}

// legacyEnv mirrors the variable names used by the web dashboard so an
// existing .env keeps working.
type legacyEnv struct {
	AESSecretKey string `env:"NEXT_PUBLIC_AES_SECRET_KEY"`
	AESIV        string `env:"NEXT_PUBLIC_AES_IV"`
	BaseAPI      string `env:"NEXT_PUBLIC_BASE_API"`
}

// Development key pair. Only used when App.AllowDevKeys is set.
const (
	DevAESSecretKey = "mysecretkey12345"
	DevAESIV        = "1234567890abcdef"
)

const (
	defaultRequestTimeout        = 15 * time.Second
	defaultStatusRefreshInterval = time.Minute
	defaultDSN                   = "attendance.db"
	defaultDotEnvPath            = ".env"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{RequestTimeout: defaultRequestTimeout},
		Storage: Storage{DB: DB{DSN: defaultDSN}},
		Workers: Workers{StatusRefreshInterval: defaultStatusRefreshInterval},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  0. Built-in defaults
//  1. .env file (written into the process environment)
//  2. Environment variables (legacy names first, then APP_/ADAPTER_/...)
//  3. Command-line flags parsed from args (or caller overrides)
//  4. JSON file (path resolved from sources 1–3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", err)
	}

	return LoadStructuredConfig(flags)
}

// LoadStructuredConfig is GetStructuredConfig for callers that parse their
// own flags (the cobra CLI): overrides take the place of command-line flags.
func LoadStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	var dotEnvPath string
	if overrides != nil {
		dotEnvPath = overrides.DotEnvPath
	}

	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvPath).
		withEnv().
		withOverrides(overrides).
		withJSON().
		build()
}
