// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// BaseURL is an absolute http(s) URL accepted by the -a flag.
// It implements the flag.Value interface and pflag's Value.
type BaseURL struct {
	URL string
}

// ParseFlags parses client configuration flags from args.
//
// Flags:
//
//	-a remote API base URL (http/https)
//	-aes-key AES-128 secret key (16 characters)
//	-aes-iv AES-CBC initialisation vector (16 characters)
//	-allow-dev-keys fall back to the development key pair
//	-d local SQLite DSN ("memory" for an in-memory store)
//	-c/-config json file path with configs
//	-env-file .env file path
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-refresh-interval check-in status refresh interval (e.g., "1m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var baseURL BaseURL
	var aesKey, aesIV string
	var allowDevKeys bool
	var databaseDSN string
	var jsonConfigPath string
	var dotEnvPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	fs := flag.NewFlagSet("go-attendance", flag.ContinueOnError)
	fs.Var(&baseURL, "a", "Remote API base URL")
	fs.StringVar(&aesKey, "aes-key", "", "AES secret key (16 characters)")
	fs.StringVar(&aesIV, "aes-iv", "", "AES IV (16 characters)")
	fs.BoolVar(&allowDevKeys, "allow-dev-keys", false, "Use the development key pair when none is configured")
	fs.StringVar(&databaseDSN, "d", "", "Local storage DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", ".env file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Check-in status refresh interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AESSecretKey: aesKey,
			AESIV:        aesIV,
			AllowDevKeys: allowDevKeys,
		},
		Adapter: Adapter{
			BaseAPI:        baseURL.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			StatusRefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
		DotEnvPath:   dotEnvPath,
	}, nil
}

// String returns the configured URL without a trailing slash.
func (u *BaseURL) String() string {
	return strings.TrimRight(u.URL, "/")
}

// Type names the flag value in pflag usage output.
func (u *BaseURL) Type() string {
	return "url"
}

// Set validates that s is an absolute http or https URL.
func (u *BaseURL) Set(s string) error {
	parsed, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("base URL %q has no host", s)
	}

	u.URL = parsed.String()
	return nil
}
