// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the codec secrets used by the client.
type ClientApp struct {
	// AESSecretKey is the 16-byte codec key.
	AESSecretKey string
	// AESIV is the 16-byte codec IV.
	AESIV string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the remote Attendance API base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path or "memory".
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// StatusRefreshInterval defines how often the check-in status is refreshed.
	StatusRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the interactive client configuration,
// parsing command-line flags from args.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// LoadClientConfig builds and validates a client configuration for callers
// that parse flags themselves.
func LoadClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := LoadStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			AESSecretKey: cfg.App.AESSecretKey,
			AESIV:        cfg.App.AESIV,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseAPI,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{StatusRefreshInterval: cfg.Workers.StatusRefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
