// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// codecSecretLength is the byte length of both the AES-128 key and the IV.
const codecSecretLength = 16

// applyDevKeys fills an empty key or IV with the development pair when the
// configuration explicitly allows it.
func (cfg *StructuredConfig) applyDevKeys() {
	if !cfg.App.AllowDevKeys {
		return
	}
	if cfg.App.AESSecretKey == "" {
		cfg.App.AESSecretKey = DevAESSecretKey
	}
	if cfg.App.AESIV == "" {
		cfg.App.AESIV = DevAESIV
	}
}

// validate checks the codec secrets, which every entry point needs. Key and
// IV are never padded or truncated.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AESSecretKey == "" || cfg.App.AESIV == "" {
		return fmt.Errorf("%w: AES secret key and IV must be configured", ErrInvalidAppConfigs)
	}
	if n := len(cfg.App.AESSecretKey); n != codecSecretLength {
		return fmt.Errorf("%w: AES secret key must be %d bytes, got %d", ErrInvalidAppConfigs, codecSecretLength, n)
	}
	if n := len(cfg.App.AESIV); n != codecSecretLength {
		return fmt.Errorf("%w: AES IV must be %d bytes, got %d", ErrInvalidAppConfigs, codecSecretLength, n)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if u, err := url.Parse(cfg.Adapter.BaseURL); err != nil || u.Host == "" {
		return fmt.Errorf("%w: malformed base API URL %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}

	if cfg.Workers.StatusRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
