// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged server configuration can be used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and a positive token duration are required", ErrInvalidAppConfigs)
	}

	if _, err := cfg.App.Location(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Couch.URL == "" {
		return fmt.Errorf("%w: either a database DSN or a CouchDB URL is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Couch.URL != "" && cfg.Storage.Couch.Name == "" {
		return fmt.Errorf("%w: CouchDB database name is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: HTTP address is required", ErrInvalidServerConfigs)
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return fmt.Errorf("%w: rate limit settings must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.DebounceInterval <= 0 || cfg.Workers.SavedTTL <= 0 || cfg.Workers.ErrorTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Location == nil {
		return ErrInvalidAppConfigs
	}

	return nil
}
