// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] can start the server.
// The first failing group is reported.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and a positive duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.URI == "" || cfg.Storage.DB.Name == "" {
		return fmt.Errorf("%w: database URI and name are required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: address and a positive max upload size are required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimit.Enabled && (cfg.Server.RateLimit.RPS <= 0 || cfg.Server.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate limit rps and burst must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.ImageHost.URL == "" || cfg.Adapter.ImageHost.ClientID == "" {
		return fmt.Errorf("%w: image host url and client id are required", ErrInvalidAdapterConfigs)
	}

	return nil
}
