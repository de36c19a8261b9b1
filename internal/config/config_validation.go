// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries. Role-specific requirements are checked
// by [ClientConfig.validate] and [ServerConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !cfg.Storage.Ephemeral && (cfg.Storage.DSN == "" || cfg.Storage.Scope == "") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}
	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.DashboardInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.AccessTokenDuration <= 0 || cfg.App.RefreshTokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.BlacklistBackend {
	case BlacklistPostgres, BlacklistMemory:
	case BlacklistRedis:
		if cfg.Storage.Redis.Address == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrUnknownBlacklistBackend
	}

	if cfg.Storage.S3.Endpoint != "" && cfg.Storage.S3.Bucket == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.MaxUploadSize <= 0 || cfg.Server.MaxUploadSize < cfg.Storage.S3.MaxPictureSize {
		return ErrInvalidServerConfigs
	}

	if cfg.MT5.BridgeURL != "" {
		u, err := url.Parse(cfg.MT5.BridgeURL)
		if err != nil || u.Scheme == "" || u.Host == "" || cfg.MT5.BridgeTimeout <= 0 {
			return ErrInvalidMT5Configs
		}
	}
	if cfg.MT5.MaxRiskPercent < 0 || cfg.MT5.MaxRiskPercent > 100 {
		return ErrInvalidMT5Configs
	}

	return nil
}
