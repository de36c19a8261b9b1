package config

import (
	"fmt"
)

// ServerConfig is the server configuration assembled from [StructuredConfig].
// It reuses the structured sub-configs since the server needs nearly all
// of them.
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Workers Workers
	MT5     MT5
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Workers: cfg.Workers,
		MT5:     cfg.MT5,
	}
}

// RedisEnabled reports whether a Redis address is configured.
func (cfg *ServerConfig) RedisEnabled() bool {
	return cfg.Storage.Redis.Address != ""
}

// S3Enabled reports whether profile picture storage is configured.
func (cfg *ServerConfig) S3Enabled() bool {
	return cfg.Storage.S3.Endpoint != ""
}

// MT5BridgeEnabled reports whether a terminal bridge is configured.
func (cfg *ServerConfig) MT5BridgeEnabled() bool {
	return cfg.MT5.BridgeURL != ""
}

// MT5CredentialKey returns the secret stored terminal passwords are
// encrypted with.
func (cfg *ServerConfig) MT5CredentialKey() string {
	if cfg.MT5.CredentialKey != "" {
		return cfg.MT5.CredentialKey
	}
	return cfg.App.TokenSignKey
}
