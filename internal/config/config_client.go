package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the API origin including the /api base path.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the session store settings.
type ClientStorage struct {
	// DSN is the SQLite file path of the durable session store.
	DSN string
	// Scope names the session profile inside the store.
	Scope string
	// Ephemeral selects the in-memory store.
	Ephemeral bool
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// DashboardInterval defines how often the dashboard job runs.
	DashboardInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the API base URL and timeout.
	Adapter ClientAdapter
	// Storage contains session store settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Version is reported in the build info overlay when set.
	Version string
	// LogLevel is the minimum level written to the client log file.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN:       cfg.Storage.Local.DSN,
			Scope:     cfg.Storage.Local.Scope,
			Ephemeral: cfg.Storage.Local.Ephemeral,
		},
		Workers:  ClientWorkers{DashboardInterval: cfg.Workers.DashboardInterval},
		Version:  cfg.App.Version,
		LogLevel: cfg.App.LogLevel,
	}
}
