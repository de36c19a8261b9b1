package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero dashboard interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or an
	// upload limit smaller than the picture limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrUnknownBlacklistBackend indicates an unsupported blacklist backend.
	ErrUnknownBlacklistBackend = errors.New("unknown token blacklist backend")
	ErrNegativeTimeout         = errors.New("request timeout must not be negative")
	// ErrInvalidMT5Configs indicates a malformed bridge URL, a missing
	// bridge timeout or a risk ceiling outside 0-100.
	ErrInvalidMT5Configs = errors.New("invalid mt5 configuration")
)
