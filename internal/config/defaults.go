package config

import "time"

// Default values applied before any other source.
const (
	DefaultBaseURL              = "http://localhost:8000/api"
	DefaultServerAddress        = "localhost:8000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultAccessTokenDuration  = 5 * time.Minute
	DefaultRefreshTokenDuration = 24 * time.Hour
	DefaultResetTokenDuration   = time.Hour
	DefaultResetLinkBase        = "http://localhost:3001/reset-password"
	DefaultTokenIssuer          = "plusminus"
	DefaultLocalDSN             = "session.db"
	DefaultScope                = "default"
	DefaultBlacklistBackend     = BlacklistPostgres
	DefaultDashboardInterval    = 30 * time.Second
	DefaultMailQueue            = "mail"
	DefaultMailConcurrency      = 2
	DefaultBlacklistPurge       = 30 * time.Minute
	DefaultMaxPictureSize       = 5 << 20
	DefaultMaxUploadSize        = DefaultMaxPictureSize + 1<<20
	DefaultBridgeTimeout        = time.Minute
	DefaultMaxRiskPercent       = 2.0
	DefaultLogLevel             = "debug"
)

// Blacklist backends.
const (
	BlacklistPostgres = "postgres"
	BlacklistRedis    = "redis"
	BlacklistMemory   = "memory"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          DefaultTokenIssuer,
			AccessTokenDuration:  DefaultAccessTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
			ResetTokenDuration:   DefaultResetTokenDuration,
			ResetLinkBase:        DefaultResetLinkBase,
			LogLevel:             DefaultLogLevel,
		},
		Storage: Storage{
			Local: Local{
				DSN:   DefaultLocalDSN,
				Scope: DefaultScope,
			},
			S3:               S3{MaxPictureSize: DefaultMaxPictureSize},
			BlacklistBackend: DefaultBlacklistBackend,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxUploadSize:  DefaultMaxUploadSize,
		},
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			DashboardInterval: DefaultDashboardInterval,
			MailQueue:         DefaultMailQueue,
			MailConcurrency:   DefaultMailConcurrency,

			BlacklistPurgeInterval: DefaultBlacklistPurge,
		},
		MT5: MT5{
			BridgeTimeout:  DefaultBridgeTimeout,
			MaxRiskPercent: DefaultMaxRiskPercent,
		},
	}
}
