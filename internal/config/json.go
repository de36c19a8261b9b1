package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		ResetTokenDuration   Duration `json:"reset_token_duration"`
		ResetLinkBase        string   `json:"reset_link_base"`
		Version              string   `json:"version"`
		LogLevel             string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Local struct {
			DSN       string `json:"dsn"`
			Scope     string `json:"scope"`
			Ephemeral bool   `json:"ephemeral"`
		} `json:"local,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`

		S3 struct {
			Endpoint       string `json:"endpoint"`
			AccessKey      string `json:"access_key"`
			SecretKey      string `json:"secret_key"`
			Bucket         string `json:"bucket"`
			UseSSL         bool   `json:"use_ssl"`
			PublicURL      string `json:"public_url"`
			MaxPictureSize int64  `json:"max_picture_size"`
		} `json:"s3,omitempty"`

		BlacklistBackend string `json:"blacklist_backend"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		MetricsAddress string   `json:"metrics_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		DashboardInterval Duration `json:"dashboard_interval"`
		MailQueue         string   `json:"mail_queue"`
		MailConcurrency   int      `json:"mail_concurrency"`

		BlacklistPurgeInterval Duration `json:"blacklist_purge_interval"`
	} `json:"workers,omitempty"`

	MT5 struct {
		BridgeURL      string   `json:"bridge_url"`
		BridgeTimeout  Duration `json:"bridge_timeout"`
		CredentialKey  string   `json:"credential_key"`
		MaxRiskPercent float64  `json:"max_risk_percent"`
	} `json:"mt5,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			AccessTokenDuration:  time.Duration(jsonCfg.App.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.App.RefreshTokenDuration),
			ResetTokenDuration:   time.Duration(jsonCfg.App.ResetTokenDuration),
			ResetLinkBase:        jsonCfg.App.ResetLinkBase,
			Version:              jsonCfg.App.Version,
			LogLevel:             jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Local: Local{
				DSN:       jsonCfg.Storage.Local.DSN,
				Scope:     jsonCfg.Storage.Local.Scope,
				Ephemeral: jsonCfg.Storage.Local.Ephemeral,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
			S3: S3{
				Endpoint:       jsonCfg.Storage.S3.Endpoint,
				AccessKey:      jsonCfg.Storage.S3.AccessKey,
				SecretKey:      jsonCfg.Storage.S3.SecretKey,
				Bucket:         jsonCfg.Storage.S3.Bucket,
				UseSSL:         jsonCfg.Storage.S3.UseSSL,
				PublicURL:      jsonCfg.Storage.S3.PublicURL,
				MaxPictureSize: jsonCfg.Storage.S3.MaxPictureSize,
			},
			BlacklistBackend: jsonCfg.Storage.BlacklistBackend,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			MetricsAddress: jsonCfg.Server.MetricsAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			DashboardInterval: time.Duration(jsonCfg.Workers.DashboardInterval),
			MailQueue:         jsonCfg.Workers.MailQueue,
			MailConcurrency:   jsonCfg.Workers.MailConcurrency,

			BlacklistPurgeInterval: time.Duration(jsonCfg.Workers.BlacklistPurgeInterval),
		},
		MT5: MT5{
			BridgeURL:      jsonCfg.MT5.BridgeURL,
			BridgeTimeout:  time.Duration(jsonCfg.MT5.BridgeTimeout),
			CredentialKey:  jsonCfg.MT5.CredentialKey,
			MaxRiskPercent: jsonCfg.MT5.MaxRiskPercent,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
