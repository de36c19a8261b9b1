package service

import (
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/bridge"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/crypto"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// Services is the server-side service set used by the HTTP handlers.
type Services struct {
	AuthService         AuthService
	ProfileService      ProfileService
	PasswordService     PasswordService
	DashboardService    DashboardService
	SubscriptionService SubscriptionService
	AppInfoService      AppInfoService
	MT5Service          MT5Service
}

func NewServices(storages *store.Storages, mail MailDispatcher, cfg *config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	auth := NewAuthService(storages.UserRepository, storages.TokenBlacklist, cfg.App, logger)
	profile := NewProfileService(storages.UserRepository, storages.PictureStorage, cfg.Storage.S3, logger)
	password := NewPasswordService(storages.UserRepository, storages.ResetTokenRepository, mail, cfg.App, logger)

	cipher, err := crypto.NewCredentialCipher(cfg.MT5CredentialKey())
	if err != nil {
		return nil, fmt.Errorf("mt5 credential cipher: %w", err)
	}
	mt5 := NewMT5Service(storages.MT5Repository, bridge.NewTerminal(cfg.MT5, logger), cipher, cfg.MT5, logger)

	return &Services{
		AuthService:         NewAuthValidationService().Wrap(auth),
		ProfileService:      NewProfileValidationService().Wrap(profile),
		PasswordService:     NewPasswordValidationService().Wrap(password),
		DashboardService:    NewDashboardService(storages.UserRepository, logger),
		SubscriptionService: NewSubscriptionService(storages.PlanRepository, logger),
		AppInfoService:      appInfo,
		MT5Service:          NewMT5ValidationService().Wrap(mt5),
	}, nil
}
