package service

import (
	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	AccountService ClientAccountService
	DashboardJob   ClientDashboardJob
	MT5Service     ClientMT5Service
}

func NewClientServices(storage store.SessionStorage, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	accountSvc := NewClientAccountService(serverAdapter)

	return &ClientServices{
		AuthService:    NewClientAuthService(storage, serverAdapter, logger.WithComponent("auth_service")),
		AccountService: accountSvc,
		DashboardJob:   NewClientDashboardJob(accountSvc, logger.WithComponent("dashboard_job")),
		MT5Service:     NewClientMT5Service(serverAdapter, logger.WithComponent("mt5_service")),
	}
}
