package service

import (
	"context"

	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

type clientAccountService struct {
	adapter adapter.ServerAdapter
}

func NewClientAccountService(serverAdapter adapter.ServerAdapter) ClientAccountService {
	return &clientAccountService{adapter: serverAdapter}
}

func (s *clientAccountService) GetDashboard(ctx context.Context) (models.Dashboard, error) {
	dashboard, err := s.adapter.GetDashboard(ctx)
	return dashboard, mapAdapterError(err)
}

func (s *clientAccountService) GetSubscriptions(ctx context.Context) (models.SubscriptionsResponse, error) {
	subs, err := s.adapter.GetSubscriptions(ctx)
	return subs, mapAdapterError(err)
}

func (s *clientAccountService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.ServerVersion(ctx)
	return version, mapAdapterError(err)
}
