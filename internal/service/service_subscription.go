package service

import (
	"context"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

type subscriptionService struct {
	planRepository store.PlanRepository
	logger         *logger.Logger
}

func NewSubscriptionService(planRepository store.PlanRepository, logger *logger.Logger) SubscriptionService {
	return &subscriptionService{planRepository: planRepository, logger: logger}
}

// GetSubscriptions lists the purchasable plans. Users have no subscriptions
// yet, so the list of active subscriptions is always empty.
func (s *subscriptionService) GetSubscriptions(ctx context.Context, userID int64) (models.SubscriptionsResponse, error) {
	plans, err := s.planRepository.ListActivePlans(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("failed to list plans")
		return models.SubscriptionsResponse{}, fmt.Errorf("failed to list plans: %w", err)
	}

	return models.SubscriptionsResponse{
		Message:       app.MsgSubscriptions,
		Subscriptions: []models.Subscription{},
		Plans:         plans,
	}, nil
}
