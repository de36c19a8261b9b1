package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

type clientMT5Service struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientMT5Service(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientMT5Service {
	return &clientMT5Service{adapter: serverAdapter, logger: logger}
}

func (s *clientMT5Service) Overview(ctx context.Context) (models.MT5Overview, error) {
	account, err := s.adapter.GetMT5Account(ctx)
	if err = mapAdapterError(err); err != nil {
		if errors.Is(err, ErrMT5NotConfigured) || errors.Is(err, adapter.ErrNotFound) {
			return models.MT5Overview{}, nil
		}
		return models.MT5Overview{}, fmt.Errorf("load mt5 account: %w", err)
	}

	executions, err := s.adapter.ListAlgorithmExecutions(ctx)
	if err != nil {
		return models.MT5Overview{}, fmt.Errorf("load algorithm runs: %w", mapAdapterError(err))
	}

	stats, err := s.adapter.GetAccountStatistics(ctx)
	if err != nil {
		return models.MT5Overview{}, fmt.Errorf("load account statistics: %w", mapAdapterError(err))
	}

	return models.MT5Overview{Account: &account, Executions: executions, Statistics: stats}, nil
}

func (s *clientMT5Service) SaveAccount(ctx context.Context, credentials models.MT5Credentials) (models.MT5AccountResponse, error) {
	resp, err := s.adapter.SaveMT5Account(ctx, credentials.Normalize())
	if err != nil {
		return models.MT5AccountResponse{}, mapAdapterError(err)
	}

	s.logger.Debug().
		Str("status", string(resp.Account.ConnectionStatus)).
		Msg("mt5 account saved")
	return resp, nil
}

func (s *clientMT5Service) TestConnection(ctx context.Context, credentials models.MT5Credentials) (models.ConnectionResult, error) {
	result, err := s.adapter.TestMT5Connection(ctx, credentials.Normalize())
	return result, mapAdapterError(err)
}

func (s *clientMT5Service) RefreshStatus(ctx context.Context) (models.MT5AccountResponse, error) {
	resp, err := s.adapter.RefreshMT5Status(ctx)
	return resp, mapAdapterError(err)
}

func (s *clientMT5Service) DeleteAccount(ctx context.Context) (models.MessageResponse, error) {
	resp, err := s.adapter.DeleteMT5Account(ctx)
	return resp, mapAdapterError(err)
}

func (s *clientMT5Service) StartAlgorithm(ctx context.Context, request models.StartAlgorithmRequest) (models.StartAlgorithmResponse, error) {
	request.AlgorithmName = strings.TrimSpace(request.AlgorithmName)
	request.Symbol = strings.ToUpper(strings.TrimSpace(request.Symbol))

	resp, err := s.adapter.StartAlgorithm(ctx, request)
	return resp, mapAdapterError(err)
}

func (s *clientMT5Service) StopAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error) {
	resp, err := s.adapter.StopAlgorithm(ctx, executionID)
	return resp, mapAdapterError(err)
}

func (s *clientMT5Service) PauseAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error) {
	resp, err := s.adapter.PauseAlgorithm(ctx, executionID)
	return resp, mapAdapterError(err)
}

func (s *clientMT5Service) ResumeAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error) {
	resp, err := s.adapter.ResumeAlgorithm(ctx, executionID)
	return resp, mapAdapterError(err)
}

func (s *clientMT5Service) ManualStatistics(ctx context.Context) (models.ManualStatistics, error) {
	stats, err := s.adapter.GetManualStatistics(ctx)
	return stats, mapAdapterError(err)
}
