package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const (
	mt5AccountPath        = "/mt5/account/"
	mt5TestConnectionPath = "/mt5/test-connection/"
	mt5RefreshStatusPath  = "/mt5/refresh-status/"
	mt5DeleteAccountPath  = "/mt5/delete-account/"
	algorithmsPath        = "/mt5/algorithms/"
	startAlgorithmPath    = "/mt5/start-algorithm/"
	stopAlgorithmPath     = "/mt5/stop-algorithm/%d/"
	pauseAlgorithmPath    = "/mt5/pause-algorithm/%d/"
	resumeAlgorithmPath   = "/mt5/resume-algorithm/%d/"
	accountStatisticsPath = "/mt5/account-statistics/"
	manualStatisticsPath  = "/mt5/manual-statistics/"
)

func (h *httpServerAdapter) GetMT5Account(ctx context.Context) (models.MT5Account, error) {
	var out models.MT5Account
	_, err := h.session.Do(ctx, Request{Method: http.MethodGet, Path: mt5AccountPath, Result: &out})
	return out, err
}

func (h *httpServerAdapter) SaveMT5Account(ctx context.Context, credentials models.MT5Credentials) (models.MT5AccountResponse, error) {
	var out models.MT5AccountResponse
	_, err := h.session.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   mt5AccountPath,
		Body:   credentials,
		Result: &out,
	})
	return out, err
}

func (h *httpServerAdapter) TestMT5Connection(ctx context.Context, credentials models.MT5Credentials) (models.ConnectionResult, error) {
	var out models.ConnectionResult
	resp, err := h.session.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   mt5TestConnectionPath,
		Body:   credentials,
		Result: &out,
	})
	if err == nil || !errors.Is(err, ErrBadRequest) || resp == nil {
		return out, err
	}

	// A refused login comes back as a 400 carrying the result itself.
	var refused models.ConnectionResult
	if jsonErr := json.Unmarshal(resp.Body(), &refused); jsonErr != nil || refused.Status != models.ConnectionResultError {
		return out, err
	}
	return refused, nil
}

func (h *httpServerAdapter) RefreshMT5Status(ctx context.Context) (models.MT5AccountResponse, error) {
	var out models.MT5AccountResponse
	_, err := h.session.Do(ctx, Request{Method: http.MethodPost, Path: mt5RefreshStatusPath, Result: &out})
	return out, err
}

func (h *httpServerAdapter) DeleteMT5Account(ctx context.Context) (models.MessageResponse, error) {
	var out models.MessageResponse
	_, err := h.session.Do(ctx, Request{Method: http.MethodDelete, Path: mt5DeleteAccountPath, Result: &out})
	return out, err
}

func (h *httpServerAdapter) ListAlgorithmExecutions(ctx context.Context) ([]models.AlgorithmExecution, error) {
	var out []models.AlgorithmExecution
	_, err := h.session.Do(ctx, Request{Method: http.MethodGet, Path: algorithmsPath, Result: &out})
	return out, err
}

func (h *httpServerAdapter) StartAlgorithm(ctx context.Context, request models.StartAlgorithmRequest) (models.StartAlgorithmResponse, error) {
	var out models.StartAlgorithmResponse
	_, err := h.session.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   startAlgorithmPath,
		Body:   request,
		Result: &out,
	})
	return out, err
}

func (h *httpServerAdapter) StopAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error) {
	return h.controlAlgorithm(ctx, stopAlgorithmPath, executionID)
}

func (h *httpServerAdapter) PauseAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error) {
	return h.controlAlgorithm(ctx, pauseAlgorithmPath, executionID)
}

func (h *httpServerAdapter) ResumeAlgorithm(ctx context.Context, executionID int64) (models.ExecutionResponse, error) {
	return h.controlAlgorithm(ctx, resumeAlgorithmPath, executionID)
}

func (h *httpServerAdapter) controlAlgorithm(ctx context.Context, pathFormat string, executionID int64) (models.ExecutionResponse, error) {
	var out models.ExecutionResponse
	_, err := h.session.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf(pathFormat, executionID),
		Result: &out,
	})
	return out, err
}

func (h *httpServerAdapter) GetAccountStatistics(ctx context.Context) (models.AccountStatistics, error) {
	var out models.AccountStatistics
	_, err := h.session.Do(ctx, Request{Method: http.MethodGet, Path: accountStatisticsPath, Result: &out})
	return out, err
}

func (h *httpServerAdapter) GetManualStatistics(ctx context.Context) (models.ManualStatistics, error) {
	var out models.ManualStatistics
	_, err := h.session.Do(ctx, Request{Method: http.MethodGet, Path: manualStatisticsPath, Result: &out})
	return out, err
}
