package bridge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/utils"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// Bridge endpoints.
const (
	verifyPath = "/accounts/verify"
	dealsPath  = "/deals"
	startPath  = "/experts/start"
	expertPath = "/experts/%s/%s"
)

type httpTerminal struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewTerminal returns the bridge client for cfg, or a terminal that fails
// every call with ErrBridgeDisabled when no bridge URL is set.
func NewTerminal(cfg config.MT5, logger *logger.Logger) Terminal {
	if cfg.BridgeURL == "" {
		logger.Info().Msg("mt5 bridge is not configured")
		return disabledTerminal{}
	}

	logger.Info().Str("url", cfg.BridgeURL).Msg("mt5 bridge client created")
	return &httpTerminal{
		client: utils.NewHTTPClient(cfg.BridgeURL, cfg.BridgeTimeout),
		logger: logger.WithComponent("mt5_bridge"),
	}
}

func (t *httpTerminal) Verify(ctx context.Context, login Login) (models.TerminalAccount, error) {
	var out models.TerminalAccount
	err := t.post(ctx, verifyPath, login, &out)
	return out, err
}

func (t *httpTerminal) Deals(ctx context.Context, login Login, from, to time.Time) ([]models.Deal, error) {
	var out dealsResponse
	if err := t.post(ctx, dealsPath, dealsRequest{Login: login, From: from.UTC(), To: to.UTC()}, &out); err != nil {
		return nil, err
	}
	return out.Deals, nil
}

func (t *httpTerminal) StartExpert(ctx context.Context, login Login, expert Expert) (StartedExpert, error) {
	var out StartedExpert
	if err := t.post(ctx, startPath, startRequest{Login: login, Expert: expert}, &out); err != nil {
		return StartedExpert{}, err
	}
	if out.Handle == "" {
		return StartedExpert{}, fmt.Errorf("%w: start reply without handle", ErrBridgeUnavailable)
	}
	return out, nil
}

func (t *httpTerminal) StopExpert(ctx context.Context, handle string) error {
	return t.post(ctx, fmt.Sprintf(expertPath, url.PathEscape(handle), "stop"), nil, nil)
}

func (t *httpTerminal) PauseExpert(ctx context.Context, handle string) error {
	return t.post(ctx, fmt.Sprintf(expertPath, url.PathEscape(handle), "pause"), nil, nil)
}

func (t *httpTerminal) ResumeExpert(ctx context.Context, handle string) error {
	return t.post(ctx, fmt.Sprintf(expertPath, url.PathEscape(handle), "resume"), nil, nil)
}

// post sends body as JSON and decodes a 2xx reply into result. Failures
// are mapped onto the package errors by status.
func (t *httpTerminal) post(ctx context.Context, path string, body, result any) error {
	var failure errorBody

	req := t.client.R().SetContext(ctx).SetError(&failure)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(path)
	if err != nil {
		t.logger.Warn().Err(err).Str("path", path).Msg("bridge request failed")
		return fmt.Errorf("%w: %w", ErrBridgeUnavailable, err)
	}
	if resp.IsSuccess() {
		return nil
	}

	detail := failure.Error
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}
	t.logger.Debug().Int("status", resp.StatusCode()).Str("path", path).Str("error", detail).Msg("bridge refused request")

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrLoginRejected, detail)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrExpertNotFound, detail)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %d %s", ErrBridgeUnavailable, code, detail)
	default:
		return fmt.Errorf("%w: %s", ErrRequestRejected, detail)
	}
}

// disabledTerminal stands in when no bridge is configured.
type disabledTerminal struct{}

func (disabledTerminal) Verify(context.Context, Login) (models.TerminalAccount, error) {
	return models.TerminalAccount{}, ErrBridgeDisabled
}

func (disabledTerminal) Deals(context.Context, Login, time.Time, time.Time) ([]models.Deal, error) {
	return nil, ErrBridgeDisabled
}

func (disabledTerminal) StartExpert(context.Context, Login, Expert) (StartedExpert, error) {
	return StartedExpert{}, ErrBridgeDisabled
}

func (disabledTerminal) StopExpert(context.Context, string) error   { return ErrBridgeDisabled }
func (disabledTerminal) PauseExpert(context.Context, string) error  { return ErrBridgeDisabled }
func (disabledTerminal) ResumeExpert(context.Context, string) error { return ErrBridgeDisabled }
