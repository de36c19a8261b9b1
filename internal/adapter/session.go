package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/internal/utils"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"golang.org/x/sync/singleflight"
)

const refreshPath = "/token/refresh/"

var errNoRefreshToken = errors.New("no refresh token stored")

// SessionClient sends API requests on behalf of the stored session.
//
// Every request carries the stored access token. A 401 on a request that was
// not replayed yet triggers one renewal with the refresh token followed by
// one replay. Concurrent renewals of the same refresh token share a single
// exchange. When the renewal fails the stored session is cleared, the
// terminated hooks run and the caller gets [ErrSessionTerminated].
type SessionClient struct {
	client  *utils.HTTPClient
	storage store.SessionStorage
	logger  *logger.Logger

	renewals singleflight.Group

	hooksMu sync.RWMutex
	hooks   []func()

	renewCount     atomic.Int64
	terminateCount atomic.Int64
}

// Stats counts renewals and terminations since the client was created.
type Stats struct {
	Renewals     int64
	Terminations int64
}

// NewSessionClient validates cfg.BaseURL and returns a client bound to it.
func NewSessionClient(cfg config.ClientAdapter, storage store.SessionStorage, logger *logger.Logger) (*SessionClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	return &SessionClient{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		storage: storage,
		logger:  logger.WithComponent("session_client"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// OnSessionTerminated registers fn to run after the session was cleared.
func (c *SessionClient) OnSessionTerminated(fn func()) {
	c.hooksMu.Lock()
	c.hooks = append(c.hooks, fn)
	c.hooksMu.Unlock()
}

func (c *SessionClient) Stats() Stats {
	return Stats{
		Renewals:     c.renewCount.Load(),
		Terminations: c.terminateCount.Load(),
	}
}

// Do sends req and decodes a 2xx body into req.Result. Non-2xx responses
// come back as [*APIError] along with the response.
func (c *SessionClient) Do(ctx context.Context, req Request) (*resty.Response, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	access, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	retried := false
	for {
		resp, err := req.build(c.client.Client, access).SetContext(ctx).Execute(req.Method, req.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrNetwork, req, err)
		}

		if resp.StatusCode() != http.StatusUnauthorized || req.Anonymous || retried {
			return resp, c.finish(req, resp)
		}

		retried = true
		c.logger.Debug().Str("request", req.String()).Msg("access token rejected, renewing")

		if access, err = c.renew(ctx, access); err != nil {
			return nil, err
		}
	}
}

func (c *SessionClient) accessToken(ctx context.Context) (string, error) {
	tokens, err := c.storage.LoadTokens(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	return tokens.Access, nil
}

func (c *SessionClient) finish(req Request, resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		var apiErr *APIError
		if req.Anonymous && errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			apiErr.Kind = ErrValidation
		}
		return err
	}

	if req.Result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), req.Result); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, req, err)
	}
	return nil
}

// renew returns the access token to replay with. stale is the token the
// rejected request carried.
func (c *SessionClient) renew(ctx context.Context, stale string) (string, error) {
	tokens, err := c.loadForRenewal(ctx)
	if err != nil {
		return "", err
	}
	if tokens.Refresh == "" {
		return "", c.terminate(ctx, errNoRefreshToken)
	}

	// the exchange must finish even if the first caller gives up, other
	// callers may be waiting on it
	renewCtx := context.WithoutCancel(ctx)

	v, err, shared := c.renewals.Do(tokens.Refresh, func() (any, error) {
		return c.refresh(renewCtx, stale)
	})
	if err != nil {
		return "", err
	}
	if shared {
		c.logger.Debug().Msg("joined in-flight renewal")
	}

	return v.(string), nil
}

// refresh exchanges the refresh token unless another caller already
// replaced the stale access token.
func (c *SessionClient) refresh(ctx context.Context, stale string) (string, error) {
	tokens, err := c.loadForRenewal(ctx)
	if err != nil {
		return "", err
	}
	if tokens.Refresh == "" {
		return "", c.terminate(ctx, errNoRefreshToken)
	}
	if tokens.Access != stale && tokens.Access != "" {
		return tokens.Access, nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{Refresh: tokens.Refresh}).
		Post(refreshPath)
	if err != nil {
		return "", c.terminate(ctx, fmt.Errorf("%w: %w", ErrNetwork, err))
	}
	if err = mapHTTPError(resp); err != nil {
		return "", c.terminate(ctx, err)
	}

	var renewed models.RefreshResponse
	if err = json.Unmarshal(resp.Body(), &renewed); err != nil || renewed.Access == "" {
		return "", c.terminate(ctx, fmt.Errorf("%w: refresh response without access token", ErrUnexpectedResponse))
	}

	// the refresh token is kept as is
	if err = c.storage.SaveTokens(ctx, models.TokenPair{Access: renewed.Access, Refresh: tokens.Refresh}); err != nil {
		return "", fmt.Errorf("persist renewed tokens: %w", err)
	}

	c.renewCount.Add(1)
	event := c.logger.Info()
	if exp, err := utils.ParseTokenExpiry(renewed.Access); err == nil {
		event = event.Dur("expires_in", time.Until(exp).Round(time.Second))
	}
	event.Msg("access token renewed")

	return renewed.Access, nil
}

// loadForRenewal reads the stored pair. An empty store means the session
// was already torn down, so the caller gets [ErrSessionTerminated] without
// clearing again or running the hooks. Other storage failures are plain
// errors and leave the session in place.
func (c *SessionClient) loadForRenewal(ctx context.Context) (models.TokenPair, error) {
	tokens, err := c.storage.LoadTokens(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.TokenPair{}, fmt.Errorf("%w: %w: %w", ErrSessionTerminated, ErrAuthRejected, errNoRefreshToken)
	}
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("load session for renewal: %w", err)
	}
	return tokens, nil
}

// terminate clears the stored session and runs the hooks. The cause is only
// kept as text so the result matches no other kind than [ErrAuthRejected].
func (c *SessionClient) terminate(ctx context.Context, cause error) error {
	c.terminateCount.Add(1)
	c.logger.Warn().Err(cause).Msg("session renewal failed, terminating session")

	if err := c.storage.Clear(context.WithoutCancel(ctx)); err != nil {
		c.logger.Err(err).Msg("failed to clear session")
	}

	c.hooksMu.RLock()
	hooks := append([]func(){}, c.hooks...)
	c.hooksMu.RUnlock()
	for _, fn := range hooks {
		fn()
	}

	return fmt.Errorf("%w: %w: %v", ErrSessionTerminated, ErrAuthRejected, cause)
}
