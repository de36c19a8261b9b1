package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend accepts only validAccess on /profile/ and exchanges
// validRefresh for renewedAccess on /token/refresh/.
type fakeBackend struct {
	t *testing.T

	mu         sync.Mutex
	validToken string
	seenAuth   []string

	validRefresh  string
	renewedAccess string
	refreshCalls  atomic.Int64
	refreshStatus int
	refreshGate   chan struct{}
	alwaysReject  bool
}

func newFakeBackend(t *testing.T) *fakeBackend {
	return &fakeBackend{
		t:             t,
		validToken:    "access-valid",
		validRefresh:  "refresh-valid",
		renewedAccess: "access-renewed",
		refreshStatus: http.StatusOK,
	}
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/api/token/refresh/":
		b.refreshCalls.Add(1)
		if b.refreshGate != nil {
			<-b.refreshGate
		}

		var req models.RefreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if b.refreshStatus != http.StatusOK || req.Refresh != b.validRefresh {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Token is invalid or expired","code":"token_not_valid"}`))
			return
		}

		b.mu.Lock()
		b.validToken = b.renewedAccess
		b.mu.Unlock()
		_ = json.NewEncoder(w).Encode(models.RefreshResponse{Access: b.renewedAccess})

	case "/api/profile/":
		auth := r.Header.Get("Authorization")
		b.mu.Lock()
		b.seenAuth = append(b.seenAuth, auth)
		valid := auth == "Bearer "+b.validToken && !b.alwaysReject
		b.mu.Unlock()

		if !valid {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Given token not valid for any token type","code":"token_not_valid"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(models.User{ID: 1, Email: "ada@example.com", Username: "ada"})

	case "/api/login/":
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error_type":"incorrect_password","message":"Incorrect password. Please try again."}`))

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (b *fakeBackend) auth() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.seenAuth...)
}

func newTestSessionClient(t *testing.T, backend http.Handler, tokens *models.TokenPair) (*SessionClient, store.SessionStorage) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	storage := store.NewMemorySessionStorage()
	if tokens != nil {
		require.NoError(t, storage.SaveSession(context.Background(), *tokens, models.User{ID: 1, Username: "ada"}))
	}

	client, err := NewSessionClient(config.ClientAdapter{BaseURL: srv.URL + "/api", RequestTimeout: 5 * time.Second}, storage, logger.Nop())
	require.NoError(t, err)
	return client, storage
}

func profileRequest(user *models.User) Request {
	return Request{Method: http.MethodGet, Path: "/profile/", Result: user}
}

func TestSessionClient_AttachesStoredToken(t *testing.T) {
	backend := newFakeBackend(t)
	client, _ := newTestSessionClient(t, backend, &models.TokenPair{Access: "access-valid", Refresh: "refresh-valid"})

	var user models.User
	_, err := client.Do(context.Background(), profileRequest(&user))
	require.NoError(t, err)

	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, []string{"Bearer access-valid"}, backend.auth())
	assert.Zero(t, backend.refreshCalls.Load())
}

func TestSessionClient_RenewsOnceAndReplays(t *testing.T) {
	backend := newFakeBackend(t)
	client, storage := newTestSessionClient(t, backend, &models.TokenPair{Access: "access-expired", Refresh: "refresh-valid"})

	var user models.User
	_, err := client.Do(context.Background(), profileRequest(&user))
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	assert.Equal(t, int64(1), backend.refreshCalls.Load())
	assert.Equal(t, []string{"Bearer access-expired", "Bearer access-renewed"}, backend.auth())

	tokens, err := storage.LoadTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.TokenPair{Access: "access-renewed", Refresh: "refresh-valid"}, tokens)
	assert.Equal(t, Stats{Renewals: 1}, client.Stats())
}

func TestSessionClient_FailedRenewalTerminatesSession(t *testing.T) {
	backend := newFakeBackend(t)
	client, storage := newTestSessionClient(t, backend, &models.TokenPair{Access: "access-expired", Refresh: "refresh-revoked"})

	var hookCalls atomic.Int64
	client.OnSessionTerminated(func() { hookCalls.Add(1) })

	_, err := client.Do(context.Background(), profileRequest(&models.User{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionTerminated)
	assert.ErrorIs(t, err, ErrAuthRejected)
	assert.NotErrorIs(t, err, ErrAuthExpired)

	// the original request is not replayed
	assert.Len(t, backend.auth(), 1)
	assert.Equal(t, int64(1), backend.refreshCalls.Load())
	assert.Equal(t, int64(1), hookCalls.Load())

	session, err := storage.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session.Tokens)
	assert.Nil(t, session.User)

	// no further renewal once the session is gone, and no second teardown
	_, err = client.Do(context.Background(), profileRequest(&models.User{}))
	assert.ErrorIs(t, err, ErrSessionTerminated)
	assert.Equal(t, int64(1), backend.refreshCalls.Load())
	assert.Equal(t, int64(1), hookCalls.Load())
	assert.Equal(t, Stats{Terminations: 1}, client.Stats())
}

// flakyStorage fails every LoadTokens call after the first one.
type flakyStorage struct {
	store.SessionStorage
	loads   atomic.Int64
	cleared atomic.Bool
}

func (s *flakyStorage) LoadTokens(ctx context.Context) (models.TokenPair, error) {
	if s.loads.Add(1) > 1 {
		return models.TokenPair{}, errors.New("database is locked")
	}
	return s.SessionStorage.LoadTokens(ctx)
}

func (s *flakyStorage) Clear(ctx context.Context) error {
	s.cleared.Store(true)
	return s.SessionStorage.Clear(ctx)
}

func TestSessionClient_StorageReadErrorKeepsSession(t *testing.T) {
	backend := newFakeBackend(t)
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	storage := &flakyStorage{SessionStorage: store.NewMemorySessionStorage()}
	require.NoError(t, storage.SaveTokens(context.Background(), models.TokenPair{Access: "access-expired", Refresh: "refresh-valid"}))
	client, err := NewSessionClient(config.ClientAdapter{BaseURL: srv.URL + "/api"}, storage, logger.Nop())
	require.NoError(t, err)

	var hookCalls atomic.Int64
	client.OnSessionTerminated(func() { hookCalls.Add(1) })

	_, err = client.Do(context.Background(), profileRequest(&models.User{}))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionTerminated)
	assert.Contains(t, err.Error(), "database is locked")
	// a local failure is none of the kinds
	for _, kind := range []error{ErrNetwork, ErrAuthExpired, ErrAuthRejected, ErrValidation, ErrServer} {
		assert.NotErrorIs(t, err, kind)
	}

	assert.False(t, storage.cleared.Load())
	assert.Zero(t, hookCalls.Load())
	assert.Zero(t, backend.refreshCalls.Load())
	assert.Equal(t, Stats{}, client.Stats())
}

func TestSessionClient_SecondUnauthorizedIsNotRenewed(t *testing.T) {
	backend := newFakeBackend(t)
	backend.alwaysReject = true
	client, _ := newTestSessionClient(t, backend, &models.TokenPair{Access: "access-expired", Refresh: "refresh-valid"})

	_, err := client.Do(context.Background(), profileRequest(&models.User{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthExpired)
	assert.NotErrorIs(t, err, ErrSessionTerminated)

	assert.Equal(t, int64(1), backend.refreshCalls.Load())
	assert.Len(t, backend.auth(), 2)
}

func TestSessionClient_RefreshNetworkFailureTerminates(t *testing.T) {
	backend := newFakeBackend(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/token/refresh/" {
			// drop the connection without a response
			panic(http.ErrAbortHandler)
		}
		backend.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	storage := store.NewMemorySessionStorage()
	require.NoError(t, storage.SaveTokens(context.Background(), models.TokenPair{Access: "access-expired", Refresh: "refresh-valid"}))
	client, err := NewSessionClient(config.ClientAdapter{BaseURL: srv.URL + "/api"}, storage, logger.Nop())
	require.NoError(t, err)

	_, err = client.Do(context.Background(), profileRequest(&models.User{}))
	assert.ErrorIs(t, err, ErrSessionTerminated)
	assert.NotErrorIs(t, err, ErrNetwork)

	_, err = storage.LoadTokens(context.Background())
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionClient_UndecodableRefreshResponseTerminates(t *testing.T) {
	backend := newFakeBackend(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/token/refresh/" {
			_, _ = w.Write([]byte("<html>oops</html>"))
			return
		}
		backend.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	storage := store.NewMemorySessionStorage()
	require.NoError(t, storage.SaveTokens(context.Background(), models.TokenPair{Access: "access-expired", Refresh: "refresh-valid"}))
	client, err := NewSessionClient(config.ClientAdapter{BaseURL: srv.URL + "/api"}, storage, logger.Nop())
	require.NoError(t, err)

	_, err = client.Do(context.Background(), profileRequest(&models.User{}))
	assert.ErrorIs(t, err, ErrSessionTerminated)
}

func TestSessionClient_NoRefreshTokenTerminates(t *testing.T) {
	backend := newFakeBackend(t)
	client, _ := newTestSessionClient(t, backend, nil)

	_, err := client.Do(context.Background(), profileRequest(&models.User{}))
	assert.ErrorIs(t, err, ErrSessionTerminated)
	assert.Zero(t, backend.refreshCalls.Load())
	assert.Equal(t, []string{""}, backend.auth())
	assert.Zero(t, client.Stats().Terminations)
}

func TestSessionClient_AccessWithoutRefreshTokenTerminates(t *testing.T) {
	backend := newFakeBackend(t)
	client, storage := newTestSessionClient(t, backend, &models.TokenPair{Access: "access-expired"})

	var hookCalls atomic.Int64
	client.OnSessionTerminated(func() { hookCalls.Add(1) })

	_, err := client.Do(context.Background(), profileRequest(&models.User{}))
	assert.ErrorIs(t, err, ErrSessionTerminated)
	assert.Zero(t, backend.refreshCalls.Load())
	assert.Equal(t, int64(1), hookCalls.Load())

	_, err = storage.LoadTokens(context.Background())
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionClient_AnonymousUnauthorizedIsCredentialError(t *testing.T) {
	backend := newFakeBackend(t)
	client, storage := newTestSessionClient(t, backend, &models.TokenPair{Access: "access-valid", Refresh: "refresh-valid"})

	_, err := client.Do(context.Background(), Request{
		Method:    http.MethodPost,
		Path:      "/login/",
		Body:      models.LoginCredentials{Email: "ada@example.com", Password: "nope"},
		Anonymous: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrAuthExpired)
	assert.Equal(t, "Incorrect password. Please try again.", UserMessage(err, "Login failed. Please try again."))
	assert.Zero(t, backend.refreshCalls.Load())

	_, err = storage.LoadTokens(context.Background())
	assert.NoError(t, err)
}

func TestSessionClient_ConcurrentUnauthorizedShareOneRenewal(t *testing.T) {
	const callers = 8

	backend := newFakeBackend(t)
	backend.refreshGate = make(chan struct{})
	client, _ := newTestSessionClient(t, backend, &models.TokenPair{Access: "access-expired", Refresh: "refresh-valid"})

	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Do(context.Background(), profileRequest(&models.User{}))
			errs <- err
		}()
	}

	// let every caller hit the 401 before the exchange completes
	require.Eventually(t, func() bool {
		return len(backend.auth()) >= callers
	}, 5*time.Second, 10*time.Millisecond)
	close(backend.refreshGate)

	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	assert.Equal(t, int64(1), backend.refreshCalls.Load())
	assert.Equal(t, int64(1), client.Stats().Renewals)
}

func TestSessionClient_RejectsAbsolutePaths(t *testing.T) {
	backend := newFakeBackend(t)
	client, _ := newTestSessionClient(t, backend, nil)

	for _, path := range []string{"http://evil.example.com/profile/", "//evil.example.com/", "profile/", ""} {
		_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: path})
		assert.ErrorIs(t, err, ErrInvalidPath, path)
	}
	assert.Empty(t, backend.auth())
}

func TestSessionClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := NewSessionClient(config.ClientAdapter{BaseURL: srv.URL}, store.NewMemorySessionStorage(), logger.Nop())
	require.NoError(t, err)

	_, err = client.Do(context.Background(), profileRequest(&models.User{}))
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, MsgNetworkUnreachable, UserMessage(err, "fallback"))
}

func TestNewSessionClient_InvalidBaseURL(t *testing.T) {
	_, err := NewSessionClient(config.ClientAdapter{BaseURL: "  "}, store.NewMemorySessionStorage(), logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8000/api/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", got)

	_, err = normalizeBaseURL("http://")
	assert.Error(t, err)
}

func TestSessionClient_ReplaysMultipartBody(t *testing.T) {
	backend := newFakeBackend(t)

	var (
		mu      sync.Mutex
		uploads []string
	)
	mux := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/update-profile/" {
			backend.ServeHTTP(w, r)
			return
		}

		backend.mu.Lock()
		valid := r.Header.Get("Authorization") == "Bearer "+backend.validToken
		backend.mu.Unlock()

		file, _, err := r.FormFile("profile_picture")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)

		mu.Lock()
		uploads = append(uploads, r.FormValue("bio")+":"+string(data))
		mu.Unlock()

		if !valid {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Profile updated successfully","user":{"id":1}}`))
	})

	client, _ := newTestSessionClient(t, mux, &models.TokenPair{Access: "access-expired", Refresh: "refresh-valid"})

	_, err := client.Do(context.Background(), Request{
		Method: http.MethodPut,
		Path:   "/update-profile/",
		Multipart: &Multipart{
			Fields: map[string]string{"bio": "hello"},
			Files:  []MultipartFile{{Field: "profile_picture", Filename: "me.png", ContentType: "image/png", Data: []byte("png-bytes")}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), backend.refreshCalls.Load())
	assert.Equal(t, []string{"hello:png-bytes", "hello:png-bytes"}, uploads)
}
