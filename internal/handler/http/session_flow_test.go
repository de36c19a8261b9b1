package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	apihttp "github.com/heartbreaksandvodka/project-plusminus/internal/handler/http"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/metrics"
	"github.com/heartbreaksandvodka/project-plusminus/internal/mock"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// authRecorder remembers the Authorization header of every request.
type authRecorder struct {
	mu      sync.Mutex
	headers map[string][]string
}

func (a *authRecorder) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		a.headers[r.URL.Path] = append(a.headers[r.URL.Path], r.Header.Get("Authorization"))
		a.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (a *authRecorder) get(path string) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.headers[path]...)
}

// newBackend serves the API router backed by the real auth and profile
// services. Only the user repository is mocked.
func newBackend(t *testing.T, users *mock.MockUserRepository) (*httptest.Server, *authRecorder) {
	t.Helper()

	appCfg := config.App{
		TokenSignKey:         "session-flow-secret",
		TokenIssuer:          config.DefaultTokenIssuer,
		AccessTokenDuration:  time.Minute,
		RefreshTokenDuration: time.Hour,
	}
	log := logger.Nop()

	services := &service.Services{
		AuthService:    service.NewAuthService(users, store.NewMemoryBlacklist(), appCfg, log),
		ProfileService: service.NewProfileService(users, nil, config.S3{}, log),
	}
	h := apihttp.NewHandler(services, metrics.New(), config.Server{}, log)

	rec := &authRecorder{headers: make(map[string][]string)}
	srv := httptest.NewServer(rec.wrap(h.Init()))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newClient(t *testing.T, baseURL string) (service.ClientAuthService, store.SessionStorage) {
	t.Helper()

	log := logger.Nop()
	storage := store.NewMemorySessionStorage()
	session, err := adapter.NewSessionClient(config.ClientAdapter{
		BaseURL:        baseURL + "/api",
		RequestTimeout: 5 * time.Second,
	}, storage, log)
	require.NoError(t, err)

	return service.NewClientAuthService(storage, adapter.NewHTTPServerAdapter(session, log), log), storage
}

func TestSessionFlow_LoginThenProfileSendsIssuedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{
		ID:           42,
		Email:        "ada@example.com",
		Username:     "ada",
		FirstName:    "Ada",
		IsActive:     true,
		PasswordHash: string(hash),
	}

	users.EXPECT().FindUserByEmail(gomock.Any(), stored.Email).Return(stored, nil)
	users.EXPECT().RecordLogin(gomock.Any(), stored.ID, gomock.Any()).Return(nil)
	users.EXPECT().FindUserByID(gomock.Any(), stored.ID).Return(stored, nil)

	srv, recorder := newBackend(t, users)
	client, storage := newClient(t, srv.URL)
	ctx := context.Background()

	login, err := client.Login(ctx, models.LoginCredentials{Email: stored.Email, Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Tokens.Access)
	require.NotEmpty(t, login.Tokens.Refresh)

	saved, err := storage.LoadTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, login.Tokens, saved)

	profile, err := client.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, profile.ID)
	assert.Equal(t, "ada", profile.Username)

	assert.Equal(t, []string{""}, recorder.get("/api/login/"), "login goes out without credentials")
	assert.Equal(t, []string{"Bearer " + login.Tokens.Access}, recorder.get("/api/profile/"))
	assert.Empty(t, recorder.get("/api/token/refresh/"), "a fresh token needs no renewal")
}

func TestSessionFlow_ForeignTokenTerminatesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	srv, recorder := newBackend(t, users)
	client, storage := newClient(t, srv.URL)
	ctx := context.Background()

	// Tokens signed by another server are rejected on use and on renewal.
	require.NoError(t, storage.SaveSession(ctx, models.TokenPair{Access: "foreign-access", Refresh: "foreign-refresh"}, models.User{ID: 42}))

	_, err := client.GetProfile(ctx)

	require.ErrorIs(t, err, adapter.ErrSessionTerminated)
	assert.Equal(t, []string{"Bearer foreign-access"}, recorder.get("/api/profile/"))
	assert.Len(t, recorder.get("/api/token/refresh/"), 1)

	_, err = storage.LoadTokens(ctx)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}
