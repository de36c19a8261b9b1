package client

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/mock"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/internal/tui"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeUI replays scripted results and records the notices it was given.
type fakeUI struct {
	authErrs []error
	outcomes []tui.Outcome
	loopErr  error

	notices   []string
	mainLoops int
}

func (f *fakeUI) AuthFlow(_ context.Context, notice string) (models.User, error) {
	f.notices = append(f.notices, notice)
	if len(f.authErrs) == 0 {
		return models.User{ID: 7}, nil
	}
	err := f.authErrs[0]
	f.authErrs = f.authErrs[1:]
	return models.User{ID: 7}, err
}

func (f *fakeUI) MainLoop(context.Context) (tui.Outcome, error) {
	f.mainLoops++
	if f.loopErr != nil {
		return tui.OutcomeQuit, f.loopErr
	}
	if len(f.outcomes) == 0 {
		return tui.OutcomeQuit, nil
	}
	outcome := f.outcomes[0]
	f.outcomes = f.outcomes[1:]
	return outcome, nil
}

type testApp struct {
	app  *App
	ui   *fakeUI
	auth *mock.MockClientAuthService
	job  *mock.MockClientDashboardJob
}

func newTestApp(t *testing.T, ui *fakeUI) testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockClientAuthService(ctrl)
	job := mock.NewMockClientDashboardJob(ctrl)
	services := &service.ClientServices{
		AuthService:    auth,
		AccountService: mock.NewMockClientAccountService(ctrl),
		MT5Service:     mock.NewMockClientMT5Service(ctrl),
		DashboardJob:   job,
	}

	a, err := NewApp(services, ui, config.ClientWorkers{DashboardInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)
	return testApp{app: a, ui: ui, auth: auth, job: job}
}

func (ta testApp) expectJobRuns(n int) {
	ta.job.EXPECT().Start(gomock.Any(), time.Minute).Times(n)
	ta.job.EXPECT().Stop().Times(n)
}

func authenticatedSession() models.Session {
	return models.Session{
		Tokens: &models.TokenPair{Access: "access", Refresh: "refresh"},
		User:   &models.User{ID: 7},
	}
}

func TestNewApp(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)

	_, err = NewApp(&service.ClientServices{}, nil, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)
}

func TestApp_RestoredSessionSkipsSignIn(t *testing.T) {
	ta := newTestApp(t, &fakeUI{})
	ta.auth.EXPECT().RestoreSession(gomock.Any()).Return(authenticatedSession(), nil)
	ta.expectJobRuns(1)

	require.NoError(t, ta.app.run(context.Background()))
	assert.Empty(t, ta.ui.notices)
	assert.Equal(t, 1, ta.ui.mainLoops)
}

func TestApp_OfflineSessionIsUsed(t *testing.T) {
	ta := newTestApp(t, &fakeUI{})
	ta.auth.EXPECT().RestoreSession(gomock.Any()).
		Return(authenticatedSession(), fmt.Errorf("get profile: %w", adapter.ErrNetwork))
	ta.expectJobRuns(1)

	require.NoError(t, ta.app.run(context.Background()))
	assert.Empty(t, ta.ui.notices)
}

func TestApp_NoSessionRunsSignIn(t *testing.T) {
	ta := newTestApp(t, &fakeUI{})
	ta.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNotLoggedIn)
	ta.expectJobRuns(1)

	require.NoError(t, ta.app.run(context.Background()))
	assert.Equal(t, []string{""}, ta.ui.notices)
}

func TestApp_ReturnsToSignIn(t *testing.T) {
	tests := []struct {
		name    string
		outcome tui.Outcome
		notice  string
	}{
		{name: "logout", outcome: tui.OutcomeLogout, notice: app.MsgLogoutSuccessful},
		{name: "session expired", outcome: tui.OutcomeSessionExpired, notice: adapter.MsgSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, &fakeUI{outcomes: []tui.Outcome{tt.outcome, tui.OutcomeQuit}})
			ta.auth.EXPECT().RestoreSession(gomock.Any()).Return(authenticatedSession(), nil)
			ta.expectJobRuns(2)

			require.NoError(t, ta.app.run(context.Background()))
			assert.Equal(t, []string{tt.notice}, ta.ui.notices)
			assert.Equal(t, 2, ta.ui.mainLoops)
		})
	}
}

func TestApp_QuitFromSignIn(t *testing.T) {
	ta := newTestApp(t, &fakeUI{authErrs: []error{tui.ErrUserQuit}})
	ta.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNotLoggedIn)

	require.NoError(t, ta.app.run(context.Background()))
	assert.Zero(t, ta.ui.mainLoops)
}

func TestApp_Errors(t *testing.T) {
	t.Run("session store failure", func(t *testing.T) {
		ta := newTestApp(t, &fakeUI{})
		storeErr := errors.New("disk I/O error")
		ta.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, storeErr)

		err := ta.app.run(context.Background())
		assert.ErrorIs(t, err, storeErr)
		assert.Empty(t, ta.ui.notices)
	})

	t.Run("sign-in program failure", func(t *testing.T) {
		uiErr := errors.New("no tty")
		ta := newTestApp(t, &fakeUI{authErrs: []error{uiErr}})
		ta.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNotLoggedIn)

		assert.ErrorIs(t, ta.app.run(context.Background()), uiErr)
	})

	t.Run("main loop failure stops the job", func(t *testing.T) {
		uiErr := errors.New("no tty")
		ta := newTestApp(t, &fakeUI{loopErr: uiErr})
		ta.auth.EXPECT().RestoreSession(gomock.Any()).Return(authenticatedSession(), nil)
		ta.expectJobRuns(1)

		assert.ErrorIs(t, ta.app.run(context.Background()), uiErr)
	})
}
