package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/internal/tui"
)

var errNoServices = errors.New("client services are not configured")

type App struct {
	services          *service.ClientServices
	ui                UI
	dashboardInterval time.Duration
	logger            *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errNoServices
	}

	return &App{
		services:          services,
		ui:                ui,
		dashboardInterval: cfg.DashboardInterval,
		logger:            logger.WithComponent("app"),
	}, nil
}

// Run restores the stored session or asks the user to sign in, then runs
// the signed-in pages. Logging out or losing the session returns to the
// sign-in pages; quitting ends Run with a nil error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	signedIn, err := a.restore(ctx)
	if err != nil {
		return err
	}

	var notice string
	for {
		if !signedIn {
			if _, err = a.ui.AuthFlow(ctx, notice); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return fmt.Errorf("auth flow: %w", err)
			}
		}

		outcome, err := a.mainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}

		switch outcome {
		case tui.OutcomeLogout:
			a.logger.Info().Msg("logged out")
			notice = app.MsgLogoutSuccessful
		case tui.OutcomeSessionExpired:
			a.logger.Info().Msg("session terminated, signing in again")
			notice = adapter.MsgSessionExpired
		default:
			return nil
		}
		signedIn = false
	}
}

// restore reports whether a stored session can be used. A session that
// could not be verified because the server is unreachable is still used;
// requests made later report the network error themselves.
func (a *App) restore(ctx context.Context) (bool, error) {
	session, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil:
		a.logger.Info().Int64("user_id", session.User.ID).Msg("session restored")
		return true, nil

	case errors.Is(err, adapter.ErrNetwork) && session.IsAuthenticated():
		a.logger.Warn().Err(err).Msg("server unreachable, using stored session")
		return true, nil

	case errors.Is(err, service.ErrNotLoggedIn):
		a.logger.Debug().Err(err).Msg("no usable session")
		return false, nil
	}

	return false, fmt.Errorf("restore session: %w", err)
}

func (a *App) mainLoop(ctx context.Context) (tui.Outcome, error) {
	a.services.DashboardJob.Start(ctx, a.dashboardInterval)
	defer a.services.DashboardJob.Stop()

	return a.ui.MainLoop(ctx)
}
