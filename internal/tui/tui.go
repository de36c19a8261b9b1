package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// AuthFlow runs the signed-out pages until the user logs in or registers.
// A non-empty notice opens the login page with that notice shown.
func (t *TUI) AuthFlow(ctx context.Context, notice string) (models.User, error) {
	login := NewLoginModel(ctx, t.services.AuthService)
	start := pageMenu
	if notice != "" {
		login.notice = notice
		start = pageLogin
	}

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    login,
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
		pageForgot:   NewForgotModel(ctx, t.services.AuthService),
		pageReset:    NewResetModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, start, t.buildInfo)
	root.serverVersion = func() (string, error) {
		return t.services.AccountService.ServerVersion(ctx)
	}

	result, err := t.run(ctx, root)
	if err != nil {
		return models.User{}, err
	}
	t.buildInfo = result.buildInfo
	if result.outcome != OutcomeAuthenticated {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.user.ID).Msg("signed in")
	return result.user, nil
}

// MainLoop runs the signed-in pages. It returns how the loop ended: the
// user quit, logged out, or the session was terminated.
func (t *TUI) MainLoop(ctx context.Context) (Outcome, error) {
	pages := map[string]tea.Model{
		pageHome:           NewHomeModel(ctx, t.services.AccountService, t.services.AuthService),
		pageSubscriptions:  NewSubscriptionsModel(ctx, t.services.AccountService),
		pageProfile:        NewProfileModel(ctx, t.services.AuthService),
		pageEditProfile:    NewEditProfileModel(ctx, t.services.AuthService),
		pageChangePassword: NewChangePasswordModel(ctx, t.services.AuthService),
		pageMT5:            NewMT5Model(ctx, t.services.MT5Service),
		pageMT5Account:     NewMT5AccountModel(ctx, t.services.MT5Service),
		pageMT5Start:       NewStartAlgorithmModel(ctx, t.services.MT5Service),
	}

	root := NewRootModel(pages, pageHome, t.buildInfo)
	root.dashboardUpdates = t.services.DashboardJob.Updates()

	result, err := t.run(ctx, root)
	if err != nil {
		return OutcomeQuit, err
	}
	return result.outcome, nil
}

func (t *TUI) run(ctx context.Context, root RootModel) (RootModel, error) {
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return RootModel{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return RootModel{}, tea.ErrProgramKilled
	}
	return result, nil
}
