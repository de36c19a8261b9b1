package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubRoot(start string) RootModel {
	pages := map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: NewLoginModel(testCtx, nil),
		pageReset: NewResetModel(testCtx, nil),
	}
	return NewRootModel(pages, start, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"))
}

func TestRootModel_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.Msg
		outcome Outcome
	}{
		{name: "ctrl+c quits", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, outcome: OutcomeQuit},
		{name: "signed in", msg: authDoneMsg{user: testUser()}, outcome: OutcomeAuthenticated},
		{name: "logged out", msg: loggedOutMsg{}, outcome: OutcomeLogout},
		{name: "session expired", msg: sessionExpiredMsg{}, outcome: OutcomeSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newStubRoot(pageMenu)
			root.outcome = -1

			model, cmd := root.Update(tt.msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Equal(t, tt.outcome, model.(RootModel).outcome)
		})
	}
}

func TestRootModel_KeepsSignedInUser(t *testing.T) {
	model, _ := newStubRoot(pageLogin).Update(authDoneMsg{user: testUser()})
	assert.Equal(t, testUser(), model.(RootModel).user)
}

func TestRootModel_NavigateDeliversPayload(t *testing.T) {
	root := newStubRoot(pageMenu)

	model, cmd := root.Update(NavigateTo{Page: pageReset, Payload: resetTokenMsg{token: "tok-123"}})
	root = model.(RootModel)
	assert.Equal(t, pageReset, root.currentName)

	payload, ok := find[resetTokenMsg](collect(cmd))
	require.True(t, ok)

	model, _ = root.Update(payload)
	reset := model.(RootModel).pages[pageReset].(*ResetModel)
	assert.Equal(t, "tok-123", reset.form.value(resetToken))
	assert.Equal(t, resetPassword, reset.form.focus)
}

func TestRootModel_NavigateUnknownPage(t *testing.T) {
	model, cmd := newStubRoot(pageMenu).Update(NavigateTo{Page: "nowhere"})
	assert.Nil(t, cmd)
	assert.Equal(t, pageMenu, model.(RootModel).currentName)
}

func TestRootModel_BuildInfoOnlyFromMenu(t *testing.T) {
	model, _ := newStubRoot(pageMenu).Update(keyRune('v'))
	root := model.(RootModel)
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "1.0.0")

	model, _ = root.Update(keyEsc)
	assert.False(t, model.(RootModel).showBuildInfo)

	model, _ = newStubRoot(pageLogin).Update(keyRune('v'))
	assert.False(t, model.(RootModel).showBuildInfo)
}

func TestRootModel_BuildInfoShowsServerVersion(t *testing.T) {
	root := newStubRoot(pageMenu)
	calls := 0
	root.serverVersion = func() (string, error) {
		calls++
		return "2.1.0", nil
	}

	model, cmd := root.Update(keyRune('v'))
	require.NotNil(t, cmd)
	model, _ = model.(RootModel).Update(cmd())
	root = model.(RootModel)

	assert.Equal(t, "2.1.0", root.buildInfo.ServerVersion)
	assert.Contains(t, root.View(), "Server: 2.1.0")

	// known versions are not fetched again
	model, _ = root.Update(keyRune('v'))
	_, cmd = model.(RootModel).Update(keyRune('v'))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, calls)
}

func TestRootModel_BuildInfoServerVersionUnavailable(t *testing.T) {
	root := newStubRoot(pageMenu)
	root.serverVersion = func() (string, error) { return "", adapter.ErrNetwork }

	model, cmd := root.Update(keyRune('v'))
	require.NotNil(t, cmd)
	model, _ = model.(RootModel).Update(cmd())
	root = model.(RootModel)

	assert.Empty(t, root.buildInfo.ServerVersion)
	assert.Contains(t, root.View(), "Server: N/A")
}

func TestRootModel_DashboardUpdates(t *testing.T) {
	s := newTestServices(t)

	newRoot := func(start string) (RootModel, chan models.DashboardUpdate) {
		updates := make(chan models.DashboardUpdate, 1)
		pages := map[string]tea.Model{
			pageHome:    NewHomeModel(testCtx, s.account, s.auth),
			pageProfile: NewProfileModel(testCtx, s.auth),
		}
		root := NewRootModel(pages, start, models.AppBuildInfo{})
		root.dashboardUpdates = updates
		return root, updates
	}

	t.Run("forwarded to home from another page", func(t *testing.T) {
		root, updates := newRoot(pageProfile)
		dashboard := models.Dashboard{Message: "Welcome back, Jane!"}

		model, cmd := root.Update(dashboardUpdateMsg{update: models.DashboardUpdate{Dashboard: dashboard}})
		require.NotNil(t, cmd)

		home := model.(RootModel).pages[pageHome].(*HomeModel)
		require.NotNil(t, home.dashboard)
		assert.Equal(t, "Welcome back, Jane!", home.dashboard.Message)

		// The listener is re-armed.
		updates <- models.DashboardUpdate{Dashboard: dashboard}
		_, ok := find[dashboardUpdateMsg](collect(cmd))
		assert.True(t, ok)
	})

	t.Run("terminated session ends the program", func(t *testing.T) {
		root, _ := newRoot(pageHome)
		err := fmt.Errorf("refresh: %w", adapter.ErrSessionTerminated)

		_, cmd := root.Update(dashboardUpdateMsg{update: models.DashboardUpdate{Err: err}})
		require.NotNil(t, cmd)
		assert.Equal(t, sessionExpiredMsg{}, cmd())
	})

	t.Run("closed channel stops listening", func(t *testing.T) {
		_, updates := newRoot(pageHome)
		close(updates)
		assert.Nil(t, waitForDashboard(updates)())
	})
}
