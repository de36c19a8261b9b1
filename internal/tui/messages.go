package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// Notice is a one-line status a page shows until the next action.
type Notice struct {
	Text string
}

type authDoneMsg struct {
	user models.User
}

type loggedOutMsg struct{}

type sessionExpiredMsg struct{}

type dashboardUpdateMsg struct {
	update models.DashboardUpdate
}

type dashboardLoadedMsg struct {
	dashboard models.Dashboard
	err       error
}

type subscriptionsLoadedMsg struct {
	resp models.SubscriptionsResponse
	err  error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type passwordChangedMsg struct {
	message string
	err     error
}

type forgotDoneMsg struct {
	resp models.PasswordResetResponse
	err  error
}

type resetDoneMsg struct {
	message string
	err     error
}

// resetTokenMsg prefills the reset page with a token.
type resetTokenMsg struct {
	token string
}

type authFailedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type mt5LoadedMsg struct {
	overview models.MT5Overview
	err      error
}

type manualStatsLoadedMsg struct {
	stats models.ManualStatistics
	err   error
}

// mt5ActionDoneMsg ends a status refresh, a run control or a delete.
type mt5ActionDoneMsg struct {
	message string
	err     error
}

type mt5AccountSavedMsg struct {
	resp models.MT5AccountResponse
	err  error
}

type connectionTestedMsg struct {
	result models.ConnectionResult
	err    error
}

type algorithmStartedMsg struct {
	resp models.StartAlgorithmResponse
	err  error
}

type serverVersionMsg struct {
	version string
	err     error
}
