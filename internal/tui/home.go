package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const msgDashboardFailed = "Could not load the dashboard."

// HomeModel shows the dashboard. It loads on every visit and also takes
// the background refreshes [RootModel] forwards to it.
type HomeModel struct {
	ctx     context.Context
	account service.ClientAccountService
	auth    service.ClientAuthService

	dashboard *models.Dashboard
	updatedAt time.Time
	loading   bool
	notice    string
	errMsg    string
}

func NewHomeModel(ctx context.Context, account service.ClientAccountService, auth service.ClientAuthService) *HomeModel {
	return &HomeModel{ctx: ctx, account: account, auth: auth}
}

func (m *HomeModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg.Text
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		return m, m.apply(models.DashboardUpdate{Dashboard: msg.dashboard, Err: msg.err, At: time.Now()})

	case dashboardUpdateMsg:
		return m, m.apply(msg.update)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.notice = ""
			return m, m.cmdLoad()
		case key.Matches(msg, keys.subscriptions):
			return m, navigate(pageSubscriptions)
		case key.Matches(msg, keys.profile):
			return m, navigate(pageProfile)
		case key.Matches(msg, keys.changePassword):
			return m, navigate(pageChangePassword)
		case key.Matches(msg, keys.mt5):
			return m, navigate(pageMT5)
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		}
	}
	return m, nil
}

// apply keeps the last good dashboard when a refresh fails.
func (m *HomeModel) apply(update models.DashboardUpdate) tea.Cmd {
	if isSessionTerminated(update.Err) {
		return sessionExpired
	}
	if update.Err != nil {
		m.errMsg = formError(update.Err, msgDashboardFailed)
		return nil
	}

	m.errMsg = ""
	dashboard := update.Dashboard
	m.dashboard = &dashboard
	m.updatedAt = update.At
	return nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	switch {
	case m.dashboard == nil && m.loading:
		b.WriteString("Loading dashboard...\n")
	case m.dashboard != nil:
		d := m.dashboard
		b.WriteString(d.Message)
		b.WriteString("\n\n")
		b.WriteString(row("Name", d.User.FullName(), 20))
		b.WriteString(row("Email", d.User.Email, 20))
		b.WriteString(row("Account age", fmt.Sprintf("%d days", d.Stats.AccountAgeDays), 20))
		b.WriteString(row("Profile complete", fmt.Sprintf("%d%%", d.Stats.ProfileCompleteness), 20))
		b.WriteString(row("Total logins", fmt.Sprintf("%d", d.Stats.TotalLogins), 20))
		b.WriteString(row("Last login", formatTime(d.Stats.LastLogin), 20))

		if len(d.Notifications) > 0 {
			b.WriteString("\nNotifications\n")
			for _, n := range d.Notifications {
				b.WriteString(fmt.Sprintf("  [%s] %s\n", n.Type, n.Message))
			}
		}

		b.WriteString("\nRecent activity\n")
		if len(d.RecentActivity) == 0 {
			b.WriteString("  No recent activity\n")
		}
		for _, a := range d.RecentActivity {
			b.WriteString(fmt.Sprintf("  %s  %s\n", a.Timestamp.Local().Format("2006-01-02 15:04"), fitText(a.Description, 60)))
		}

		b.WriteString(helpStyle.Render("\nUpdated at " + m.updatedAt.Local().Format("15:04:05")))
		b.WriteString("\n")
	}
	writeStatus(&b, m.notice, m.errMsg)

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"r: refresh │ s: subscriptions │ m: mt5 │ p: profile │ c: change password │ l: log out")
}

func (m *HomeModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	account := m.account

	return func() tea.Msg {
		dashboard, err := account.GetDashboard(ctx)
		return dashboardLoadedMsg{dashboard: dashboard, err: err}
	}
}

// cmdLogout always ends the signed-in program: the local session is gone
// even when the server could not be told.
func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		_ = auth.Logout(ctx)
		return loggedOutMsg{}
	}
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
