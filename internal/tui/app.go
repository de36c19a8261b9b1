package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// Page names.
const (
	pageMenu           = "menu"
	pageLogin          = "login"
	pageRegister       = "register"
	pageForgot         = "forgot"
	pageReset          = "reset"
	pageHome           = "home"
	pageSubscriptions  = "subscriptions"
	pageProfile        = "profile"
	pageEditProfile    = "edit-profile"
	pageChangePassword = "change-password"
	pageMT5            = "mt5"
	pageMT5Account     = "mt5-account"
	pageMT5Start       = "mt5-start"
)

// Outcome tells the caller why a program ended.
type Outcome int

const (
	OutcomeQuit Outcome = iota
	OutcomeAuthenticated
	OutcomeLogout
	OutcomeSessionExpired
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) ends the program on sign-in, logout and session termination
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	// dashboardUpdates, when set, feeds background dashboard refreshes to
	// the home page whichever page is active.
	dashboardUpdates <-chan models.DashboardUpdate

	outcome   Outcome
	user      models.User
	buildInfo models.AppBuildInfo

	// serverVersion, when set, asks the server for its version the first
	// time the about window opens.
	serverVersion func() (string, error)

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	if r.dashboardUpdates != nil {
		cmds = append(cmds, waitForDashboard(r.dashboardUpdates))
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.outcome = OutcomeQuit
			return r, tea.Quit
		case "v":
			if r.currentName == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				if r.showBuildInfo && r.buildInfo.ServerVersion == "" && r.serverVersion != nil {
					return r, fetchServerVersion(r.serverVersion)
				}
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		r.currentName = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return payload })
		}
		return r, r.current.Init()

	case serverVersionMsg:
		// a failed lookup is retried the next time the window opens
		if msg.err == nil {
			r.buildInfo = r.buildInfo.WithServerVersion(msg.version)
		}
		return r, nil

	case authDoneMsg:
		r.user = msg.user
		r.outcome = OutcomeAuthenticated
		return r, tea.Quit

	case loggedOutMsg:
		r.outcome = OutcomeLogout
		return r, tea.Quit

	case sessionExpiredMsg:
		r.outcome = OutcomeSessionExpired
		return r, tea.Quit

	case dashboardUpdateMsg:
		if isSessionTerminated(msg.update.Err) {
			return r, sessionExpired
		}
		home, ok := r.pages[pageHome]
		if !ok {
			return r, nil
		}
		updated, cmd := home.Update(msg)
		r.pages[pageHome] = updated
		if r.currentName == pageHome {
			r.current = updated
		}
		return r, tea.Batch(cmd, waitForDashboard(r.dashboardUpdates))
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentName] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("PLUSMINUS", "", "")
	}
	return r.current.View()
}

// waitForDashboard delivers the next background refresh.
func waitForDashboard(updates <-chan models.DashboardUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return nil
		}
		return dashboardUpdateMsg{update: update}
	}
}

func fetchServerVersion(lookup func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		version, err := lookup()
		return serverVersionMsg{version: version, err: err}
	}
}
