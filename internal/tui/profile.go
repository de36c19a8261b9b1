package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const msgProfileFailed = "Could not load the profile."

// ProfileModel shows the signed-in user's profile.
type ProfileModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	user    *models.User
	loading bool
	notice  string
	errMsg  string
}

func NewProfileModel(ctx context.Context, auth service.ClientAuthService) *ProfileModel {
	return &ProfileModel{ctx: ctx, auth: auth}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.GetProfile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg.Text
		return m, nil

	case profileLoadedMsg:
		m.loading = false
		if isSessionTerminated(msg.err) {
			return m, sessionExpired
		}
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgProfileFailed)
			return m, nil
		}
		m.errMsg = ""
		m.user = &msg.user
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.back):
			m.notice = ""
			return m, navigate(pageHome)
		case key.Matches(msg, keys.edit):
			if m.user == nil {
				return m, nil
			}
			m.notice = ""
			user := *m.user
			return m, func() tea.Msg {
				return NavigateTo{Page: pageEditProfile, Payload: profileLoadedMsg{user: user}}
			}
		}
	}
	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	switch {
	case m.user == nil && m.loading:
		b.WriteString("Loading profile...\n")
	case m.user != nil:
		u := m.user
		const w = 14
		b.WriteString(row("Username", u.Username, w))
		b.WriteString(row("Email", u.Email, w))
		b.WriteString(row("First name", valueOrDash(u.FirstName), w))
		b.WriteString(row("Last name", valueOrDash(u.LastName), w))
		b.WriteString(row("Bio", valueOrDash(fitText(u.Bio, 60)), w))
		b.WriteString(row("Phone", valueOrDash(u.PhoneNumber), w))
		b.WriteString(row("Date of birth", valueOrDash(u.DateOfBirth), w))
		b.WriteString(row("Picture", valueOrDash(u.ProfilePicture), w))
		b.WriteString(row("Joined", formatTime(&u.DateJoined), w))
	}
	writeStatus(&b, m.notice, m.errMsg)

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "e: edit │ esc: back")
}
