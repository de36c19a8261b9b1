package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const msgChangePasswordFailed = "Could not change the password. Please try again."

const (
	changeCurrent = iota
	changeNew
	changeConfirm
)

type ChangePasswordModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	errMsg     string
}

func NewChangePasswordModel(ctx context.Context, auth service.ClientAuthService) *ChangePasswordModel {
	return &ChangePasswordModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			fieldSpec{label: "Current", placeholder: "current password", secret: true},
			fieldSpec{label: "New", placeholder: "new password", secret: true},
			fieldSpec{label: "Repeat", placeholder: "repeat new password", secret: true},
		),
	}
}

func (m *ChangePasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChangePasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case passwordChangedMsg:
		m.submitting = false
		if isSessionTerminated(msg.err) {
			return m, sessionExpired
		}
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgChangePasswordFailed)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		notice := msg.message
		return m, func() tea.Msg {
			return NavigateTo{Page: pageHome, Payload: Notice{Text: notice}}
		}

	case tea.KeyMsg:
		if m.form.handleKey(msg) {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.form.reset()
			return m, navigate(pageHome)
		case "enter":
			if m.submitting {
				return m, nil
			}

			change := models.PasswordChange{
				CurrentPassword:    m.form.value(changeCurrent),
				NewPassword:        m.form.value(changeNew),
				NewPasswordConfirm: m.form.value(changeConfirm),
			}
			if change.CurrentPassword == "" || change.NewPassword == "" {
				m.errMsg = "Current and new password are required."
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdChange(change)
		}
	}

	return m, m.form.update(msg)
}

func (m *ChangePasswordModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Change password", m.submitting))
	writeStatus(&b, "", m.errMsg)

	return renderPage("CHANGE PASSWORD", strings.TrimRight(b.String(), "\n"), formHotKeys)
}

func (m *ChangePasswordModel) cmdChange(change models.PasswordChange) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		resp, err := auth.ChangePassword(ctx, change)
		return passwordChangedMsg{message: resp.Message, err: err}
	}
}
