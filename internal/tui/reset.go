package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const msgResetFailed = "Could not reset the password. Please try again."

const (
	resetToken = iota
	resetPassword
	resetPasswordConfirm
)

// ResetModel sets a new password with a reset token. On success it opens
// the login page with the server's confirmation.
type ResetModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	errMsg     string
}

func NewResetModel(ctx context.Context, auth service.ClientAuthService) *ResetModel {
	return &ResetModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			fieldSpec{label: "Token", placeholder: "reset token"},
			fieldSpec{label: "New password", placeholder: "new password", secret: true},
			fieldSpec{label: "Repeat", placeholder: "repeat new password", secret: true},
		),
	}
}

func (m *ResetModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetTokenMsg:
		m.form.set(resetToken, msg.token)
		m.form.focusOn(resetPassword)
		return m, nil

	case resetDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgResetFailed)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		notice := msg.message
		return m, func() tea.Msg {
			return NavigateTo{Page: pageLogin, Payload: Notice{Text: notice}}
		}

	case tea.KeyMsg:
		if m.form.handleKey(msg) {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			reset := models.PasswordReset{
				Token:              m.form.trimmed(resetToken),
				NewPassword:        m.form.value(resetPassword),
				NewPasswordConfirm: m.form.value(resetPasswordConfirm),
			}
			if reset.Token == "" || reset.NewPassword == "" {
				m.errMsg = "Token and new password are required."
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdReset(reset)
		}
	}

	return m, m.form.update(msg)
}

func (m *ResetModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Reset password", m.submitting))
	writeStatus(&b, "", m.errMsg)

	return renderPage("RESET PASSWORD", strings.TrimRight(b.String(), "\n"), formHotKeys)
}

func (m *ResetModel) cmdReset(reset models.PasswordReset) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		resp, err := auth.ResetPassword(ctx, reset)
		return resetDoneMsg{message: resp.Message, err: err}
	}
}
