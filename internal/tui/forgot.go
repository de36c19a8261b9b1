package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const msgForgotFailed = "Could not request a password reset. Please try again."

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// ForgotModel requests a password reset. The server hands the reset token
// back directly; it can be copied to the clipboard or carried to the reset
// page.
type ForgotModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	result     *models.PasswordResetResponse
	status     string
	errMsg     string
}

func NewForgotModel(ctx context.Context, auth service.ClientAuthService) *ForgotModel {
	return &ForgotModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(fieldSpec{label: "Email", placeholder: "email", charLimit: 254}),
	}
}

func (m *ForgotModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ForgotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case forgotDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgForgotFailed)
			return m, nil
		}
		m.errMsg = ""
		m.result = &msg.resp
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = ""
			m.errMsg = "Clipboard is not available: " + msg.err.Error()
			return m, nil
		}
		m.status = "Token copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.result != nil {
			return m.updateResult(msg)
		}
		if m.form.handleKey(msg) {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.leave()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "enter":
			if m.submitting {
				return m, nil
			}
			email := m.form.trimmed(0)
			if email == "" {
				m.errMsg = "Email is required."
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdForgot(email)
		}
	}

	if m.result != nil {
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m *ForgotModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.back):
		m.leave()
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(msg, keys.copy):
		if m.result.Token == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.result.Token)
	case key.Matches(msg, keys.reset):
		token := m.result.Token
		m.leave()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageReset, Payload: resetTokenMsg{token: token}}
		}
	}
	return m, nil
}

func (m *ForgotModel) View() string {
	var b strings.Builder

	if m.result == nil {
		b.WriteString(m.form.view())
		b.WriteString(submitButton("Send reset link", m.submitting))
		writeStatus(&b, "", m.errMsg)
		return renderPage("FORGOT PASSWORD", strings.TrimRight(b.String(), "\n"), formHotKeys)
	}

	b.WriteString(m.result.Message)
	b.WriteString("\n\n")
	b.WriteString(row("Token", valueOrDash(m.result.Token), 10))
	b.WriteString(row("Reset link", valueOrDash(m.result.ResetLink), 10))
	writeStatus(&b, m.status, m.errMsg)

	return renderPage("FORGOT PASSWORD", strings.TrimRight(b.String(), "\n"), "c: copy token │ r: reset password │ esc: back")
}

// leave resets the page for the next visit.
func (m *ForgotModel) leave() {
	m.form.reset()
	m.submitting = false
	m.result = nil
	m.status = ""
	m.errMsg = ""
}

func (m *ForgotModel) cmdForgot(email string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		resp, err := auth.ForgotPassword(ctx, email)
		return forgotDoneMsg{resp: resp, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWrite(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
