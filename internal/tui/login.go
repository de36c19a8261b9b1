// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const msgLoginFailed = "Login failed. Please try again."

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (email and password) and dispatches an async login command on form submission.
// On success an authDoneMsg is produced and handled by [RootModel] to finish
// the authentication flow.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	notice     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured email and password inputs.
// The email field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			fieldSpec{label: "Email", placeholder: "email", charLimit: 254},
			fieldSpec{label: "Password", placeholder: "password", secret: true, charLimit: 256},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [Notice]        shows a status line, e.g. after a password reset.
//   - authFailedMsg   clears submitting state and shows the server message.
//   - esc             navigates back to the menu.
//   - enter           validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the form.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg.Text
		return m, nil

	case authFailedMsg:
		m.submitting = false
		m.errMsg = formError(msg.err, msgLoginFailed)
		return m, nil

	case tea.KeyMsg:
		if m.form.handleKey(msg) {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.notice = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := m.form.trimmed(0)
			pass := m.form.value(1)
			if email == "" || pass == "" {
				m.errMsg = "Email and password are required."
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdLogin(models.LoginCredentials{Email: email, Password: pass})
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model]. Renders the login form, a submission indicator,
// and an optional notice or error message.
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Log in", m.submitting))
	writeStatus(&b, m.notice, m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), formHotKeys)
}

func (m *LoginModel) cmdLogin(credentials models.LoginCredentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		resp, err := auth.Login(ctx, credentials)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{user: resp.User}
	}
}
