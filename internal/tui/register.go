package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const msgRegistrationFailed = "Registration failed. Please try again."

const (
	registerEmail = iota
	registerUsername
	registerFirstName
	registerLastName
	registerPassword
	registerPasswordConfirm
)

// RegisterModel is the Bubble Tea model for the registration screen. The
// server signs the new account in, so success ends the auth flow the same
// way a login does.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			fieldSpec{label: "Email", placeholder: "email", charLimit: 254},
			fieldSpec{label: "Username", placeholder: "username", charLimit: 150},
			fieldSpec{label: "First name", placeholder: "first name", charLimit: 150},
			fieldSpec{label: "Last name", placeholder: "last name", charLimit: 150},
			fieldSpec{label: "Password", placeholder: "password", secret: true},
			fieldSpec{label: "Repeat", placeholder: "repeat password", secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Required fields are checked locally; the
// server reports everything else, including mismatched passwords, as field
// errors.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authFailedMsg:
		m.submitting = false
		m.errMsg = formError(msg.err, msgRegistrationFailed)
		return m, nil

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

			credentials := models.RegisterCredentials{
				Email:           m.form.trimmed(registerEmail),
				Username:        m.form.trimmed(registerUsername),
				FirstName:       m.form.trimmed(registerFirstName),
				LastName:        m.form.trimmed(registerLastName),
				Password:        m.form.value(registerPassword),
				PasswordConfirm: m.form.value(registerPasswordConfirm),
			}
			if credentials.Email == "" || credentials.Username == "" || credentials.Password == "" {
				m.errMsg = "Email, username and password are required."
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(credentials)
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Create account", m.submitting))
	writeStatus(&b, "", m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), formHotKeys)
}

func (m *RegisterModel) cmdRegister(credentials models.RegisterCredentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		resp, err := auth.Register(ctx, credentials)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{user: resp.User}
	}
}
