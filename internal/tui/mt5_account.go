package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const (
	msgMT5SaveFailed       = "Could not save the MT5 account. Please try again."
	msgMT5TestFailed       = "Could not test the connection. Please try again."
	msgMT5FieldsRequired   = "Account number, broker and server are required."
	msgMT5PasswordRequired = "Enter the password to test the connection."
	msgMT5AccountType      = `Account type must be "demo" or "real".`
)

const (
	mt5Number = iota
	mt5Broker
	mt5Server
	mt5Password
	mt5Type
)

// MT5AccountModel links or updates the MetaTrader 5 account. enter saves
// it, ctrl+t only tries the login.
type MT5AccountModel struct {
	ctx context.Context
	mt5 service.ClientMT5Service

	form       form
	submitting bool
	notice     string
	errMsg     string
}

func NewMT5AccountModel(ctx context.Context, mt5 service.ClientMT5Service) *MT5AccountModel {
	return &MT5AccountModel{
		ctx: ctx,
		mt5: mt5,
		form: newForm(
			fieldSpec{label: "Account number", placeholder: "50012345", charLimit: 20},
			fieldSpec{label: "Broker", placeholder: "Exness", charLimit: 100},
			fieldSpec{label: "Server", placeholder: "Exness-MT5Trial", charLimit: 100},
			fieldSpec{label: "Password", placeholder: "keep the stored one", secret: true, charLimit: 128},
			fieldSpec{label: "Type", placeholder: "demo or real"},
		),
	}
}

func (m *MT5AccountModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *MT5AccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mt5AccountSavedMsg:
		m.submitting = false
		if isSessionTerminated(msg.err) {
			return m, sessionExpired
		}
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgMT5SaveFailed)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		notice := msg.resp.Message
		if c := msg.resp.Connection; c != nil && !c.OK() {
			notice = c.Message
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMT5, Payload: Notice{Text: notice}}
		}

	case connectionTestedMsg:
		m.submitting = false
		if isSessionTerminated(msg.err) {
			return m, sessionExpired
		}
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgMT5TestFailed)
			return m, nil
		}
		if !msg.result.OK() {
			m.errMsg = strings.TrimSpace(msg.result.Message + " " + msg.result.Error)
			return m, nil
		}
		m.errMsg = ""
		m.notice = msg.result.Message
		return m, nil

	case tea.KeyMsg:
		if m.form.handleKey(msg) {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.back):
			m.submitting = false
			m.notice = ""
			m.errMsg = ""
			m.form.reset()
			return m, navigate(pageMT5)
		case key.Matches(msg, keys.enter):
			return m, m.submit(false)
		case key.Matches(msg, keys.testConnection):
			return m, m.submit(true)
		}
	}

	return m, m.form.update(msg)
}

func (m *MT5AccountModel) submit(test bool) tea.Cmd {
	if m.submitting {
		return nil
	}

	credentials := models.MT5Credentials{
		AccountNumber: m.form.trimmed(mt5Number),
		BrokerName:    m.form.trimmed(mt5Broker),
		Server:        m.form.trimmed(mt5Server),
		Password:      m.form.value(mt5Password),
		AccountType:   models.MT5AccountType(strings.ToLower(m.form.trimmed(mt5Type))),
	}

	switch {
	case credentials.AccountNumber == "" || credentials.BrokerName == "" || credentials.Server == "":
		m.errMsg = msgMT5FieldsRequired
		return nil
	case credentials.AccountType != "" && credentials.AccountType != models.MT5Demo && credentials.AccountType != models.MT5Real:
		m.errMsg = msgMT5AccountType
		return nil
	case test && credentials.Password == "":
		m.errMsg = msgMT5PasswordRequired
		return nil
	}

	m.notice = ""
	m.errMsg = ""
	m.submitting = true
	if test {
		return m.cmdTest(credentials)
	}
	return m.cmdSave(credentials)
}

func (m *MT5AccountModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Save account", m.submitting))
	writeStatus(&b, m.notice, m.errMsg)

	return renderPage("LINK MT5 ACCOUNT", strings.TrimRight(b.String(), "\n"), formHotKeys+" │ ctrl+t: test connection")
}

func (m *MT5AccountModel) cmdSave(credentials models.MT5Credentials) tea.Cmd {
	ctx := m.ctx
	mt5 := m.mt5

	return func() tea.Msg {
		resp, err := mt5.SaveAccount(ctx, credentials)
		return mt5AccountSavedMsg{resp: resp, err: err}
	}
}

func (m *MT5AccountModel) cmdTest(credentials models.MT5Credentials) tea.Cmd {
	ctx := m.ctx
	mt5 := m.mt5

	return func() tea.Msg {
		result, err := mt5.TestConnection(ctx, credentials)
		return connectionTestedMsg{result: result, err: err}
	}
}
