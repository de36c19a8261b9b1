package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const (
	msgStartFailed       = "Could not start the algorithm. Please try again."
	msgAlgorithmRequired = "Algorithm name is required."
)

const (
	startName = iota
	startSymbol
)

type StartAlgorithmModel struct {
	ctx context.Context
	mt5 service.ClientMT5Service

	form       form
	submitting bool
	errMsg     string
}

func NewStartAlgorithmModel(ctx context.Context, mt5 service.ClientMT5Service) *StartAlgorithmModel {
	return &StartAlgorithmModel{
		ctx: ctx,
		mt5: mt5,
		form: newForm(
			fieldSpec{label: "Algorithm", placeholder: "expert advisor name", charLimit: 100},
			fieldSpec{label: "Symbol", placeholder: "EURUSD (optional)", charLimit: 32},
		),
	}
}

func (m *StartAlgorithmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *StartAlgorithmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case algorithmStartedMsg:
		m.submitting = false
		if isSessionTerminated(msg.err) {
			return m, sessionExpired
		}
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgStartFailed)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		notice := startNotice(msg.resp)
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMT5, Payload: Notice{Text: notice}}
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
			return m, navigate(pageMT5)
		case "enter":
			if m.submitting {
				return m, nil
			}

			request := models.StartAlgorithmRequest{
				AlgorithmName: m.form.trimmed(startName),
				Symbol:        m.form.trimmed(startSymbol),
			}
			if request.AlgorithmName == "" {
				m.errMsg = msgAlgorithmRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdStart(request)
		}
	}

	return m, m.form.update(msg)
}

func (m *StartAlgorithmModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Start", m.submitting))
	writeStatus(&b, "", m.errMsg)

	return renderPage("START ALGORITHM", strings.TrimRight(b.String(), "\n"), formHotKeys)
}

func (m *StartAlgorithmModel) cmdStart(request models.StartAlgorithmRequest) tea.Cmd {
	ctx := m.ctx
	mt5 := m.mt5

	return func() tea.Msg {
		resp, err := mt5.StartAlgorithm(ctx, request)
		return algorithmStartedMsg{resp: resp, err: err}
	}
}

func startNotice(resp models.StartAlgorithmResponse) string {
	risk := resp.RiskManagement
	return fmt.Sprintf("%s (risk %.2f%% of max %.2f%%)", resp.Message, risk.CurrentRisk, risk.MaxRiskPercent)
}
