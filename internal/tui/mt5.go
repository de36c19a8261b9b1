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

const (
	msgMT5LoadFailed     = "Could not load the MT5 account."
	msgMT5ActionFailed   = "The MT5 request failed. Please try again."
	msgManualStatsFailed = "Could not load the manual trading statistics."
	msgConfirmDelete     = "Press d again to delete the MT5 account."
	msgNoRunSelected     = "Select an algorithm run first."
)

type executionControl func(ctx context.Context, executionID int64) (models.ExecutionResponse, error)

// MT5Model shows the linked MetaTrader 5 account, its algorithm runs and
// their statistics. The selected run is controlled with x, p and u.
type MT5Model struct {
	ctx context.Context
	mt5 service.ClientMT5Service

	overview      *models.MT5Overview
	manual        *models.ManualStatistics
	cursor        int
	loading       bool
	busy          bool
	confirmDelete bool
	notice        string
	errMsg        string
}

func NewMT5Model(ctx context.Context, mt5 service.ClientMT5Service) *MT5Model {
	return &MT5Model{ctx: ctx, mt5: mt5}
}

func (m *MT5Model) Init() tea.Cmd {
	m.loading = true
	m.manual = nil
	m.confirmDelete = false
	return m.cmdLoad()
}

func (m *MT5Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg.Text
		return m, nil

	case mt5LoadedMsg:
		m.loading = false
		if isSessionTerminated(msg.err) {
			return m, sessionExpired
		}
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgMT5LoadFailed)
			return m, nil
		}
		m.errMsg = ""
		overview := msg.overview
		m.overview = &overview
		if m.cursor >= len(overview.Executions) {
			m.cursor = max(len(overview.Executions)-1, 0)
		}
		return m, nil

	case manualStatsLoadedMsg:
		m.busy = false
		if isSessionTerminated(msg.err) {
			return m, sessionExpired
		}
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgManualStatsFailed)
			return m, nil
		}
		m.errMsg = ""
		stats := msg.stats
		m.manual = &stats
		return m, nil

	case mt5ActionDoneMsg:
		m.busy = false
		if isSessionTerminated(msg.err) {
			return m, sessionExpired
		}
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgMT5ActionFailed)
			return m, nil
		}
		m.errMsg = ""
		m.notice = msg.message
		m.loading = true
		return m, m.cmdLoad()

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *MT5Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	deleteRequested := key.Matches(msg, keys.deleteAccount)
	if !deleteRequested {
		m.confirmDelete = false
	}

	switch {
	case key.Matches(msg, keys.back):
		return navigate(pageHome)
	case key.Matches(msg, keys.linkAccount):
		return navigate(pageMT5Account)
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case key.Matches(msg, keys.down):
		if m.overview != nil && m.cursor < len(m.overview.Executions)-1 {
			m.cursor++
		}
		return nil
	}

	if m.busy || m.loading || m.overview == nil || m.overview.Account == nil {
		return nil
	}

	switch {
	case key.Matches(msg, keys.refresh):
		return m.startAction(m.cmdRefreshStatus())
	case key.Matches(msg, keys.startAlgorithm):
		return navigate(pageMT5Start)
	case key.Matches(msg, keys.stopAlgorithm):
		return m.control(m.mt5.StopAlgorithm)
	case key.Matches(msg, keys.pauseAlgorithm):
		return m.control(m.mt5.PauseAlgorithm)
	case key.Matches(msg, keys.resume):
		return m.control(m.mt5.ResumeAlgorithm)
	case key.Matches(msg, keys.manualStats):
		return m.startAction(m.cmdManualStats())
	case deleteRequested:
		if !m.confirmDelete {
			m.confirmDelete = true
			m.notice = msgConfirmDelete
			return nil
		}
		m.confirmDelete = false
		return m.startAction(m.cmdDelete())
	}
	return nil
}

func (m *MT5Model) startAction(cmd tea.Cmd) tea.Cmd {
	m.busy = true
	m.notice = ""
	m.errMsg = ""
	return cmd
}

func (m *MT5Model) control(action executionControl) tea.Cmd {
	run, ok := m.selected()
	if !ok {
		m.errMsg = msgNoRunSelected
		return nil
	}

	ctx := m.ctx
	return m.startAction(func() tea.Msg {
		resp, err := action(ctx, run.ID)
		return mt5ActionDoneMsg{message: resp.Message, err: err}
	})
}

func (m *MT5Model) selected() (models.AlgorithmExecution, bool) {
	if m.overview == nil || m.cursor >= len(m.overview.Executions) {
		return models.AlgorithmExecution{}, false
	}
	return m.overview.Executions[m.cursor], true
}

func (m *MT5Model) View() string {
	var b strings.Builder

	switch {
	case m.overview == nil && m.loading:
		b.WriteString("Loading MT5 account...\n")
	case m.overview != nil && m.overview.Account == nil:
		b.WriteString("No MT5 account linked.\n")
		b.WriteString(helpStyle.Render("Press a to link your MetaTrader 5 account."))
		b.WriteString("\n")
	case m.overview != nil:
		m.writeAccount(&b)
	}
	writeStatus(&b, m.notice, m.errMsg)

	hotKeys := "a: link account │ esc: back"
	if m.overview != nil && m.overview.Account != nil {
		hotKeys = "r: refresh status │ a: edit account │ n: start │ x: stop │ p: pause │ u: resume │ t: manual stats │ d: delete │ esc: back"
	}
	return renderPage("METATRADER 5", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *MT5Model) writeAccount(b *strings.Builder) {
	a := m.overview.Account
	b.WriteString(row("Account", a.MaskedNumber, 16))
	b.WriteString(row("Broker", valueOrDash(a.BrokerName), 16))
	b.WriteString(row("Server", valueOrDash(a.Server), 16))
	b.WriteString(row("Type", string(a.AccountType), 16))
	b.WriteString(row("Status", string(a.ConnectionStatus), 16))
	b.WriteString(row("Last connected", formatTime(a.LastConnected), 16))
	if a.IsConnected {
		b.WriteString(row("Balance", money(a.Balance, a.Currency), 16))
		b.WriteString(row("Equity", money(a.Equity, a.Currency), 16))
		b.WriteString(row("Margin", money(a.Margin, a.Currency), 16))
	}

	s := m.overview.Statistics
	b.WriteString("\nStatistics\n")
	b.WriteString(fmt.Sprintf("  Running EAs %d │ Trades %d │ Win rate %.2f%% │ Profitability %.2f%%\n",
		s.RunningEAs, s.TotalTrades, s.WinRate, s.ProfitabilityPercent))
	for _, ea := range s.EAActivity {
		b.WriteString(fmt.Sprintf("  %s active for %s\n", fitText(ea.EAName, 30), ea.ActiveDuration))
	}

	b.WriteString("\nAlgorithm runs\n")
	if len(m.overview.Executions) == 0 {
		b.WriteString("  No algorithm runs\n")
	}
	for i, e := range m.overview.Executions {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-24s │ %-8s │ %-9s │ %10.2f │ %s\n",
			marker,
			fitText(e.AlgorithmName, 24),
			valueOrDash(e.Symbol),
			e.Status,
			e.ProfitLoss,
			e.StartedAt.Local().Format("2006-01-02 15:04"),
		))
	}

	if m.manual != nil {
		writeManualStats(b, *m.manual)
	}
}

func writeManualStats(b *strings.Builder, s models.ManualStatistics) {
	b.WriteString("\nManual trading (last 365 days)\n")
	b.WriteString(fmt.Sprintf("  Trades %d │ Win rate %.2f%% │ Profitability %.2f%%\n",
		s.TotalTrades, s.WinRate, s.ProfitabilityPercent))
	for _, session := range s.Sessions {
		b.WriteString(fmt.Sprintf("  %s │ %3d trades │ %10.2f\n",
			session.SessionStart.UTC().Format(time.DateOnly), session.TradesExecuted, session.ProfitLoss))
	}
}

func money(v float64, currency string) string {
	return strings.TrimSpace(fmt.Sprintf("%.2f %s", v, currency))
}

func (m *MT5Model) cmdLoad() tea.Cmd {
	ctx := m.ctx
	mt5 := m.mt5

	return func() tea.Msg {
		overview, err := mt5.Overview(ctx)
		return mt5LoadedMsg{overview: overview, err: err}
	}
}

func (m *MT5Model) cmdRefreshStatus() tea.Cmd {
	ctx := m.ctx
	mt5 := m.mt5

	return func() tea.Msg {
		resp, err := mt5.RefreshStatus(ctx)
		message := resp.Message
		if resp.Connection != nil && !resp.Connection.OK() {
			message = resp.Connection.Message
		}
		return mt5ActionDoneMsg{message: message, err: err}
	}
}

func (m *MT5Model) cmdManualStats() tea.Cmd {
	ctx := m.ctx
	mt5 := m.mt5

	return func() tea.Msg {
		stats, err := mt5.ManualStatistics(ctx)
		return manualStatsLoadedMsg{stats: stats, err: err}
	}
}

func (m *MT5Model) cmdDelete() tea.Cmd {
	ctx := m.ctx
	mt5 := m.mt5

	return func() tea.Msg {
		resp, err := mt5.DeleteAccount(ctx)
		return mt5ActionDoneMsg{message: resp.Message, err: err}
	}
}
