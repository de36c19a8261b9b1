package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

const msgSubscriptionsFailed = "Could not load subscriptions."

type SubscriptionsModel struct {
	ctx     context.Context
	account service.ClientAccountService

	resp    *models.SubscriptionsResponse
	loading bool
	errMsg  string
}

func NewSubscriptionsModel(ctx context.Context, account service.ClientAccountService) *SubscriptionsModel {
	return &SubscriptionsModel{ctx: ctx, account: account}
}

func (m *SubscriptionsModel) Init() tea.Cmd {
	m.loading = true
	ctx := m.ctx
	account := m.account

	return func() tea.Msg {
		resp, err := account.GetSubscriptions(ctx)
		return subscriptionsLoadedMsg{resp: resp, err: err}
	}
}

func (m *SubscriptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case subscriptionsLoadedMsg:
		m.loading = false
		if isSessionTerminated(msg.err) {
			return m, sessionExpired
		}
		if msg.err != nil {
			m.errMsg = formError(msg.err, msgSubscriptionsFailed)
			return m, nil
		}
		m.errMsg = ""
		m.resp = &msg.resp
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.back):
			return m, navigate(pageHome)
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *SubscriptionsModel) View() string {
	var b strings.Builder

	switch {
	case m.resp == nil && m.loading:
		b.WriteString("Loading subscriptions...\n")
	case m.resp != nil:
		b.WriteString("Your subscriptions\n")
		if len(m.resp.Subscriptions) == 0 {
			b.WriteString("  No active subscriptions\n")
		}
		for _, s := range m.resp.Subscriptions {
			state := "inactive"
			if s.IsActive {
				state = "active"
			}
			b.WriteString(fmt.Sprintf("  %s (%s)\n", s.Plan.Name, state))
		}

		if len(m.resp.Plans) > 0 {
			b.WriteString("\nAvailable plans\n")
			b.WriteString(fmt.Sprintf("  %-12s │ %-12s │ %-8s │ %s\n", "Plan", "Price", "Days", "Features"))
			for _, p := range m.resp.Plans {
				b.WriteString(fmt.Sprintf("  %-12s │ %-12s │ %-8d │ %s\n",
					fitText(p.Name, 12),
					fitText(p.Price+" "+p.Currency, 12),
					p.DurationDays,
					fitText(strings.Join(p.Features, ", "), 50),
				))
			}
		}
	}
	writeStatus(&b, "", m.errMsg)

	return renderPage("SUBSCRIPTIONS", strings.TrimRight(b.String(), "\n"), "r: refresh │ esc: back")
}
