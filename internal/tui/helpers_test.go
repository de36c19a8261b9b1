package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/mock"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"go.uber.org/mock/gomock"
)

var testCtx = context.Background()

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlT    = tea.KeyMsg{Type: tea.KeyCtrlT}
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// collect runs cmd and flattens batches into the messages they produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collect(c)...)
	}
	return msgs
}

// find returns the first message of type T.
func find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

type testServices struct {
	auth    *mock.MockClientAuthService
	account *mock.MockClientAccountService
	mt5     *mock.MockClientMT5Service
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	ctrl := gomock.NewController(t)
	return testServices{
		auth:    mock.NewMockClientAuthService(ctrl),
		account: mock.NewMockClientAccountService(ctrl),
		mt5:     mock.NewMockClientMT5Service(ctrl),
	}
}

func testUser() models.User {
	return models.User{
		ID:        7,
		Email:     "jane@example.com",
		Username:  "jane",
		FirstName: "Jane",
		LastName:  "Doe",
		Bio:       "hello",
	}
}
