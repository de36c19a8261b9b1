package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogin = Login{Login: "50012345", Password: "terminal-pass", Server: "Exness-MT5Trial"}

func newTestTerminal(t *testing.T, handler http.HandlerFunc) Terminal {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTerminal(config.MT5{BridgeURL: srv.URL, BridgeTimeout: 5 * time.Second}, logger.Nop())
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestTerminal_Verify(t *testing.T) {
	var got Login
	term := newTestTerminal(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, verifyPath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, http.StatusOK, models.TerminalAccount{Login: "50012345", Balance: 1000, Equity: 1010.5, Currency: "USD"})
	})

	account, err := term.Verify(context.Background(), testLogin)
	require.NoError(t, err)

	assert.Equal(t, testLogin, got)
	assert.InDelta(t, 1010.5, account.Equity, 1e-9)
	assert.Equal(t, "USD", account.Currency)
}

func TestTerminal_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "wrong password", status: http.StatusUnauthorized, want: ErrLoginRejected},
		{name: "account locked", status: http.StatusForbidden, want: ErrLoginRejected},
		{name: "unknown handle", status: http.StatusNotFound, want: ErrExpertNotFound},
		{name: "terminal crashed", status: http.StatusBadGateway, want: ErrBridgeUnavailable},
		{name: "bad symbol", status: http.StatusUnprocessableEntity, want: ErrRequestRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := newTestTerminal(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, errorBody{Error: "terminal says no"})
			})

			_, err := term.Verify(context.Background(), testLogin)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "terminal says no")
		})
	}
}

func TestTerminal_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	term := NewTerminal(config.MT5{BridgeURL: srv.URL, BridgeTimeout: time.Second}, logger.Nop())
	_, err := term.Verify(context.Background(), testLogin)
	assert.ErrorIs(t, err, ErrBridgeUnavailable)
}

func TestTerminal_Deals(t *testing.T) {
	from := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var got dealsRequest
	term := newTestTerminal(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, dealsPath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, http.StatusOK, dealsResponse{Deals: []models.Deal{
			{Ticket: 1, Symbol: "EURUSD", Profit: 12.5},
			{Ticket: 2, Symbol: "XAUUSD", Profit: -3, Magic: 777},
		}})
	})

	deals, err := term.Deals(context.Background(), testLogin, from, to)
	require.NoError(t, err)

	require.Len(t, deals, 2)
	assert.Equal(t, int64(777), deals[1].Magic)
	assert.True(t, got.From.Equal(from))
	assert.True(t, got.To.Equal(to))
	assert.Equal(t, testLogin, got.Login)
}

func TestTerminal_StartExpert(t *testing.T) {
	var got startRequest
	term := newTestTerminal(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, startPath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, http.StatusOK, StartedExpert{Handle: "ea-1", CurrentRisk: 0.75})
	})

	started, err := term.StartExpert(context.Background(), testLogin, Expert{Name: "Candy EA", Symbol: "EURUSD", MaxRiskPercent: 2})
	require.NoError(t, err)

	assert.Equal(t, StartedExpert{Handle: "ea-1", CurrentRisk: 0.75}, started)
	assert.Equal(t, "Candy EA", got.Name)
	assert.Equal(t, "EURUSD", got.Symbol)
	assert.Equal(t, testLogin.Password, got.Password)
}

func TestTerminal_StartExpert_MissingHandle(t *testing.T) {
	term := newTestTerminal(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, StartedExpert{})
	})

	_, err := term.StartExpert(context.Background(), testLogin, Expert{Name: "Candy EA"})
	assert.ErrorIs(t, err, ErrBridgeUnavailable)
}

func TestTerminal_ExpertControl(t *testing.T) {
	var paths []string
	term := newTestTerminal(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	require.NoError(t, term.PauseExpert(ctx, "ea-1"))
	require.NoError(t, term.ResumeExpert(ctx, "ea-1"))
	require.NoError(t, term.StopExpert(ctx, "ea/2"))

	assert.Equal(t, []string{"/experts/ea-1/pause", "/experts/ea-1/resume", "/experts/ea%2F2/stop"}, paths)
}

func TestNewTerminal_Disabled(t *testing.T) {
	term := NewTerminal(config.MT5{}, logger.Nop())
	ctx := context.Background()

	_, err := term.Verify(ctx, testLogin)
	assert.ErrorIs(t, err, ErrBridgeDisabled)
	_, err = term.Deals(ctx, testLogin, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, ErrBridgeDisabled)
	_, err = term.StartExpert(ctx, testLogin, Expert{})
	assert.ErrorIs(t, err, ErrBridgeDisabled)
	assert.ErrorIs(t, term.StopExpert(ctx, "h"), ErrBridgeDisabled)
	assert.ErrorIs(t, term.PauseExpert(ctx, "h"), ErrBridgeDisabled)
	assert.ErrorIs(t, term.ResumeExpert(ctx, "h"), ErrBridgeDisabled)
}
