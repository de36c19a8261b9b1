package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/heartbreaksandvodka/project-plusminus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMT5Account(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/mt5/account/", r.URL.Path)
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id":                    3,
			"masked_account_number": "****2345",
			"broker_name":           "Exness",
			"connection_status":     "connected",
			"is_connected":          true,
		})
	})

	account, err := a.GetMT5Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "****2345", account.MaskedNumber)
	assert.Equal(t, models.ConnectionConnected, account.ConnectionStatus)
	assert.True(t, account.IsConnected)
}

func TestGetMT5Account_NotConfigured(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{
			"error_type": "mt5_account_required",
			"message":    "Please set up your MT5 account first.",
		})
	})

	_, err := a.GetMT5Account(context.Background())
	require.ErrorIs(t, err, ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "mt5_account_required", apiErr.ErrorType)
}

func TestSaveMT5Account(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/mt5/account/", r.URL.Path)

		var body models.MT5Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "50012345", body.AccountNumber)
		assert.Equal(t, "hunter2", body.Password)

		writeJSON(t, w, http.StatusCreated, models.MT5AccountResponse{
			Message: "Account connected successfully",
			Account: models.MT5Account{ID: 3, ConnectionStatus: models.ConnectionConnected},
		})
	})

	resp, err := a.SaveMT5Account(context.Background(), models.MT5Credentials{
		AccountNumber: "50012345", BrokerName: "Exness", Server: "Exness-MT5Trial", Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Account.ID)
}

func TestTestMT5Connection(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantOK  bool
		wantErr error
	}{
		{
			name:   "login accepted",
			status: http.StatusOK,
			body: models.ConnectionResult{
				Status: models.ConnectionResultSuccess, Message: "Connection successful",
				Data: &models.TerminalAccount{Login: "50012345", Balance: 1000},
			},
			wantOK: true,
		},
		{
			name:   "login refused",
			status: http.StatusBadRequest,
			body:   models.ConnectionResult{Status: models.ConnectionResultError, Message: "Connection test failed", Error: "invalid account"},
		},
		{
			name:    "field errors",
			status:  http.StatusBadRequest,
			body:    map[string][]string{"password": {"This field is required."}},
			wantErr: ErrValidation,
		},
		{
			name:    "terminal down",
			status:  http.StatusServiceUnavailable,
			body:    map[string]string{"error_type": "service_unavailable", "message": "MetaTrader 5 terminal is not available"},
			wantErr: ErrServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/mt5/test-connection/", r.URL.Path)
				writeJSON(t, w, tt.status, tt.body)
			})

			result, err := a.TestMT5Connection(context.Background(), models.MT5Credentials{AccountNumber: "50012345", Password: "x"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, result.OK())
			if !tt.wantOK {
				assert.Equal(t, "invalid account", result.Error)
			}
		})
	}
}

func TestAlgorithmControlPaths(t *testing.T) {
	tests := []struct {
		name string
		call func(ServerAdapter) (models.ExecutionResponse, error)
		path string
	}{
		{name: "stop", call: func(a ServerAdapter) (models.ExecutionResponse, error) {
			return a.StopAlgorithm(context.Background(), 11)
		}, path: "/api/mt5/stop-algorithm/11/"},
		{name: "pause", call: func(a ServerAdapter) (models.ExecutionResponse, error) {
			return a.PauseAlgorithm(context.Background(), 11)
		}, path: "/api/mt5/pause-algorithm/11/"},
		{name: "resume", call: func(a ServerAdapter) (models.ExecutionResponse, error) {
			return a.ResumeAlgorithm(context.Background(), 11)
		}, path: "/api/mt5/resume-algorithm/11/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				writeJSON(t, w, http.StatusOK, models.ExecutionResponse{
					Message:   "ok",
					Execution: models.AlgorithmExecution{ID: 11, Status: models.ExecutionPaused},
				})
			})

			resp, err := tt.call(a)
			require.NoError(t, err)
			assert.Equal(t, int64(11), resp.Execution.ID)
		})
	}
}

func TestStartAlgorithm_NotConnected(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/mt5/start-algorithm/", r.URL.Path)
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"message": "MT5 account not connected"})
	})

	_, err := a.StartAlgorithm(context.Background(), models.StartAlgorithmRequest{AlgorithmName: "Candy EA"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "MT5 account not connected", UserMessage(err, "fallback"))
}

func TestMT5Listings(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/mt5/algorithms/":
			writeJSON(t, w, http.StatusOK, []models.AlgorithmExecution{{ID: 11, AlgorithmName: "Candy EA", Status: models.ExecutionRunning}})
		case "/api/mt5/account-statistics/":
			writeJSON(t, w, http.StatusOK, models.AccountStatistics{TotalTrades: 7, RunningEAs: 1})
		case "/api/mt5/manual-statistics/":
			writeJSON(t, w, http.StatusOK, models.ManualStatistics{TotalTrades: 2, Sessions: []models.TradingSession{{TradesExecuted: 2}}})
		case "/api/mt5/delete-account/":
			assert.Equal(t, http.MethodDelete, r.Method)
			writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "MT5 account deleted successfully"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	executions, err := a.ListAlgorithmExecutions(ctx)
	require.NoError(t, err)
	require.Len(t, executions, 1)
	assert.Equal(t, "Candy EA", executions[0].AlgorithmName)

	stats, err := a.GetAccountStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalTrades)

	manual, err := a.GetManualStatistics(ctx)
	require.NoError(t, err)
	assert.Len(t, manual.Sessions, 1)

	msg, err := a.DeleteMT5Account(ctx)
	require.NoError(t, err)
	assert.Equal(t, "MT5 account deleted successfully", msg.Message)
}
