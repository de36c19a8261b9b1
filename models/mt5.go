package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// MT5AccountType is the kind of MetaTrader 5 account.
type MT5AccountType string

const (
	MT5Demo MT5AccountType = "demo"
	MT5Real MT5AccountType = "real"
)

// ConnectionStatus is the last known state of the terminal connection.
type ConnectionStatus string

const (
	ConnectionPending      ConnectionStatus = "pending"
	ConnectionConnected    ConnectionStatus = "connected"
	ConnectionDisconnected ConnectionStatus = "disconnected"
	ConnectionError        ConnectionStatus = "error"
)

// MT5Account is the MetaTrader 5 account linked to a user. A user has at
// most one.
type MT5Account struct {
	ID               int64            `json:"id"`
	UserID           int64            `json:"-"`
	AccountNumber    string           `json:"-"`
	MaskedNumber     string           `json:"masked_account_number"`
	BrokerName       string           `json:"broker_name"`
	Server           string           `json:"server"`
	AccountType      MT5AccountType   `json:"account_type"`
	ConnectionStatus ConnectionStatus `json:"connection_status"`
	LastConnected    *time.Time       `json:"last_connected"`
	Balance          float64          `json:"balance"`
	Equity           float64          `json:"equity"`
	Margin           float64          `json:"margin"`
	Currency         string           `json:"currency"`
	IsConnected      bool             `json:"is_connected"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`

	// SealedPassword is the encrypted terminal password.
	SealedPassword string `json:"-"`
}

// Present fills the derived fields shown to clients.
func (a MT5Account) Present() MT5Account {
	a.MaskedNumber = MaskAccountNumber(a.AccountNumber)
	a.IsConnected = a.ConnectionStatus == ConnectionConnected
	return a
}

// MaskAccountNumber keeps the last four digits.
func MaskAccountNumber(number string) string {
	if len(number) <= 4 {
		return "****" + number
	}
	return "****" + number[len(number)-4:]
}

// MT5Credentials is the body of POST /mt5/account/ and
// POST /mt5/test-connection/. Password is write-only.
type MT5Credentials struct {
	AccountNumber string         `json:"account_number" validate:"required,number,max=20"`
	BrokerName    string         `json:"broker_name" validate:"required,max=100"`
	Server        string         `json:"server" validate:"required,max=100"`
	Password      string         `json:"password,omitempty" validate:"max=128"`
	AccountType   MT5AccountType `json:"account_type,omitempty" validate:"oneof=demo real"`
}

// Normalize trims the text fields and defaults the account type to demo.
func (c MT5Credentials) Normalize() MT5Credentials {
	c.AccountNumber = strings.TrimSpace(c.AccountNumber)
	c.BrokerName = strings.TrimSpace(c.BrokerName)
	c.Server = strings.TrimSpace(c.Server)
	if c.AccountType == "" {
		c.AccountType = MT5Demo
	}
	return c
}

// TerminalAccount is what the terminal reports after a successful login.
type TerminalAccount struct {
	Login    string  `json:"login"`
	Server   string  `json:"server"`
	Company  string  `json:"company,omitempty"`
	Balance  float64 `json:"balance"`
	Equity   float64 `json:"equity"`
	Margin   float64 `json:"margin"`
	Currency string  `json:"currency"`
	Leverage int     `json:"leverage,omitempty"`
}

// ConnectionResult is the outcome of a terminal login attempt.
type ConnectionResult struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    *TerminalAccount `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// Connection result statuses.
const (
	ConnectionResultSuccess = "success"
	ConnectionResultError   = "error"
)

// OK reports whether the login succeeded.
func (r ConnectionResult) OK() bool {
	return r.Status == ConnectionResultSuccess
}

// MT5AccountResponse is returned when the account is saved or refreshed.
type MT5AccountResponse struct {
	Message    string            `json:"message"`
	Account    MT5Account        `json:"account"`
	Connection *ConnectionResult `json:"connection,omitempty"`
}

// ExecutionStatus is the lifecycle state of an algorithm run.
type ExecutionStatus string

const (
	ExecutionRunning   ExecutionStatus = "running"
	ExecutionPaused    ExecutionStatus = "paused"
	ExecutionStopped   ExecutionStatus = "stopped"
	ExecutionError     ExecutionStatus = "error"
	ExecutionCompleted ExecutionStatus = "completed"
)

// Active reports whether the run still holds a terminal expert.
func (s ExecutionStatus) Active() bool {
	return s == ExecutionRunning || s == ExecutionPaused
}

// AlgorithmExecution is one run of an expert advisor on the account.
type AlgorithmExecution struct {
	ID             int64           `json:"id"`
	AccountID      int64           `json:"-"`
	AlgorithmName  string          `json:"algorithm_name"`
	Symbol         string          `json:"symbol,omitempty"`
	Status         ExecutionStatus `json:"execution_status"`
	StartedAt      time.Time       `json:"started_at"`
	StoppedAt      *time.Time      `json:"stopped_at"`
	ProfitLoss     float64         `json:"profit_loss"`
	TradesCount    int             `json:"trades_count"`
	ErrorMessage   string          `json:"error_message,omitempty"`
	LastHeartbeat  *time.Time      `json:"last_heartbeat"`
	TerminalHandle string          `json:"-"`
}

// StartAlgorithmRequest is the body of POST /mt5/start-algorithm/.
type StartAlgorithmRequest struct {
	AlgorithmName string `json:"algorithm_name" validate:"max=100"`
	Symbol        string `json:"symbol,omitempty" validate:"max=32"`
}

// RiskManagement reports the risk ceiling and the exposure when an
// algorithm starts.
type RiskManagement struct {
	MaxRiskPercent float64 `json:"max_risk_percent"`
	CurrentRisk    float64 `json:"current_risk"`
}

// StartAlgorithmResponse is returned by POST /mt5/start-algorithm/.
type StartAlgorithmResponse struct {
	Message        string             `json:"message"`
	Execution      AlgorithmExecution `json:"execution"`
	RiskManagement RiskManagement     `json:"risk_management"`
}

// ExecutionResponse is returned by stop, pause and resume.
type ExecutionResponse struct {
	Message   string             `json:"message"`
	Execution AlgorithmExecution `json:"execution"`
}

// EAActivity describes a running expert advisor.
type EAActivity struct {
	EAName         string    `json:"ea_name"`
	ActiveDuration string    `json:"active_duration"`
	StartTime      time.Time `json:"start_time"`
}

// AccountStatistics summarizes the algorithm runs of the account.
type AccountStatistics struct {
	EAActivity           []EAActivity `json:"ea_activity"`
	ProfitabilityPercent float64      `json:"profitability_percent"`
	TotalTrades          int          `json:"total_trades"`
	WinRate              float64      `json:"win_rate"`
	RunningEAs           int          `json:"running_eas"`
}

// Deal is a closed deal reported by the terminal. Magic is zero for deals
// placed by hand.
type Deal struct {
	Ticket int64     `json:"ticket"`
	Time   time.Time `json:"time"`
	Symbol string    `json:"symbol"`
	Profit float64   `json:"profit"`
	Magic  int64     `json:"magic"`
}

// TradingSession groups the manual deals of one day.
type TradingSession struct {
	SessionStart   time.Time `json:"session_start"`
	SessionEnd     time.Time `json:"session_end"`
	TradesExecuted int       `json:"trades_executed"`
	ProfitLoss     float64   `json:"profit_loss"`
}

// ManualStatistics summarizes the manual deals of the last year.
type ManualStatistics struct {
	TotalTrades          int              `json:"total_trades"`
	ProfitabilityPercent float64          `json:"profitability_percent"`
	WinRate              float64          `json:"win_rate"`
	Sessions             []TradingSession `json:"sessions"`
}

// MT5Overview is what the client shows on the MT5 page. Account is nil
// while no account is linked.
type MT5Overview struct {
	Account    *MT5Account
	Executions []AlgorithmExecution
	Statistics AccountStatistics
}

// FormatActiveDuration renders d as "2d 3h 4m", dropping the days part when
// it is zero.
func FormatActiveDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// ProfitabilityPercent is the profit relative to the balance before it was
// made, rounded to two places. It is zero when that balance is zero.
func ProfitabilityPercent(balance, profit float64) float64 {
	base := balance - profit
	if base == 0 {
		return 0
	}
	return Round2(profit / base * 100)
}

// Percent returns part/total as a percentage rounded to two places.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(part) / float64(total) * 100)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
