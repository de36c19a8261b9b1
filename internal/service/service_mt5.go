package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/bridge"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/crypto"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/internal/validators"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// manualHistory is how far back manual deals are read.
const manualHistory = 365 * 24 * time.Hour

type mt5Service struct {
	repository     store.MT5Repository
	terminal       bridge.Terminal
	cipher         crypto.CredentialCipher
	maxRiskPercent float64
	logger         *logger.Logger

	now func() time.Time
}

func NewMT5Service(repository store.MT5Repository, terminal bridge.Terminal, cipher crypto.CredentialCipher, cfg config.MT5, logger *logger.Logger) MT5Service {
	return &mt5Service{
		repository:     repository,
		terminal:       terminal,
		cipher:         cipher,
		maxRiskPercent: cfg.MaxRiskPercent,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *mt5Service) GetAccount(ctx context.Context, userID int64) (models.MT5Account, error) {
	account, err := s.repository.FindAccount(ctx, userID)
	if err != nil {
		return models.MT5Account{}, fmt.Errorf("mt5 account lookup failed: %w", err)
	}
	return account.Present(), nil
}

// SaveAccount keeps the stored password when none is given. The sealed
// password is bound to the account number, so changing the number needs the
// password again.
func (s *mt5Service) SaveAccount(ctx context.Context, userID int64, credentials models.MT5Credentials) (models.MT5AccountResponse, error) {
	credentials = credentials.Normalize()

	existing, err := s.repository.FindAccount(ctx, userID)
	found := err == nil
	if err != nil && !errors.Is(err, store.ErrMT5AccountNotFound) {
		return models.MT5AccountResponse{}, fmt.Errorf("mt5 account lookup failed: %w", err)
	}

	account := models.MT5Account{
		UserID:           userID,
		AccountNumber:    credentials.AccountNumber,
		BrokerName:       credentials.BrokerName,
		Server:           credentials.Server,
		AccountType:      credentials.AccountType,
		ConnectionStatus: models.ConnectionPending,
	}

	if credentials.Password == "" {
		if !found || existing.AccountNumber != credentials.AccountNumber {
			return models.MT5AccountResponse{}, fmt.Errorf("mt5 password is missing: %w", validators.NewFieldError("password", app.MsgFieldRequired))
		}
		if existing.Server == credentials.Server {
			account.ConnectionStatus = existing.ConnectionStatus
		}
	} else {
		sealed, sealErr := s.cipher.Seal(credentials.Password, credentials.AccountNumber)
		if sealErr != nil {
			return models.MT5AccountResponse{}, fmt.Errorf("sealing mt5 password failed: %w", sealErr)
		}
		account.SealedPassword = sealed
	}

	saved, err := s.repository.SaveAccount(ctx, account)
	if err != nil {
		return models.MT5AccountResponse{}, fmt.Errorf("saving mt5 account failed: %w", err)
	}

	response := models.MT5AccountResponse{Message: app.MsgMT5AccountSaved, Account: saved.Present()}
	if credentials.Password == "" {
		return response, nil
	}

	result, updated, err := s.verify(ctx, saved, credentials.Password)
	if err != nil {
		return models.MT5AccountResponse{}, err
	}
	response.Account = updated.Present()
	response.Connection = &result
	return response, nil
}

func (s *mt5Service) TestConnection(ctx context.Context, credentials models.MT5Credentials) (models.ConnectionResult, error) {
	credentials = credentials.Normalize()

	reported, err := s.terminal.Verify(ctx, bridge.Login{
		Login:    credentials.AccountNumber,
		Password: credentials.Password,
		Server:   credentials.Server,
	})
	switch {
	case err == nil:
		return models.ConnectionResult{Status: models.ConnectionResultSuccess, Message: app.MsgConnectionTestOK, Data: &reported}, nil
	case isTerminalDown(err):
		return models.ConnectionResult{}, fmt.Errorf("%w: %w", ErrTerminalUnavailable, err)
	default:
		return models.ConnectionResult{Status: models.ConnectionResultError, Message: app.MsgConnectionTestFailed, Error: err.Error()}, nil
	}
}

func (s *mt5Service) RefreshStatus(ctx context.Context, userID int64) (models.MT5AccountResponse, error) {
	account, err := s.repository.FindAccount(ctx, userID)
	if err != nil {
		return models.MT5AccountResponse{}, fmt.Errorf("mt5 account lookup failed: %w", err)
	}

	var (
		result  models.ConnectionResult
		updated models.MT5Account
	)

	password, openErr := s.cipher.Open(account.SealedPassword, account.AccountNumber)
	if openErr != nil {
		logger.FromContext(ctx).Warn().Err(openErr).Int64("account_id", account.ID).Msg("stored mt5 password does not open")
		updated, err = s.repository.UpdateConnection(ctx, account.ID, models.ConnectionError, nil, s.now())
		if err != nil {
			return models.MT5AccountResponse{}, fmt.Errorf("updating connection status failed: %w", err)
		}
		result = models.ConnectionResult{Status: models.ConnectionResultError, Message: app.MsgStoredPasswordUnreadable, Error: openErr.Error()}
	} else {
		result, updated, err = s.verify(ctx, account, password)
		if err != nil {
			return models.MT5AccountResponse{}, err
		}
	}

	return models.MT5AccountResponse{
		Message:    app.MsgMT5StatusRefreshed,
		Account:    updated.Present(),
		Connection: &result,
	}, nil
}

// verify logs in with password and records the outcome on the account. A
// refused login marks the account as errored and an unreachable terminal
// marks it disconnected; neither is returned as an error.
func (s *mt5Service) verify(ctx context.Context, account models.MT5Account, password string) (models.ConnectionResult, models.MT5Account, error) {
	reported, err := s.terminal.Verify(ctx, s.login(account, password))

	var (
		status   models.ConnectionStatus
		terminal *models.TerminalAccount
		result   models.ConnectionResult
	)
	switch {
	case err == nil:
		status = models.ConnectionConnected
		terminal = &reported
		result = models.ConnectionResult{Status: models.ConnectionResultSuccess, Message: app.MsgAccountConnected, Data: &reported}
	case isTerminalDown(err):
		status = models.ConnectionDisconnected
		result = models.ConnectionResult{Status: models.ConnectionResultError, Message: app.MsgTerminalUnavailable, Error: err.Error()}
	default:
		status = models.ConnectionError
		result = models.ConnectionResult{Status: models.ConnectionResultError, Message: app.MsgConnectionTestFailed, Error: err.Error()}
	}

	if err != nil {
		logger.FromContext(ctx).Info().Err(err).Int64("account_id", account.ID).Msg("mt5 login did not succeed")
	}

	updated, err := s.repository.UpdateConnection(ctx, account.ID, status, terminal, s.now())
	if err != nil {
		return models.ConnectionResult{}, models.MT5Account{}, fmt.Errorf("updating connection status failed: %w", err)
	}
	return result, updated, nil
}

// DeleteAccount stops the experts still attached to the terminal before the
// account and its runs are removed.
func (s *mt5Service) DeleteAccount(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	account, err := s.repository.FindAccount(ctx, userID)
	if err != nil {
		return fmt.Errorf("mt5 account lookup failed: %w", err)
	}

	executions, err := s.repository.ListExecutions(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("listing executions failed: %w", err)
	}
	for _, execution := range executions {
		if !execution.Status.Active() {
			continue
		}
		if stopErr := s.terminal.StopExpert(ctx, execution.TerminalHandle); stopErr != nil {
			log.Warn().Err(stopErr).Int64("execution_id", execution.ID).Msg("expert was not stopped before account removal")
		}
	}

	if err = s.repository.DeleteAccount(ctx, userID); err != nil {
		return fmt.Errorf("deleting mt5 account failed: %w", err)
	}
	return nil
}

func (s *mt5Service) ListExecutions(ctx context.Context, userID int64) ([]models.AlgorithmExecution, error) {
	account, err := s.repository.FindAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("mt5 account lookup failed: %w", err)
	}

	executions, err := s.repository.ListExecutions(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("listing executions failed: %w", err)
	}
	return executions, nil
}

func (s *mt5Service) StartAlgorithm(ctx context.Context, userID int64, request models.StartAlgorithmRequest) (models.StartAlgorithmResponse, error) {
	log := logger.FromContext(ctx)

	account, err := s.connectedAccount(ctx, userID)
	if err != nil {
		return models.StartAlgorithmResponse{}, err
	}
	password, err := s.openPassword(account)
	if err != nil {
		return models.StartAlgorithmResponse{}, err
	}

	started, err := s.terminal.StartExpert(ctx, s.login(account, password), bridge.Expert{
		Name:           request.AlgorithmName,
		Symbol:         request.Symbol,
		MaxRiskPercent: s.maxRiskPercent,
	})
	if err != nil {
		return models.StartAlgorithmResponse{}, terminalError(err)
	}

	now := s.now()
	execution, err := s.repository.CreateExecution(ctx, models.AlgorithmExecution{
		AccountID:      account.ID,
		AlgorithmName:  request.AlgorithmName,
		Symbol:         request.Symbol,
		Status:         models.ExecutionRunning,
		TerminalHandle: started.Handle,
		StartedAt:      now,
	})
	if err != nil {
		// Nothing tracks the expert without its row.
		if stopErr := s.terminal.StopExpert(ctx, started.Handle); stopErr != nil {
			log.Error().Err(stopErr).Str("handle", started.Handle).Msg("untracked expert left running")
		}
		return models.StartAlgorithmResponse{}, fmt.Errorf("recording execution failed: %w", err)
	}

	log.Info().Int64("execution_id", execution.ID).Str("algorithm", execution.AlgorithmName).Msg("algorithm started")
	return models.StartAlgorithmResponse{
		Message:   fmt.Sprintf(app.MsgAlgorithmStartedFormat, request.AlgorithmName),
		Execution: execution,
		RiskManagement: models.RiskManagement{
			MaxRiskPercent: s.maxRiskPercent,
			CurrentRisk:    started.CurrentRisk,
		},
	}, nil
}

// executionTransition describes one lifecycle move of a run.
type executionTransition struct {
	from    []models.ExecutionStatus
	to      models.ExecutionStatus
	invalid error
	message string
}

var (
	stopTransition = executionTransition{
		from:    []models.ExecutionStatus{models.ExecutionRunning, models.ExecutionPaused},
		to:      models.ExecutionStopped,
		invalid: ErrAlgorithmNotActive,
		message: app.MsgAlgorithmStopped,
	}
	pauseTransition = executionTransition{
		from:    []models.ExecutionStatus{models.ExecutionRunning},
		to:      models.ExecutionPaused,
		invalid: ErrAlgorithmNotRunning,
		message: app.MsgAlgorithmPaused,
	}
	resumeTransition = executionTransition{
		from:    []models.ExecutionStatus{models.ExecutionPaused},
		to:      models.ExecutionRunning,
		invalid: ErrAlgorithmNotPaused,
		message: app.MsgAlgorithmResumed,
	}
)

func (s *mt5Service) StopAlgorithm(ctx context.Context, userID, executionID int64) (models.ExecutionResponse, error) {
	return s.transition(ctx, userID, executionID, stopTransition, s.terminal.StopExpert)
}

func (s *mt5Service) PauseAlgorithm(ctx context.Context, userID, executionID int64) (models.ExecutionResponse, error) {
	return s.transition(ctx, userID, executionID, pauseTransition, s.terminal.PauseExpert)
}

func (s *mt5Service) ResumeAlgorithm(ctx context.Context, userID, executionID int64) (models.ExecutionResponse, error) {
	return s.transition(ctx, userID, executionID, resumeTransition, s.terminal.ResumeExpert)
}

// transition drives the expert first and records the new status only when
// the terminal accepted. A stop of an expert the bridge no longer knows
// still records the stop.
func (s *mt5Service) transition(ctx context.Context, userID, executionID int64, t executionTransition, control func(context.Context, string) error) (models.ExecutionResponse, error) {
	account, err := s.connectedAccount(ctx, userID)
	if err != nil {
		return models.ExecutionResponse{}, err
	}

	execution, err := s.repository.FindExecution(ctx, account.ID, executionID)
	if err != nil {
		return models.ExecutionResponse{}, fmt.Errorf("execution lookup failed: %w", err)
	}
	if !slices.Contains(t.from, execution.Status) {
		return models.ExecutionResponse{}, t.invalid
	}

	if err = control(ctx, execution.TerminalHandle); err != nil {
		gone := errors.Is(err, bridge.ErrExpertNotFound) && t.to == models.ExecutionStopped
		if !gone {
			return models.ExecutionResponse{}, terminalError(err)
		}
	}

	updated, err := s.repository.TransitionExecution(ctx, execution.ID, t.from, t.to, s.now())
	if errors.Is(err, store.ErrExecutionStateChanged) {
		return models.ExecutionResponse{}, fmt.Errorf("%w: %w", t.invalid, err)
	}
	if err != nil {
		return models.ExecutionResponse{}, fmt.Errorf("recording %s failed: %w", t.to, err)
	}

	logger.FromContext(ctx).Info().Int64("execution_id", updated.ID).Str("status", string(updated.Status)).Msg("execution status changed")
	return models.ExecutionResponse{Message: t.message, Execution: updated}, nil
}

func (s *mt5Service) AccountStatistics(ctx context.Context, userID int64) (models.AccountStatistics, error) {
	account, err := s.repository.FindAccount(ctx, userID)
	if err != nil {
		return models.AccountStatistics{}, fmt.Errorf("mt5 account lookup failed: %w", err)
	}
	executions, err := s.repository.ListExecutions(ctx, account.ID)
	if err != nil {
		return models.AccountStatistics{}, fmt.Errorf("listing executions failed: %w", err)
	}

	now := s.now()
	stats := models.AccountStatistics{EAActivity: make([]models.EAActivity, 0)}

	var totalProfit float64
	wins := 0
	for _, execution := range executions {
		totalProfit += execution.ProfitLoss
		stats.TotalTrades += execution.TradesCount
		if execution.ProfitLoss > 0 {
			wins++
		}
		if execution.Status == models.ExecutionRunning {
			stats.RunningEAs++
			stats.EAActivity = append(stats.EAActivity, models.EAActivity{
				EAName:         execution.AlgorithmName,
				ActiveDuration: models.FormatActiveDuration(now.Sub(execution.StartedAt)),
				StartTime:      execution.StartedAt,
			})
		}
	}

	stats.ProfitabilityPercent = models.ProfitabilityPercent(account.Balance, totalProfit)
	stats.WinRate = models.Percent(wins, len(executions))
	return stats, nil
}

// ManualStatistics groups manual deals by UTC day. Deals opened by an
// expert carry a magic number and are skipped.
func (s *mt5Service) ManualStatistics(ctx context.Context, userID int64) (models.ManualStatistics, error) {
	account, err := s.repository.FindAccount(ctx, userID)
	if err != nil {
		return models.ManualStatistics{}, fmt.Errorf("mt5 account lookup failed: %w", err)
	}
	password, err := s.openPassword(account)
	if err != nil {
		return models.ManualStatistics{}, err
	}

	to := s.now()
	deals, err := s.terminal.Deals(ctx, s.login(account, password), to.Add(-manualHistory), to)
	if err != nil {
		return models.ManualStatistics{}, terminalError(err)
	}

	stats := models.ManualStatistics{Sessions: make([]models.TradingSession, 0)}
	byDay := make(map[time.Time]int)

	var totalProfit float64
	wins := 0
	for _, deal := range deals {
		if deal.Magic != 0 {
			continue
		}
		stats.TotalTrades++
		totalProfit += deal.Profit
		if deal.Profit > 0 {
			wins++
		}

		at := deal.Time.UTC()
		day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
		i, ok := byDay[day]
		if !ok {
			i = len(stats.Sessions)
			byDay[day] = i
			stats.Sessions = append(stats.Sessions, models.TradingSession{SessionStart: at, SessionEnd: at})
		}

		session := &stats.Sessions[i]
		session.TradesExecuted++
		session.ProfitLoss += deal.Profit
		if at.Before(session.SessionStart) {
			session.SessionStart = at
		}
		if at.After(session.SessionEnd) {
			session.SessionEnd = at
		}
	}

	for i := range stats.Sessions {
		stats.Sessions[i].ProfitLoss = models.Round2(stats.Sessions[i].ProfitLoss)
	}
	slices.SortFunc(stats.Sessions, func(a, b models.TradingSession) int {
		return a.SessionStart.Compare(b.SessionStart)
	})

	stats.ProfitabilityPercent = models.ProfitabilityPercent(account.Balance, totalProfit)
	stats.WinRate = models.Percent(wins, stats.TotalTrades)
	return stats, nil
}

func (s *mt5Service) connectedAccount(ctx context.Context, userID int64) (models.MT5Account, error) {
	account, err := s.repository.FindAccount(ctx, userID)
	if err != nil {
		return models.MT5Account{}, fmt.Errorf("mt5 account lookup failed: %w", err)
	}
	if account.ConnectionStatus != models.ConnectionConnected {
		return models.MT5Account{}, ErrMT5NotConnected
	}
	return account, nil
}

func (s *mt5Service) openPassword(account models.MT5Account) (string, error) {
	password, err := s.cipher.Open(account.SealedPassword, account.AccountNumber)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoredPasswordUnreadable, err)
	}
	return password, nil
}

func (s *mt5Service) login(account models.MT5Account, password string) bridge.Login {
	return bridge.Login{Login: account.AccountNumber, Password: password, Server: account.Server}
}

func isTerminalDown(err error) bool {
	return errors.Is(err, bridge.ErrBridgeDisabled) || errors.Is(err, bridge.ErrBridgeUnavailable)
}

func terminalError(err error) error {
	if isTerminalDown(err) {
		return fmt.Errorf("%w: %w", ErrTerminalUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrTerminalRejected, err)
}
