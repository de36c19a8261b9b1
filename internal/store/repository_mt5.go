package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// mt5Repository keeps MT5 accounts in "mt5_accounts" and their algorithm
// runs in "algorithm_executions".
type mt5Repository struct {
	db     *DB
	logger *logger.Logger
}

func NewMT5Repository(db *DB, logger *logger.Logger) MT5Repository {
	logger.Debug().Msg("creating mt5 repository")
	return &mt5Repository{
		db:     db,
		logger: logger,
	}
}

func scanMT5Account(row rowScanner) (models.MT5Account, error) {
	var (
		account       models.MT5Account
		lastConnected sql.NullTime
	)

	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.AccountNumber,
		&account.BrokerName,
		&account.Server,
		&account.AccountType,
		&account.SealedPassword,
		&account.ConnectionStatus,
		&lastConnected,
		&account.Balance,
		&account.Equity,
		&account.Margin,
		&account.Currency,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return models.MT5Account{}, err
	}

	if lastConnected.Valid {
		t := lastConnected.Time
		account.LastConnected = &t
	}
	return account, nil
}

func scanExecution(row rowScanner) (models.AlgorithmExecution, error) {
	var (
		execution     models.AlgorithmExecution
		stoppedAt     sql.NullTime
		lastHeartbeat sql.NullTime
	)

	err := row.Scan(
		&execution.ID,
		&execution.AccountID,
		&execution.AlgorithmName,
		&execution.Symbol,
		&execution.Status,
		&execution.TerminalHandle,
		&execution.StartedAt,
		&stoppedAt,
		&execution.ProfitLoss,
		&execution.TradesCount,
		&execution.ErrorMessage,
		&lastHeartbeat,
	)
	if err != nil {
		return models.AlgorithmExecution{}, err
	}

	if stoppedAt.Valid {
		t := stoppedAt.Time
		execution.StoppedAt = &t
	}
	if lastHeartbeat.Valid {
		t := lastHeartbeat.Time
		execution.LastHeartbeat = &t
	}
	return execution, nil
}

func (r *mt5Repository) FindAccount(ctx context.Context, userID int64) (models.MT5Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindMT5AccountQuery(ctx, userID)
	if err != nil {
		return models.MT5Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanMT5Account(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.MT5Account{}, ErrMT5AccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*mt5Repository.FindAccount").Int64("user_id", userID).Msg("error finding mt5 account")
		return models.MT5Account{}, r.db.wrapQueryError(err)
	}

	return account, nil
}

func (r *mt5Repository) SaveAccount(ctx context.Context, account models.MT5Account) (models.MT5Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveMT5AccountQuery(ctx, account)
	if err != nil {
		return models.MT5Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanMT5Account(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*mt5Repository.SaveAccount").Int64("user_id", account.UserID).Msg("error saving mt5 account")
		return models.MT5Account{}, r.db.wrapQueryError(err)
	}

	return saved, nil
}

func (r *mt5Repository) UpdateConnection(ctx context.Context, accountID int64, status models.ConnectionStatus, terminal *models.TerminalAccount, at time.Time) (models.MT5Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateConnectionQuery(ctx, accountID, status, terminal, at)
	if err != nil {
		return models.MT5Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanMT5Account(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.MT5Account{}, ErrMT5AccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*mt5Repository.UpdateConnection").Int64("account_id", accountID).Msg("error updating connection status")
		return models.MT5Account{}, r.db.wrapQueryError(err)
	}

	return account, nil
}

func (r *mt5Repository) DeleteAccount(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteMT5AccountQuery(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*mt5Repository.DeleteAccount").Int64("user_id", userID).Msg("failed to execute statement")
		return r.db.wrapQueryError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.wrapQueryError(err)
	}
	if affected == 0 {
		return ErrMT5AccountNotFound
	}

	return nil
}

func (r *mt5Repository) CreateExecution(ctx context.Context, execution models.AlgorithmExecution) (models.AlgorithmExecution, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateExecutionQuery(ctx, execution)
	if err != nil {
		return models.AlgorithmExecution{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanExecution(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*mt5Repository.CreateExecution").Int64("account_id", execution.AccountID).Msg("error creating execution")
		return models.AlgorithmExecution{}, r.db.wrapQueryError(err)
	}

	return created, nil
}

func (r *mt5Repository) FindExecution(ctx context.Context, accountID, executionID int64) (models.AlgorithmExecution, error) {
	query, args, err := buildFindExecutionQuery(ctx, accountID, executionID)
	if err != nil {
		return models.AlgorithmExecution{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	execution, err := scanExecution(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AlgorithmExecution{}, ErrExecutionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mt5Repository.FindExecution").Int64("execution_id", executionID).Msg("error finding execution")
		return models.AlgorithmExecution{}, r.db.wrapQueryError(err)
	}

	return execution, nil
}

func (r *mt5Repository) ListExecutions(ctx context.Context, accountID int64) ([]models.AlgorithmExecution, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExecutionsQuery(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*mt5Repository.ListExecutions").Msg("failed to execute query")
		return nil, r.db.wrapQueryError(err)
	}
	defer rows.Close()

	executions := make([]models.AlgorithmExecution, 0)
	for rows.Next() {
		execution, scanErr := scanExecution(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*mt5Repository.ListExecutions").Msg("failed to scan execution row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		executions = append(executions, execution)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*mt5Repository.ListExecutions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return executions, nil
}

func (r *mt5Repository) TransitionExecution(ctx context.Context, executionID int64, from []models.ExecutionStatus, to models.ExecutionStatus, at time.Time) (models.AlgorithmExecution, error) {
	query, args, err := buildTransitionExecutionQuery(ctx, executionID, from, to, at)
	if err != nil {
		return models.AlgorithmExecution{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	execution, err := scanExecution(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AlgorithmExecution{}, ErrExecutionStateChanged
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*mt5Repository.TransitionExecution").
			Int64("execution_id", executionID).
			Str("to", string(to)).
			Msg("error updating execution status")
		return models.AlgorithmExecution{}, r.db.wrapQueryError(err)
	}

	return execution, nil
}
