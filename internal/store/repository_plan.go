package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// planRepository reads the "subscription_plans" table seeded by migration.
type planRepository struct {
	*DB
	logger *logger.Logger
}

func NewPlanRepository(db *DB, logger *logger.Logger) PlanRepository {
	return &planRepository{
		DB:     db,
		logger: logger,
	}
}

// ListActivePlans returns active plans ordered by price. Features are stored
// as a JSON array.
func (p *planRepository) ListActivePlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPlansQuery(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "planRepository.ListActivePlans").Msg("failed to execute query")
		return nil, p.wrapQueryError(err)
	}
	defer rows.Close()

	plans := make([]models.SubscriptionPlan, 0, 4)
	for rows.Next() {
		var (
			plan     models.SubscriptionPlan
			features string
		)

		scanErr := rows.Scan(
			&plan.ID,
			&plan.Name,
			&plan.PlanType,
			&plan.Description,
			&plan.Price,
			&plan.Currency,
			&plan.DurationDays,
			&plan.MaxAlgorithms,
			&plan.MaxMT5Accounts,
			&features,
			&plan.IsActive,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "planRepository.ListActivePlans").Msg("failed to scan plan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if err := json.Unmarshal([]byte(features), &plan.Features); err != nil {
			return nil, fmt.Errorf("%w: plan %s features: %w", ErrScanningRow, plan.ID, err)
		}

		plans = append(plans, plan)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "planRepository.ListActivePlans").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return plans, nil
}
