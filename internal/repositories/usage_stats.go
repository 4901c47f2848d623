package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/promptcraft/templates/internal/logger"
)

// UsageStatsWriteRepository maintains per-user daily usage aggregates.
type UsageStatsWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUsageStatsWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UsageStatsWriteRepository {
	return &UsageStatsWriteRepository{db: db, txGetter: txGetter}
}

func (r *UsageStatsWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// IncrementForToday performs an UPSERT: creates today's row for the
// user if absent, otherwise bumps both counters in place. Counters only
// ever grow within their period.
func (r *UsageStatsWriteRepository) IncrementForToday(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO usage_stats (user_id, date, daily_count, monthly_count, created_at, updated_at)
		VALUES ($1, CURRENT_DATE, 1, 1, NOW(), NOW())
		ON CONFLICT (user_id, date)
		DO UPDATE SET daily_count = usage_stats.daily_count + 1,
		              monthly_count = usage_stats.monthly_count + 1,
		              updated_at = NOW()
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}
