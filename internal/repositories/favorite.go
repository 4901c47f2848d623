package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/models"
)

// FavoriteReadRepository handles favorite read operations.
type FavoriteReadRepository struct {
	db *sqlx.DB
}

func NewFavoriteReadRepository(db *sqlx.DB) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db}
}

// Exists reports whether the (user, template) favorite pair is present.
func (r *FavoriteReadRepository) Exists(ctx context.Context, userID, templateID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND template_id = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, templateID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, templateID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ListByUser returns the user's favorited templates, most recently
// favorited first.
func (r *FavoriteReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.FavoritedTemplate, error) {
	query := `
		SELECT t.id, t.title, t.content, t.description, t.category, t.for_devs,
		       t.is_public, t.is_official, t.usage_count, t.favorite_count,
		       t.user_id, t.created_at, t.updated_at,
		       f.created_at AS favorited_at
		FROM favorites f
		JOIN templates t ON t.id = f.template_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	templates := []models.FavoritedTemplate{}
	err := r.db.SelectContext(ctx, &templates, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(templates),
		"error", err,
	)

	return templates, err
}

// FavoriteWriteRepository handles favorite write operations. Both
// methods run on the transaction from the context when present, so the
// favorite row and the template counter move as one atomic unit.
type FavoriteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFavoriteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db, txGetter: txGetter}
}

func (r *FavoriteWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts the favorite pair. A concurrent duplicate insert fails
// on the favorites UNIQUE(user_id, template_id) constraint; callers
// detect it with IsUniqueViolation.
func (r *FavoriteWriteRepository) Save(ctx context.Context, userID, templateID int64) error {
	query := `
		INSERT INTO favorites (user_id, template_id, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID, templateID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, templateID},
		"error", err,
	)

	return err
}

// Delete removes the favorite pair and returns how many rows went away,
// so callers can skip the counter decrement when nothing was deleted.
func (r *FavoriteWriteRepository) Delete(ctx context.Context, userID, templateID int64) (int64, error) {
	query := `DELETE FROM favorites WHERE user_id = $1 AND template_id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, templateID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, templateID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
