package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/models"
)

// sortColumns maps API sort fields to table columns. Anything outside
// the whitelist falls back to created_at; sort parameters are never
// interpolated into SQL directly.
var sortColumns = map[string]string{
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
	"title":         "title",
	"category":      "category",
	"usageCount":    "usage_count",
	"favoriteCount": "favorite_count",
}

func orderClause(page models.PageRequest) string {
	column, ok := sortColumns[page.SortBy]
	if !ok {
		column = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(page.SortDir, "ASC") {
		dir = "ASC"
	}
	return fmt.Sprintf("t.%s %s", column, dir)
}

// templateSelect joins the viewer's favorite row and the creator so a
// single query yields the annotated template. A nil viewer id never
// matches the favorites join, so anonymous viewers get is_favorited=false.
const templateSelect = `
	SELECT t.id, t.title, t.content, t.description, t.category, t.for_devs,
	       t.is_public, t.is_official, t.usage_count, t.favorite_count,
	       t.user_id, t.created_at, t.updated_at,
	       (f.user_id IS NOT NULL) AS is_favorited,
	       u.email AS creator_email
	FROM templates t
	LEFT JOIN favorites f ON f.template_id = t.id AND f.user_id = $1
	LEFT JOIN users u ON u.id = t.user_id
`

// TemplateReadRepository handles template read operations. Reads run
// on the transaction from the context when present, so a re-read after
// a mutation behind the tx middleware observes the uncommitted write.
type TemplateReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTemplateReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TemplateReadRepository {
	return &TemplateReadRepository{db: db, txGetter: txGetter}
}

func (r *TemplateReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *TemplateReadRepository) list(ctx context.Context, viewerID *int64, where, countWhere string, page models.PageRequest, extraArgs ...any) ([]models.TemplateWithViewer, int64, error) {
	query := templateSelect + where +
		` ORDER BY ` + orderClause(page) +
		fmt.Sprintf(` LIMIT %d OFFSET %d`, page.Size, page.Offset())

	args := append([]any{viewerID}, extraArgs...)

	templates := []models.TemplateWithViewer{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &templates, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(templates),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) FROM templates t ` + countWhere
	var total int64
	if err := sqlx.GetContext(ctx, r.executor(ctx), &total, countQuery, extraArgs...); err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

// ListPublic returns one page of public templates annotated for the viewer.
func (r *TemplateReadRepository) ListPublic(ctx context.Context, viewerID *int64, page models.PageRequest) ([]models.TemplateWithViewer, int64, error) {
	return r.list(ctx, viewerID,
		`WHERE t.is_public = TRUE`,
		`WHERE t.is_public = TRUE`,
		page)
}

// SearchPublic returns public templates whose title or content contains
// the term, case-insensitively. An empty term matches everything.
func (r *TemplateReadRepository) SearchPublic(ctx context.Context, viewerID *int64, term string, page models.PageRequest) ([]models.TemplateWithViewer, int64, error) {
	return r.list(ctx, viewerID,
		`WHERE t.is_public = TRUE AND (t.title ILIKE $2 OR t.content ILIKE $2)`,
		`WHERE t.is_public = TRUE AND (t.title ILIKE $1 OR t.content ILIKE $1)`,
		page, "%"+term+"%")
}

// ListByCategory returns public templates in the given category.
func (r *TemplateReadRepository) ListByCategory(ctx context.Context, viewerID *int64, category string, page models.PageRequest) ([]models.TemplateWithViewer, int64, error) {
	return r.list(ctx, viewerID,
		`WHERE t.is_public = TRUE AND t.category = $2`,
		`WHERE t.is_public = TRUE AND t.category = $1`,
		page, category)
}

// ListByForDevs returns public templates filtered by the for_devs flag.
func (r *TemplateReadRepository) ListByForDevs(ctx context.Context, viewerID *int64, forDevs bool, page models.PageRequest) ([]models.TemplateWithViewer, int64, error) {
	return r.list(ctx, viewerID,
		`WHERE t.is_public = TRUE AND t.for_devs = $2`,
		`WHERE t.is_public = TRUE AND t.for_devs = $1`,
		page, forDevs)
}

// ListPopular returns public templates ordered by usage count descending,
// ignoring the requested sort.
func (r *TemplateReadRepository) ListPopular(ctx context.Context, viewerID *int64, page models.PageRequest) ([]models.TemplateWithViewer, int64, error) {
	page.SortBy = "usageCount"
	page.SortDir = "DESC"
	return r.ListPublic(ctx, viewerID, page)
}

// GetByID returns the template with the given id annotated for the
// viewer, or nil if none exists. Visibility is not checked here: a
// private template is retrievable by id.
func (r *TemplateReadRepository) GetByID(ctx context.Context, viewerID *int64, id int64) (*models.TemplateWithViewer, error) {
	query := templateSelect + `WHERE t.id = $2`

	var template models.TemplateWithViewer
	err := sqlx.GetContext(ctx, r.executor(ctx), &template, query, viewerID, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{viewerID, id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// TemplateWriteRepository handles template write operations. When a
// transaction is present in the context it is used as the executor, so
// multi-statement operations behind the tx middleware serialize at the
// storage layer.
type TemplateWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTemplateWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TemplateWriteRepository {
	return &TemplateWriteRepository{db: db, txGetter: txGetter}
}

func (r *TemplateWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

const templateColumns = `
	id, title, content, description, category, for_devs, is_public,
	is_official, usage_count, favorite_count, user_id, created_at, updated_at
`

// Save inserts a new template. is_official is always false on this
// path and counters start at zero; official templates are seeded by an
// administrative path outside this service.
func (r *TemplateWriteRepository) Save(ctx context.Context, fields models.TemplateFields, userID int64) (*models.TemplateDB, error) {
	query := `
		INSERT INTO templates (title, content, description, category, for_devs, is_public, is_official, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, NOW(), NOW())
		RETURNING` + templateColumns

	var template models.TemplateDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &template, query,
		fields.Title, fields.Content, fields.Description, fields.Category,
		fields.ForDevs, fields.IsPublic, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{fields.Title, fields.Category, userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &template, nil
}

// Update replaces the mutable fields of the template owned by ownerID.
// Ownership is part of the WHERE clause, so the check and the mutation
// are one atomic statement; zero rows affected means the template is
// absent or owned by someone else.
func (r *TemplateWriteRepository) Update(ctx context.Context, id, ownerID int64, fields models.TemplateFields) (int64, error) {
	query := `
		UPDATE templates
		SET title = $3, content = $4, description = $5, category = $6,
		    for_devs = $7, is_public = $8, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query,
		id, ownerID, fields.Title, fields.Content, fields.Description,
		fields.Category, fields.ForDevs, fields.IsPublic)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, ownerID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes the template owned by ownerID. Associated favorites
// go with it via the favorites.template_id ON DELETE CASCADE.
func (r *TemplateWriteRepository) Delete(ctx context.Context, id, ownerID int64) (int64, error) {
	query := `DELETE FROM templates WHERE id = $1 AND user_id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, ownerID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, ownerID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// IncrementUsage bumps the usage counter in a single update-in-place
// statement, so concurrent increments never lose updates.
func (r *TemplateWriteRepository) IncrementUsage(ctx context.Context, id int64) (int64, error) {
	query := `UPDATE templates SET usage_count = usage_count + 1, updated_at = NOW() WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// IncrementFavoriteCount bumps the favorite counter in place.
func (r *TemplateWriteRepository) IncrementFavoriteCount(ctx context.Context, id int64) (int64, error) {
	query := `UPDATE templates SET favorite_count = favorite_count + 1, updated_at = NOW() WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// DecrementFavoriteCount lowers the favorite counter, clamped at zero.
func (r *TemplateWriteRepository) DecrementFavoriteCount(ctx context.Context, id int64) error {
	query := `UPDATE templates SET favorite_count = GREATEST(favorite_count - 1, 0), updated_at = NOW() WHERE id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	return err
}
