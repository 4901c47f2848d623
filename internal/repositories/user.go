package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/promptcraft/templates/internal/logger"
	"github.com/promptcraft/templates/internal/models"
)

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `
	id, email, password_hash, first_name, last_name, role, subscription_tier,
	active, email_verified, subscription_start_date, subscription_end_date,
	created_at, updated_at
`

// GetByEmail returns the user with the given email, or nil if none exists.
// Emails are compared exactly as stored, no normalization.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT` + userColumns + `FROM users WHERE email = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := `SELECT` + userColumns + `FROM users WHERE id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user with defaults (USER role, FREE tier, active,
// unverified email) and returns the stored row. A duplicate email
// surfaces as a unique constraint violation from the users_email_key
// constraint; callers detect it with IsUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string, firstName, lastName *string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (email, password_hash, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING` + userColumns

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email, passwordHash, firstName, lastName)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, firstName, lastName},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}
