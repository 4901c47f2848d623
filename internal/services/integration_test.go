package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/promptcraft/templates/internal/models"
	"github.com/promptcraft/templates/internal/repositories"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		first_name VARCHAR(100),
		last_name VARCHAR(100),
		role VARCHAR(32) NOT NULL DEFAULT 'USER',
		subscription_tier VARCHAR(32) NOT NULL DEFAULT 'FREE',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		subscription_start_date TIMESTAMPTZ,
		subscription_end_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS templates (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		content TEXT NOT NULL,
		description VARCHAR(500),
		category VARCHAR(32) NOT NULL DEFAULT 'OTHER',
		for_devs BOOLEAN NOT NULL DEFAULT FALSE,
		is_public BOOLEAN NOT NULL DEFAULT TRUE,
		is_official BOOLEAN NOT NULL DEFAULT FALSE,
		usage_count BIGINT NOT NULL DEFAULT 0 CHECK (usage_count >= 0),
		favorite_count BIGINT NOT NULL DEFAULT 0 CHECK (favorite_count >= 0),
		user_id BIGINT REFERENCES users (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS favorites (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		template_id BIGINT NOT NULL REFERENCES templates (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, template_id)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

type testTxKey struct{}

func contextWithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, testTxKey{}, tx)
}

func txFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(testTxKey{}).(*sqlx.Tx)
	return tx
}

func mustCreateUser(t *testing.T, db *sqlx.DB, email string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id,
		`INSERT INTO users (email, password_hash) VALUES ($1, 'hash') RETURNING id`, email)
	assert.NoError(t, err)
	return id
}

func mustCreateTemplate(t *testing.T, db *sqlx.DB, userID int64, title string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id,
		`INSERT INTO templates (title, content, category, user_id)
		 VALUES ($1, 'content', 'GENERAL', $2) RETURNING id`, title, userID)
	assert.NoError(t, err)
	return id
}

// Update runs behind the tx middleware in production, so the re-read
// that builds the response has to go through the transaction. A read
// through the pooled connection would return the pre-update row.
func TestTemplateService_UpdateInsideTransactionReturnsFreshRow(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := repositories.NewTemplateReadRepository(db, txFromContext)
	writeRepo := repositories.NewTemplateWriteRepository(db, txFromContext)
	userRepo := repositories.NewUserReadRepository(db)

	svc := NewTemplateService(readRepo, writeRepo, userRepo, nil, nil, nil)
	ctx := context.Background()

	ownerID := mustCreateUser(t, db, "owner@example.com")
	templateID := mustCreateTemplate(t, db, ownerID, "old title")

	tx, err := db.Beginx()
	assert.NoError(t, err)

	updated, err := svc.Update(contextWithTx(ctx, tx), templateID, models.TemplateFields{
		Title:    "new title",
		Content:  "new content",
		Category: models.CategoryGeneral,
		IsPublic: true,
	}, "owner@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "new content", updated.Content)

	assert.NoError(t, tx.Commit())
}

func TestFavoriteService_RowAndCounterMoveTogether(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	favoriteReadRepo := repositories.NewFavoriteReadRepository(db)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db, txFromContext)
	templateReadRepo := repositories.NewTemplateReadRepository(db, txFromContext)
	templateWriteRepo := repositories.NewTemplateWriteRepository(db, txFromContext)
	userRepo := repositories.NewUserReadRepository(db)

	svc := NewFavoriteService(favoriteReadRepo, favoriteWriteRepo, templateWriteRepo, templateReadRepo, userRepo)
	ctx := context.Background()

	_ = mustCreateUser(t, db, "alice@example.com")
	ownerID := mustCreateUser(t, db, "owner@example.com")
	templateID := mustCreateTemplate(t, db, ownerID, "Template")

	type state struct {
		Rows    int `db:"row_count"`
		Counter int `db:"favorite_count"`
	}
	getState := func() state {
		var s state
		assert.NoError(t, db.Get(&s, `
			SELECT (SELECT COUNT(*) FROM favorites WHERE template_id = $1) AS row_count,
			       (SELECT favorite_count FROM templates WHERE id = $1) AS favorite_count`, templateID))
		return s
	}

	inTx := func(fn func(ctx context.Context) error, commit bool) error {
		tx, err := db.Beginx()
		assert.NoError(t, err)
		fnErr := fn(contextWithTx(ctx, tx))
		if commit && fnErr == nil {
			assert.NoError(t, tx.Commit())
		} else {
			assert.NoError(t, tx.Rollback())
		}
		return fnErr
	}

	t.Run("favorite commits row and counter together", func(t *testing.T) {
		err := inTx(func(ctx context.Context) error {
			return svc.Favorite(ctx, "alice@example.com", templateID)
		}, true)
		assert.NoError(t, err)

		s := getState()
		assert.Equal(t, 1, s.Rows)
		assert.Equal(t, 1, s.Counter)
	})

	t.Run("duplicate favorite leaves counter equal to row count", func(t *testing.T) {
		err := inTx(func(ctx context.Context) error {
			return svc.Favorite(ctx, "alice@example.com", templateID)
		}, true)
		assert.ErrorIs(t, err, ErrAlreadyFavorited)

		s := getState()
		assert.Equal(t, 1, s.Rows)
		assert.Equal(t, 1, s.Counter)
	})

	t.Run("rolled back favorite persists neither row nor counter", func(t *testing.T) {
		mustCreateUser(t, db, "bob@example.com")

		err := inTx(func(ctx context.Context) error {
			return svc.Favorite(ctx, "bob@example.com", templateID)
		}, false)
		assert.NoError(t, err)

		s := getState()
		assert.Equal(t, 1, s.Rows)
		assert.Equal(t, 1, s.Counter)
	})

	t.Run("unfavorite commits row and counter together", func(t *testing.T) {
		err := inTx(func(ctx context.Context) error {
			return svc.Unfavorite(ctx, "alice@example.com", templateID)
		}, true)
		assert.NoError(t, err)

		s := getState()
		assert.Equal(t, 0, s.Rows)
		assert.Equal(t, 0, s.Counter)
	})

	t.Run("unfavorite of absent row leaves counter untouched", func(t *testing.T) {
		err := inTx(func(ctx context.Context) error {
			return svc.Unfavorite(ctx, "alice@example.com", templateID)
		}, true)
		assert.NoError(t, err)

		s := getState()
		assert.Equal(t, 0, s.Rows)
		assert.Equal(t, 0, s.Counter)
	})
}
