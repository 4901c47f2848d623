package repositories

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

	CREATE TABLE IF NOT EXISTS usage_stats (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		date DATE NOT NULL,
		daily_count BIGINT NOT NULL DEFAULT 0,
		monthly_count BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, date)
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

func mustCreateTemplate(t *testing.T, db *sqlx.DB, userID int64, title string, isPublic bool) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id,
		`INSERT INTO templates (title, content, category, is_public, user_id)
		 VALUES ($1, 'content', 'GENERAL', $2, $3) RETURNING id`, title, isPublic, userID)
	assert.NoError(t, err)
	return id
}
