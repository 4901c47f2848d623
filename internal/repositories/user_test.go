package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promptcraft/templates/internal/models"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	firstName := "Alice"
	user, err := repo.Save(ctx, "alice@example.com", "hashed-password", &firstName, nil)
	assert.NoError(t, err)
	assert.NotNil(t, user)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.PasswordHash)
	assert.Equal(t, "Alice", *user.FirstName)
	assert.Nil(t, user.LastName)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.TierFree, user.SubscriptionTier)
	assert.True(t, user.Active)
	assert.False(t, user.EmailVerified)
}

func TestUserWriteRepository_SaveDuplicateEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, "bob@example.com", "hash1", nil, nil)
	assert.NoError(t, err)

	_, err = repo.Save(ctx, "bob@example.com", "hash2", nil, nil)
	assert.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, "charlie@example.com", "secret", nil, nil)
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "charlie@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, saved.ID, user.ID)
		assert.Equal(t, "charlie@example.com", user.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("NoEmailNormalization", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "CHARLIE@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, "dave@example.com", "secret", nil, nil)
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, saved.ID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave@example.com", user.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, 99999)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
