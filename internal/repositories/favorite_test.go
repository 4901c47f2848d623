package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/promptcraft/templates/internal/models"
)

func TestFavoriteWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewFavoriteWriteRepository(db, nil)
	readRepo := NewFavoriteReadRepository(db)
	ctx := context.Background()

	userID := mustCreateUser(t, db, "alice@example.com")
	templateID := mustCreateTemplate(t, db, userID, "Template", true)

	err := writeRepo.Save(ctx, userID, templateID)
	assert.NoError(t, err)

	exists, err := readRepo.Exists(ctx, userID, templateID)
	assert.NoError(t, err)
	assert.True(t, exists)

	var favorite models.FavoriteDB
	assert.NoError(t, db.Get(&favorite,
		`SELECT id, user_id, template_id, created_at FROM favorites WHERE user_id = $1 AND template_id = $2`,
		userID, templateID))
	assert.NotZero(t, favorite.ID)
	assert.Equal(t, userID, favorite.UserID)
	assert.Equal(t, templateID, favorite.TemplateID)
	assert.False(t, favorite.CreatedAt.IsZero())

	t.Run("DuplicateHitsUniqueConstraint", func(t *testing.T) {
		err := writeRepo.Save(ctx, userID, templateID)
		assert.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
	})
}

func TestFavoriteWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewFavoriteWriteRepository(db, nil)
	readRepo := NewFavoriteReadRepository(db)
	ctx := context.Background()

	userID := mustCreateUser(t, db, "alice@example.com")
	templateID := mustCreateTemplate(t, db, userID, "Template", true)

	assert.NoError(t, writeRepo.Save(ctx, userID, templateID))

	rows, err := writeRepo.Delete(ctx, userID, templateID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	exists, err := readRepo.Exists(ctx, userID, templateID)
	assert.NoError(t, err)
	assert.False(t, exists)

	t.Run("SecondDeleteAffectsNothing", func(t *testing.T) {
		rows, err := writeRepo.Delete(ctx, userID, templateID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})
}

func TestFavoriteReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewFavoriteWriteRepository(db, nil)
	readRepo := NewFavoriteReadRepository(db)
	ctx := context.Background()

	aliceID := mustCreateUser(t, db, "alice@example.com")
	bobID := mustCreateUser(t, db, "bob@example.com")
	firstID := mustCreateTemplate(t, db, bobID, "First pick", true)
	secondID := mustCreateTemplate(t, db, bobID, "Second pick", true)
	mustCreateTemplate(t, db, bobID, "Never picked", true)

	assert.NoError(t, writeRepo.Save(ctx, aliceID, firstID))
	time.Sleep(50 * time.Millisecond)
	assert.NoError(t, writeRepo.Save(ctx, aliceID, secondID))

	t.Run("MostRecentFirst", func(t *testing.T) {
		favorites, err := readRepo.ListByUser(ctx, aliceID)
		assert.NoError(t, err)
		assert.Len(t, favorites, 2)
		assert.Equal(t, "Second pick", favorites[0].Title)
		assert.Equal(t, "First pick", favorites[1].Title)
		assert.False(t, favorites[0].FavoritedAt.IsZero())
	})

	t.Run("OtherUserSeesNothing", func(t *testing.T) {
		favorites, err := readRepo.ListByUser(ctx, bobID)
		assert.NoError(t, err)
		assert.Empty(t, favorites)
	})
}
