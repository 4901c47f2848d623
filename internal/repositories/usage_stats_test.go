package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promptcraft/templates/internal/models"
)

func TestUsageStatsWriteRepository_IncrementForToday(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUsageStatsWriteRepository(db, nil)
	ctx := context.Background()

	aliceID := mustCreateUser(t, db, "alice@example.com")
	bobID := mustCreateUser(t, db, "bob@example.com")

	getStats := func(userID int64) models.UsageStatsDB {
		var row models.UsageStatsDB
		assert.NoError(t, db.Get(&row,
			`SELECT id, user_id, date, daily_count, monthly_count, created_at, updated_at
			 FROM usage_stats WHERE user_id = $1 AND date = CURRENT_DATE`, userID))
		return row
	}

	t.Run("FirstIncrementCreatesRow", func(t *testing.T) {
		assert.NoError(t, repo.IncrementForToday(ctx, aliceID))

		row := getStats(aliceID)
		assert.Equal(t, aliceID, row.UserID)
		assert.Equal(t, 1, row.DailyCount)
		assert.Equal(t, 1, row.MonthlyCount)
		assert.False(t, row.Date.IsZero())
	})

	t.Run("SecondIncrementBumpsInPlace", func(t *testing.T) {
		assert.NoError(t, repo.IncrementForToday(ctx, aliceID))

		row := getStats(aliceID)
		assert.Equal(t, 2, row.DailyCount)
		assert.Equal(t, 2, row.MonthlyCount)

		var rowCount int
		assert.NoError(t, db.Get(&rowCount, `SELECT COUNT(*) FROM usage_stats WHERE user_id = $1`, aliceID))
		assert.Equal(t, 1, rowCount)
	})

	t.Run("UsersCountedIndependently", func(t *testing.T) {
		assert.NoError(t, repo.IncrementForToday(ctx, bobID))

		row := getStats(bobID)
		assert.Equal(t, 1, row.DailyCount)
	})
}
