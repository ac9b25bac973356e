package gamification

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyabe/wordvault/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE level_up_history (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  level INTEGER NOT NULL,
  unlocked_at TIMESTAMP NOT NULL
);
CREATE TABLE unlocked_achievements (
  achievement_id TEXT PRIMARY KEY,
  unlocked_at TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestHistory_AppendAndOrder(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, r.AppendHistory(ctx, models.LevelUpEntry{Level: 2, UnlockedAt: base}))
	require.NoError(t, r.AppendHistory(ctx, models.LevelUpEntry{Level: 3, UnlockedAt: base.Add(24 * time.Hour)}))

	got, err := r.History(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Level)
	assert.Equal(t, 3, got[1].Level)
}

func TestBulkInsertHistory(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, r.BulkInsertHistory(ctx, []models.LevelUpEntry{
		{Level: 2, UnlockedAt: now},
		{Level: 3, UnlockedAt: now},
	}))

	got, err := r.History(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAppendAchievement_ReunlockIsNoOp(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, r.AppendAchievement(ctx, models.Achievement{AchievementID: "streak_7", UnlockedAt: now}))
	require.NoError(t, r.AppendAchievement(ctx, models.Achievement{AchievementID: "streak_7", UnlockedAt: now.Add(time.Hour)}))

	got, err := r.Achievements(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "streak_7", got[0].AchievementID)
}

func TestBulkInsertAchievements_Idempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	batch := []models.Achievement{
		{AchievementID: "first_word", UnlockedAt: now},
		{AchievementID: "streak_7", UnlockedAt: now},
	}
	require.NoError(t, r.BulkInsertAchievements(ctx, batch))
	require.NoError(t, r.BulkInsertAchievements(ctx, batch))

	got, err := r.Achievements(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
