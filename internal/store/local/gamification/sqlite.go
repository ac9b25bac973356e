package gamification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ilyabe/wordvault/internal/dbx"
	"github.com/ilyabe/wordvault/internal/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) History(ctx context.Context) ([]models.LevelUpEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT level, unlocked_at FROM level_up_history ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select level-up history: %w", err)
	}
	defer rows.Close()

	var result []models.LevelUpEntry
	for rows.Next() {
		var item models.LevelUpEntry
		if err := rows.Scan(&item.Level, &item.UnlockedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) AppendHistory(ctx context.Context, e models.LevelUpEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO level_up_history (level, unlocked_at) VALUES (?, ?)`, e.Level, e.UnlockedAt)
	if err != nil {
		return fmt.Errorf("failed to append level-up entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) BulkInsertHistory(ctx context.Context, es []models.LevelUpEntry) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, e := range es {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO level_up_history (level, unlocked_at) VALUES (?, ?)`, e.Level, e.UnlockedAt); err != nil {
				return fmt.Errorf("failed to insert level-up entry: %w", err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Achievements(ctx context.Context) ([]models.Achievement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT achievement_id, unlocked_at FROM unlocked_achievements ORDER BY unlocked_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to select achievements: %w", err)
	}
	defer rows.Close()

	var result []models.Achievement
	for rows.Next() {
		var item models.Achievement
		if err := rows.Scan(&item.AchievementID, &item.UnlockedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) AppendAchievement(ctx context.Context, a models.Achievement) error {
	// Unique per achievement id; re-unlocking is a no-op.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO unlocked_achievements (achievement_id, unlocked_at) VALUES (?, ?)
		ON CONFLICT(achievement_id) DO NOTHING
	`, a.AchievementID, a.UnlockedAt)
	if err != nil {
		return fmt.Errorf("failed to append achievement: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) BulkInsertAchievements(ctx context.Context, as []models.Achievement) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, a := range as {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO unlocked_achievements (achievement_id, unlocked_at) VALUES (?, ?)
				ON CONFLICT(achievement_id) DO NOTHING
			`, a.AchievementID, a.UnlockedAt); err != nil {
				return fmt.Errorf("failed to insert achievement: %w", err)
			}
		}
		return nil
	})
}
