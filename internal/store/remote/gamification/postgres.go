package gamification

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilyabe/wordvault/internal/models"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListHistory(ctx context.Context, userID string) ([]models.LevelUpEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT level, unlocked_at FROM level_up_history WHERE user_id = $1 ORDER BY unlocked_at`, userID)
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

func (r *PostgresRepository) BulkInsertHistory(ctx context.Context, userID string, es []models.LevelUpEntry) error {
	if len(es) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, e := range es {
		batch.Queue(
			`INSERT INTO level_up_history (user_id, level, unlocked_at) VALUES ($1, $2, $3)
			 ON CONFLICT (user_id, level) DO NOTHING`,
			userID, e.Level, e.UnlockedAt)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to bulk insert level-up history: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT achievement_id, unlocked_at FROM unlocked_achievements WHERE user_id = $1 ORDER BY unlocked_at`,
		userID)
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

func (r *PostgresRepository) BulkInsertAchievements(ctx context.Context, userID string, as []models.Achievement) error {
	if len(as) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, a := range as {
		batch.Queue(
			`INSERT INTO unlocked_achievements (user_id, achievement_id, unlocked_at) VALUES ($1, $2, $3)
			 ON CONFLICT (user_id, achievement_id) DO NOTHING`,
			userID, a.AchievementID, a.UnlockedAt)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to bulk insert achievements: %w", err)
	}
	return nil
}
