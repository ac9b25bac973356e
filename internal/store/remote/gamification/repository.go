package gamification

import (
	"context"

	"github.com/ilyabe/wordvault/internal/models"
)

// Repository is owner-scoped gamification storage on the backend.
type Repository interface {
	ListHistory(ctx context.Context, userID string) ([]models.LevelUpEntry, error)
	BulkInsertHistory(ctx context.Context, userID string, es []models.LevelUpEntry) error

	ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error)
	BulkInsertAchievements(ctx context.Context, userID string, as []models.Achievement) error
}
