package gamification

import (
	"context"

	"github.com/ilyabe/wordvault/internal/models"
)

// Repository stores the append-only gamification records: the level-up
// history and the set of unlocked achievements.
type Repository interface {
	History(ctx context.Context) ([]models.LevelUpEntry, error)
	AppendHistory(ctx context.Context, e models.LevelUpEntry) error
	BulkInsertHistory(ctx context.Context, es []models.LevelUpEntry) error

	Achievements(ctx context.Context) ([]models.Achievement, error)
	AppendAchievement(ctx context.Context, a models.Achievement) error
	BulkInsertAchievements(ctx context.Context, as []models.Achievement) error
}
