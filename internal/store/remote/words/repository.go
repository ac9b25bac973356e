package words

import (
	"context"

	"github.com/ilyabe/wordvault/internal/models"
)

// Repository is owner-scoped word storage on the backend.
type Repository interface {
	// ListByOwner returns every word userID owns across all decks.
	ListByOwner(ctx context.Context, userID string) ([]models.Word, error)

	// Insert upserts one word. Re-inserting an existing id is a no-op.
	Insert(ctx context.Context, userID string, w models.Word) error

	// BulkInsert upserts many words in one round trip.
	BulkInsert(ctx context.Context, userID string, ws []models.Word) error

	// Update applies a partial column map to one word.
	Update(ctx context.Context, id string, updates map[string]any) error

	// SetFavorite flips the favorite flag of one word.
	SetFavorite(ctx context.Context, id string, favorite bool) error

	// Delete removes a word. Absent rows are not an error.
	Delete(ctx context.Context, id string) error
}
