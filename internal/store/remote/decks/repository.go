package decks

import (
	"context"

	"github.com/ilyabe/wordvault/internal/models"
)

// Repository is owner-scoped deck storage on the backend.
type Repository interface {
	// CountByOwner returns how many decks userID owns. The reconciler bases
	// its upload/download decision on this.
	CountByOwner(ctx context.Context, userID string) (int, error)

	// ListByOwner returns every deck userID owns, oldest first.
	ListByOwner(ctx context.Context, userID string) ([]models.Deck, error)

	// Insert upserts one deck for userID. Re-inserting an existing id is a
	// no-op, so a replayed CREATE after a crash cannot conflict.
	Insert(ctx context.Context, userID string, d models.Deck) error

	// BulkInsert upserts many decks in one round trip.
	BulkInsert(ctx context.Context, userID string, ds []models.Deck) error

	// Update applies a partial column map to one deck.
	Update(ctx context.Context, id string, updates map[string]any) error

	// Delete removes a deck and its words. Absent rows are not an error.
	Delete(ctx context.Context, id string) error
}
