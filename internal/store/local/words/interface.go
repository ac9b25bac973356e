package words

import (
	"context"

	"github.com/ilyabe/wordvault/internal/models"
)

// Repository describes word storage in the local database.
type Repository interface {
	// GetByDeck returns all words of one deck, oldest first.
	GetByDeck(ctx context.Context, deckID string) ([]models.Word, error)

	// CreateOrUpdate upserts a word by id.
	CreateOrUpdate(ctx context.Context, w *models.Word) error

	// BulkInsert writes the given words in one transaction.
	BulkInsert(ctx context.Context, ws []models.Word) error

	// DeleteByID removes a word. Deleting an absent word is not an error.
	DeleteByID(ctx context.Context, id string) error
}
