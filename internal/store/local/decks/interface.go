package decks

import (
	"context"

	"github.com/ilyabe/wordvault/internal/models"
)

// Repository describes deck storage in the local database.
type Repository interface {
	// GetAll returns every deck, oldest first.
	GetAll(ctx context.Context) ([]models.Deck, error)

	// CreateOrUpdate upserts a deck by id.
	CreateOrUpdate(ctx context.Context, d *models.Deck) error

	// BulkInsert writes the given decks in one transaction. Used by the
	// download path against a freshly reinitialized database.
	BulkInsert(ctx context.Context, ds []models.Deck) error

	// DeleteByID removes a deck. Deleting an absent deck is not an error.
	DeleteByID(ctx context.Context, id string) error
}
