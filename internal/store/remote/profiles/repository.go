package profiles

import (
	"context"

	"github.com/ilyabe/wordvault/internal/models"
)

// Repository is per-user profile storage on the backend. The row is created
// by the signup flow; sync only reads and updates it.
type Repository interface {
	// Get returns the profile for userID, or common.ErrNotFound.
	Get(ctx context.Context, userID string) (*models.Profile, error)

	// Update overwrites the mutable profile fields. Never inserts.
	Update(ctx context.Context, p models.Profile) error
}
