package outbox

import (
	"context"

	"github.com/ilyabe/wordvault/internal/models"
)

// Repository is the durable pending-operations ledger. Entries are created
// by local mutations and removed only after the backend has confirmed the
// corresponding write.
type Repository interface {
	// Append adds op to the end of the ledger and fills in its ID.
	Append(ctx context.Context, op *models.Operation) error

	// Pending returns live (non-dead) entries in insertion order.
	Pending(ctx context.Context) ([]models.Operation, error)

	// Delete removes the entries with the given ids in one statement.
	Delete(ctx context.Context, ids []int64) error

	// RecordFailure increments the attempt counter of one entry and flags it
	// dead once the counter reaches maxAttempts.
	RecordFailure(ctx context.Context, id int64, maxAttempts int) error

	// Dead returns entries parked as dead letters, for diagnostics.
	Dead(ctx context.Context) ([]models.Operation, error)
}
