// Package sync contains the two reconciliation cores of the engine: the
// initial-sync reconciler, which picks an authoritative side the first time a
// session appears on a device, and the outbox queue processor, which replays
// locally ledgered mutations against the backend.
package sync

import (
	"context"

	"github.com/ilyabe/wordvault/internal/models"
)

// LocalStore is the slice of the embedded database the reconciler needs.
// *local.Store satisfies it.
type LocalStore interface {
	AllDecks(ctx context.Context) ([]models.Deck, error)
	WordsOfDeck(ctx context.Context, deckID string) ([]models.Word, error)
	LevelUpHistory(ctx context.Context) ([]models.LevelUpEntry, error)
	Achievements(ctx context.Context) ([]models.Achievement, error)
	LoadProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, p models.Profile) error

	// Reset wipes the database and reapplies the schema.
	Reset(ctx context.Context) error

	BulkInsertDecks(ctx context.Context, ds []models.Deck) error
	BulkInsertWords(ctx context.Context, ws []models.Word) error
	BulkInsertHistory(ctx context.Context, es []models.LevelUpEntry) error
	BulkInsertAchievements(ctx context.Context, as []models.Achievement) error
}

// RemoteStore is the owner-scoped bulk surface the reconciler works against.
// *remote.Store satisfies it.
type RemoteStore interface {
	CountDecks(ctx context.Context, userID string) (int, error)
	ListDecks(ctx context.Context, userID string) ([]models.Deck, error)
	InsertDecks(ctx context.Context, userID string, ds []models.Deck) error
	ListWords(ctx context.Context, userID string) ([]models.Word, error)
	InsertWords(ctx context.Context, userID string, ws []models.Word) error
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) error
	ListHistory(ctx context.Context, userID string) ([]models.LevelUpEntry, error)
	InsertHistory(ctx context.Context, userID string, es []models.LevelUpEntry) error
	ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error)
	InsertAchievements(ctx context.Context, userID string, as []models.Achievement) error
}

// RemoteWriter is the row-level surface the queue processor drains into.
// *remote.Store satisfies it.
type RemoteWriter interface {
	InsertDeck(ctx context.Context, userID string, d models.Deck) error
	UpdateDeck(ctx context.Context, id string, updates map[string]any) error
	DeleteDeck(ctx context.Context, id string) error
	InsertWord(ctx context.Context, userID string, w models.Word) error
	UpdateWord(ctx context.Context, id string, updates map[string]any) error
	SetWordFavorite(ctx context.Context, id string, favorite bool) error
	DeleteWord(ctx context.Context, id string) error
}

// Ledger is the durable pending-operations log the processor drains.
// The local outbox repository satisfies it.
type Ledger interface {
	Pending(ctx context.Context) ([]models.Operation, error)
	Delete(ctx context.Context, ids []int64) error
	RecordFailure(ctx context.Context, id int64, maxAttempts int) error
}

// Connectivity is what the processor needs from the network monitor.
type Connectivity interface {
	Online() bool
}

// Identity supplies the owner attached to outbound writes.
type Identity interface {
	UserID() (string, error)
}
