package remote

import (
	"context"

	"github.com/ilyabe/wordvault/internal/models"
	"github.com/ilyabe/wordvault/internal/store/remote/decks"
	"github.com/ilyabe/wordvault/internal/store/remote/gamification"
	"github.com/ilyabe/wordvault/internal/store/remote/profiles"
	"github.com/ilyabe/wordvault/internal/store/remote/words"
)

// Store bundles the per-table repositories over one connection. It satisfies
// the consumer interfaces declared in the sync package.
type Store struct {
	Decks        decks.Repository
	Words        words.Repository
	Profiles     profiles.Repository
	Gamification gamification.Repository
}

// NewStore wires the repositories over conn.
func NewStore(conn *Connection) *Store {
	return &Store{
		Decks:        decks.NewPostgresRepository(conn.Pool),
		Words:        words.NewPostgresRepository(conn.Pool),
		Profiles:     profiles.NewPostgresRepository(conn.Pool),
		Gamification: gamification.NewPostgresRepository(conn.Pool),
	}
}

// Flat adapter surface consumed by the sync engine.

func (s *Store) CountDecks(ctx context.Context, userID string) (int, error) {
	return s.Decks.CountByOwner(ctx, userID)
}

func (s *Store) ListDecks(ctx context.Context, userID string) ([]models.Deck, error) {
	return s.Decks.ListByOwner(ctx, userID)
}

func (s *Store) InsertDecks(ctx context.Context, userID string, ds []models.Deck) error {
	return s.Decks.BulkInsert(ctx, userID, ds)
}

func (s *Store) ListWords(ctx context.Context, userID string) ([]models.Word, error) {
	return s.Words.ListByOwner(ctx, userID)
}

func (s *Store) InsertWords(ctx context.Context, userID string, ws []models.Word) error {
	return s.Words.BulkInsert(ctx, userID, ws)
}

func (s *Store) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.Profiles.Get(ctx, userID)
}

func (s *Store) UpdateProfile(ctx context.Context, p models.Profile) error {
	return s.Profiles.Update(ctx, p)
}

func (s *Store) ListHistory(ctx context.Context, userID string) ([]models.LevelUpEntry, error) {
	return s.Gamification.ListHistory(ctx, userID)
}

func (s *Store) InsertHistory(ctx context.Context, userID string, es []models.LevelUpEntry) error {
	return s.Gamification.BulkInsertHistory(ctx, userID, es)
}

func (s *Store) ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	return s.Gamification.ListAchievements(ctx, userID)
}

func (s *Store) InsertAchievements(ctx context.Context, userID string, as []models.Achievement) error {
	return s.Gamification.BulkInsertAchievements(ctx, userID, as)
}

// Row-level surface the outbox processor drains into.

func (s *Store) InsertDeck(ctx context.Context, userID string, d models.Deck) error {
	return s.Decks.Insert(ctx, userID, d)
}

func (s *Store) UpdateDeck(ctx context.Context, id string, updates map[string]any) error {
	return s.Decks.Update(ctx, id, updates)
}

func (s *Store) DeleteDeck(ctx context.Context, id string) error {
	return s.Decks.Delete(ctx, id)
}

func (s *Store) InsertWord(ctx context.Context, userID string, w models.Word) error {
	return s.Words.Insert(ctx, userID, w)
}

func (s *Store) UpdateWord(ctx context.Context, id string, updates map[string]any) error {
	return s.Words.Update(ctx, id, updates)
}

func (s *Store) SetWordFavorite(ctx context.Context, id string, favorite bool) error {
	return s.Words.SetFavorite(ctx, id, favorite)
}

func (s *Store) DeleteWord(ctx context.Context, id string) error {
	return s.Words.Delete(ctx, id)
}
