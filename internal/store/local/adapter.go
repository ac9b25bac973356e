package local

import (
	"context"

	"github.com/ilyabe/wordvault/internal/models"
)

// Flat adapter surface consumed by the sync engine. These mirror the
// repository methods so the engine depends on one narrow interface instead of
// five repositories.

// AllDecks returns every deck in the local database.
func (s *Store) AllDecks(ctx context.Context) ([]models.Deck, error) {
	return s.Decks.GetAll(ctx)
}

// WordsOfDeck returns the words of one deck.
func (s *Store) WordsOfDeck(ctx context.Context, deckID string) ([]models.Word, error) {
	return s.Words.GetByDeck(ctx, deckID)
}

// LevelUpHistory returns the local level-up records.
func (s *Store) LevelUpHistory(ctx context.Context) ([]models.LevelUpEntry, error) {
	return s.Gamification.History(ctx)
}

// Achievements returns the locally unlocked achievements.
func (s *Store) Achievements(ctx context.Context) ([]models.Achievement, error) {
	return s.Gamification.Achievements(ctx)
}

// BulkInsertDecks writes decks fetched from the backend.
func (s *Store) BulkInsertDecks(ctx context.Context, ds []models.Deck) error {
	return s.Decks.BulkInsert(ctx, ds)
}

// BulkInsertWords writes words fetched from the backend.
func (s *Store) BulkInsertWords(ctx context.Context, ws []models.Word) error {
	return s.Words.BulkInsert(ctx, ws)
}

// BulkInsertHistory writes level-up records fetched from the backend.
func (s *Store) BulkInsertHistory(ctx context.Context, es []models.LevelUpEntry) error {
	return s.Gamification.BulkInsertHistory(ctx, es)
}

// BulkInsertAchievements writes achievements fetched from the backend.
func (s *Store) BulkInsertAchievements(ctx context.Context, as []models.Achievement) error {
	return s.Gamification.BulkInsertAchievements(ctx, as)
}
