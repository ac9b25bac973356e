package words

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ilyabe/wordvault/internal/dbx"
	"github.com/ilyabe/wordvault/internal/models"
)

// SQLiteRepository implements Repository over the embedded database. String
// lists are serialized to JSON text and booleans to 0/1 integers here, at the
// storage boundary only; callers always see the canonical models.Word.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a repository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const wordColumns = `id, deck_id, name, meaning, category, synonyms, antonyms, sentences,
	is_favorite, mastery_level, easiness_factor, interval, repetitions,
	times_trained, times_correct, times_incorrect,
	last_trained, last_answer_correct, next_review_date, mastered_at, created_at`

func (r *SQLiteRepository) GetByDeck(ctx context.Context, deckID string) ([]models.Word, error) {
	query := `SELECT ` + wordColumns + ` FROM words WHERE deck_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to select words of deck %s: %w", deckID, err)
	}
	defer rows.Close()

	var result []models.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, w *models.Word) error {
	query := `INSERT INTO words (` + wordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			deck_id = excluded.deck_id,
			name = excluded.name,
			meaning = excluded.meaning,
			category = excluded.category,
			synonyms = excluded.synonyms,
			antonyms = excluded.antonyms,
			sentences = excluded.sentences,
			is_favorite = excluded.is_favorite,
			mastery_level = excluded.mastery_level,
			easiness_factor = excluded.easiness_factor,
			interval = excluded.interval,
			repetitions = excluded.repetitions,
			times_trained = excluded.times_trained,
			times_correct = excluded.times_correct,
			times_incorrect = excluded.times_incorrect,
			last_trained = excluded.last_trained,
			last_answer_correct = excluded.last_answer_correct,
			next_review_date = excluded.next_review_date,
			mastered_at = excluded.mastered_at
	`
	if _, err := r.db.ExecContext(ctx, query, wordArgs(w)...); err != nil {
		return fmt.Errorf("failed to upsert word: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) BulkInsert(ctx context.Context, ws []models.Word) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `INSERT INTO words (` + wordColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for i := range ws {
			if _, err := tx.ExecContext(ctx, query, wordArgs(&ws[i])...); err != nil {
				return fmt.Errorf("failed to insert word %s: %w", ws[i].ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}

func wordArgs(w *models.Word) []any {
	return []any{
		w.ID, w.DeckID, w.Name, w.Meaning, w.Category,
		marshalList(w.Synonyms), marshalList(w.Antonyms), marshalList(w.Sentences),
		boolToInt(w.IsFavorite), w.MasteryLevel, w.EasinessFactor, w.Interval, w.Repetitions,
		w.TimesTrained, w.TimesCorrect, w.TimesIncorrect,
		nullTime(w.LastTrained), boolToInt(w.LastAnswerCorrect),
		nullTime(w.NextReviewDate), nullTime(w.MasteredAt), w.CreatedAt,
	}
}

func scanWord(rows *sql.Rows) (*models.Word, error) {
	var (
		w                            models.Word
		synonyms, antonyms, sents    string
		favorite, lastCorrect        int
		lastTrained, nextRev, mastAt sql.NullTime
	)
	if err := rows.Scan(
		&w.ID, &w.DeckID, &w.Name, &w.Meaning, &w.Category,
		&synonyms, &antonyms, &sents,
		&favorite, &w.MasteryLevel, &w.EasinessFactor, &w.Interval, &w.Repetitions,
		&w.TimesTrained, &w.TimesCorrect, &w.TimesIncorrect,
		&lastTrained, &lastCorrect, &nextRev, &mastAt, &w.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan word row: %w", err)
	}

	var err error
	if w.Synonyms, err = unmarshalList(synonyms); err != nil {
		return nil, fmt.Errorf("failed to decode synonyms of word %s: %w", w.ID, err)
	}
	if w.Antonyms, err = unmarshalList(antonyms); err != nil {
		return nil, fmt.Errorf("failed to decode antonyms of word %s: %w", w.ID, err)
	}
	if w.Sentences, err = unmarshalList(sents); err != nil {
		return nil, fmt.Errorf("failed to decode sentences of word %s: %w", w.ID, err)
	}

	w.IsFavorite = favorite != 0
	w.LastAnswerCorrect = lastCorrect != 0
	w.LastTrained = timePtr(lastTrained)
	w.NextReviewDate = timePtr(nextRev)
	w.MasteredAt = timePtr(mastAt)
	return &w, nil
}
