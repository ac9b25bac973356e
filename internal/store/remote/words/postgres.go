package words

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilyabe/wordvault/internal/models"
	"github.com/ilyabe/wordvault/internal/store/remote/updates"
)

var updatable = map[string]bool{
	"name": true, "meaning": true, "category": true,
	"synonyms": true, "antonyms": true, "sentences": true,
	"is_favorite": true, "last_answer_correct": true,
	"mastery_level": true, "easiness_factor": true, "interval": true,
	"repetitions": true, "times_trained": true, "times_correct": true,
	"times_incorrect": true, "last_trained": true,
	"next_review_date": true, "mastered_at": true,
}

// PostgresRepository implements Repository against the backend pool. The
// synonyms/antonyms/sentences columns are text[]; pgx maps them to []string
// directly, so no serialization happens on this side.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const wordColumns = `id, deck_id, name, meaning, category, synonyms, antonyms, sentences,
	is_favorite, mastery_level, easiness_factor, "interval", repetitions,
	times_trained, times_correct, times_incorrect,
	last_trained, last_answer_correct, next_review_date, mastered_at, created_at`

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string) ([]models.Word, error) {
	query := `SELECT ` + wordColumns + ` FROM words WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select words: %w", err)
	}
	defer rows.Close()

	var result []models.Word
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(
			&w.ID, &w.DeckID, &w.Name, &w.Meaning, &w.Category,
			&w.Synonyms, &w.Antonyms, &w.Sentences,
			&w.IsFavorite, &w.MasteryLevel, &w.EasinessFactor, &w.Interval, &w.Repetitions,
			&w.TimesTrained, &w.TimesCorrect, &w.TimesIncorrect,
			&w.LastTrained, &w.LastAnswerCorrect, &w.NextReviewDate, &w.MasteredAt, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

const insertWord = `
	INSERT INTO words (user_id, ` + wordColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	ON CONFLICT (id) DO NOTHING
`

func wordArgs(userID string, w *models.Word) []any {
	return []any{
		userID,
		w.ID, w.DeckID, w.Name, w.Meaning, w.Category,
		w.Synonyms, w.Antonyms, w.Sentences,
		w.IsFavorite, w.MasteryLevel, w.EasinessFactor, w.Interval, w.Repetitions,
		w.TimesTrained, w.TimesCorrect, w.TimesIncorrect,
		w.LastTrained, w.LastAnswerCorrect, w.NextReviewDate, w.MasteredAt, w.CreatedAt,
	}
}

func (r *PostgresRepository) Insert(ctx context.Context, userID string, w models.Word) error {
	if _, err := r.db.Exec(ctx, insertWord, wordArgs(userID, &w)...); err != nil {
		return fmt.Errorf("failed to insert word: %w", err)
	}
	return nil
}

func (r *PostgresRepository) BulkInsert(ctx context.Context, userID string, ws []models.Word) error {
	if len(ws) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i := range ws {
		batch.Queue(insertWord, wordArgs(userID, &ws[i])...)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to bulk insert words: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd map[string]any) error {
	set, args, err := updates.BuildSet(upd, updatable, 2)
	if err != nil {
		return fmt.Errorf("failed to build word update: %w", err)
	}
	query := `UPDATE words SET ` + set + ` WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, append([]any{id}, args...)...); err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	if _, err := r.db.Exec(ctx, `UPDATE words SET is_favorite = $2 WHERE id = $1`, id, favorite); err != nil {
		return fmt.Errorf("failed to set word favorite: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM words WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}
