package decks

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilyabe/wordvault/internal/models"
	"github.com/ilyabe/wordvault/internal/store/remote/updates"
)

var updatable = map[string]bool{
	"title":  true,
	"author": true,
}

// PostgresRepository implements Repository against the backend pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountByOwner(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM decks WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count decks: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string) ([]models.Deck, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, author, created_at FROM decks WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select decks: %w", err)
	}
	defer rows.Close()

	var result []models.Deck
	for rows.Next() {
		var item models.Deck
		if err := rows.Scan(&item.ID, &item.Title, &item.Author, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

const insertDeck = `
	INSERT INTO decks (id, user_id, title, author, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO NOTHING
`

func (r *PostgresRepository) Insert(ctx context.Context, userID string, d models.Deck) error {
	if _, err := r.db.Exec(ctx, insertDeck, d.ID, userID, d.Title, d.Author, d.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert deck: %w", err)
	}
	return nil
}

func (r *PostgresRepository) BulkInsert(ctx context.Context, userID string, ds []models.Deck) error {
	if len(ds) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, d := range ds {
		batch.Queue(insertDeck, d.ID, userID, d.Title, d.Author, d.CreatedAt)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to bulk insert decks: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd map[string]any) error {
	set, args, err := updates.BuildSet(upd, updatable, 2)
	if err != nil {
		return fmt.Errorf("failed to build deck update: %w", err)
	}
	query := `UPDATE decks SET ` + set + ` WHERE id = $1`
	// Zero rows affected means the deck is already gone; a replayed update
	// must not fail on that.
	if _, err := r.db.Exec(ctx, query, append([]any{id}, args...)...); err != nil {
		return fmt.Errorf("failed to update deck: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback(ctx)

	// Words first; the backend schema may not cascade.
	if _, err := tx.Exec(ctx, `DELETE FROM words WHERE deck_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete words of deck: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM decks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	return tx.Commit(ctx)
}
