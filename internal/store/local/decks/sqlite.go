package decks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ilyabe/wordvault/internal/dbx"
	"github.com/ilyabe/wordvault/internal/models"
)

// SQLiteRepository implements Repository over the embedded database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a repository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Deck, error) {
	query := `SELECT id, title, author, created_at FROM decks ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
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

func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, d *models.Deck) error {
	query := `INSERT INTO decks (id, title, author, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET title = excluded.title, author = excluded.author
	`
	_, err := r.db.ExecContext(ctx, query, d.ID, d.Title, d.Author, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert deck: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) BulkInsert(ctx context.Context, ds []models.Deck) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `INSERT INTO decks (id, title, author, created_at) VALUES (?, ?, ?, ?)`
		for _, d := range ds {
			if _, err := tx.ExecContext(ctx, query, d.ID, d.Title, d.Author, d.CreatedAt); err != nil {
				return fmt.Errorf("failed to insert deck %s: %w", d.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	return nil
}
