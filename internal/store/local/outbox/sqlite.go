package outbox

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ilyabe/wordvault/internal/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, op *models.Operation) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO pending_operations (operation_type, payload) VALUES (?, ?)`,
		string(op.Type), string(op.Payload))
	if err != nil {
		return fmt.Errorf("failed to append pending operation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get ledger id: %w", err)
	}
	op.ID = id
	return nil
}

func (r *SQLiteRepository) Pending(ctx context.Context) ([]models.Operation, error) {
	return r.list(ctx, `SELECT id, operation_type, payload, attempts, dead, created_at
		FROM pending_operations WHERE dead = 0 ORDER BY id`)
}

func (r *SQLiteRepository) Dead(ctx context.Context) ([]models.Operation, error) {
	return r.list(ctx, `SELECT id, operation_type, payload, attempts, dead, created_at
		FROM pending_operations WHERE dead = 1 ORDER BY id`)
}

func (r *SQLiteRepository) list(ctx context.Context, query string) ([]models.Operation, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select pending operations: %w", err)
	}
	defer rows.Close()

	var result []models.Operation
	for rows.Next() {
		var (
			item    models.Operation
			opType  string
			payload string
			dead    int
		)
		if err := rows.Scan(&item.ID, &opType, &payload, &item.Attempts, &dead, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.Type = models.OperationType(opType)
		item.Payload = []byte(payload)
		item.Dead = dead != 0
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := `DELETE FROM pending_operations WHERE id IN (` + placeholders + `)`
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete processed operations: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) RecordFailure(ctx context.Context, id int64, maxAttempts int) error {
	query := `UPDATE pending_operations
		SET attempts = attempts + 1,
		    dead = CASE WHEN attempts + 1 >= ? THEN 1 ELSE dead END
		WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, maxAttempts, id); err != nil {
		return fmt.Errorf("failed to record operation failure: %w", err)
	}
	return nil
}
