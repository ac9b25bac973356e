package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilyabe/wordvault/internal/common"
	"github.com/ilyabe/wordvault/internal/models"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query := `SELECT id, first_name, last_name, xp, level, current_league, weekly_xp, updated_at
		FROM profiles WHERE id = $1`

	var p models.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.XP, &p.Level, &p.CurrentLeague, &p.WeeklyXP, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p models.Profile) error {
	query := `UPDATE profiles
		SET first_name = $2, last_name = $3, xp = $4, level = $5,
		    current_league = $6, weekly_xp = $7, updated_at = NOW()
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		p.ID, p.FirstName, p.LastName, p.XP, p.Level, p.CurrentLeague, p.WeeklyXP)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}
