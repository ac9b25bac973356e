// Package local assembles the repositories of the embedded database into the
// single adapter the sync engine works against.
package local

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/ilyabe/wordvault/internal/models"
	"github.com/ilyabe/wordvault/internal/store/local/decks"
	"github.com/ilyabe/wordvault/internal/store/local/gamification"
	"github.com/ilyabe/wordvault/internal/store/local/meta"
	"github.com/ilyabe/wordvault/internal/store/local/migrations"
	"github.com/ilyabe/wordvault/internal/store/local/outbox"
	"github.com/ilyabe/wordvault/internal/store/local/words"
)

// Meta keys the profile is flattened into.
const (
	MetaFirstName     = "first_name"
	MetaLastName      = "last_name"
	MetaXP            = "xp"
	MetaLevel         = "level"
	MetaCurrentLeague = "current_league"
	MetaWeeklyXP      = "weekly_xp"
)

// Store owns the embedded database and its repositories.
type Store struct {
	db *sql.DB

	Decks        decks.Repository
	Words        words.Repository
	Meta         meta.Repository
	Gamification gamification.Repository
	Outbox       outbox.Repository
}

// RunMigrations applies the embedded goose scripts.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the local database at dsn, applies the
// schema and wires up the repositories.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to migrate local db: %w", err)
	}

	s := &Store{db: db}
	s.wire()
	return s, nil
}

func (s *Store) wire() {
	s.Decks = decks.NewSQLiteRepository(s.db)
	s.Words = words.NewSQLiteRepository(s.db)
	s.Meta = meta.NewSQLiteRepository(s.db)
	s.Gamification = gamification.NewSQLiteRepository(s.db)
	s.Outbox = outbox.NewSQLiteRepository(s.db)
}

// Reset drops every table and reapplies the schema. The download path calls
// this once all remote data is already fetched and validated, so the device
// is never left empty by a failed fetch.
func (s *Store) Reset(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.DownToContext(ctx, s.db, ".", 0); err != nil {
		return fmt.Errorf("failed to drop local schema: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return fmt.Errorf("failed to reinitialize local schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the raw handle; tests and the practice layer use it.
func (s *Store) DB() *sql.DB {
	return s.db
}

// LoadProfile assembles the locally mirrored profile from the meta store.
// Missing keys yield zero values, matching a device that never synced.
func (s *Store) LoadProfile(ctx context.Context) (*models.Profile, error) {
	kv, err := s.Meta.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile meta: %w", err)
	}

	p := &models.Profile{
		FirstName:     kv[MetaFirstName],
		LastName:      kv[MetaLastName],
		CurrentLeague: kv[MetaCurrentLeague],
	}
	p.XP, _ = strconv.Atoi(kv[MetaXP])
	p.Level, _ = strconv.Atoi(kv[MetaLevel])
	p.WeeklyXP, _ = strconv.Atoi(kv[MetaWeeklyXP])
	return p, nil
}

// SaveProfile flattens p into the meta store.
func (s *Store) SaveProfile(ctx context.Context, p models.Profile) error {
	pairs := map[string]string{
		MetaFirstName:     p.FirstName,
		MetaLastName:      p.LastName,
		MetaXP:            strconv.Itoa(p.XP),
		MetaLevel:         strconv.Itoa(p.Level),
		MetaCurrentLeague: p.CurrentLeague,
		MetaWeeklyXP:      strconv.Itoa(p.WeeklyXP),
	}
	for k, v := range pairs {
		if err := s.Meta.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

// Enqueue validates and appends one mutation to the pending-operations
// ledger. Every local write that must reach the backend goes through this.
func (s *Store) Enqueue(ctx context.Context, t models.OperationType, payload any) (*models.Operation, error) {
	op, err := models.NewOperation(t, payload)
	if err != nil {
		return nil, err
	}
	op.CreatedAt = time.Now().UTC()
	if err := s.Outbox.Append(ctx, op); err != nil {
		return nil, err
	}
	return op, nil
}
