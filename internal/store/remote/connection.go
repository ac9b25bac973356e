// Package remote is the adapter for the shared backend: owner-scoped
// row-level CRUD over the decks, words, profiles and gamification tables.
// The schema is owned by the backend; this package only reads and writes it.
package remote

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connection wraps a pgx pool. All repositories share one pool.
type Connection struct {
	*pgxpool.Pool
}

// Dial opens a connection pool for dsn.
func Dial(ctx context.Context, dsn string) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse remote dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	return &Connection{Pool: pool}, nil
}

// Ping reports backend reachability; the connectivity monitor probes it.
func (c *Connection) Ping(ctx context.Context) error {
	if c.Pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return c.Pool.Ping(ctx)
}

// Close releases the pool.
func (c *Connection) Close() error {
	if c.Pool != nil {
		c.Pool.Close()
	}
	return nil
}
