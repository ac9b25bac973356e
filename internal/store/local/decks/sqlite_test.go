package decks

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyabe/wordvault/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE decks (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  author TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestCreateOrUpdate_InsertAndUpdate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	d := &models.Deck{ID: "d1", Title: "Animals", Author: "me", CreatedAt: time.Now().UTC()}
	require.NoError(t, r.CreateOrUpdate(ctx, d))

	var title, author string
	require.NoError(t, db.QueryRow(`SELECT title, author FROM decks WHERE id=?`, "d1").Scan(&title, &author))
	assert.Equal(t, "Animals", title)
	assert.Equal(t, "me", author)

	d.Title = "Wild Animals"
	require.NoError(t, r.CreateOrUpdate(ctx, d))

	require.NoError(t, db.QueryRow(`SELECT title FROM decks WHERE id=?`, "d1").Scan(&title))
	assert.Equal(t, "Wild Animals", title)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM decks`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestGetAll_OrderedByCreation(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, r.CreateOrUpdate(ctx, &models.Deck{ID: "b", Title: "second", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, r.CreateOrUpdate(ctx, &models.Deck{ID: "a", Title: "first", CreatedAt: base}))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestBulkInsert_AllOrNothing(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, r.BulkInsert(ctx, []models.Deck{
		{ID: "a", Title: "one", CreatedAt: now},
		{ID: "b", Title: "two", CreatedAt: now},
	}))

	// duplicate id in the batch rolls the whole batch back
	err := r.BulkInsert(ctx, []models.Deck{
		{ID: "c", Title: "three", CreatedAt: now},
		{ID: "a", Title: "dup", CreatedAt: now},
	})
	require.Error(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM decks`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestDeleteByID_AbsentIsNoError(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, &models.Deck{ID: "x", Title: "t", CreatedAt: time.Now().UTC()}))
	require.NoError(t, r.DeleteByID(ctx, "x"))
	require.NoError(t, r.DeleteByID(ctx, "x"))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM decks`).Scan(&n))
	assert.Equal(t, 0, n)
}
