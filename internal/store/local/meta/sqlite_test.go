package meta

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE meta (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)

	return db
}

func TestSetGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "xp", "120"))
	v, err := r.Get(ctx, "xp")
	require.NoError(t, err)
	assert.Equal(t, "120", v)

	// overwrite
	require.NoError(t, r.Set(ctx, "xp", "150"))
	v, err = r.Get(ctx, "xp")
	require.NoError(t, err)
	assert.Equal(t, "150", v)
}

func TestGet_MissingKeyIsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestListDeleteClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "first_name", "Ada"))
	require.NoError(t, r.Set(ctx, "level", "3"))

	kv, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"first_name": "Ada", "level": "3"}, kv)

	require.NoError(t, r.Delete(ctx, "level"))
	kv, err = r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"first_name": "Ada"}, kv)

	require.NoError(t, r.Clear(ctx))
	kv, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, kv)
}
