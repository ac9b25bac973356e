package outbox

import (
	"context"
	"database/sql"
	"testing"

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
CREATE TABLE pending_operations (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  operation_type TEXT NOT NULL,
  payload TEXT NOT NULL,
  attempts INTEGER NOT NULL DEFAULT 0,
  dead INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)

	return db
}

func mustOp(t *testing.T, typ models.OperationType, payload any) *models.Operation {
	t.Helper()
	op, err := models.NewOperation(typ, payload)
	require.NoError(t, err)
	return op
}

func TestAppend_AssignsSequentialIDs(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	op1 := mustOp(t, models.OpDeleteWord, models.DeletePayload{ID: "w1"})
	op2 := mustOp(t, models.OpDeleteWord, models.DeletePayload{ID: "w2"})
	require.NoError(t, r.Append(ctx, op1))
	require.NoError(t, r.Append(ctx, op2))

	assert.Equal(t, int64(1), op1.ID)
	assert.Equal(t, int64(2), op2.ID)
}

func TestPending_InsertionOrderAndPayloadIntact(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, mustOp(t, models.OpToggleWordFavorite, models.TogglePayload{ID: "w1", IsFavorite: true})))
	require.NoError(t, r.Append(ctx, mustOp(t, models.OpDeleteDeck, models.DeletePayload{ID: "d1"})))

	ops, err := r.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	assert.Equal(t, models.OpToggleWordFavorite, ops[0].Type)
	assert.Equal(t, models.OpDeleteDeck, ops[1].Type)

	var p models.TogglePayload
	require.NoError(t, ops[0].Decode(&p))
	assert.Equal(t, "w1", p.ID)
	assert.True(t, p.IsFavorite)
}

func TestDelete_RemovesOnlyGivenIDs(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, r.Append(ctx, mustOp(t, models.OpDeleteWord, models.DeletePayload{ID: id})))
	}

	require.NoError(t, r.Delete(ctx, []int64{1, 3}))

	ops, err := r.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, int64(2), ops[0].ID)

	// empty batch is a no-op
	require.NoError(t, r.Delete(ctx, nil))
}

func TestRecordFailure_ParksDeadAfterMaxAttempts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, mustOp(t, models.OpDeleteWord, models.DeletePayload{ID: "w"})))

	require.NoError(t, r.RecordFailure(ctx, 1, 3))
	require.NoError(t, r.RecordFailure(ctx, 1, 3))

	ops, err := r.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, 2, ops[0].Attempts)
	assert.False(t, ops[0].Dead)

	require.NoError(t, r.RecordFailure(ctx, 1, 3))

	ops, err = r.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	dead, err := r.Dead(ctx)
	require.NoError(t, err)
	require.Len(t, dead, 1)
	assert.True(t, dead[0].Dead)
	assert.Equal(t, 3, dead[0].Attempts)
}
