package sync

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ilyabe/wordvault/internal/common"
	"github.com/ilyabe/wordvault/internal/logging"
	"github.com/ilyabe/wordvault/internal/models"
)

// Drain states. The processor is a two-state machine; CompareAndSwap on
// entry is what makes concurrent triggers collapse into a single pass.
const (
	stateIdle int32 = iota
	stateDraining
)

// DrainStats summarizes one pass over the ledger.
type DrainStats struct {
	Processed int // confirmed by the backend and removed
	Failed    int // left in the ledger for the next pass
	Dead      int // newly parked as dead letters
}

// QueueProcessor delivers ledgered local mutations to the backend,
// at-least-once. Safe to trigger redundantly from any goroutine: offline, an
// empty ledger and a drain already in flight are all silent no-ops.
type QueueProcessor struct {
	ledger Ledger
	remote RemoteWriter
	net    Connectivity
	ident  Identity
	log    logging.Logger

	maxAttempts int
	state       atomic.Int32
}

// NewQueueProcessor returns a processor draining ledger into remote.
// maxAttempts bounds delivery retries per entry before it is parked dead.
func NewQueueProcessor(ledger Ledger, remote RemoteWriter, net Connectivity, ident Identity, maxAttempts int, log logging.Logger) *QueueProcessor {
	return &QueueProcessor{
		ledger:      ledger,
		remote:      remote,
		net:         net,
		ident:       ident,
		maxAttempts: maxAttempts,
		log:         log,
	}
}

// Process drains the ledger once. Every entry is attempted; the ones the
// backend confirmed are deleted in a single batch at the end, failures stay
// put (with their attempt counter bumped) for the next trigger.
func (q *QueueProcessor) Process(ctx context.Context) (DrainStats, error) {
	var stats DrainStats

	if !q.net.Online() {
		return stats, nil
	}
	if !q.state.CompareAndSwap(stateIdle, stateDraining) {
		return stats, nil
	}
	defer q.state.Store(stateIdle)

	ops, err := q.ledger.Pending(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to read pending operations: %w", err)
	}
	if len(ops) == 0 {
		return stats, nil
	}

	userID, err := q.ident.UserID()
	if err != nil {
		// Owner-scoped writes cannot be attributed without a session; the
		// ledger stays intact for after login.
		q.log.Warn(ctx, "skipping outbox drain, no active session")
		return stats, nil
	}

	q.log.Info(ctx, "draining outbox", "pending", len(ops), "user_id", userID)

	confirmed := make([]int64, 0, len(ops))
	for i := range ops {
		op := &ops[i]
		if err := q.apply(ctx, userID, op); err != nil {
			q.log.Error(ctx, "pending operation failed",
				"id", op.ID, "type", string(op.Type), "attempts", op.Attempts+1, "error", err)
			if ferr := q.ledger.RecordFailure(ctx, op.ID, q.maxAttempts); ferr != nil {
				q.log.Error(ctx, "failed to record operation failure", "id", op.ID, "error", ferr)
			}
			if op.Attempts+1 >= q.maxAttempts {
				q.log.Warn(ctx, "operation parked as dead letter", "id", op.ID, "type", string(op.Type))
				stats.Dead++
			} else {
				stats.Failed++
			}
			continue
		}
		confirmed = append(confirmed, op.ID)
	}

	if len(confirmed) > 0 {
		if err := q.ledger.Delete(ctx, confirmed); err != nil {
			return stats, fmt.Errorf("failed to delete processed operations: %w", err)
		}
	}
	stats.Processed = len(confirmed)

	q.log.Info(ctx, "outbox drain finished",
		"processed", stats.Processed, "failed", stats.Failed, "dead", stats.Dead)
	return stats, nil
}

// apply dispatches one operation to the backend. The owner is attached only
// on CREATEs; updates and deletes address rows by primary key.
func (q *QueueProcessor) apply(ctx context.Context, userID string, op *models.Operation) error {
	switch op.Type {
	case models.OpCreateDeck:
		var p models.DeckPayload
		if err := op.Decode(&p); err != nil {
			return err
		}
		return q.remote.InsertDeck(ctx, userID, p.Deck())

	case models.OpUpdateDeck:
		var p models.UpdatePayload
		if err := op.Decode(&p); err != nil {
			return err
		}
		return q.remote.UpdateDeck(ctx, p.ID, p.Updates)

	case models.OpDeleteDeck:
		var p models.DeletePayload
		if err := op.Decode(&p); err != nil {
			return err
		}
		return q.remote.DeleteDeck(ctx, p.ID)

	case models.OpCreateWord:
		var p models.WordPayload
		if err := op.Decode(&p); err != nil {
			return err
		}
		return q.remote.InsertWord(ctx, userID, p.Word())

	case models.OpUpdateWord, models.OpUpdateWordDetails, models.OpUpdateWordStats:
		var p models.UpdatePayload
		if err := op.Decode(&p); err != nil {
			return err
		}
		return q.remote.UpdateWord(ctx, p.ID, p.Updates)

	case models.OpToggleWordFavorite:
		var p models.TogglePayload
		if err := op.Decode(&p); err != nil {
			return err
		}
		return q.remote.SetWordFavorite(ctx, p.ID, p.IsFavorite)

	case models.OpDeleteWord:
		var p models.DeletePayload
		if err := op.Decode(&p); err != nil {
			return err
		}
		return q.remote.DeleteWord(ctx, p.ID)

	default:
		return fmt.Errorf("%w: %s", common.ErrUnknownOperation, op.Type)
	}
}
