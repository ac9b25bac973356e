package sync

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ilyabe/wordvault/internal/common"
	"github.com/ilyabe/wordvault/internal/logging"
	"github.com/ilyabe/wordvault/internal/models"
)

// Direction is the outcome of one reconciliation pass.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUploaded
	DirectionDownloaded
)

func (d Direction) String() string {
	switch d {
	case DirectionUploaded:
		return "uploaded"
	case DirectionDownloaded:
		return "downloaded"
	default:
		return "none"
	}
}

// Reconciler performs the one-time reconciliation between a device's local
// data and the backend when a session first appears. Exactly one of upload,
// download or nothing happens per call; it never merges.
//
// The caller owns the once-per-session guarantee and any user-visible
// "syncing" state; Run itself is a plain function of the two stores.
type Reconciler struct {
	local  LocalStore
	remote RemoteStore
	log    logging.Logger
}

// NewReconciler returns a reconciler over the two stores.
func NewReconciler(local LocalStore, remote RemoteStore, log logging.Logger) *Reconciler {
	return &Reconciler{local: local, remote: remote, log: log}
}

// Run inspects both stores for userID and copies the authoritative side over:
// local data with an empty backend uploads, a non-empty backend downloads,
// two empty stores do nothing.
func (r *Reconciler) Run(ctx context.Context, userID string) (Direction, error) {
	remoteCount, err := r.remote.CountDecks(ctx, userID)
	if err != nil {
		// An unknown remote count is treated like an empty backend: the
		// device's data, if any, wins. Downloading on a guess could destroy
		// local-only decks.
		r.log.Warn(ctx, "failed to count remote decks, assuming empty", "error", err)
		remoteCount = 0
	}

	localDecks, err := r.local.AllDecks(ctx)
	if err != nil {
		return DirectionNone, fmt.Errorf("failed to read local decks: %w", err)
	}

	switch {
	case len(localDecks) > 0 && remoteCount == 0:
		if err := r.upload(ctx, userID, localDecks); err != nil {
			return DirectionNone, err
		}
		return DirectionUploaded, nil
	case remoteCount > 0:
		if err := r.download(ctx, userID); err != nil {
			return DirectionNone, err
		}
		return DirectionDownloaded, nil
	default:
		return DirectionNone, nil
	}
}

// upload copies the device's data to the backend, attaching userID as owner.
// Identifiers are carried over unchanged. Deck and word inserts are
// structural: their failure aborts the upload. Profile and gamification
// uploads are best effort; losing them cannot corrupt the core data.
func (r *Reconciler) upload(ctx context.Context, userID string, localDecks []models.Deck) error {
	if err := r.remote.InsertDecks(ctx, userID, localDecks); err != nil {
		return fmt.Errorf("failed to upload decks: %w", err)
	}

	for _, d := range localDecks {
		ws, err := r.local.WordsOfDeck(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("failed to read words of deck %s: %w", d.ID, err)
		}
		if len(ws) == 0 {
			continue
		}
		if err := r.remote.InsertWords(ctx, userID, ws); err != nil {
			return fmt.Errorf("failed to upload words of deck %s: %w", d.ID, err)
		}
	}

	if p, err := r.local.LoadProfile(ctx); err != nil {
		r.log.Warn(ctx, "failed to read local profile", "error", err)
	} else {
		p.ID = userID
		// The profile row is created at signup; this is an update, never an
		// insert.
		if err := r.remote.UpdateProfile(ctx, *p); err != nil {
			r.log.Warn(ctx, "failed to upload profile", "error", err)
		}
	}

	if hist, err := r.local.LevelUpHistory(ctx); err != nil {
		r.log.Warn(ctx, "failed to read local level-up history", "error", err)
	} else if len(hist) > 0 {
		if err := r.remote.InsertHistory(ctx, userID, hist); err != nil {
			r.log.Warn(ctx, "failed to upload level-up history", "error", err)
		}
	}

	if as, err := r.local.Achievements(ctx); err != nil {
		r.log.Warn(ctx, "failed to read local achievements", "error", err)
	} else if len(as) > 0 {
		if err := r.remote.InsertAchievements(ctx, userID, as); err != nil {
			r.log.Warn(ctx, "failed to upload achievements", "error", err)
		}
	}

	return nil
}

// download replaces the device's data with the backend's. All collections
// are fetched in parallel and held in memory first; the local database is
// wiped only after every fetch has succeeded, so a mid-download failure
// leaves the device exactly as it was.
func (r *Reconciler) download(ctx context.Context, userID string) error {
	var (
		profile      *models.Profile
		decks        []models.Deck
		words        []models.Word
		history      []models.LevelUpEntry
		achievements []models.Achievement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := r.remote.GetProfile(gctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				// Signup should have created it; sync can live without.
				r.log.Warn(gctx, "remote profile missing", "user_id", userID)
				return nil
			}
			return fmt.Errorf("failed to fetch profile: %w", err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		var err error
		if decks, err = r.remote.ListDecks(gctx, userID); err != nil {
			return fmt.Errorf("failed to fetch decks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if words, err = r.remote.ListWords(gctx, userID); err != nil {
			return fmt.Errorf("failed to fetch words: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if history, err = r.remote.ListHistory(gctx, userID); err != nil {
			return fmt.Errorf("failed to fetch level-up history: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if achievements, err = r.remote.ListAchievements(gctx, userID); err != nil {
			return fmt.Errorf("failed to fetch achievements: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := r.local.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset local store: %w", err)
	}

	if err := r.local.BulkInsertDecks(ctx, decks); err != nil {
		return fmt.Errorf("failed to store decks: %w", err)
	}
	if err := r.local.BulkInsertWords(ctx, words); err != nil {
		return fmt.Errorf("failed to store words: %w", err)
	}
	if err := r.local.BulkInsertHistory(ctx, history); err != nil {
		return fmt.Errorf("failed to store level-up history: %w", err)
	}
	if err := r.local.BulkInsertAchievements(ctx, achievements); err != nil {
		return fmt.Errorf("failed to store achievements: %w", err)
	}
	if profile != nil {
		if err := r.local.SaveProfile(ctx, *profile); err != nil {
			return fmt.Errorf("failed to store profile: %w", err)
		}
	}

	return nil
}
