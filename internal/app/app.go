// Package app wires the engine together and owns its lifecycle: one
// reconciliation per new session, opportunistic outbox drains on startup and
// whenever connectivity comes back.
package app

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ilyabe/wordvault/internal/config"
	"github.com/ilyabe/wordvault/internal/logging"
	"github.com/ilyabe/wordvault/internal/netx"
	"github.com/ilyabe/wordvault/internal/session"
	"github.com/ilyabe/wordvault/internal/store/local"
	"github.com/ilyabe/wordvault/internal/store/remote"
	syncx "github.com/ilyabe/wordvault/internal/sync"
)

// App owns the engine's components and its event loop.
type App struct {
	cfg *config.Config
	log logging.Logger

	local    *local.Store
	remote   *remote.Connection
	sessions *session.Provider
	monitor  *netx.Monitor

	reconciler *syncx.Reconciler
	queue      *syncx.QueueProcessor

	// syncing is observable by the UI layer so it can block interaction
	// while a bulk reconciliation is rewriting the local database.
	syncing atomic.Bool

	// lastUser is the identity the reconciler last ran for. Only the Run
	// goroutine touches it.
	lastUser string
}

// New builds the engine from configuration: opens the local database, dials
// the backend and wires the two sync cores.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	localStore, err := local.Open(ctx, cfg.Local.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	conn, err := remote.Dial(ctx, cfg.Remote.DSN)
	if err != nil {
		localStore.Close()
		return nil, fmt.Errorf("failed to dial remote store: %w", err)
	}
	remoteStore := remote.NewStore(conn)

	sessions := session.NewProvider([]byte(cfg.Session.JWTSecret))
	monitor := netx.NewMonitor(conn, cfg.Sync.OnlineCheckInterval, cfg.Sync.ProbeTimeout, log)

	a := &App{
		cfg:        cfg,
		log:        log,
		local:      localStore,
		remote:     conn,
		sessions:   sessions,
		monitor:    monitor,
		reconciler: syncx.NewReconciler(localStore, remoteStore, log),
		queue: syncx.NewQueueProcessor(
			localStore.Outbox, remoteStore, monitor, sessions, cfg.Sync.MaxAttempts, log),
	}
	return a, nil
}

// Login feeds an access token from the auth flow into the session provider.
func (a *App) Login(token string) (string, error) {
	return a.sessions.SetToken(token)
}

// Syncing reports whether a bulk reconciliation is in progress.
func (a *App) Syncing() bool {
	return a.syncing.Load()
}

// Local exposes the local store to the layers above sync (practice, stats).
func (a *App) Local() *local.Store {
	return a.local
}

// Run drives the engine until ctx is done: it starts the connectivity
// monitor, drains the outbox once at startup, and then reacts to session and
// connectivity events.
func (a *App) Run(ctx context.Context) error {
	go a.monitor.Run(ctx)

	a.drain(ctx)

	for {
		select {
		case <-ctx.Done():
			return a.close()
		case s := <-a.sessions.Sessions():
			a.onSession(ctx, s)
		case st := <-a.monitor.Transitions():
			if st == netx.Online {
				a.drain(ctx)
			}
		}
	}
}

// onSession runs the initial reconciliation, at most once per user identity.
// Re-delivered session events for the same user (token refresh, restart of
// the auth flow) must not trigger a second bulk copy.
func (a *App) onSession(ctx context.Context, s session.Session) {
	if s.UserID == a.lastUser {
		return
	}
	a.lastUser = s.UserID

	a.syncing.Store(true)
	defer a.syncing.Store(false)

	dir, err := a.reconciler.Run(ctx, s.UserID)
	if err != nil {
		a.log.Error(ctx, "initial sync failed", "user_id", s.UserID, "error", err)
		return
	}
	a.log.Info(ctx, "initial sync finished", "user_id", s.UserID, "direction", dir.String())

	// Anything ledgered before login can be delivered now.
	a.drain(ctx)
}

func (a *App) drain(ctx context.Context) {
	if _, err := a.queue.Process(ctx); err != nil {
		a.log.Error(ctx, "outbox drain failed", "error", err)
	}
}

func (a *App) close() error {
	err := a.local.Close()
	if cerr := a.remote.Close(); err == nil {
		err = cerr
	}
	return err
}
