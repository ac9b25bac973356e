// Package netx watches backend reachability. The outbox processor consults
// the current state; the app loop listens for offline→online transitions to
// trigger opportunistic drains.
package netx

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/ilyabe/wordvault/internal/logging"
)

// State is the reachability of the backend as last observed.
type State int32

const (
	Offline State = iota
	Online
)

func (s State) String() string {
	if s == Online {
		return "online"
	}
	return "offline"
}

// Pinger is the probe the monitor runs against the backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor polls the backend on a fixed interval and publishes state
// transitions. It starts Offline; nothing is trusted until a probe succeeds.
type Monitor struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	log      logging.Logger

	state       atomic.Int32
	transitions chan State
}

// NewMonitor returns a monitor probing pinger every interval, with timeout
// applied per probe.
func NewMonitor(pinger Pinger, interval, timeout time.Duration, log logging.Logger) *Monitor {
	return &Monitor{
		pinger:      pinger,
		interval:    interval,
		timeout:     timeout,
		log:         log,
		transitions: make(chan State, 1),
	}
}

// Online reports the last observed state.
func (m *Monitor) Online() bool {
	return State(m.state.Load()) == Online
}

// Transitions is the channel on which state changes are published. Buffered;
// a slow listener coalesces consecutive transitions.
func (m *Monitor) Transitions() <-chan State {
	return m.transitions
}

// Run polls until ctx is done. While the backend is unreachable the probe
// backs off along a fibonacci schedule capped at the poll interval, so a
// device that just lost its network is not hammering the resolver.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *Monitor) check(ctx context.Context) {
	if err := m.probe(ctx); err == nil {
		m.setState(ctx, Online)
		return
	}

	m.setState(ctx, Offline)

	b := retry.WithCappedDuration(m.interval, retry.NewFibonacci(250*time.Millisecond))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := m.probe(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err == nil && ctx.Err() == nil {
		m.setState(ctx, Online)
	}
}

func (m *Monitor) probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.pinger.Ping(ctx)
}

func (m *Monitor) setState(ctx context.Context, s State) {
	if m.state.Swap(int32(s)) == int32(s) {
		return
	}
	m.log.Info(ctx, "connectivity changed", "state", s.String())
	select {
	case m.transitions <- s:
	default:
	}
}
