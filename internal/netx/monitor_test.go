package netx

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyabe/wordvault/internal/logging"
)

type fakePinger struct {
	err atomic.Value // always holds a pingErr; atomic.Value cannot store nil
}

type pingErr struct{ err error }

var errUnreachable = errors.New("unreachable")

func newFakePinger(up bool) *fakePinger {
	p := &fakePinger{}
	p.set(up)
	return p
}

func (p *fakePinger) set(up bool) {
	if up {
		p.err.Store(pingErr{nil})
	} else {
		p.err.Store(pingErr{errUnreachable})
	}
}

func (p *fakePinger) Ping(ctx context.Context) error {
	if r, _ := p.err.Load().(pingErr); r.err != nil {
		return r.err
	}
	return nil
}

func TestMonitor_StartsOffline(t *testing.T) {
	m := NewMonitor(newFakePinger(false), time.Second, time.Second, logging.Discard())
	assert.False(t, m.Online())
}

func TestCheck_GoesOnline(t *testing.T) {
	m := NewMonitor(newFakePinger(true), time.Second, time.Second, logging.Discard())

	m.check(context.Background())

	assert.True(t, m.Online())
	select {
	case s := <-m.Transitions():
		assert.Equal(t, Online, s)
	default:
		t.Fatal("expected a transition")
	}
}

func TestCheck_StaysOnlineWithoutDuplicateTransition(t *testing.T) {
	m := NewMonitor(newFakePinger(true), time.Second, time.Second, logging.Discard())

	m.check(context.Background())
	<-m.Transitions()

	m.check(context.Background())

	select {
	case <-m.Transitions():
		t.Fatal("same state must not re-announce")
	default:
	}
}

func TestCheck_RetriesUntilOnline(t *testing.T) {
	p := newFakePinger(false)
	m := NewMonitor(p, 500*time.Millisecond, time.Second, logging.Discard())

	// flip the backend up while the monitor is inside its backoff loop
	go func() {
		time.Sleep(50 * time.Millisecond)
		p.set(true)
	}()

	m.check(context.Background())

	assert.True(t, m.Online())
}

func TestCheck_CancelledWhileOffline(t *testing.T) {
	p := newFakePinger(false)
	m := NewMonitor(p, time.Minute, time.Second, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	m.check(ctx)

	require.False(t, m.Online())
}
