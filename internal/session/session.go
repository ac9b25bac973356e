// Package session tracks the authenticated user on this device. The auth
// flow itself (signup, login UI, token refresh) lives outside the sync
// engine; it hands a signed access token to the Provider, which verifies it
// and announces the new session to whoever listens.
package session

import (
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ilyabe/wordvault/internal/common"
)

// Session identifies an authenticated user on this device.
type Session struct {
	UserID string
	Token  string
}

// Claims are the access-token claims: the registered set plus the user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// Provider verifies access tokens and announces when a session becomes
// available. At most one session is active per process.
type Provider struct {
	secret []byte

	mu      sync.RWMutex
	current *Session

	// Buffered so announcing never blocks the auth flow. A listener that
	// lags simply coalesces transitions; the latest session always wins via
	// UserID().
	sessions chan Session
}

// NewProvider returns a Provider verifying tokens with secret.
func NewProvider(secret []byte) *Provider {
	return &Provider{
		secret:   secret,
		sessions: make(chan Session, 1),
	}
}

// SetToken verifies the token, activates the session it carries and returns
// the user id. The transition is announced on Sessions().
func (p *Provider) SetToken(token string) (string, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	s := Session{UserID: claims.UserID, Token: token}

	p.mu.Lock()
	p.current = &s
	p.mu.Unlock()

	select {
	case p.sessions <- s:
	default:
	}

	return claims.UserID, nil
}

// Clear drops the current session (logout).
func (p *Provider) Clear() {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()
}

// UserID returns the current user id, or common.ErrNoSession.
func (p *Provider) UserID() (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil {
		return "", common.ErrNoSession
	}
	return p.current.UserID, nil
}

// Sessions is the channel on which newly activated sessions are announced.
func (p *Provider) Sessions() <-chan Session {
	return p.sessions
}
