// File: session/store.go
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session not found or expired")

// Session holds the two persisted login slots: the backend bearer credential
// and the role it was issued for. Written on login, read by every
// authenticated view, cleared on logout. No expiry handling happens here; an
// expired credential simply causes subsequent backend calls to fail.
type Session struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists login sessions keyed by gateway session ID.
type Store interface {
	Save(ctx context.Context, sessionID string, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Clear(ctx context.Context, sessionID string) error
}
