package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Data is the bag persisted per session.
type Data struct {
	UserID   string `json:"userId"`
	UserRole string `json:"userRole"`
}

// Store persists session data keyed by session id.
type Store interface {
	Get(ctx context.Context, sid string) (*Data, error)
	Set(ctx context.Context, sid string, data Data, ttl time.Duration) error
	Destroy(ctx context.Context, sid string) error
}
