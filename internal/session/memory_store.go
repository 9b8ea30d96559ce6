package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data   Data
	expire time.Time
}

// MemoryStore is a process-local Store for tests and single-node dev runs.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (*Data, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[sid]
	if !ok || !e.expire.After(s.now()) {
		return nil, ErrNotFound
	}
	data := e.data
	return &data, nil
}

func (s *MemoryStore) Set(_ context.Context, sid string, data Data, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = memoryEntry{data: data, expire: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
