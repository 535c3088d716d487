package notify

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	notices []Notice
	expires time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*memoryEntry),
	}
}

func (s *MemoryStore) Push(_ context.Context, session string, notices ...Notice) error {
	if len(notices) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	e, ok := s.entries[session]
	if !ok {
		e = &memoryEntry{}
		s.entries[session] = e
	}
	e.notices = append(e.notices, notices...)
	e.expires = now.Add(s.ttl)
	return nil
}

func (s *MemoryStore) Pop(_ context.Context, session string) ([]Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[session]
	if !ok {
		return nil, nil
	}
	delete(s.entries, session)
	if s.now().After(e.expires) {
		return nil, nil
	}
	return e.notices, nil
}

// sweep drops expired sessions; callers hold mu.
func (s *MemoryStore) sweep(now time.Time) {
	for k, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, k)
		}
	}
}
