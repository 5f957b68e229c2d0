package session

import (
	"sync"
	"time"
)

// entry wraps a session with expiry and insertion order tracking.
type entry struct {
	session   *ChartSession
	expiry    time.Time
	insertIdx int64
}

// Store keeps chart sessions keyed by session ID with a sliding TTL.
// Sessions are ephemeral by design: nothing persists across restarts.
// Thread-safe with sync.Mutex; the oldest entry is evicted at capacity.
type Store struct {
	mu         sync.Mutex
	items      map[string]entry
	ttl        time.Duration
	maxEntries int
	nextIdx    int64
}

// NewStore creates a session store with the given TTL and max entry count.
func NewStore(ttl time.Duration, maxEntries int) *Store {
	return &Store{
		items:      make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns the session for the key if present and not expired.
func (s *Store) Get(key string) (*ChartSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiry) {
		delete(s.items, key)
		return nil, false
	}

	// Sliding expiry: activity keeps the session alive.
	e.expiry = time.Now().Add(s.ttl)
	s.items[key] = e
	return e.session, true
}

// GetOrCreate returns the session for the key, creating an Idle one if absent.
func (s *Store) GetOrCreate(key string) *ChartSession {
	if sess, ok := s.Get(key); ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.items[key]; ok {
		return e.session
	}
	if len(s.items) >= s.maxEntries {
		s.evictOldest()
	}
	sess := &ChartSession{}
	s.items[key] = entry{
		session:   sess,
		expiry:    time.Now().Add(s.ttl),
		insertIdx: s.nextIdx,
	}
	s.nextIdx++
	return sess
}

// Delete removes a session.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

// Len returns the number of stored sessions, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// evictOldest removes the entry with the lowest insertion index.
// Caller must hold the lock.
func (s *Store) evictOldest() {
	var oldestKey string
	oldestIdx := int64(-1)
	for k, e := range s.items {
		if oldestIdx == -1 || e.insertIdx < oldestIdx {
			oldestIdx = e.insertIdx
			oldestKey = k
		}
	}
	if oldestKey != "" {
		delete(s.items, oldestKey)
	}
}
