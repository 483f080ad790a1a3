package draft

import "sync"

// Store hands out one draft per POS session id. Only the map is guarded;
// each draft has a single owning session and is never shared across
// flows.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

func NewStore() *Store {
	return &Store{drafts: map[string]*Draft{}}
}

// Get returns the session's draft, creating an empty one on first use.
func (s *Store) Get(sessionID string) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[sessionID]
	if !ok {
		d = New()
		s.drafts[sessionID] = d
	}
	return d
}

// Drop forgets the session's draft entirely.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}
