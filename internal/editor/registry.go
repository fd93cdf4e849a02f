package editor

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one user's editing session.
type Session struct {
	ID        string
	Owner     uuid.UUID
	Model     *Model
	CreatedAt time.Time

	lastUsed time.Time
}

// Registry tracks open editing sessions. Sessions are only visible to their owner
// and are evicted after ttl without use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time

	ticker *time.Ticker
	stop   chan struct{}
}

// NewRegistry creates a registry. A zero ttl disables eviction.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Open registers a model for owner and returns the new session.
func (r *Registry) Open(owner uuid.UUID, m *Model) *Session {
	now := r.now()
	s := &Session{
		ID:        uuid.NewString(),
		Owner:     owner,
		Model:     m,
		CreatedAt: now,
		lastUsed:  now,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the owner's session and marks it used.
func (r *Registry) Get(owner uuid.UUID, id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Owner != owner {
		return nil, ErrSessionNotFound
	}
	s.lastUsed = r.now()
	return s, nil
}

// Close discards the owner's session. Unsaved edits are dropped.
func (r *Registry) Close(owner uuid.UUID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Owner != owner {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Count returns the number of sessions open for owner.
func (r *Registry) Count(owner uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, s := range r.sessions {
		if s.Owner == owner {
			n++
		}
	}
	return n
}

// Sweep evicts idle sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.lastUsed.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartCleanup sweeps idle sessions every interval until Stop is called.
func (r *Registry) StartCleanup(interval time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ttl <= 0 || interval <= 0 || r.ticker != nil {
		return
	}
	ticker := time.NewTicker(interval)
	stop := make(chan struct{})
	r.ticker, r.stop = ticker, stop
	go func() {
		for {
			select {
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					log.Printf("[session] evicted %d idle sessions", n)
				}
			case <-stop:
				return
			}
		}
	}()
}

// Stop halts the cleanup goroutine. It is safe to call more than once and
// concurrently with StartCleanup.
func (r *Registry) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ticker != nil {
		r.ticker.Stop()
		close(r.stop)
		r.ticker, r.stop = nil, nil
	}
}
