package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mr1hm/go-route-safety/internal/models"
)

var ErrNotFound = errors.New("session not found")

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

func (st *Store) Create(factors models.Factors) *Session {
	s := newSession(uuid.NewString(), factors, st.now())

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

// Get returns the session and marks it as accessed.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	s.touch(st.now())
	return s, nil
}

func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Sweep drops sessions idle for longer than maxIdle and returns how many it removed.
func (st *Store) Sweep(maxIdle time.Duration) int {
	cutoff := st.now().Add(-maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.LastAccess().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
