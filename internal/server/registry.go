package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/game"
)

// entry guards one session. Sessions are not safe for concurrent use, and
// an HTTP request may race a websocket on the same id.
type entry struct {
	mu      sync.Mutex
	session *game.Session
}

// Registry holds the open sessions by id.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	max      int
}

// NewRegistry returns an empty registry holding at most max sessions.
// A max below 1 means no limit.
func NewRegistry(max int) *Registry {
	return &Registry{sessions: make(map[string]*entry), max: max}
}

// Add registers s under a fresh id.
func (r *Registry) Add(s *game.Session) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.max > 0 && len(r.sessions) >= r.max {
		return "", fmt.Errorf("%w (limit %d)", errors.ErrTooManySessions, r.max)
	}
	id := uuid.New().String()
	r.sessions[id] = &entry{session: s}
	return id, nil
}

// With runs fn with exclusive access to the session id.
func (r *Registry) With(id string, fn func(s *game.Session) error) error {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrSessionNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Remove drops the session id.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", errors.ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
