package repository

import (
	"errors"
	"sync"

	"cv-studio/internal/domain"
)

// ErrNotFound is returned when a session id is unknown or already expired.
var ErrNotFound = errors.New("session not found")

// SessionsRepo keeps editing sessions in memory for the lifetime of the
// process. There is deliberately no persistence: a session's document is
// discarded when the session ends.
type SessionsRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewSessionsRepo() *SessionsRepo {
	return &SessionsRepo{sessions: map[string]*domain.Session{}}
}

func (r *SessionsRepo) Save(s *domain.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID.String()] = s
}

func (r *SessionsRepo) Get(id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *SessionsRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
