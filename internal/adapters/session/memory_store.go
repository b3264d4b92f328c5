package session

import (
	"context"
	"sync"

	"github.com/doctorconsult/appcore/internal/domain/entities"
	"github.com/doctorconsult/appcore/internal/domain/providers"
	apperrors "github.com/doctorconsult/appcore/pkg/errors"
)

// MemoryStore is a process-local SessionStore used when Redis is not
// available. The session does not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	session *entities.Session
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() providers.SessionStore {
	return &MemoryStore{}
}

// Get retrieves the current session
func (s *MemoryStore) Get(ctx context.Context) (*entities.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, apperrors.NewNotFoundError("no active session")
	}
	cp := *s.session
	return &cp, nil
}

// Save stores the session
func (s *MemoryStore) Save(ctx context.Context, session *entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.session = &cp
	return nil
}

// Clear removes the session
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
