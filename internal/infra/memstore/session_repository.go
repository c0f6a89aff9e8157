package memstore

import (
	"context"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/repository"

	"github.com/google/uuid"
)

// sessionRepository implements repository.SessionRepository over the Store.
type sessionRepository struct {
	store *Store
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

// Create records a new login session.
func (repo *sessionRepository) Create(_ context.Context, session *entity.Session) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.sessions[session.ID] = copySession(session)

	return nil
}

// FindByID retrieves a session by its unique ID.
func (repo *sessionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	session, ok := repo.store.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return copySession(session), nil
}

// Delete removes a session by ID. Logout is unconditional, so removing an
// unknown session is not an error.
func (repo *sessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	delete(repo.store.sessions, id)

	return nil
}
