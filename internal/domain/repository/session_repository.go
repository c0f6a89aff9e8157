// Package repository defines the interfaces for the in-memory state layer.
package repository

import (
	"context"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is a domain-specific error returned when a session is not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the in-memory login session registry. Sessions
// are ephemeral by design; nothing here survives a restart.
type SessionRepository interface {
	// Create records a new login session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Delete removes a session by ID. Deleting an unknown session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
