// Package repository defines the interfaces for the in-memory state layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines lookups over the static credential table.
// The table is seeded at startup; there is no create or update path.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
}
