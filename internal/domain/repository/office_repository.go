// Package repository defines the interfaces for the in-memory state layer.
package repository

import (
	"context"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/errors"

	"github.com/google/uuid"
)

// ErrOfficeNotFound is a domain-specific error returned when an office is not found.
var ErrOfficeNotFound = errors.New("office not found")

// OfficeRepository defines read access to the seeded office directory.
type OfficeRepository interface {
	// FindByID retrieves a single office by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Office, error)

	// ListAll returns every office in seed order.
	ListAll(ctx context.Context) ([]*entity.Office, error)
}
