// Package repository defines the interfaces for the in-memory state layer.
package repository

import (
	"context"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/errors"

	"github.com/google/uuid"
)

// ErrWorkerNotFound is a domain-specific error returned when a worker is not found.
var ErrWorkerNotFound = errors.New("worker not found")

// WorkerRepository defines the operations over the worker catalog.
// Implementations return copies; callers never observe shared mutable state.
type WorkerRepository interface {
	// FindByID retrieves a single worker by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error)

	// ListByOffice returns the office's workers in insertion order.
	ListByOffice(ctx context.Context, officeID uuid.UUID) ([]*entity.Worker, error)

	// ListAll returns every worker in insertion order.
	ListAll(ctx context.Context) ([]*entity.Worker, error)

	// CountByOffice returns the number of workers owned by the office.
	CountByOffice(ctx context.Context, officeID uuid.UUID) (int, error)

	// Create appends a new worker to the catalog.
	Create(ctx context.Context, worker *entity.Worker) error

	// Update replaces the stored worker matching worker.ID.
	Update(ctx context.Context, worker *entity.Worker) error

	// Delete removes a worker by ID. There is no soft-delete.
	Delete(ctx context.Context, id uuid.UUID) error
}
