// Package repository defines the interfaces for the in-memory state layer.
package repository

import (
	"context"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/errors"

	"github.com/google/uuid"
)

// ErrRequestNotFound is a domain-specific error returned when a reservation request is not found.
var ErrRequestNotFound = errors.New("reservation request not found")

// ReservationRepository defines the operations over reservation requests.
type ReservationRepository interface {
	// FindByID retrieves a single request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReservationRequest, error)

	// ListByCustomer returns the customer's requests in insertion order.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.ReservationRequest, error)

	// ListByOffice returns the office's requests in insertion order.
	ListByOffice(ctx context.Context, officeID uuid.UUID) ([]*entity.ReservationRequest, error)

	// ListPendingByWorker returns the pending requests referencing a worker,
	// in insertion order.
	ListPendingByWorker(ctx context.Context, workerID uuid.UUID) ([]*entity.ReservationRequest, error)

	// Create appends a new request.
	Create(ctx context.Context, request *entity.ReservationRequest) error

	// Update replaces the stored request matching request.ID.
	Update(ctx context.Context, request *entity.ReservationRequest) error
}
