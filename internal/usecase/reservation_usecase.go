// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"istiqdam/internal/domain/entity"

	"github.com/google/uuid"
)

// OfficeStatistics is the office dashboard aggregate, recomputed on demand
// from the request and worker collections. Sums are int64 whole currency
// units over the frozen per-request price snapshots.
type OfficeStatistics struct {
	TotalWorkers  int   `json:"total_workers"`
	ApprovedCount int   `json:"approved_count"`
	PendingCount  int   `json:"pending_count"`
	TotalRevenue  int64 `json:"total_revenue"`
	TotalFees     int64 `json:"total_fees"`
}

// ReservationUsecase defines the interface for the reservation request
// lifecycle and the statistics derived from it.
type ReservationUsecase interface {
	// CreateRequest opens a pending request for the worker on behalf of the
	// customer, freezing the worker's office and prices onto the request.
	CreateRequest(ctx context.Context, customerID, workerID uuid.UUID) (*entity.ReservationRequest, error)

	// Approve moves a pending request to approved. Office-only.
	Approve(ctx context.Context, officeID, requestID uuid.UUID) (*entity.ReservationRequest, error)

	// Reject moves a pending request to rejected. Office-only.
	Reject(ctx context.Context, officeID, requestID uuid.UUID) (*entity.ReservationRequest, error)

	// Cancel moves a pending request to cancelled. Requesting-customer-only.
	Cancel(ctx context.Context, customerID, requestID uuid.UUID) (*entity.ReservationRequest, error)

	// RequestsByCustomer returns the customer's requests in insertion order.
	RequestsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.ReservationRequest, error)

	// RequestsByOffice returns the office's requests in insertion order.
	RequestsByOffice(ctx context.Context, officeID uuid.UUID) ([]*entity.ReservationRequest, error)

	// OfficeStatistics computes the office dashboard aggregate.
	OfficeStatistics(ctx context.Context, officeID uuid.UUID) (*OfficeStatistics, error)
}
