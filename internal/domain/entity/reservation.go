// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the closed enumeration of reservation request states.
type ReservationStatus string

const (
	// StatusPending is the only non-terminal state; every request starts here.
	StatusPending ReservationStatus = "pending"
	// StatusApproved is terminal; set by the owning office.
	StatusApproved ReservationStatus = "approved"
	// StatusRejected is terminal; set by the owning office.
	StatusRejected ReservationStatus = "rejected"
	// StatusCancelled is terminal; set by the requesting customer.
	StatusCancelled ReservationStatus = "cancelled"
)

// String returns the string representation of the ReservationStatus.
func (s ReservationStatus) String() string {
	return string(s)
}

// IsValid checks if the ReservationStatus is a valid value.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are permitted.
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// CanTransitionTo reports whether the directed edge s -> target exists in the
// request state machine. The only legal edges are pending -> approved,
// pending -> rejected and pending -> cancelled.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	return s == StatusPending && target.IsValid() && target != StatusPending
}

// ReservationRequest is a customer-initiated intent to reserve a worker from
// the worker's owning office. OfficeID, PackagePrice and DepositAmount are
// frozen from the worker at creation time, so later catalog edits or
// deletions never change what an existing request is worth.
type ReservationRequest struct {
	ID              uuid.UUID         `json:"id"`                // The Global Unique Identifier (GUID) for the request.
	CustomerID      uuid.UUID         `json:"customer_id"`       // The customer account that created the request.
	WorkerID        uuid.UUID         `json:"worker_id"`         // The worker being reserved.
	OfficeID        uuid.UUID         `json:"office_id"`         // Denormalized from the worker, fixed at creation.
	PackagePrice    int64             `json:"package_price"`     // Worker's full package price at creation time.
	DepositAmount   int64             `json:"deposit_amount"`    // Worker's deposit at creation time.
	RequestedAt     time.Time         `json:"requested_at"`      // When the customer created the request.
	Status          ReservationStatus `json:"status"`            // Current state machine position.
	StatusUpdatedAt *time.Time        `json:"status_updated_at"` // Set on the transition out of pending; nil while pending.
}

// Fee is the office's share of the frozen deal: package price minus deposit.
func (r *ReservationRequest) Fee() int64 {
	return r.PackagePrice - r.DepositAmount
}
