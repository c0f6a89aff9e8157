// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"istiqdam/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AccountOutput is the public view of an account; it never carries the
// password hash.
type AccountOutput struct {
	ID       uuid.UUID   `json:"id"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
	OfficeID uuid.UUID   `json:"office_id,omitempty"`
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	AccessToken string        `json:"access_token"`
	Account     AccountOutput `json:"account"`
}

// SessionUsecase defines the interface for session management operations.
// This is the contract that the delivery layer will depend on.
type SessionUsecase interface {
	// Login authenticates against the static credential table. Failure is
	// always ErrInvalidCredentials with no hint about which field was wrong,
	// and leaves no trace of a partial login.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout removes the login session unconditionally.
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// CurrentAccount returns the public view of the authenticated account.
	CurrentAccount(ctx context.Context, accountID uuid.UUID) (*AccountOutput, error)
}
