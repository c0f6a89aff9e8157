// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"istiqdam/internal/domain/entity"

	"github.com/google/uuid"
)

// OfficeUsecase defines read access to the office directory.
type OfficeUsecase interface {
	// ListOffices returns every office in seed order.
	ListOffices(ctx context.Context) ([]*entity.Office, error)

	// GetOffice returns a single office by ID.
	GetOffice(ctx context.Context, officeID uuid.UUID) (*entity.Office, error)
}
