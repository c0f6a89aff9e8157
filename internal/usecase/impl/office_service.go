// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"istiqdam/internal/domain/entity"
	domainerrors "istiqdam/internal/domain/errors"
	"istiqdam/internal/domain/repository"
	"istiqdam/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// officeService implements the OfficeUsecase interface.
type officeService struct {
	officeRepo repository.OfficeRepository
}

// NewOfficeService is the constructor for officeService.
func NewOfficeService(officeRepo repository.OfficeRepository) usecase.OfficeUsecase {
	return &officeService{officeRepo: officeRepo}
}

// ListOffices returns every office in seed order.
func (srv *officeService) ListOffices(ctx context.Context) ([]*entity.Office, error) {
	offices, err := srv.officeRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offices")
	}

	return offices, nil
}

// GetOffice returns a single office by ID.
func (srv *officeService) GetOffice(ctx context.Context, officeID uuid.UUID) (*entity.Office, error) {
	office, err := srv.officeRepo.FindByID(ctx, officeID)
	if err != nil {
		if errors.Is(err, repository.ErrOfficeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfficeNotFound, "office not found")
		}

		return nil, errors.Wrap(err, "failed to find office")
	}

	return office, nil
}
