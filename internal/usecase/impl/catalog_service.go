// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "istiqdam/internal/delivery/context"
	"istiqdam/internal/domain/entity"
	domainerrors "istiqdam/internal/domain/errors"
	"istiqdam/internal/domain/repository"
	"istiqdam/internal/domain/service"
	"istiqdam/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	workerRepo      repository.WorkerRepository
	reservationRepo repository.ReservationRepository
	ids             service.IDGenerator
	clock           service.Clock
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	WorkerRepo      repository.WorkerRepository
	ReservationRepo repository.ReservationRepository
	IDs             service.IDGenerator
	Clock           service.Clock
	Logger          *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		workerRepo:      params.WorkerRepo,
		reservationRepo: params.ReservationRepo,
		ids:             params.IDs,
		clock:           params.Clock,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddWorker lists a new worker under the acting office. The office ID comes
// from the authenticated identity, never from the payload.
func (srv *catalogService) AddWorker(ctx context.Context, officeID uuid.UUID, input *usecase.CreateWorkerInput) (*entity.Worker, error) {
	sex := entity.WorkerSex(input.Sex)
	if !sex.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown worker sex: " + input.Sex)
	}

	workerType := entity.WorkerType(input.Type)
	if !workerType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown worker type: " + input.Type)
	}

	worker := &entity.Worker{
		ID:                    srv.ids.NewID(),
		OfficeID:              officeID,
		Name:                  input.Name,
		ImageURL:              input.ImageURL,
		VideoURL:              input.VideoURL,
		CVURL:                 input.CVURL,
		SalaryPerMonth:        input.SalaryPerMonth,
		Sex:                   sex,
		Age:                   input.Age,
		OriginCountry:         input.OriginCountry,
		Religion:              input.Religion,
		Type:                  workerType,
		ExperienceYears:       input.ExperienceYears,
		HasWorkedInGulf:       input.HasWorkedInGulf,
		PreviousGulfCountries: input.PreviousGulfCountries,
		FullPackagePrice:      input.FullPackagePrice,
		DepositAmount:         input.DepositAmount,
	}
	worker.Normalize()

	if err := srv.workerRepo.Create(ctx, worker); err != nil {
		return nil, errors.Wrap(err, "failed to create worker")
	}

	srv.log(ctx).Info("Worker added",
		slog.Any("worker_id", worker.ID),
		slog.Any("office_id", officeID))

	return worker, nil
}

// UpdateWorker merges the provided fields into an existing worker owned by
// the acting office.
func (srv *catalogService) UpdateWorker(ctx context.Context, officeID, workerID uuid.UUID, input *usecase.UpdateWorkerInput) (*entity.Worker, error) {
	worker, err := srv.findOwnedWorker(ctx, officeID, workerID)
	if err != nil {
		return nil, err
	}

	if err := mergeWorkerUpdate(worker, input); err != nil {
		return nil, err
	}
	worker.Normalize()

	if err := srv.workerRepo.Update(ctx, worker); err != nil {
		return nil, errors.Wrap(err, "failed to update worker")
	}

	srv.log(ctx).Info("Worker updated", slog.Any("worker_id", workerID))

	return worker, nil
}

// DeleteWorker removes a worker owned by the acting office. Pending requests
// referencing the worker are cascade-cancelled so no request is left waiting
// on a listing that no longer exists; terminal requests keep their frozen
// price snapshot and are untouched.
func (srv *catalogService) DeleteWorker(ctx context.Context, officeID, workerID uuid.UUID) error {
	if _, err := srv.findOwnedWorker(ctx, officeID, workerID); err != nil {
		return err
	}

	pending, err := srv.reservationRepo.ListPendingByWorker(ctx, workerID)
	if err != nil {
		return errors.Wrap(err, "failed to list pending requests for worker")
	}

	now := srv.clock.Now()
	for _, request := range pending {
		request.Status = entity.StatusCancelled
		request.StatusUpdatedAt = &now
		if err := srv.reservationRepo.Update(ctx, request); err != nil {
			return errors.Wrap(err, "failed to cascade-cancel pending request")
		}
	}

	if err := srv.workerRepo.Delete(ctx, workerID); err != nil {
		return errors.Wrap(err, "failed to delete worker")
	}

	srv.log(ctx).Info("Worker deleted",
		slog.Any("worker_id", workerID),
		slog.Int("cancelled_requests", len(pending)))

	return nil
}

// ImportWorkers bulk-adds normalized rows under the acting office. Every row
// arrives pre-coerced from the import adapter, so each one simply gets a
// fresh ID and joins the catalog; the batch never aborts part-way.
func (srv *catalogService) ImportWorkers(ctx context.Context, officeID uuid.UUID, rows []service.ImportedWorker) ([]*entity.Worker, error) {
	workers := make([]*entity.Worker, 0, len(rows))
	for _, row := range rows {
		worker := &entity.Worker{
			ID:                    srv.ids.NewID(),
			OfficeID:              officeID,
			Name:                  row.Name,
			ImageURL:              row.ImageURL,
			VideoURL:              row.VideoURL,
			CVURL:                 row.CVURL,
			SalaryPerMonth:        row.SalaryPerMonth,
			Sex:                   row.Sex,
			Age:                   row.Age,
			OriginCountry:         row.OriginCountry,
			Religion:              row.Religion,
			Type:                  row.Type,
			ExperienceYears:       row.ExperienceYears,
			HasWorkedInGulf:       row.HasWorkedInGulf,
			PreviousGulfCountries: row.PreviousGulfCountries,
			FullPackagePrice:      row.FullPackagePrice,
			DepositAmount:         row.DepositAmount,
		}
		worker.Normalize()

		if err := srv.workerRepo.Create(ctx, worker); err != nil {
			return nil, errors.Wrap(err, "failed to import worker row")
		}
		workers = append(workers, worker)
	}

	srv.log(ctx).Info("Workers imported",
		slog.Any("office_id", officeID),
		slog.Int("count", len(workers)))

	return workers, nil
}

// ListOfficeWorkers returns the office's workers in insertion order.
func (srv *catalogService) ListOfficeWorkers(ctx context.Context, officeID uuid.UUID) ([]*entity.Worker, error) {
	workers, err := srv.workerRepo.ListByOffice(ctx, officeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list office workers")
	}

	return workers, nil
}

// GetWorker returns a single worker by ID.
func (srv *catalogService) GetWorker(ctx context.Context, workerID uuid.UUID) (*entity.Worker, error) {
	worker, err := srv.workerRepo.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrWorkerNotFound, "worker not found")
		}

		return nil, errors.Wrap(err, "failed to find worker")
	}

	return worker, nil
}

// SearchWorkers returns the workers matching every specified predicate.
func (srv *catalogService) SearchWorkers(ctx context.Context, filter entity.WorkerFilter) ([]*entity.Worker, error) {
	workers, err := srv.workerRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workers")
	}

	return entity.FilterWorkers(workers, filter), nil
}

// findOwnedWorker resolves a worker and verifies office ownership.
func (srv *catalogService) findOwnedWorker(ctx context.Context, officeID, workerID uuid.UUID) (*entity.Worker, error) {
	worker, err := srv.workerRepo.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrWorkerNotFound, "worker not found")
		}

		return nil, errors.Wrap(err, "failed to find worker")
	}

	if worker.OfficeID != officeID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "worker belongs to another office")
	}

	return worker, nil
}

// mergeWorkerUpdate applies the non-nil fields of the partial update,
// validating enum fields before they land.
func mergeWorkerUpdate(worker *entity.Worker, input *usecase.UpdateWorkerInput) error {
	if input.Sex != nil {
		sex := entity.WorkerSex(*input.Sex)
		if !sex.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown worker sex: " + *input.Sex)
		}
		worker.Sex = sex
	}
	if input.Type != nil {
		workerType := entity.WorkerType(*input.Type)
		if !workerType.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown worker type: " + *input.Type)
		}
		worker.Type = workerType
	}
	if input.Name != nil {
		worker.Name = *input.Name
	}
	if input.ImageURL != nil {
		worker.ImageURL = *input.ImageURL
	}
	if input.VideoURL != nil {
		worker.VideoURL = *input.VideoURL
	}
	if input.CVURL != nil {
		worker.CVURL = *input.CVURL
	}
	if input.SalaryPerMonth != nil {
		worker.SalaryPerMonth = *input.SalaryPerMonth
	}
	if input.Age != nil {
		worker.Age = *input.Age
	}
	if input.OriginCountry != nil {
		worker.OriginCountry = *input.OriginCountry
	}
	if input.Religion != nil {
		worker.Religion = *input.Religion
	}
	if input.ExperienceYears != nil {
		worker.ExperienceYears = *input.ExperienceYears
	}
	if input.HasWorkedInGulf != nil {
		worker.HasWorkedInGulf = *input.HasWorkedInGulf
	}
	if input.PreviousGulfCountries != nil {
		worker.PreviousGulfCountries = *input.PreviousGulfCountries
	}
	if input.FullPackagePrice != nil {
		worker.FullPackagePrice = *input.FullPackagePrice
	}
	if input.DepositAmount != nil {
		worker.DepositAmount = *input.DepositAmount
	}

	return nil
}
