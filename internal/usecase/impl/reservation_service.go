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

// reservationService implements the ReservationUsecase interface.
type reservationService struct {
	reservationRepo repository.ReservationRepository
	workerRepo      repository.WorkerRepository
	ids             service.IDGenerator
	clock           service.Clock
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for reservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	ReservationRepo repository.ReservationRepository
	WorkerRepo      repository.WorkerRepository
	IDs             service.IDGenerator
	Clock           service.Clock
	Logger          *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		reservationRepo: params.ReservationRepo,
		workerRepo:      params.WorkerRepo,
		ids:             params.IDs,
		clock:           params.Clock,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRequest opens a pending request for the worker. The worker's owning
// office and its current prices are frozen onto the request, so later
// catalog edits or deletions never change what this request is worth.
func (srv *reservationService) CreateRequest(ctx context.Context, customerID, workerID uuid.UUID) (*entity.ReservationRequest, error) {
	worker, err := srv.workerRepo.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrWorkerNotFound, "worker not found")
		}

		return nil, errors.Wrap(err, "failed to find worker")
	}

	request := &entity.ReservationRequest{
		ID:            srv.ids.NewID(),
		CustomerID:    customerID,
		WorkerID:      worker.ID,
		OfficeID:      worker.OfficeID,
		PackagePrice:  worker.FullPackagePrice,
		DepositAmount: worker.DepositAmount,
		RequestedAt:   srv.clock.Now(),
		Status:        entity.StatusPending,
	}

	if err := srv.reservationRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create reservation request")
	}

	srv.log(ctx).Info("Reservation request created",
		slog.Any("request_id", request.ID),
		slog.Any("worker_id", workerID),
		slog.Any("office_id", worker.OfficeID))

	return request, nil
}

// Approve moves a pending request to approved on behalf of the owning office.
func (srv *reservationService) Approve(ctx context.Context, officeID, requestID uuid.UUID) (*entity.ReservationRequest, error) {
	return srv.transition(ctx, requestID, entity.StatusApproved, func(request *entity.ReservationRequest) error {
		if request.OfficeID != officeID {
			return errors.Wrap(domainerrors.ErrForbidden, "request belongs to another office")
		}

		return nil
	})
}

// Reject moves a pending request to rejected on behalf of the owning office.
func (srv *reservationService) Reject(ctx context.Context, officeID, requestID uuid.UUID) (*entity.ReservationRequest, error) {
	return srv.transition(ctx, requestID, entity.StatusRejected, func(request *entity.ReservationRequest) error {
		if request.OfficeID != officeID {
			return errors.Wrap(domainerrors.ErrForbidden, "request belongs to another office")
		}

		return nil
	})
}

// Cancel moves a pending request to cancelled on behalf of the requesting
// customer.
func (srv *reservationService) Cancel(ctx context.Context, customerID, requestID uuid.UUID) (*entity.ReservationRequest, error) {
	return srv.transition(ctx, requestID, entity.StatusCancelled, func(request *entity.ReservationRequest) error {
		if request.CustomerID != customerID {
			return errors.Wrap(domainerrors.ErrForbidden, "request belongs to another customer")
		}

		return nil
	})
}

// transition is the single gate through which every status change passes.
// Ownership is checked before the state machine, and a request that already
// left pending is never modified — repeating a terminal transition is a
// rejected no-op.
func (srv *reservationService) transition(
	ctx context.Context,
	requestID uuid.UUID,
	target entity.ReservationStatus,
	authorize func(*entity.ReservationRequest) error,
) (*entity.ReservationRequest, error) {
	request, err := srv.reservationRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRequestNotFound, "reservation request not found")
		}

		return nil, errors.Wrap(err, "failed to find reservation request")
	}

	if err := authorize(request); err != nil {
		return nil, err
	}

	if !request.Status.CanTransitionTo(target) {
		srv.log(ctx).Warn("Rejected status transition",
			slog.Any("request_id", requestID),
			slog.String("from", request.Status.String()),
			slog.String("to", target.String()))

		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition,
			"cannot move request from %s to %s", request.Status, target)
	}

	now := srv.clock.Now()
	request.Status = target
	request.StatusUpdatedAt = &now

	if err := srv.reservationRepo.Update(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to update reservation request")
	}

	srv.log(ctx).Info("Reservation request transitioned",
		slog.Any("request_id", requestID),
		slog.String("status", target.String()))

	return request, nil
}

// RequestsByCustomer returns the customer's requests in insertion order.
func (srv *reservationService) RequestsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.ReservationRequest, error) {
	requests, err := srv.reservationRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer requests")
	}

	return requests, nil
}

// RequestsByOffice returns the office's requests in insertion order.
func (srv *reservationService) RequestsByOffice(ctx context.Context, officeID uuid.UUID) ([]*entity.ReservationRequest, error) {
	requests, err := srv.reservationRepo.ListByOffice(ctx, officeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list office requests")
	}

	return requests, nil
}

// OfficeStatistics recomputes the office dashboard aggregate from the full
// request list. Revenue and fees sum the frozen per-request snapshots over
// exactly the approved requests, so pending, rejected and cancelled requests
// never contribute, and neither does a later worker deletion.
func (srv *reservationService) OfficeStatistics(ctx context.Context, officeID uuid.UUID) (*usecase.OfficeStatistics, error) {
	totalWorkers, err := srv.workerRepo.CountByOffice(ctx, officeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count office workers")
	}

	requests, err := srv.reservationRepo.ListByOffice(ctx, officeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list office requests")
	}

	stats := &usecase.OfficeStatistics{TotalWorkers: totalWorkers}
	for _, request := range requests {
		switch request.Status {
		case entity.StatusApproved:
			stats.ApprovedCount++
			stats.TotalRevenue += request.PackagePrice
			stats.TotalFees += request.Fee()
		case entity.StatusPending:
			stats.PendingCount++
		case entity.StatusRejected, entity.StatusCancelled:
			// Terminal but revenue-neutral.
		}
	}

	return stats, nil
}
