package memstore

import (
	"context"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/repository"

	"github.com/google/uuid"
)

// reservationRepository implements repository.ReservationRepository over the Store.
type reservationRepository struct {
	store *Store
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(store *Store) repository.ReservationRepository {
	return &reservationRepository{store: store}
}

// FindByID retrieves a single request by its unique ID.
func (repo *reservationRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.ReservationRequest, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	request, ok := repo.store.requests[id]
	if !ok {
		return nil, repository.ErrRequestNotFound
	}

	return copyRequest(request), nil
}

// ListByCustomer returns the customer's requests in insertion order.
func (repo *reservationRepository) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.ReservationRequest, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var requests []*entity.ReservationRequest
	for _, id := range repo.store.requestOrder {
		request := repo.store.requests[id]
		if request.CustomerID == customerID {
			requests = append(requests, copyRequest(request))
		}
	}

	return requests, nil
}

// ListByOffice returns the office's requests in insertion order.
func (repo *reservationRepository) ListByOffice(_ context.Context, officeID uuid.UUID) ([]*entity.ReservationRequest, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var requests []*entity.ReservationRequest
	for _, id := range repo.store.requestOrder {
		request := repo.store.requests[id]
		if request.OfficeID == officeID {
			requests = append(requests, copyRequest(request))
		}
	}

	return requests, nil
}

// ListPendingByWorker returns the pending requests referencing a worker.
func (repo *reservationRepository) ListPendingByWorker(_ context.Context, workerID uuid.UUID) ([]*entity.ReservationRequest, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var requests []*entity.ReservationRequest
	for _, id := range repo.store.requestOrder {
		request := repo.store.requests[id]
		if request.WorkerID == workerID && request.Status == entity.StatusPending {
			requests = append(requests, copyRequest(request))
		}
	}

	return requests, nil
}

// Create appends a new request.
func (repo *reservationRepository) Create(_ context.Context, request *entity.ReservationRequest) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.requests[request.ID]; !ok {
		repo.store.requestOrder = append(repo.store.requestOrder, request.ID)
	}
	repo.store.requests[request.ID] = copyRequest(request)

	return nil
}

// Update replaces the stored request matching request.ID.
func (repo *reservationRepository) Update(_ context.Context, request *entity.ReservationRequest) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.requests[request.ID]; !ok {
		return repository.ErrRequestNotFound
	}
	repo.store.requests[request.ID] = copyRequest(request)

	return nil
}
