package memstore

import (
	"context"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/repository"

	"github.com/google/uuid"
)

// workerRepository implements repository.WorkerRepository over the Store.
type workerRepository struct {
	store *Store
}

// NewWorkerRepository is the constructor for workerRepository.
func NewWorkerRepository(store *Store) repository.WorkerRepository {
	return &workerRepository{store: store}
}

// FindByID retrieves a single worker by its unique ID.
func (repo *workerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Worker, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	worker, ok := repo.store.workers[id]
	if !ok {
		return nil, repository.ErrWorkerNotFound
	}

	return copyWorker(worker), nil
}

// ListByOffice returns the office's workers in insertion order.
func (repo *workerRepository) ListByOffice(_ context.Context, officeID uuid.UUID) ([]*entity.Worker, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var workers []*entity.Worker
	for _, id := range repo.store.workerOrder {
		worker := repo.store.workers[id]
		if worker.OfficeID == officeID {
			workers = append(workers, copyWorker(worker))
		}
	}

	return workers, nil
}

// ListAll returns every worker in insertion order.
func (repo *workerRepository) ListAll(_ context.Context) ([]*entity.Worker, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	workers := make([]*entity.Worker, 0, len(repo.store.workerOrder))
	for _, id := range repo.store.workerOrder {
		workers = append(workers, copyWorker(repo.store.workers[id]))
	}

	return workers, nil
}

// CountByOffice returns the number of workers owned by the office.
func (repo *workerRepository) CountByOffice(_ context.Context, officeID uuid.UUID) (int, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	count := 0
	for _, worker := range repo.store.workers {
		if worker.OfficeID == officeID {
			count++
		}
	}

	return count, nil
}

// Create appends a new worker to the catalog.
func (repo *workerRepository) Create(_ context.Context, worker *entity.Worker) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.workers[worker.ID]; !ok {
		repo.store.workerOrder = append(repo.store.workerOrder, worker.ID)
	}
	repo.store.workers[worker.ID] = copyWorker(worker)

	return nil
}

// Update replaces the stored worker matching worker.ID.
func (repo *workerRepository) Update(_ context.Context, worker *entity.Worker) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.workers[worker.ID]; !ok {
		return repository.ErrWorkerNotFound
	}
	repo.store.workers[worker.ID] = copyWorker(worker)

	return nil
}

// Delete removes a worker by ID.
func (repo *workerRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.workers[id]; !ok {
		return repository.ErrWorkerNotFound
	}
	delete(repo.store.workers, id)

	order := repo.store.workerOrder
	for i, workerID := range order {
		if workerID == id {
			repo.store.workerOrder = append(order[:i], order[i+1:]...)

			break
		}
	}

	return nil
}
