package memstore

import (
	"context"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/repository"

	"github.com/google/uuid"
)

// officeRepository implements repository.OfficeRepository over the Store.
type officeRepository struct {
	store *Store
}

// NewOfficeRepository is the constructor for officeRepository.
func NewOfficeRepository(store *Store) repository.OfficeRepository {
	return &officeRepository{store: store}
}

// FindByID retrieves a single office by its unique ID.
func (repo *officeRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Office, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	office, ok := repo.store.offices[id]
	if !ok {
		return nil, repository.ErrOfficeNotFound
	}

	return copyOffice(office), nil
}

// ListAll returns every office in seed order.
func (repo *officeRepository) ListAll(_ context.Context) ([]*entity.Office, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	offices := make([]*entity.Office, 0, len(repo.store.officeOrder))
	for _, id := range repo.store.officeOrder {
		offices = append(offices, copyOffice(repo.store.offices[id]))
	}

	return offices, nil
}

// putOffice inserts an office, used by seeding.
func (s *Store) putOffice(office *entity.Office) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.offices[office.ID]; !ok {
		s.officeOrder = append(s.officeOrder, office.ID)
	}
	s.offices[office.ID] = copyOffice(office)
}
