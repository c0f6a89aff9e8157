package memstore

import (
	"context"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/repository"

	"github.com/google/uuid"
)

// accountRepository implements repository.AccountRepository over the Store.
type accountRepository struct {
	store *Store
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{store: store}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	account, ok := repo.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return copyAccount(account), nil
}

// FindByEmail retrieves a single account by its login email. The email must
// match the stored value exactly; the password check happens elsewhere.
func (repo *accountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, id := range repo.store.accountOrder {
		account := repo.store.accounts[id]
		if account.Email == email {
			return copyAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

// putAccount inserts an account, used by seeding.
func (s *Store) putAccount(account *entity.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; !ok {
		s.accountOrder = append(s.accountOrder, account.ID)
	}
	s.accounts[account.ID] = copyAccount(account)
}
