// Package memstore contains the concrete implementation of the state layer
// as plain in-memory collections. Nothing here persists across a restart;
// that is the point — the marketplace state is mock, session-scoped data.
//
// All collections live behind a single RWMutex owned by the Store, so every
// mutation is atomic with respect to readers and no caller can observe a
// partial update. Repositories hand out copies of entities, never aliases
// into the store.
package memstore

import (
	"sync"

	"istiqdam/internal/domain/entity"

	"github.com/google/uuid"
)

// Store is the single owner of all mutable application state.
type Store struct {
	mu sync.RWMutex

	accounts     map[uuid.UUID]*entity.Account
	accountOrder []uuid.UUID

	offices     map[uuid.UUID]*entity.Office
	officeOrder []uuid.UUID

	workers     map[uuid.UUID]*entity.Worker
	workerOrder []uuid.UUID

	requests     map[uuid.UUID]*entity.ReservationRequest
	requestOrder []uuid.UUID

	sessions map[uuid.UUID]*entity.Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]*entity.Account),
		offices:  make(map[uuid.UUID]*entity.Office),
		workers:  make(map[uuid.UUID]*entity.Worker),
		requests: make(map[uuid.UUID]*entity.ReservationRequest),
		sessions: make(map[uuid.UUID]*entity.Session),
	}
}

// copyWorker returns a defensive copy so store internals never leak.
func copyWorker(w *entity.Worker) *entity.Worker {
	c := *w

	return &c
}

func copyOffice(o *entity.Office) *entity.Office {
	c := *o

	return &c
}

func copyAccount(a *entity.Account) *entity.Account {
	c := *a

	return &c
}

func copyRequest(r *entity.ReservationRequest) *entity.ReservationRequest {
	c := *r
	if r.StatusUpdatedAt != nil {
		t := *r.StatusUpdatedAt
		c.StatusUpdatedAt = &t
	}

	return &c
}

func copySession(s *entity.Session) *entity.Session {
	c := *s

	return &c
}
