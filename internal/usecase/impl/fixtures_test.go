package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"istiqdam/config"
	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/repository"
	"istiqdam/internal/domain/service"
	"istiqdam/internal/infra/auth"
	"istiqdam/internal/infra/memstore"
	"istiqdam/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeIDs hands out sequential deterministic UUIDs.
type fakeIDs struct {
	counter int
}

func (f *fakeIDs) NewID() uuid.UUID {
	f.counter++

	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", f.counter))
}

// fakeClock is a settable clock so timestamps in assertions are exact.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

// fixture wires the full usecase stack over a fresh in-memory store with
// the standard seed data loaded.
type fixture struct {
	store *memstore.Store
	ids   *fakeIDs
	clock *fakeClock

	accountRepo     repository.AccountRepository
	officeRepo      repository.OfficeRepository
	workerRepo      repository.WorkerRepository
	reservationRepo repository.ReservationRepository
	sessionRepo     repository.SessionRepository

	tokens service.TokenService

	session     usecase.SessionUsecase
	catalog     usecase.CatalogUsecase
	reservation usecase.ReservationUsecase
	office      usecase.OfficeUsecase

	offices []*entity.Office
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store: memstore.NewStore(),
		ids:   &fakeIDs{},
		clock: &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
	}

	logger := slog.Default()
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	f.tokens = tokens

	f.accountRepo = memstore.NewAccountRepository(f.store)
	f.officeRepo = memstore.NewOfficeRepository(f.store)
	f.workerRepo = memstore.NewWorkerRepository(f.store)
	f.reservationRepo = memstore.NewReservationRepository(f.store)
	f.sessionRepo = memstore.NewSessionRepository(f.store)

	require.NoError(t, memstore.Seed(f.store, f.ids, hasher, logger))

	f.session = NewSessionService(SessionServiceParams{
		AccountRepo: f.accountRepo,
		SessionRepo: f.sessionRepo,
		Hasher:      hasher,
		Tokens:      tokens,
		IDs:         f.ids,
		Clock:       f.clock,
		Logger:      logger,
	})
	f.catalog = NewCatalogService(CatalogServiceParams{
		WorkerRepo:      f.workerRepo,
		ReservationRepo: f.reservationRepo,
		IDs:             f.ids,
		Clock:           f.clock,
		Logger:          logger,
	})
	f.reservation = NewReservationService(ReservationServiceParams{
		ReservationRepo: f.reservationRepo,
		WorkerRepo:      f.workerRepo,
		IDs:             f.ids,
		Clock:           f.clock,
		Logger:          logger,
	})
	f.office = NewOfficeService(f.officeRepo)

	f.offices, err = f.officeRepo.ListAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, f.offices)

	return f
}

// customerID resolves a seeded customer account by email.
func (f *fixture) customerID(t *testing.T, email string) uuid.UUID {
	t.Helper()

	account, err := f.accountRepo.FindByEmail(context.Background(), email)
	require.NoError(t, err)

	return account.ID
}

// addWorker lists a worker with sensible defaults under the given office.
func (f *fixture) addWorker(t *testing.T, officeID uuid.UUID, name string, packagePrice, deposit int64) *entity.Worker {
	t.Helper()

	worker, err := f.catalog.AddWorker(context.Background(), officeID, &usecase.CreateWorkerInput{
		Name:             name,
		Sex:              string(entity.SexFemale),
		Type:             string(entity.TypeHousekeeper),
		Age:              30,
		SalaryPerMonth:   1400,
		FullPackagePrice: packagePrice,
		DepositAmount:    deposit,
	})
	require.NoError(t, err)

	return worker
}
