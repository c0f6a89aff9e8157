package impl

import (
	"context"
	"testing"

	"istiqdam/internal/domain/entity"
	domainerrors "istiqdam/internal/domain/errors"
	"istiqdam/internal/domain/service"
	"istiqdam/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_AddWorkerBelongsToActingOffice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	officeID := f.offices[0].ID

	worker := f.addWorker(t, officeID, "Maria Santos", 9000, 2500)
	assert.Equal(t, officeID, worker.OfficeID)

	workers, err := f.catalog.ListOfficeWorkers(ctx, officeID)
	require.NoError(t, err)
	require.Len(t, workers, 1)
	assert.Equal(t, "Maria Santos", workers[0].Name)
}

func TestCatalogService_AddWorkerRejectsUnknownEnums(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalog.AddWorker(ctx, f.offices[0].ID, &usecase.CreateWorkerInput{
		Name: "Bad Sex", Sex: "other", Type: string(entity.TypeNanny),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.catalog.AddWorker(ctx, f.offices[0].ID, &usecase.CreateWorkerInput{
		Name: "Bad Type", Sex: string(entity.SexMale), Type: "astronaut",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpdateWorkerMergesPartialInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	officeID := f.offices[0].ID

	worker := f.addWorker(t, officeID, "Maria Santos", 9000, 2500)

	newName := "Maria S. Santos"
	newSalary := int64(1600)
	updated, err := f.catalog.UpdateWorker(ctx, officeID, worker.ID, &usecase.UpdateWorkerInput{
		Name:           &newName,
		SalaryPerMonth: &newSalary,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, newSalary, updated.SalaryPerMonth)
	// Untouched fields survive the merge.
	assert.Equal(t, int64(9000), updated.FullPackagePrice)
	assert.Equal(t, 30, updated.Age)
}

func TestCatalogService_CrossOfficeMutationIsForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.offices[0].ID
	other := f.offices[1].ID

	worker := f.addWorker(t, owner, "Maria Santos", 9000, 2500)

	name := "Hijacked"
	_, err := f.catalog.UpdateWorker(ctx, other, worker.ID, &usecase.UpdateWorkerInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = f.catalog.DeleteWorker(ctx, other, worker.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	// The worker is untouched.
	fetched, err := f.catalog.GetWorker(ctx, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", fetched.Name)
}

func TestCatalogService_DeleteWorkerCascadeCancelsPendingRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	officeID := f.offices[0].ID
	customerID := f.customerID(t, "customer1@example.com")

	worker := f.addWorker(t, officeID, "Maria Santos", 9000, 2500)

	pending, err := f.reservation.CreateRequest(ctx, customerID, worker.ID)
	require.NoError(t, err)

	approved, err := f.reservation.CreateRequest(ctx, customerID, worker.ID)
	require.NoError(t, err)
	_, err = f.reservation.Approve(ctx, officeID, approved.ID)
	require.NoError(t, err)

	require.NoError(t, f.catalog.DeleteWorker(ctx, officeID, worker.ID))

	requests, err := f.reservation.RequestsByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	byID := map[string]*entity.ReservationRequest{}
	for _, r := range requests {
		byID[r.ID.String()] = r
	}
	assert.Equal(t, entity.StatusCancelled, byID[pending.ID.String()].Status)
	// Terminal requests are untouched by the cascade.
	assert.Equal(t, entity.StatusApproved, byID[approved.ID.String()].Status)
}

func TestCatalogService_ImportWorkersNeverAbortsOnRowDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	officeID := f.offices[0].ID

	rows := []service.ImportedWorker{
		{Name: "Complete", Sex: entity.SexMale, Type: entity.TypeDriver, FullPackagePrice: 8000, DepositAmount: 1000},
		{Name: "Defaulted", Sex: entity.SexFemale, Type: entity.TypeHousekeeper},
	}

	workers, err := f.catalog.ImportWorkers(ctx, officeID, rows)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, officeID, workers[0].OfficeID)
	assert.Equal(t, officeID, workers[1].OfficeID)
	assert.NotEqual(t, workers[0].ID, workers[1].ID)

	listed, err := f.catalog.ListOfficeWorkers(ctx, officeID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestCatalogService_SearchSpansAllOffices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addWorker(t, f.offices[0].ID, "Maria Santos", 9000, 2500)
	f.addWorker(t, f.offices[1].ID, "Siti Rahma", 7000, 1500)

	all, err := f.catalog.SearchWorkers(ctx, entity.WorkerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := f.catalog.SearchWorkers(ctx, entity.WorkerFilter{OfficeID: f.offices[1].ID})
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "Siti Rahma", scoped[0].Name)
}

func TestCatalogService_GetWorkerUnknownIDIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.GetWorker(context.Background(), f.ids.NewID())
	assert.ErrorIs(t, err, domainerrors.ErrWorkerNotFound)
}
