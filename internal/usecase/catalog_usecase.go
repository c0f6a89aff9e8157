// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/service"

	"github.com/google/uuid"
)

// CreateWorkerInput defines the data required to list a new worker. The
// owning office is never part of the payload; it comes from the
// authenticated identity.
type CreateWorkerInput struct {
	Name                  string `json:"name" validate:"required"`
	ImageURL              string `json:"image_url"`
	VideoURL              string `json:"video_url"`
	CVURL                 string `json:"cv_url"`
	SalaryPerMonth        int64  `json:"salary_per_month" validate:"min=0"`
	Sex                   string `json:"sex" validate:"required"`
	Age                   int    `json:"age" validate:"min=0"`
	OriginCountry         string `json:"origin_country"`
	Religion              string `json:"religion"`
	Type                  string `json:"type" validate:"required"`
	ExperienceYears       int    `json:"experience_years" validate:"min=0"`
	HasWorkedInGulf       bool   `json:"has_worked_in_gulf"`
	PreviousGulfCountries string `json:"previous_gulf_countries"`
	FullPackagePrice      int64  `json:"full_package_price" validate:"min=0"`
	DepositAmount         int64  `json:"deposit_amount" validate:"min=0"`
}

// UpdateWorkerInput is a partial update; nil fields are left untouched.
type UpdateWorkerInput struct {
	Name                  *string `json:"name"`
	ImageURL              *string `json:"image_url"`
	VideoURL              *string `json:"video_url"`
	CVURL                 *string `json:"cv_url"`
	SalaryPerMonth        *int64  `json:"salary_per_month"`
	Sex                   *string `json:"sex"`
	Age                   *int    `json:"age"`
	OriginCountry         *string `json:"origin_country"`
	Religion              *string `json:"religion"`
	Type                  *string `json:"type"`
	ExperienceYears       *int    `json:"experience_years"`
	HasWorkedInGulf       *bool   `json:"has_worked_in_gulf"`
	PreviousGulfCountries *string `json:"previous_gulf_countries"`
	FullPackagePrice      *int64  `json:"full_package_price"`
	DepositAmount         *int64  `json:"deposit_amount"`
}

// CatalogUsecase defines the interface for worker catalog operations.
type CatalogUsecase interface {
	// AddWorker lists a new worker under the acting office.
	AddWorker(ctx context.Context, officeID uuid.UUID, input *CreateWorkerInput) (*entity.Worker, error)

	// UpdateWorker merges the provided fields into an existing worker owned
	// by the acting office.
	UpdateWorker(ctx context.Context, officeID, workerID uuid.UUID, input *UpdateWorkerInput) (*entity.Worker, error)

	// DeleteWorker removes a worker owned by the acting office. Pending
	// reservation requests referencing the worker are cascade-cancelled.
	DeleteWorker(ctx context.Context, officeID, workerID uuid.UUID) error

	// ImportWorkers bulk-adds normalized rows under the acting office. Rows
	// are defaulted independently; the batch never aborts part-way.
	ImportWorkers(ctx context.Context, officeID uuid.UUID, rows []service.ImportedWorker) ([]*entity.Worker, error)

	// ListOfficeWorkers returns the office's workers in insertion order.
	ListOfficeWorkers(ctx context.Context, officeID uuid.UUID) ([]*entity.Worker, error)

	// GetWorker returns a single worker by ID.
	GetWorker(ctx context.Context, workerID uuid.UUID) (*entity.Worker, error)

	// SearchWorkers returns the workers matching every specified predicate,
	// in catalog insertion order.
	SearchWorkers(ctx context.Context, filter entity.WorkerFilter) ([]*entity.Worker, error)
}
