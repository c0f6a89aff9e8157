// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// WorkerSex is the closed enumeration for a worker's sex.
type WorkerSex string

const (
	SexMale   WorkerSex = "male"
	SexFemale WorkerSex = "female"
)

// String returns the string representation of the WorkerSex.
func (s WorkerSex) String() string {
	return string(s)
}

// IsValid checks if the WorkerSex is a valid value.
func (s WorkerSex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	default:
		return false
	}
}

// WorkerType is the closed enumeration of labor-type categories.
type WorkerType string

const (
	TypeDriver      WorkerType = "driver"
	TypeHousekeeper WorkerType = "housekeeper"
	TypeNanny       WorkerType = "nanny"
	TypeCook        WorkerType = "cook"
	TypeGardener    WorkerType = "gardener"
	TypeElderlyCare WorkerType = "elderly-care"
	TypeBabysitter  WorkerType = "babysitter"
)

// String returns the string representation of the WorkerType.
func (t WorkerType) String() string {
	return string(t)
}

// IsValid checks if the WorkerType is a valid value.
func (t WorkerType) IsValid() bool {
	switch t {
	case TypeDriver, TypeHousekeeper, TypeNanny, TypeCook,
		TypeGardener, TypeElderlyCare, TypeBabysitter:
		return true
	default:
		return false
	}
}

// Worker is a domestic-labor profile listed by exactly one office.
// Currency amounts (SalaryPerMonth, FullPackagePrice, DepositAmount) are
// int64 whole currency units so aggregation stays exact.
type Worker struct {
	ID                    uuid.UUID  `json:"id"`                      // The Global Unique Identifier (GUID) for the worker.
	OfficeID              uuid.UUID  `json:"office_id"`               // The owning office. A worker belongs to exactly one office.
	Name                  string     `json:"name"`                    // The worker's display name.
	ImageURL              string     `json:"image_url"`               // Profile photo reference.
	VideoURL              string     `json:"video_url"`               // Intro video reference.
	CVURL                 string     `json:"cv_url"`                  // CV document reference.
	SalaryPerMonth        int64      `json:"salary_per_month"`        // Expected monthly salary.
	Sex                   WorkerSex  `json:"sex"`                     // male or female.
	Age                   int        `json:"age"`                     // Non-negative.
	OriginCountry         string     `json:"origin_country"`          // Country of origin.
	Religion              string     `json:"religion"`                // Free text.
	Type                  WorkerType `json:"type"`                    // Labor-type category.
	ExperienceYears       int        `json:"experience_years"`        // Years of experience.
	HasWorkedInGulf       bool       `json:"has_worked_in_gulf"`      // Prior Gulf-region employment.
	PreviousGulfCountries string     `json:"previous_gulf_countries"` // Meaningful only when HasWorkedInGulf is true.
	FullPackagePrice      int64      `json:"full_package_price"`      // Total contracted price, visa and fees included.
	DepositAmount         int64      `json:"deposit_amount"`          // Upfront portion of the package price.
}

// Fee is the office's share of an approved deal: package price minus deposit.
func (w *Worker) Fee() int64 {
	return w.FullPackagePrice - w.DepositAmount
}

// Normalize enforces the entity invariants that cannot be expressed by the
// type system. PreviousGulfCountries carries no meaning without the Gulf
// flag, so it is cleared rather than trusted.
func (w *Worker) Normalize() {
	if !w.HasWorkedInGulf {
		w.PreviousGulfCountries = ""
	}
	if w.Age < 0 {
		w.Age = 0
	}
	if w.ExperienceYears < 0 {
		w.ExperienceYears = 0
	}
}
