package service

import (
	"io"

	"istiqdam/internal/domain/entity"
)

// ImportedWorker is one normalized bulk-import row. All coercion happens in
// the importer: the catalog consumes these rows, never raw text.
type ImportedWorker struct {
	Name                  string
	ImageURL              string
	VideoURL              string
	CVURL                 string
	SalaryPerMonth        int64
	Sex                   entity.WorkerSex
	Age                   int
	OriginCountry         string
	Religion              string
	Type                  entity.WorkerType
	ExperienceYears       int
	HasWorkedInGulf       bool
	PreviousGulfCountries string
	FullPackagePrice      int64
	DepositAmount         int64
}

// WorkerImporter parses a tabular bulk-import payload into normalized rows.
// Malformed cells are coerced to defaults rather than rejected; a row never
// aborts the batch.
type WorkerImporter interface {
	Parse(r io.Reader) ([]ImportedWorker, error)
}
