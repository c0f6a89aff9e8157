// Package importer handles parsing of worker bulk-import payloads.
package importer

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/service"
)

const defaultImageURL = "https://via.placeholder.com/300x400"

// csvImporter implements service.WorkerImporter for CSV input with
// header-named columns.
type csvImporter struct{}

// NewCSVImporter is the constructor for csvImporter.
func NewCSVImporter() service.WorkerImporter {
	return &csvImporter{}
}

// Parse reads header-named CSV rows and coerces each one independently.
// Columns: name, imageUrl, videoUrl, cvUrl, salaryPerMonth, sex, age,
// originCountry, religion, type, experienceYears, hasWorkedInGulf,
// previousGulfCountries, fullPackagePrice, depositAmount.
//
// Leniency policy: numeric parse failures become 0, unknown enum tokens
// become the defined defaults (sex=female, type=housekeeper), and
// hasWorkedInGulf is true only for the literal tokens "true" or "yes".
// A structurally unreadable stream is an error; a malformed row is not.
func (imp *csvImporter) Parse(r io.Reader) ([]service.ImportedWorker, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("import payload is empty")
		}

		return nil, errors.WithStack(err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var rows []service.ImportedWorker
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}

		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}

			return strings.TrimSpace(record[idx])
		}

		rows = append(rows, normalizeRow(cell))
	}

	return rows, nil
}

// normalizeRow coerces a single record; it never fails.
func normalizeRow(cell func(string) string) service.ImportedWorker {
	row := service.ImportedWorker{
		Name:                  cell("name"),
		ImageURL:              cell("imageUrl"),
		VideoURL:              cell("videoUrl"),
		CVURL:                 cell("cvUrl"),
		SalaryPerMonth:        parseAmount(cell("salaryPerMonth")),
		Sex:                   parseSex(cell("sex")),
		Age:                   parseCount(cell("age")),
		OriginCountry:         cell("originCountry"),
		Religion:              cell("religion"),
		Type:                  parseType(cell("type")),
		ExperienceYears:       parseCount(cell("experienceYears")),
		HasWorkedInGulf:       parseGulfFlag(cell("hasWorkedInGulf")),
		PreviousGulfCountries: cell("previousGulfCountries"),
		FullPackagePrice:      parseAmount(cell("fullPackagePrice")),
		DepositAmount:         parseAmount(cell("depositAmount")),
	}

	if row.ImageURL == "" {
		row.ImageURL = defaultImageURL
	}
	if !row.HasWorkedInGulf {
		row.PreviousGulfCountries = ""
	}

	return row
}

// parseAmount reads a currency amount as int64 whole units. Fractional text
// is accepted and truncated toward zero; anything unparsable is 0.
func parseAmount(s string) int64 {
	if s == "" {
		return 0
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0
	}

	return int64(value)
}

func parseCount(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil || value < 0 {
		return 0
	}

	return value
}

func parseSex(s string) entity.WorkerSex {
	sex := entity.WorkerSex(strings.ToLower(s))
	if !sex.IsValid() {
		return entity.SexFemale
	}

	return sex
}

func parseType(s string) entity.WorkerType {
	workerType := entity.WorkerType(strings.ToLower(s))
	if !workerType.IsValid() {
		return entity.TypeHousekeeper
	}

	return workerType
}

// parseGulfFlag accepts only the literal tokens "true" and "yes" as true.
// The match is case-sensitive: "TRUE" or "Yes" are false like any other text.
func parseGulfFlag(s string) bool {
	switch s {
	case "true", "yes":
		return true
	default:
		return false
	}
}
