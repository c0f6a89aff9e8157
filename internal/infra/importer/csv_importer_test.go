package importer

import (
	"strings"
	"testing"

	"istiqdam/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVImporter_ParsesWellFormedRows(t *testing.T) {
	payload := "name,salaryPerMonth,sex,age,type,hasWorkedInGulf,previousGulfCountries,fullPackagePrice,depositAmount\n" +
		"Maria Santos,1500,female,28,nanny,yes,Saudi Arabia,9000,2500\n"

	rows, err := NewCSVImporter().Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Maria Santos", row.Name)
	assert.Equal(t, int64(1500), row.SalaryPerMonth)
	assert.Equal(t, entity.SexFemale, row.Sex)
	assert.Equal(t, 28, row.Age)
	assert.Equal(t, entity.TypeNanny, row.Type)
	assert.True(t, row.HasWorkedInGulf)
	assert.Equal(t, "Saudi Arabia", row.PreviousGulfCountries)
	assert.Equal(t, int64(9000), row.FullPackagePrice)
	assert.Equal(t, int64(2500), row.DepositAmount)
}

func TestCSVImporter_CoercesMalformedCellsToDefaults(t *testing.T) {
	payload := "name,salaryPerMonth,sex,age,type,hasWorkedInGulf\n" +
		"Broken Row,not-a-number,unknown,-5,astronaut,maybe\n"

	rows, err := NewCSVImporter().Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int64(0), row.SalaryPerMonth)
	assert.Equal(t, entity.SexFemale, row.Sex)
	assert.Equal(t, 0, row.Age)
	assert.Equal(t, entity.TypeHousekeeper, row.Type)
	assert.False(t, row.HasWorkedInGulf)
}

func TestCSVImporter_GulfFlagAcceptsOnlyLiteralTrueAndYes(t *testing.T) {
	payload := "name,hasWorkedInGulf\n" +
		"A,true\nB,yes\nC,TRUE\nD,Yes\nE,1\nF,y\nG,\n"

	rows, err := NewCSVImporter().Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, rows, 7)

	assert.True(t, rows[0].HasWorkedInGulf)
	assert.True(t, rows[1].HasWorkedInGulf)
	// The token match is case-sensitive, so cased variants stay false.
	assert.False(t, rows[2].HasWorkedInGulf)
	assert.False(t, rows[3].HasWorkedInGulf)
	assert.False(t, rows[4].HasWorkedInGulf)
	assert.False(t, rows[5].HasWorkedInGulf)
	assert.False(t, rows[6].HasWorkedInGulf)
}

func TestCSVImporter_MissingImageGetsPlaceholder(t *testing.T) {
	payload := "name,imageUrl\nNo Image,\nWith Image,https://example.com/p.jpg\n"

	rows, err := NewCSVImporter().Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, defaultImageURL, rows[0].ImageURL)
	assert.Equal(t, "https://example.com/p.jpg", rows[1].ImageURL)
}

func TestCSVImporter_GulfCountriesClearedWithoutFlag(t *testing.T) {
	payload := "name,hasWorkedInGulf,previousGulfCountries\nMaria,no,Qatar\n"

	rows, err := NewCSVImporter().Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].PreviousGulfCountries)
}

func TestCSVImporter_TruncatesFractionalAmounts(t *testing.T) {
	payload := "name,fullPackagePrice,depositAmount\nMaria,9000.75,-100\n"

	rows, err := NewCSVImporter().Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(9000), rows[0].FullPackagePrice)
	assert.Equal(t, int64(0), rows[0].DepositAmount)
}

func TestCSVImporter_ShortRowsDoNotAbortTheBatch(t *testing.T) {
	payload := "name,salaryPerMonth,age\nComplete,1200,30\nShort\n"

	rows, err := NewCSVImporter().Parse(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Complete", rows[0].Name)
	assert.Equal(t, "Short", rows[1].Name)
	assert.Equal(t, int64(0), rows[1].SalaryPerMonth)
}

func TestCSVImporter_EmptyPayloadIsAnError(t *testing.T) {
	_, err := NewCSVImporter().Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestCSVImporter_HeaderOnlyYieldsNoRows(t *testing.T) {
	rows, err := NewCSVImporter().Parse(strings.NewReader("name,age\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
