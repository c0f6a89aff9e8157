package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func testCatalog() []*Worker {
	officeA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	officeB := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	return []*Worker{
		{
			ID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001"), OfficeID: officeA,
			Name: "Maria Santos", SalaryPerMonth: 1500, Age: 28, Religion: "Christian",
			Type: TypeHousekeeper, HasWorkedInGulf: true,
		},
		{
			ID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002"), OfficeID: officeA,
			Name: "Siti Rahma", SalaryPerMonth: 1200, Age: 35, Religion: "Muslim",
			Type: TypeNanny, HasWorkedInGulf: false,
		},
		{
			ID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003"), OfficeID: officeB,
			Name: "Amara Diallo", SalaryPerMonth: 1800, Age: 41, Religion: "Muslim",
			Type: TypeCook, HasWorkedInGulf: true,
		},
	}
}

func TestWorkerFilter_EmptyFilterMatchesEverything(t *testing.T) {
	workers := testCatalog()
	result := FilterWorkers(workers, WorkerFilter{})
	assert.Len(t, result, len(workers))
}

func TestWorkerFilter_NameQueryIsCaseInsensitiveSubstring(t *testing.T) {
	result := FilterWorkers(testCatalog(), WorkerFilter{NameQuery: "maria"})
	require.Len(t, result, 1)
	assert.Equal(t, "Maria Santos", result[0].Name)
}

func TestWorkerFilter_OfficeScope(t *testing.T) {
	workers := testCatalog()
	result := FilterWorkers(workers, WorkerFilter{OfficeID: workers[2].OfficeID})
	require.Len(t, result, 1)
	assert.Equal(t, "Amara Diallo", result[0].Name)
}

func TestWorkerFilter_AgeAndSalaryBoundsAreInclusive(t *testing.T) {
	workers := testCatalog()

	result := FilterWorkers(workers, WorkerFilter{MinAge: intPtr(35), MaxAge: intPtr(35)})
	require.Len(t, result, 1)
	assert.Equal(t, "Siti Rahma", result[0].Name)

	result = FilterWorkers(workers, WorkerFilter{MinSalary: int64Ptr(1500), MaxSalary: int64Ptr(1800)})
	assert.Len(t, result, 2)
}

func TestWorkerFilter_GulfTriState(t *testing.T) {
	workers := testCatalog()

	assert.Len(t, FilterWorkers(workers, WorkerFilter{GulfExperience: GulfAny}), 3)
	assert.Len(t, FilterWorkers(workers, WorkerFilter{GulfExperience: GulfYes}), 2)

	result := FilterWorkers(workers, WorkerFilter{GulfExperience: GulfNo})
	require.Len(t, result, 1)
	assert.Equal(t, "Siti Rahma", result[0].Name)
}

func TestWorkerFilter_PredicatesIntersect(t *testing.T) {
	workers := testCatalog()

	// Religion alone matches two workers; adding the Gulf predicate narrows to one.
	assert.Len(t, FilterWorkers(workers, WorkerFilter{Religion: "Muslim"}), 2)

	result := FilterWorkers(workers, WorkerFilter{Religion: "Muslim", GulfExperience: GulfYes})
	require.Len(t, result, 1)
	assert.Equal(t, "Amara Diallo", result[0].Name)
}

func TestWorkerFilter_PreservesCatalogOrder(t *testing.T) {
	workers := testCatalog()
	result := FilterWorkers(workers, WorkerFilter{Religion: "Muslim"})
	require.Len(t, result, 2)
	assert.Equal(t, "Siti Rahma", result[0].Name)
	assert.Equal(t, "Amara Diallo", result[1].Name)
}

func TestWorkerFilter_NoMatchReturnsEmptyNotNil(t *testing.T) {
	result := FilterWorkers(testCatalog(), WorkerFilter{NameQuery: "nobody"})
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGulfExperience_IsValid(t *testing.T) {
	assert.True(t, GulfAny.IsValid())
	assert.True(t, GulfYes.IsValid())
	assert.True(t, GulfNo.IsValid())
	assert.True(t, GulfExperience("").IsValid())
	assert.False(t, GulfExperience("maybe").IsValid())
}
