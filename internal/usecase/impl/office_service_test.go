package impl

import (
	"context"
	"testing"

	domainerrors "istiqdam/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfficeService_ListOfficesKeepsSeedOrder(t *testing.T) {
	f := newFixture(t)

	offices, err := f.office.ListOffices(context.Background())
	require.NoError(t, err)
	require.Len(t, offices, 3)
	assert.Equal(t, "Al Noor Recruitment Office", offices[0].Name)
	assert.Equal(t, "Golden Hands Manpower", offices[1].Name)
	assert.Equal(t, "Amanah Domestic Services", offices[2].Name)
}

func TestOfficeService_GetOfficeUnknownIDIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.office.GetOffice(context.Background(), f.ids.NewID())
	assert.ErrorIs(t, err, domainerrors.ErrOfficeNotFound)
}
