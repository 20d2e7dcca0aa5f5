package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackOrderQueryByID_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewTrackOrderQueryByID(orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.OrderID())
	assert.True(t, query.OrderID().IsEqual(orderID))
	assert.Empty(t, query.TrackingNumber())
}

func TestNewTrackOrderQueryByID_InvalidID(t *testing.T) {
	_, err := queries.NewTrackOrderQueryByID(kernel.UUID{})

	require.Error(t, err)
}

func TestNewTrackOrderQueryByNumber_Valid(t *testing.T) {
	query, err := queries.NewTrackOrderQueryByNumber("TRK-1A2B3C4D")

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.OrderID())
	assert.Equal(t, "TRK-1A2B3C4D", query.TrackingNumber())
}

func TestNewTrackOrderQueryByNumber_Empty(t *testing.T) {
	_, err := queries.NewTrackOrderQueryByNumber("")

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTrackOrderQueryNeedsIdentifier)
}

func TestTrackOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.TrackOrderQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTrackOrderQueryIsNotConstructed)
}

func TestNewGetStockLevelsQuery_Valid(t *testing.T) {
	query := queries.NewGetStockLevelsQuery()

	require.NoError(t, query.Validate())
}

func TestGetStockLevelsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStockLevelsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStockLevelsQueryIsNotConstructed)
}
