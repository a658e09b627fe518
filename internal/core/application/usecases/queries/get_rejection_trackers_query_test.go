package queries_test

import (
	"testing"

	"ordermail/internal/core/application/usecases/queries"
	"ordermail/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRejectionTrackersQuery_Success(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetRejectionTrackersQuery(orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetRejectionTrackersQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetRejectionTrackersQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetRejectionTrackersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetRejectionTrackersQuery{}

	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetRejectionTrackersQueryIsNotConstructed)
}
