package queries_test

import (
	"testing"

	"ordermail/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersOnHoldQuery_Success(t *testing.T) {
	query := queries.NewGetOrdersOnHoldQuery()

	require.NoError(t, query.Validate())
}

func TestGetOrdersOnHoldQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrdersOnHoldQuery{}

	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetOrdersOnHoldQueryIsNotConstructed)
}
