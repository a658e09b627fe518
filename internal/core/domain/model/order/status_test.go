package order_test

import (
	"testing"

	"ordermail/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{order.New, order.InProduction, order.ModelFixHold, order.Fulfilled, order.Cancelled}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "New", order.New.String())
	assert.Equal(t, "InProduction", order.InProduction.String())
	assert.Equal(t, "ModelFixHold", order.ModelFixHold.String())
	assert.Equal(t, "Fulfilled", order.Fulfilled.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_ReviewModelFix(t *testing.T) {
	t.Run("from new", func(t *testing.T) {
		next, err := order.New.ReviewModelFix()
		require.NoError(t, err)
		assert.Equal(t, order.ModelFixHold, next)
	})

	t.Run("from in production", func(t *testing.T) {
		next, err := order.InProduction.ReviewModelFix()
		require.NoError(t, err)
		assert.Equal(t, order.ModelFixHold, next)
	})

	t.Run("from final states", func(t *testing.T) {
		_, err := order.Fulfilled.ReviewModelFix()
		require.Error(t, err)

		_, err = order.Cancelled.ReviewModelFix()
		require.Error(t, err)
	})

	t.Run("from hold itself", func(t *testing.T) {
		_, err := order.ModelFixHold.ReviewModelFix()
		require.Error(t, err)
	})
}

func TestStatus_StartProduction(t *testing.T) {
	next, err := order.New.StartProduction()
	require.NoError(t, err)
	assert.Equal(t, order.InProduction, next)

	next, err = order.ModelFixHold.StartProduction()
	require.NoError(t, err)
	assert.Equal(t, order.InProduction, next)

	_, err = order.Fulfilled.StartProduction()
	require.Error(t, err)
}

func TestStatus_Fulfill(t *testing.T) {
	next, err := order.InProduction.Fulfill()
	require.NoError(t, err)
	assert.Equal(t, order.Fulfilled, next)

	_, err = order.New.Fulfill()
	require.Error(t, err)

	_, err = order.ModelFixHold.Fulfill()
	require.Error(t, err)
}

func TestStatus_Cancel(t *testing.T) {
	for _, s := range []order.Status{order.New, order.InProduction, order.ModelFixHold} {
		next, err := s.Cancel()
		require.NoError(t, err, s.String())
		assert.Equal(t, order.Cancelled, next)
	}

	_, err := order.Fulfilled.Cancel()
	require.Error(t, err)

	_, err = order.Cancelled.Cancel()
	require.Error(t, err)
}
