package order_test

import (
	"testing"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T, modelID, materialID string) order.Item {
	t.Helper()
	key, err := kernel.NewModelMaterialID(modelID, materialID)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), key)
	require.NoError(t, err)
	return item
}

func TestNewOrder_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	items := []order.Item{testItem(t, "M1", "MAT1"), testItem(t, "M2", "MAT1")}

	o, err := order.NewOrder(id, "customer@example.com", items)
	require.NoError(t, err)
	assert.Equal(t, id, o.ID())
	assert.Equal(t, "customer@example.com", o.CustomerEmail())
	assert.Equal(t, order.New, o.Status())
	assert.Len(t, o.Items(), 2)
	assert.NoError(t, o.Validate())
}

func TestNewOrder_InvalidInput(t *testing.T) {
	t.Run("zero id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, "customer@example.com", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("empty customer email", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCustomerEmailIsRequired)
	})
}

func TestRestoreOrder_InvalidStatus(t *testing.T) {
	_, err := order.RestoreOrder(kernel.NewUUID(), "customer@example.com", order.Unknown, nil)
	require.Error(t, err)
}

func TestOrder_Validate_NotConstructed(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}

func TestNewItem_InvalidVariantKey(t *testing.T) {
	_, err := order.NewItem(kernel.NewUUID(), kernel.ModelMaterialID{})
	require.Error(t, err)
}

func TestOrder_PlaceModelFixHold(t *testing.T) {
	t.Run("from in production", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "customer@example.com", order.InProduction, nil)
		require.NoError(t, err)

		require.NoError(t, o.PlaceModelFixHold())
		assert.Equal(t, order.ModelFixHold, o.Status())
	})

	t.Run("is idempotent", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "customer@example.com", order.InProduction, nil)
		require.NoError(t, err)

		require.NoError(t, o.PlaceModelFixHold())
		require.NoError(t, o.PlaceModelFixHold())
		assert.Equal(t, order.ModelFixHold, o.Status())
	})

	t.Run("from final state fails", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "customer@example.com", order.Fulfilled, nil)
		require.NoError(t, err)

		require.Error(t, o.PlaceModelFixHold())
		assert.Equal(t, order.Fulfilled, o.Status())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), "customer@example.com", nil)
	require.NoError(t, err)

	require.NoError(t, o.StartProduction())
	assert.Equal(t, order.InProduction, o.Status())

	require.NoError(t, o.PlaceModelFixHold())
	require.NoError(t, o.StartProduction())
	require.NoError(t, o.Fulfill())
	assert.Equal(t, order.Fulfilled, o.Status())

	require.Error(t, o.Cancel())
}

func TestOrder_OverrideCustomerEmail(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), "customer@example.com", nil)
	require.NoError(t, err)

	require.NoError(t, o.OverrideCustomerEmail("qa@example.com"))
	assert.Equal(t, "qa@example.com", o.CustomerEmail())

	require.Error(t, o.OverrideCustomerEmail(""))
}
