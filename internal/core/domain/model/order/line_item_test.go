package order_test

import (
	"testing"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	itemID := kernel.NewUUID()

	t.Run("should create valid line item", func(t *testing.T) {
		li, err := order.NewLineItem(itemID, "Laptop", 2)

		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.True(t, li.ItemID().IsEqual(itemID))
		assert.Equal(t, "Laptop", li.Name())
		assert.Equal(t, 2, li.Quantity())
	})

	t.Run("should fail with invalid item ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewLineItem(invalidID, "Laptop", 2)

		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewLineItem(itemID, "", 2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	// Quantity is passed through exactly as the caller supplied it; zero and
	// negative values are persisted, not rejected.
	t.Run("should accept zero and negative quantity", func(t *testing.T) {
		zero, err := order.NewLineItem(itemID, "Laptop", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, zero.Quantity())

		negative, err := order.NewLineItem(itemID, "Laptop", -3)
		require.NoError(t, err)
		assert.Equal(t, -3, negative.Quantity())
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("should reject zero value line item", func(t *testing.T) {
		var li order.LineItem

		err := li.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrLineItemIsNotConstructed, err)
	})
}
