package commands_test

import (
	"testing"

	"ordersystem/internal/core/application/usecases/commands"
	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	requested, err := commands.NewRequestedItem("Laptop", 2)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(customerID, []commands.RequestedItem{requested})
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	require.Len(t, cmd.RequestedItems(), 1)
	assert.Equal(t, "Laptop", cmd.RequestedItems()[0].Name())
	assert.Equal(t, 2, cmd.RequestedItems()[0].Quantity())
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	requested, err := commands.NewRequestedItem("Laptop", 1)
	require.NoError(t, err)

	_, err = commands.NewCreateOrderCommand(invalidID, []commands.RequestedItem{requested})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRequestedItemsAreRequired)
}

func TestNewCreateOrderCommand_UnconstructedRequestedItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		[]commands.RequestedItem{{}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRequestedItem_EmptyName(t *testing.T) {
	_, err := commands.NewRequestedItem("", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRequestedItem_QuantityIsTakenAsSupplied(t *testing.T) {
	for _, quantity := range []int{-5, 0, 3} {
		requested, err := commands.NewRequestedItem("Laptop", quantity)
		require.NoError(t, err)
		assert.Equal(t, quantity, requested.Quantity())
	}
}

func TestNewCreateOrderCommand_ItemsAreCopied(t *testing.T) {
	requested, err := commands.NewRequestedItem("Laptop", 1)
	require.NoError(t, err)

	supplied := []commands.RequestedItem{requested}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), supplied)
	require.NoError(t, err)

	other, err := commands.NewRequestedItem("Mouse", 1)
	require.NoError(t, err)
	supplied[0] = other

	assert.Equal(t, "Laptop", cmd.RequestedItems()[0].Name())
}
