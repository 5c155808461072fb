package commands_test

import (
	"testing"

	"ordersystem/internal/core/application/usecases/commands"
	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemCommandHandler_Handle_PatchesSuppliedFields(t *testing.T) {
	ctx := t.Context()
	stored := mustItem(t, "Laptop", "999.99")

	newName := "Workstation"
	newPrice := decimal.RequireFromString("1299.00")
	cmd, err := commands.NewUpdateItemCommand(stored.ID(), &newName, &newPrice, nil)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Workstation", updated.Name())
	assert.True(t, newPrice.Equal(updated.Price()))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_NilFieldsLeaveItemUnchanged(t *testing.T) {
	ctx := t.Context()
	stored := mustItem(t, "Laptop", "999.99")
	cmd, err := commands.NewUpdateItemCommand(stored.ID(), nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, stored).Return(nil).Once()

	uow := new(MockItemUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ItemRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", updated.Name())
	assert.True(t, decimal.RequireFromString("999.99").Equal(updated.Price()))
}

func TestUpdateItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	cmd, err := commands.NewUpdateItemCommand(itemID, nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, itemID).
			Return(nil, errs.NewObjectNotFoundError("itemID", itemID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
