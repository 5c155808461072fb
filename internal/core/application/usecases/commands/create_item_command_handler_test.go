package commands_test

import (
	"errors"
	"testing"

	"ordersystem/internal/core/application/usecases/commands"
	"ordersystem/internal/core/domain/model/item"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateItemCommand("Laptop", decimal.RequireFromString("999.99"), "Gaming laptop")
	require.NoError(t, err)

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*item.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateItemCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Laptop", created.Name())
	assert.True(t, decimal.RequireFromString("999.99").Equal(created.Price()))
	assert.Equal(t, "Gaming laptop", created.Description())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_EmptyDescriptionGetsDefault(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateItemCommand("Mouse", decimal.RequireFromString("25.50"), "")
	require.NoError(t, err)

	repo := new(MockItemRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*item.Item")).Return(nil).Once()

	uow := new(MockItemUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ItemRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateItemCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, item.DefaultDescription, created.Description())
}

func TestCreateItemCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateItemCommand("Laptop", decimal.RequireFromString("999.99"), "")
	require.NoError(t, err)

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*item.Item")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateItemCommand{} // not constructed properly
	factory := new(MockItemUoWFactory)
	h := commands.NewCreateItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateItemCommandIsNotConstructed)
}
