package commands_test

import (
	"testing"

	"ordersystem/internal/core/application/usecases/commands"
	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateCustomerCommandHandler_Handle_PatchesSuppliedFields(t *testing.T) {
	ctx := t.Context()
	stored := mustCustomer(t, "jdoe")

	newAddress := "456 Oak Ave"
	cmd, err := commands.NewUpdateCustomerCommand(stored.ID(), nil, nil, nil, nil, &newAddress, nil)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "456 Oak Ave", updated.Address())
	assert.Equal(t, "jdoe", updated.UserName())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle_EmptySuppliedValueIsRejected(t *testing.T) {
	ctx := t.Context()
	stored := mustCustomer(t, "jdoe")

	empty := ""
	cmd, err := commands.NewUpdateCustomerCommand(stored.ID(), &empty, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCustomerCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewUpdateCustomerCommand(customerID, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerID", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
