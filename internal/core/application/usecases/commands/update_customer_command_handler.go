package commands

import (
	"context"

	"ordersystem/internal/core/domain/model/customer"
)

// UpdateCustomerCommandHandler patches customer records.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the supplied fields to the stored customer and returns the result.
func (h *UpdateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Patch(
		cmd.FirstName(),
		cmd.LastName(),
		cmd.UserName(),
		cmd.Password(),
		cmd.Address(),
		cmd.AddressType(),
	); err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
