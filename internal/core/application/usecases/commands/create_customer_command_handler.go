package commands

import (
	"context"
	"errors"

	"ordersystem/internal/core/domain/model/customer"
	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers customer accounts, enforcing the
// userName uniqueness rule at this layer since the repository stores records
// without business checks.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new customer and returns it with its assigned identifier.
// Returns UserNameTakenError when the account name is already in use.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
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

	if _, err := customerRepo.GetByUserName(ctx, cmd.UserName()); err == nil {
		return nil, &UserNameTakenError{UserName: cmd.UserName()}
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newCustomer, err := customer.NewCustomer(
		kernel.NewUUID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.UserName(),
		cmd.Password(),
		cmd.Address(),
		cmd.AddressType(),
	)
	if err != nil {
		return nil, err
	}

	if err = customerRepo.Add(ctx, newCustomer); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCustomer, nil
}
