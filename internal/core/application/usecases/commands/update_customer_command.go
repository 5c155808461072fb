package commands

import (
	"errors"

	"ordersystem/internal/core/domain/model/kernel"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand patches a customer record. Nil fields are left unchanged.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	firstName   *string
	lastName    *string
	userName    *string
	password    *string
	address     *string
	addressType *string

	guard kernel.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to patch a customer record.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	firstName, lastName, userName, password, address, addressType *string,
) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID:  customerID,
		firstName:   firstName,
		lastName:    lastName,
		userName:    userName,
		password:    password,
		address:     address,
		addressType: addressType,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to patch.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// FirstName returns the new first name, or nil to keep the current one.
func (c UpdateCustomerCommand) FirstName() *string { return c.firstName }

// LastName returns the new last name, or nil to keep the current one.
func (c UpdateCustomerCommand) LastName() *string { return c.lastName }

// UserName returns the new account name, or nil to keep the current one.
func (c UpdateCustomerCommand) UserName() *string { return c.userName }

// Password returns the new password, or nil to keep the current one.
func (c UpdateCustomerCommand) Password() *string { return c.password }

// Address returns the new address, or nil to keep the current one.
func (c UpdateCustomerCommand) Address() *string { return c.address }

// AddressType returns the new address type, or nil to keep the current one.
func (c UpdateCustomerCommand) AddressType() *string { return c.addressType }
