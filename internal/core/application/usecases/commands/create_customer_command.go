package commands

import (
	"errors"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a new customer account. All fields are required.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	firstName   string
	lastName    string
	userName    string
	password    string
	address     string
	addressType string

	guard kernel.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(
	firstName, lastName, userName, password, address, addressType string,
) (CreateCustomerCommand, error) {
	required := func(name, value string) error {
		if value == "" {
			return errs.NewValueIsRequiredError(name)
		}
		return nil
	}

	if err := errors.Join(
		required("firstName", firstName),
		required("lastName", lastName),
		required("userName", userName),
		required("password", password),
		required("address", address),
		required("addressType", addressType),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
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
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// FirstName returns the customer's first name.
func (c CreateCustomerCommand) FirstName() string { return c.firstName }

// LastName returns the customer's last name.
func (c CreateCustomerCommand) LastName() string { return c.lastName }

// UserName returns the requested unique account name.
func (c CreateCustomerCommand) UserName() string { return c.userName }

// Password returns the supplied password value.
func (c CreateCustomerCommand) Password() string { return c.password }

// Address returns the customer's address.
func (c CreateCustomerCommand) Address() string { return c.address }

// AddressType returns the kind of address on file.
func (c CreateCustomerCommand) AddressType() string { return c.addressType }
