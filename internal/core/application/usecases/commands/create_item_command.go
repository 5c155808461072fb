package commands

import (
	"errors"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand registers a new catalog item.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	name        string
	price       decimal.Decimal
	description string

	guard kernel.ConstructorGuard
}

// NewCreateItemCommand creates a command to add a catalog item.
// Name is required and price must not be negative; the description is
// optional and defaults at the domain level.
func NewCreateItemCommand(name string, price decimal.Decimal, description string) (CreateItemCommand, error) {
	if name == "" {
		return CreateItemCommand{}, errs.NewValueIsRequiredError("name")
	}
	if price.IsNegative() {
		return CreateItemCommand{}, errs.NewValueIsInvalidError("price")
	}

	return CreateItemCommand{
		name:        name,
		price:       price,
		description: description,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// Name returns the catalog name.
func (c CreateItemCommand) Name() string { return c.name }

// Price returns the unit price.
func (c CreateItemCommand) Price() decimal.Decimal { return c.price }

// Description returns the optional description.
func (c CreateItemCommand) Description() string { return c.description }
