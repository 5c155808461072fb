package commands

import (
	"errors"

	"ordersystem/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand patches a catalog item. Nil fields are left unchanged.
// Renames and price changes never touch existing orders: line items keep
// their snapshotted names and totals stay as computed at creation.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        *string
	price       *decimal.Decimal
	description *string

	guard kernel.ConstructorGuard
}

// NewUpdateItemCommand creates a command to patch a catalog item.
func NewUpdateItemCommand(
	itemID kernel.UUID,
	name *string,
	price *decimal.Decimal,
	description *string,
) (UpdateItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return UpdateItemCommand{}, err
	}

	return UpdateItemCommand{
		itemID:      itemID,
		name:        name,
		price:       price,
		description: description,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to patch.
func (c UpdateItemCommand) ItemID() kernel.UUID { return c.itemID }

// Name returns the new name, or nil to keep the current one.
func (c UpdateItemCommand) Name() *string { return c.name }

// Price returns the new price, or nil to keep the current one.
func (c UpdateItemCommand) Price() *decimal.Decimal { return c.price }

// Description returns the new description, or nil to keep the current one.
func (c UpdateItemCommand) Description() *string { return c.description }
