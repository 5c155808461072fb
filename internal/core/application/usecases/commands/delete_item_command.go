package commands

import (
	"errors"

	"ordersystem/internal/core/domain/model/kernel"
)

var ErrDeleteItemCommandIsNotConstructed = errors.New(
	"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
)

// DeleteItemCommand removes a catalog item. Orders that snapshotted the item
// are unaffected.
type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewDeleteItemCommand creates a command to delete a catalog item.
func NewDeleteItemCommand(itemID kernel.UUID) (DeleteItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return DeleteItemCommand{}, err
	}

	return DeleteItemCommand{
		itemID: itemID,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to delete.
func (c DeleteItemCommand) ItemID() kernel.UUID { return c.itemID }
