package order

import (
	"errors"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not created
// through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a value object recording one requested catalog item within an order.
//
// The item name is snapshotted at order-creation time, so later catalog renames
// never change what an existing order shows. The quantity is stored exactly as
// supplied by the caller.
type LineItem struct {
	// itemID is the catalog identifier resolved at order-creation time
	itemID kernel.UUID

	// name is the item name snapshotted at order-creation time
	name string

	// quantity is the requested amount, as supplied by the caller
	quantity int

	guard kernel.ConstructorGuard
}

// NewLineItem creates a line item from a resolved catalog entry.
// The item identifier must be valid and the name must not be empty.
func NewLineItem(itemID kernel.UUID, name string, quantity int) (LineItem, error) {
	lineItem := LineItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineItem.setItemID(itemID),
		lineItem.setName(name),
		lineItem.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return lineItem, nil
}

// Validate ensures the line item was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ItemID returns the catalog identifier snapshotted at order-creation time.
func (li LineItem) ItemID() kernel.UUID {
	return li.itemID
}

// Name returns the item name snapshotted at order-creation time.
func (li LineItem) Name() string {
	return li.name
}

// Quantity returns the requested amount.
func (li LineItem) Quantity() int {
	return li.quantity
}

func (li *LineItem) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	li.itemID = itemID
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	// Quantity is taken as supplied; the creation contract does not bound it.
	li.quantity = quantity
	return nil
}
