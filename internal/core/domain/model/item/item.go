package item

import (
	"errors"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created through
// the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// DefaultDescription is applied when an item is created without a description.
const DefaultDescription = "No description"

// Item is a purchasable catalog entry. The name is the lookup key used by
// order pricing; it is matched exactly, case-sensitive.
//
// Items carry no business behavior beyond field validation: they are read by
// the order core and otherwise managed through plain CRUD operations.
type Item struct {
	id          kernel.UUID
	name        string
	price       decimal.Decimal
	description string

	isConstructed bool
}

// NewItem creates a catalog item. Name is required, price must not be
// negative, and an empty description falls back to DefaultDescription.
func NewItem(id kernel.UUID, name string, price decimal.Decimal, description string) (*Item, error) {
	item := &Item{isConstructed: true}

	if description == "" {
		description = DefaultDescription
	}
	item.description = description

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence.
func RestoreItem(id kernel.UUID, name string, price decimal.Decimal, description string) (*Item, error) {
	return NewItem(id, name, price, description)
}

// Validate ensures the Item instance was properly constructed through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item name used for catalog lookups.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current unit price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// Description returns the item description.
func (i *Item) Description() string {
	return i.description
}

// Rename changes the item name. Existing orders keep their snapshotted name.
func (i *Item) Rename(name string) error {
	return i.setName(name)
}

// ChangePrice changes the unit price. Existing orders keep their computed total.
func (i *Item) ChangePrice(price decimal.Decimal) error {
	return i.setPrice(price)
}

// ChangeDescription changes the description; an empty value falls back to DefaultDescription.
func (i *Item) ChangeDescription(description string) {
	if description == "" {
		description = DefaultDescription
	}
	i.description = description
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", errors.New("price must not be negative"))
	}
	i.price = price
	return nil
}
