package commands

import (
	"errors"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrRequestedItemsAreRequired = errors.New("at least one requested item is required")
)

// RequestedItem is one entry of the caller's item list: a catalog name to
// resolve and the desired quantity. The quantity is carried as supplied.
type RequestedItem struct {
	name     string
	quantity int

	guard kernel.ConstructorGuard
}

// NewRequestedItem creates a requested item. The name must not be empty;
// it is resolved against the catalog exactly as given.
func NewRequestedItem(name string, quantity int) (RequestedItem, error) {
	if name == "" {
		return RequestedItem{}, errs.NewValueIsRequiredError("name")
	}

	return RequestedItem{
		name:     name,
		quantity: quantity,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Name returns the catalog name to resolve.
func (r RequestedItem) Name() string {
	return r.name
}

// Quantity returns the desired quantity.
func (r RequestedItem) Quantity() int {
	return r.quantity
}

// Validate ensures the requested item was created through the constructor.
func (r RequestedItem) Validate() error {
	return r.guard.Validate(errs.NewValueIsRequiredError("requested item"))
}

// CreateOrderCommand represents a request to create a new order for a customer.
// Encapsulates the customer reference and the requested item list in the
// caller-supplied order.
//
// Example:
//
//	item, _ := NewRequestedItem("Laptop", 2)
//	cmd, err := NewCreateOrderCommand(customerID, []RequestedItem{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     kernel.UUID
	requestedItems []RequestedItem

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer ID is a well-formed identifier and that at
// least one item was requested. Customer existence is deliberately not
// checked; the reference stays opaque to keep the subsystems decoupled.
func NewCreateOrderCommand(customerID kernel.UUID, requestedItems []RequestedItem) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setRequestedItems(requestedItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RequestedItems returns the requested items in caller-supplied order.
func (c CreateOrderCommand) RequestedItems() []RequestedItem {
	items := make([]RequestedItem, len(c.requestedItems))
	copy(items, c.requestedItems)
	return items
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRequestedItems(requestedItems []RequestedItem) error {
	if len(requestedItems) == 0 {
		return ErrRequestedItemsAreRequired
	}

	for _, item := range requestedItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.requestedItems = make([]RequestedItem, len(requestedItems))
	copy(c.requestedItems, requestedItems)
	return nil
}
