package order

import (
	"errors"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root that manages
// the order lifecycle from creation through fulfillment or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must carry at least one line item
//   - Total price is computed once at creation and never recomputed
//   - Status transitions follow the Pending -> Completed/Cancelled state machine
//   - Can only be created through NewOrder or RestoreOrder
//
// The customer reference is an opaque identifier: existence of the customer is
// deliberately not checked here, keeping the order subsystem decoupled from the
// customer store.
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the ordering customer
	customerID kernel.UUID

	// lineItems are the requested items in caller-supplied order
	lineItems []LineItem

	// status represents the current state in the order lifecycle
	status Status

	// totalPrice is the sum of unit price x quantity at creation time
	totalPrice decimal.Decimal

	// version is the optimistic-concurrency counter, incremented on every persisted update
	version int

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts in
// Pending status at version 1 with creation and update timestamps set to now.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Identifier of the ordering customer (must be valid UUID)
//   - lineItems: Snapshotted line items in caller-supplied order (at least one)
//   - totalPrice: Total computed by the pricing step at creation time
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.UUID, customerID kernel.UUID, lineItems []LineItem, totalPrice decimal.Decimal) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		totalPrice:    totalPrice,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without re-running creation
// rules. Status and version are validated; timestamps are taken as stored.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	lineItems []LineItem,
	status Status,
	totalPrice decimal.Decimal,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		totalPrice:    totalPrice,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setLineItems(lineItems),
		order.setStatus(status),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// LineItems returns the order's line items in caller-supplied order.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the total computed at creation time.
// It is never recomputed, even if catalog prices change later.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// Version returns the optimistic-concurrency counter.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Complete marks the order as processed by the fulfillment step.
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//   - Completed is a final state with no further transitions
//
// Returns:
//   - nil on successful completion
//   - error if the order is not in Pending status
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// Cancel marks the order as cancelled.
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//   - Cancelled is a final state with no further transitions
//
// Returns:
//   - nil on successful cancellation
//   - error if the order is not in Pending status
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
// Only the identifier shape is validated; existence is not checked.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setLineItems validates and sets the line items, preserving input order.
func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("version")
	}
	o.version = version
	return nil
}
