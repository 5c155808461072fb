package ports

import (
	"context"

	"ordersystem/internal/core/domain/model/customer"
	"ordersystem/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer records.
// The order core never queries it; it exists for the customer CRUD surface.
type CustomerRepository interface {
	// Add persists a new customer record.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update rewrites an existing customer record.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	// Returns errs.ObjectNotFoundError when the customer does not exist.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByUserName retrieves a customer by its unique account name.
	// Returns errs.ObjectNotFoundError when no customer matches.
	GetByUserName(ctx context.Context, userName string) (*customer.Customer, error)

	// GetAll retrieves every customer record.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// Delete removes a customer by identifier. Deleting an absent customer is not an error.
	Delete(ctx context.Context, id kernel.UUID) error
}
