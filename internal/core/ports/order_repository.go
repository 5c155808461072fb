// Package ports defines repository and capability interfaces for the order system.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The repository is a plain record store: uniqueness, referential integrity,
// and lifecycle rules are enforced by the use cases that call it.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update rewrites an existing order aggregate using optimistic concurrency:
	// the write only applies if the stored version matches the aggregate's
	// version, and the stored version is incremented. Returns
	// errs.ConcurrentUpdateError when the version check fails and
	// errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order by identifier. Deleting an absent order is not
	// an error; the operation is idempotent.
	Delete(ctx context.Context, id kernel.UUID) error
}
