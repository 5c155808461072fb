package ports

import (
	"context"

	"ordersystem/internal/core/domain/model/item"
	"ordersystem/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for catalog items.
//
// GetByName is the catalog-lookup operation the order core depends on:
// the name is matched exactly, case-sensitive, with no fuzzy matching.
type ItemRepository interface {
	// Add persists a new catalog item.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update rewrites an existing catalog item.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by its unique identifier.
	// Returns errs.ObjectNotFoundError when the item does not exist.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetByName retrieves the first item whose name matches exactly.
	// Returns errs.ObjectNotFoundError when no item matches.
	GetByName(ctx context.Context, name string) (*item.Item, error)

	// GetAll retrieves every catalog item.
	GetAll(ctx context.Context) ([]*item.Item, error)

	// Delete removes an item by identifier. Deleting an absent item is not an error.
	Delete(ctx context.Context, id kernel.UUID) error
}
