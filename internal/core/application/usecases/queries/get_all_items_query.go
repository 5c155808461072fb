package queries

import (
	"errors"

	"ordersystem/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var ErrGetAllItemsQueryIsNotConstructed = errors.New(
	"GetAllItemsQuery must be created via NewGetAllItemsQuery constructor",
)

// GetAllItemsQuery retrieves the full catalog.
type GetAllItemsQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAllItemsQuery creates a parameterless query for the catalog list.
func NewGetAllItemsQuery() GetAllItemsQuery {
	return GetAllItemsQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllItemsQueryIsNotConstructed)
}

// ItemResponse is the read-side representation of a catalog item.
type ItemResponse struct {
	ID          kernel.UUID
	Name        string
	Price       decimal.Decimal
	Description string
}
