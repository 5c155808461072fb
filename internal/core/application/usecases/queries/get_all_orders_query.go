// Package queries contains read-side operations in the CQRS architecture.
// Query handlers read the database directly with raw SQL and return plain
// response structs, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"ordersystem/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every stored order with its lines.
type GetAllOrdersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAllOrdersQuery creates a parameterless query for the full order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderResponse is the read-side representation of an order.
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Items      []OrderItemResponse
	Status     string
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItemResponse is one line of an order, in request order.
type OrderItemResponse struct {
	ItemID   kernel.UUID
	Name     string
	Quantity int
}
