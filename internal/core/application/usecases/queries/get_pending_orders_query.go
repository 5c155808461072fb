package queries

import (
	"errors"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves orders still awaiting a lifecycle decision.
// The backlog job uses it to report orders sitting in Pending.
type GetPendingOrdersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a parameterless query for the pending backlog.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// PendingOrderResponse identifies one order awaiting processing.
type PendingOrderResponse struct {
	ID        kernel.UUID
	CreatedAt time.Time
}
